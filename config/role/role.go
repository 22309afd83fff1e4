package role

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnknownRole is returned when a role name is not one of the configured roles
var ErrUnknownRole = errors.New("unknown role")

// Role is one of the options a member's role can be set to
type Role struct {
	ID   int    `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// Roles is the ordered list of selectable roles
type Roles []Role

// DefaultRoles are used when the config does not list any roles
var DefaultRoles = NewRoles(
	"Product Baker",
	"Product Designer",
	"Product Manager",
	"Frontend Developer",
	"Data Scientist",
	"Marketing Manager",
	"UX Researcher",
)

// NewRoles creates Roles from the given names, numbering them from 1
func NewRoles(names ...string) Roles {
	roles := make(Roles, 0, len(names))
	for i, name := range names {
		roles = append(roles, Role{ID: i + 1, Name: name})
	}
	return roles
}

// WithName returns the role with the given name
func (r Roles) WithName(name string) (Role, error) {
	for _, role := range r {
		if role.Name == name {
			return role, nil
		}
	}
	return Role{}, errors.Wrap(ErrUnknownRole, fmt.Sprintf("role %s does not exist", name))
}

// SelectedOrFirst returns the role with the given name, falling back to the first role
func (r Roles) SelectedOrFirst(name string) Role {
	role, err := r.WithName(name)
	if err != nil && len(r) > 0 {
		return r[0]
	}
	return role
}

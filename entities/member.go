package entities

import (
	"bytes"
	"encoding/json"
	"strings"
)

// MemberID is the opaque identifier the members API assigns to a member.
// The API may encode it either as a JSON string or as a JSON number.
type MemberID string

// UnmarshalJSON accepts both string and numeric ids
func (id *MemberID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = MemberID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = MemberID(n.String())
	return nil
}

func (id MemberID) String() string {
	return string(id)
}

// Member is a single record of the managed roster
type Member struct {
	ID       MemberID `json:"id"`
	Name     string   `json:"name"`
	UserName string   `json:"userName"`
	Email    string   `json:"email"`
	Avatar   string   `json:"avatar"`
	IsActive bool     `json:"isActive"`
	Role     string   `json:"role"`
	Teams    []string `json:"teams"`
}

// MemberDraft is an editable, unsaved copy of a member's editable fields
type MemberDraft struct {
	ID    MemberID `json:"id"`
	Name  string   `json:"name"`
	Role  string   `json:"role"`
	Email string   `json:"email"`
}

// NewMemberDraft copies the editable fields of the given member
func NewMemberDraft(member Member) MemberDraft {
	return MemberDraft{
		ID:    member.ID,
		Name:  member.Name,
		Role:  member.Role,
		Email: member.Email,
	}
}

// WithDraft returns a copy of the member with the draft's fields applied
func (m Member) WithDraft(draft MemberDraft) Member {
	updated := m
	updated.Name = strings.TrimSpace(draft.Name)
	updated.Role = draft.Role
	updated.Email = strings.TrimSpace(draft.Email)
	updated.Teams = append([]string(nil), m.Teams...)
	return updated
}

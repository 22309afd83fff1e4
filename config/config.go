package config

import (
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_members/config/role"
	"github.com/unicsmcr/hs_members/environment"

	"go.uber.org/config"
)

const (
	defaultPageSize       = 10
	defaultWindowSize     = 6
	defaultRequestTimeout = 10 * time.Second
	defaultSessionTTL     = 30 * time.Minute
	defaultSessionCookie  = "hs_members_session"
)

// MembersConfig stores the configuration of the members table
type MembersConfig struct {
	// PageSize is the number of members fetched per page
	PageSize int `yaml:"page_size"`
	// WindowSize is the number of page buttons shown by the paginator
	WindowSize     int           `yaml:"window_size"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// SessionConfig stores the configuration of console sessions
type SessionConfig struct {
	TTL        time.Duration `yaml:"ttl"`
	CookieName string        `yaml:"cookie_name"`
}

// AppConfig is a struct to store non-private configuration for the project
type AppConfig struct {
	Name    string        `yaml:"name"`
	Members MembersConfig `yaml:"members"`
	Session SessionConfig `yaml:"session"`
	Roles   role.Roles    `yaml:"roles"`
}

// NewAppConfig loads the project config from the config files based on the environment
func NewAppConfig(env *environment.Env) (*AppConfig, error) {
	dir := env.Get(environment.ConfigDir)
	if dir == "" {
		dir = "."
	}

	configFiles := []config.YAMLOption{config.File(filepath.Join(dir, "base.yaml"))}
	if env.Get(environment.Environment) == "prod" {
		configFiles = append(configFiles, config.File(filepath.Join(dir, "production.yaml")))
	} else if env.Get(environment.Environment) == "dev" {
		configFiles = append(configFiles, config.File(filepath.Join(dir, "development.yaml")))
	}

	configProvider, err := config.NewYAML(configFiles...)
	if err != nil {
		return nil, errors.Wrap(err, "could not load config files")
	}

	var cfg AppConfig
	err = configProvider.Get(config.Root).Populate(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not populate app config")
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (cfg *AppConfig) applyDefaults() {
	if cfg.Members.PageSize <= 0 {
		cfg.Members.PageSize = defaultPageSize
	}
	if cfg.Members.WindowSize <= 0 {
		cfg.Members.WindowSize = defaultWindowSize
	}
	if cfg.Members.RequestTimeout <= 0 {
		cfg.Members.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultSessionCookie
	}
	if len(cfg.Roles) == 0 {
		cfg.Roles = role.DefaultRoles
	}
}

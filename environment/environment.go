package environment

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// names of env vars
const (
	Environment   = "ENVIRONMENT"
	Port          = "PORT"
	MembersAPIURL = "MEMBERS_API_URL"
	ConfigDir     = "CONFIG_DIR"
)

// dotEnvFile is merged into the process environment before the vars are read.
// Variables already set in the environment take precedence.
const dotEnvFile = ".env"

// NewEnv creates an Env with loaded environment variables
func NewEnv(logger *zap.Logger) *Env {
	env := Env{
		vars: map[string]string{
			Environment:   valueOfEnvVar(logger, Environment),
			Port:          valueOfEnvVar(logger, Port),
			MembersAPIURL: valueOfEnvVar(logger, MembersAPIURL),
			ConfigDir:     valueOfEnvVar(logger, ConfigDir),
		},
	}
	return &env
}

// Env is a struct to store environment variables in an immutable collection
type Env struct {
	vars map[string]string
}

// Get returns an environment variable with the specified name
func (env *Env) Get(variableName string) string {
	return env.vars[variableName]
}

// DotEnv marks that the .env file was merged into the process environment.
// Providers reading the process environment directly take it as a dependency.
type DotEnv struct {
	Path string
	Err  error
}

// LoadDotEnv merges the .env file into the process environment
func LoadDotEnv() DotEnv {
	return loadDotEnv(dotEnvFile)
}

func loadDotEnv(path string) DotEnv {
	dotEnv := DotEnv{Path: path}
	if _, err := os.Stat(path); err != nil {
		return dotEnv
	}

	dotEnv.Err = godotenv.Load(path)
	return dotEnv
}

func valueOfEnvVar(logger *zap.Logger, varName string) string {
	envVar := os.Getenv(varName)
	if len(envVar) == 0 {
		logger.Warn("expected environment variable not defined", zap.String("var", varName))
	}

	return envVar
}

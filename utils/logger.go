package utils

import (
	"os"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_members/environment"
	"go.uber.org/zap"
)

const loggerName = "hs_members"

// NewLogger creates the application logger. JSON production logging is used
// when ENVIRONMENT is prod, human readable development logging otherwise.
// ENVIRONMENT is read after the .env file was loaded.
func NewLogger(dotEnv environment.DotEnv) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv(environment.Environment) == "prod" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not create logger")
	}
	if dotEnv.Err != nil {
		logger.Warn("could not load env file", zap.String("path", dotEnv.Path), zap.Error(dotEnv.Err))
	}

	return logger.Named(loggerName), nil
}

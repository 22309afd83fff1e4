package main

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_members/environment"
	"github.com/unicsmcr/hs_members/routers"
	"github.com/unicsmcr/hs_members/routers/middleware"
	"github.com/unicsmcr/hs_members/utils"
	"go.uber.org/zap"
)

const (
	defaultPort      = "8000"
	templatesPattern = "templates/*/*.gohtml"
)

// Server is the members console HTTP server
type Server struct {
	*gin.Engine
	Port string
}

// NewServer creates the gin engine serving the console
func NewServer(logger *zap.Logger, env *environment.Env, mainRouter routers.MainRouter) (Server, error) {
	if env.Get(environment.Environment) == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestLogger(logger), gin.Recovery())

	templates, err := utils.LoadTemplates(templatesPattern)
	if err != nil {
		return Server{}, errors.Wrap(err, "could not load templates")
	}
	engine.SetHTMLTemplate(templates)

	mainRouter.RegisterRoutes(engine.Group("/"))

	port := env.Get(environment.Port)
	if port == "" {
		port = defaultPort
	}

	return Server{
		Engine: engine,
		Port:   port,
	}, nil
}

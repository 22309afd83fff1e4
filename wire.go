//+build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/unicsmcr/hs_members/config"
	"github.com/unicsmcr/hs_members/console"
	"github.com/unicsmcr/hs_members/environment"
	"github.com/unicsmcr/hs_members/routers"
	v1 "github.com/unicsmcr/hs_members/routers/api/v1"
	"github.com/unicsmcr/hs_members/routers/frontend"
	"github.com/unicsmcr/hs_members/services/rest"
	"github.com/unicsmcr/hs_members/utils"
)

func InitializeServer() (Server, error) {
	wire.Build(
		NewServer,
		routers.NewMainRouter,
		frontend.NewRouter,
		v1.NewAPIV1Router,
		console.NewSessions,
		rest.NewRESTMemberService,
		utils.NewHTTPClient,
		utils.NewTimeProvider,
		environment.NewEnv,
		environment.LoadDotEnv,
		utils.NewLogger,
		config.NewAppConfig,
	)
	return Server{}, nil
}

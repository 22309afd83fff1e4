package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_members/routers/api/models"
	v1 "github.com/unicsmcr/hs_members/routers/api/v1"
	"github.com/unicsmcr/hs_members/routers/frontend"
	"go.uber.org/zap"
)

//go:generate mockgen -destination ../mocks/routers/mock_mainRouter.go -package mock_routers github.com/unicsmcr/hs_members/routers MainRouter

// MainRouter is the top level router of the console
type MainRouter interface {
	models.Router
}

type mainRouter struct {
	logger         *zap.Logger
	apiV1          v1.APIV1Router
	frontendRouter frontend.Router
}

// NewMainRouter creates the MainRouter
func NewMainRouter(logger *zap.Logger, apiV1Router v1.APIV1Router, frontendRouter frontend.Router) MainRouter {
	return &mainRouter{
		logger:         logger,
		apiV1:          apiV1Router,
		frontendRouter: frontendRouter,
	}
}

// RegisterRoutes registers the console's pages on the given router group and the API under /api/v1
func (r *mainRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	apiV1Group := routerGroup.Group("/api/v1")
	r.apiV1.RegisterRoutes(apiV1Group)

	r.frontendRouter.RegisterRoutes(routerGroup)
}

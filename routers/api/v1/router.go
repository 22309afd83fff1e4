package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_members/config"
	"github.com/unicsmcr/hs_members/console"
	"github.com/unicsmcr/hs_members/routers/api/models"
	"go.uber.org/zap"
)

//go:generate mockgen -destination ../../../mocks/routers/api/v1/mock_router.go -package mock_v1 github.com/unicsmcr/hs_members/routers/api/v1 APIV1Router

// APIV1Router is the router for v1 of the API
type APIV1Router interface {
	models.Router
	GetTable(*gin.Context)
}

type apiV1Router struct {
	models.BaseRouter
	logger   *zap.Logger
	cfg      *config.AppConfig
	sessions *console.Sessions
}

// NewAPIV1Router creates a APIV1Router
func NewAPIV1Router(logger *zap.Logger, cfg *config.AppConfig, sessions *console.Sessions) APIV1Router {
	return &apiV1Router{
		logger:   logger,
		cfg:      cfg,
		sessions: sessions,
	}
}

// RegisterRoutes registers all of the API's (v1) routes to the given router group
func (r *apiV1Router) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/", r.Heartbeat)
	routerGroup.GET("/table", r.GetTable)
}

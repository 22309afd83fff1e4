package frontend

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_members/config"
	"github.com/unicsmcr/hs_members/console"
	"github.com/unicsmcr/hs_members/routers/api/models"
	"go.uber.org/zap"
)

//go:generate mockgen -destination ../../mocks/routers/frontend/mock_router.go -package mock_frontend github.com/unicsmcr/hs_members/routers/frontend Router

// Router serves the members console
type Router interface {
	models.Router
	MembersPage(*gin.Context)
	ChangePage(*gin.Context)
	SlideWindowBack(*gin.Context)
	SlideWindowForward(*gin.Context)
	ToggleMember(*gin.Context)
	ToggleAll(*gin.Context)
	OpenEdit(*gin.Context)
	SaveMember(*gin.Context)
	OpenDelete(*gin.Context)
	OpenBulkDelete(*gin.Context)
	ConfirmDelete(*gin.Context)
	CloseModal(*gin.Context)
}

type frontendRouter struct {
	logger   *zap.Logger
	cfg      *config.AppConfig
	sessions *console.Sessions
}

// NewRouter creates the console Router
func NewRouter(logger *zap.Logger, cfg *config.AppConfig, sessions *console.Sessions) Router {
	return &frontendRouter{
		logger:   logger,
		cfg:      cfg,
		sessions: sessions,
	}
}

func (r *frontendRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("", r.MembersPage)
	routerGroup.GET("page/:page", r.ChangePage)
	routerGroup.POST("window/back", r.SlideWindowBack)
	routerGroup.POST("window/forward", r.SlideWindowForward)
	routerGroup.POST("member/:id/select", r.ToggleMember)
	routerGroup.POST("member/:id/edit", r.OpenEdit)
	routerGroup.POST("member/:id/delete", r.OpenDelete)
	routerGroup.POST("members/select-all", r.ToggleAll)
	routerGroup.POST("members/save", r.SaveMember)
	routerGroup.POST("members/delete-selected", r.OpenBulkDelete)
	routerGroup.POST("members/delete", r.ConfirmDelete)
	routerGroup.POST("modal/close", r.CloseModal)
}

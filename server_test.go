package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/hs_members/environment"
	mock_routers "github.com/unicsmcr/hs_members/mocks/routers"
	"github.com/unicsmcr/hs_members/routers/middleware"
	"github.com/unicsmcr/hs_members/testutils"
	"go.uber.org/zap"
)

func Test_NewServer__should_register_routes_and_middleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockMainRouter := mock_routers.NewMockMainRouter(ctrl)

	restore := testutils.SetEnvVars(map[string]string{environment.Port: "9000"})
	env := environment.NewEnv(zap.NewNop())
	restore()

	mockMainRouter.EXPECT().RegisterRoutes(gomock.Any()).
		Do(func(group *gin.RouterGroup) {
			group.GET("/test", func(ctx *gin.Context) {
				ctx.Status(http.StatusOK)
			})
		}).Times(1)

	server, err := NewServer(zap.NewNop(), env, mockMainRouter)

	assert.NoError(t, err)
	assert.Equal(t, "9000", server.Port)

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func Test_NewServer__should_use_default_port(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockMainRouter := mock_routers.NewMockMainRouter(ctrl)
	mockMainRouter.EXPECT().RegisterRoutes(gomock.Any()).Times(1)

	restore := testutils.UnsetVars(environment.Port)
	env := environment.NewEnv(zap.NewNop())
	restore()

	server, err := NewServer(zap.NewNop(), env, mockMainRouter)

	assert.NoError(t, err)
	assert.Equal(t, defaultPort, server.Port)
}

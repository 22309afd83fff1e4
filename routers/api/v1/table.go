package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_members/routers/api/models"
	"github.com/unicsmcr/hs_members/routers/common"
	"github.com/unicsmcr/hs_members/table"
	"go.uber.org/zap"
)

// GET: /api/v1/table
// Response: status int
//           error string
//           table table.State
//           pageCount int
//           window []int
//           allSelected bool
//           anySelected bool
//           canSlideWindowBack bool
//           canSlideWindowForward bool
func (r *apiV1Router) GetTable(ctx *gin.Context) {
	orchestrator := common.SessionOrchestrator(ctx, r.cfg, r.sessions)

	err := orchestrator.EnsureMounted(ctx.Request.Context())
	if err != nil {
		r.logger.Error("could not show members table", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadGateway, table.GenericError)
		return
	}

	state := orchestrator.Snapshot()
	ctx.JSON(http.StatusOK, getTableRes{
		Response: models.Response{
			Status: http.StatusOK,
			Err:    state.Err,
		},
		Table:                 state,
		PageCount:             state.Pagination.PageCount(),
		Window:                state.Pagination.Window(),
		AllSelected:           state.IsAllSelected(),
		AnySelected:           state.IsAnySelected(),
		CanSlideWindowBack:    state.Pagination.CanSlideWindowBack(),
		CanSlideWindowForward: state.Pagination.CanSlideWindowForward(),
	})
}

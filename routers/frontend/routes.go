package frontend

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_members/console"
	"github.com/unicsmcr/hs_members/entities"
	"github.com/unicsmcr/hs_members/routers/common"
	"github.com/unicsmcr/hs_members/table"
	"go.uber.org/zap"
)

const membersPagePath = "/"

type memberForm struct {
	Name  string `form:"name" binding:"required"`
	Role  string `form:"role" binding:"required"`
	Email string `form:"email" binding:"required,email"`
}

// GET: /
func (r *frontendRouter) MembersPage(ctx *gin.Context) {
	orchestrator := common.SessionOrchestrator(ctx, r.cfg, r.sessions)

	err := orchestrator.EnsureMounted(ctx.Request.Context())
	if err != nil {
		r.logger.Error("could not fetch members", zap.Error(err))
	}

	membersPage.render(ctx, r, http.StatusOK, orchestrator.Snapshot(), "")
}

// GET: /page/:page
func (r *frontendRouter) ChangePage(ctx *gin.Context) {
	orchestrator := common.SessionOrchestrator(ctx, r.cfg, r.sessions)

	page, err := strconv.Atoi(ctx.Param("page"))
	if err != nil {
		r.logger.Warn("invalid page requested", zap.String("page", ctx.Param("page")))
		redirectToMembersPage(ctx)
		return
	}

	err = orchestrator.ChangePage(ctx.Request.Context(), page)
	if err != nil {
		r.logger.Error("could not change page", zap.Int("page", page), zap.Error(err))
	}

	redirectToMembersPage(ctx)
}

// POST: /window/back
func (r *frontendRouter) SlideWindowBack(ctx *gin.Context) {
	common.SessionOrchestrator(ctx, r.cfg, r.sessions).SlideWindowBack()
	redirectToMembersPage(ctx)
}

// POST: /window/forward
func (r *frontendRouter) SlideWindowForward(ctx *gin.Context) {
	common.SessionOrchestrator(ctx, r.cfg, r.sessions).SlideWindowForward()
	redirectToMembersPage(ctx)
}

// POST: /member/:id/select
func (r *frontendRouter) ToggleMember(ctx *gin.Context) {
	orchestrator := common.SessionOrchestrator(ctx, r.cfg, r.sessions)
	err := orchestrator.ToggleMember(entities.MemberID(ctx.Param("id")))
	if err != nil {
		r.logger.Warn("could not select member", zap.String("member id", ctx.Param("id")), zap.Error(err))
	}
	redirectToMembersPage(ctx)
}

// POST: /members/select-all
func (r *frontendRouter) ToggleAll(ctx *gin.Context) {
	common.SessionOrchestrator(ctx, r.cfg, r.sessions).ToggleAll()
	redirectToMembersPage(ctx)
}

// POST: /member/:id/edit
func (r *frontendRouter) OpenEdit(ctx *gin.Context) {
	orchestrator := common.SessionOrchestrator(ctx, r.cfg, r.sessions)

	err := orchestrator.OpenEdit(entities.MemberID(ctx.Param("id")))
	if err != nil {
		r.logger.Warn("could not open edit modal", zap.String("member id", ctx.Param("id")), zap.Error(err))
	}

	redirectToMembersPage(ctx)
}

// POST: /members/save
// x-www-form-urlencoded
// Request:  name string
//           role string
//           email string
func (r *frontendRouter) SaveMember(ctx *gin.Context) {
	orchestrator := common.SessionOrchestrator(ctx, r.cfg, r.sessions)

	state := orchestrator.Snapshot()
	if state.Modal.Kind != table.ModalEdit || state.Modal.Draft == nil {
		r.logger.Warn("member saved while no member is being edited")
		redirectToMembersPage(ctx)
		return
	}

	var form memberForm
	bindErr := ctx.ShouldBind(&form)
	draft := entities.MemberDraft{
		ID:    state.Modal.Draft.ID,
		Name:  ctx.PostForm("name"),
		Role:  ctx.PostForm("role"),
		Email: ctx.PostForm("email"),
	}

	if bindErr != nil {
		r.logger.Warn("invalid member details", zap.String("member id", draft.ID.String()), zap.Error(bindErr))
		r.rejectDraft(ctx, orchestrator, draft, "Please provide a name and a valid email address")
		return
	}

	if _, err := r.cfg.Roles.WithName(form.Role); err != nil {
		r.logger.Warn("invalid member role", zap.String("member id", draft.ID.String()), zap.Error(err))
		r.rejectDraft(ctx, orchestrator, draft, "Please select one of the listed roles")
		return
	}

	err := orchestrator.SaveDraft(ctx.Request.Context(), draft)
	if err != nil {
		r.logger.Error("could not save member", zap.String("member id", draft.ID.String()), zap.Error(err))
	}

	redirectToMembersPage(ctx)
}

// POST: /member/:id/delete
func (r *frontendRouter) OpenDelete(ctx *gin.Context) {
	orchestrator := common.SessionOrchestrator(ctx, r.cfg, r.sessions)

	err := orchestrator.OpenDelete(entities.MemberID(ctx.Param("id")))
	if err != nil {
		r.logger.Warn("could not open delete modal", zap.String("member id", ctx.Param("id")), zap.Error(err))
	}

	redirectToMembersPage(ctx)
}

// POST: /members/delete-selected
func (r *frontendRouter) OpenBulkDelete(ctx *gin.Context) {
	orchestrator := common.SessionOrchestrator(ctx, r.cfg, r.sessions)

	err := orchestrator.OpenBulkDelete()
	if err != nil {
		r.logger.Warn("could not open bulk delete modal", zap.Error(err))
	}

	redirectToMembersPage(ctx)
}

// POST: /members/delete
func (r *frontendRouter) ConfirmDelete(ctx *gin.Context) {
	orchestrator := common.SessionOrchestrator(ctx, r.cfg, r.sessions)

	err := orchestrator.ConfirmDelete(ctx.Request.Context())
	if err != nil {
		r.logger.Error("could not delete members", zap.Error(err))
	}

	redirectToMembersPage(ctx)
}

// POST: /modal/close
func (r *frontendRouter) CloseModal(ctx *gin.Context) {
	common.SessionOrchestrator(ctx, r.cfg, r.sessions).CloseModal()
	redirectToMembersPage(ctx)
}

// rejectDraft keeps the edit modal open with the submitted values and shows why they were rejected
func (r *frontendRouter) rejectDraft(ctx *gin.Context, orchestrator *console.Orchestrator, draft entities.MemberDraft, alert string) {
	err := orchestrator.UpdateDraft(draft)
	if err != nil {
		r.logger.Warn("could not keep rejected draft", zap.String("member id", draft.ID.String()), zap.Error(err))
	}

	membersPage.render(ctx, r, http.StatusBadRequest, orchestrator.Snapshot(), alert)
}

func redirectToMembersPage(ctx *gin.Context) {
	ctx.Redirect(http.StatusSeeOther, membersPagePath)
}

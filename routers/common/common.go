package common

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_members/config"
	"github.com/unicsmcr/hs_members/console"
)

// SessionOrchestrator returns the orchestrator of the session identified by the request's
// session cookie, starting a new session when there is none. The cookie is refreshed on every call.
func SessionOrchestrator(ctx *gin.Context, cfg *config.AppConfig, sessions *console.Sessions) *console.Orchestrator {
	id, err := ctx.Cookie(cfg.Session.CookieName)
	if err != nil {
		id = ""
	}

	sessionID, orchestrator, _ := sessions.Get(id)
	ctx.SetCookie(cfg.Session.CookieName, sessionID, int(cfg.Session.TTL.Seconds()), "/", "", false, true)

	return orchestrator
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/services"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/pkg/errors"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/pkg/logger"
)

// Sessions is the process-wide session manager, set once at startup.
var Sessions *services.SessionManager

func Init(manager *services.SessionManager) {
	Sessions = manager
}

// currentSession resolves the caller's session from the authenticated
// user id. Responds and returns nil when resolution fails.
func currentSession(c *gin.Context) *services.Session {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil
	}

	session, err := Sessions.Get(userID)
	if err != nil {
		respondError(c, err)
		return nil
	}
	return session
}

// respondError maps an AppError to its HTTP status; anything else is a 500.
func respondError(c *gin.Context, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled handler error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}

// mutationExtras persists the session and builds the common trailer of a
// mutation response: queued notifications, the derived mode, and a
// persistence warning when the durable write failed. A failed write
// degrades to the warning; the in-memory state the caller just observed
// stays authoritative.
func mutationExtras(session *services.Session, body gin.H) gin.H {
	if err := Sessions.Save(session); err != nil {
		logger.Warn().Err(err).Str("user_id", session.UserID).Msg("Session persisted in memory only")
		body["persistenceWarning"] = "Changes are held in memory but could not be saved durably. They will be retried on your next action."
	}

	body["notifications"] = session.TakeNotifications()
	body["mode"] = session.Mode()
	return body
}

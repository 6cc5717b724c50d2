package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/abbasalialoc/HIIT/internal/domain"
	"github.com/abbasalialoc/HIIT/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionHandler holds the session service dependency. It also serves the
// stats endpoint, which aggregates over the same collection.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// CreateSessionRequest defines the JSON for POST /sessions. Exercises and
// settings are full snapshots supplied by the client; an empty exercises
// list is allowed, a missing one is not.
type CreateSessionRequest struct {
	Exercises []domain.Exercise       `json:"exercises"`
	Settings  *domain.WorkoutSettings `json:"settings" binding:"required"`
	UserID    string                  `json:"userId"`
}

// CreateSession starts a new active session embedding the given snapshots.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "Validation error: "+err.Error())
		return
	}
	if req.Exercises == nil {
		abortWithError(c, http.StatusUnprocessableEntity, "Validation error: exercises is required")
		return
	}

	session, err := h.sessionService.StartSession(c.Request.Context(), req.UserID, req.Exercises, *req.Settings)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to create session.")
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSessions lists the queried user's sessions, most recent first.
func (h *SessionHandler) GetSessions(c *gin.Context) {
	limit := int64(0)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			abortWithError(c, http.StatusUnprocessableEntity, "Validation error: limit must be an integer")
			return
		}
		limit = parsed
	}

	sessions, err := h.sessionService.ListSessions(c.Request.Context(), c.Query("user_id"), limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve sessions.")
		return
	}
	if sessions == nil {
		sessions = []domain.WorkoutSession{}
	}
	c.JSON(http.StatusOK, sessions)
}

// CompleteSession marks the session named by the path as completed with the
// counters from the query string.
func (h *SessionHandler) CompleteSession(c *gin.Context) {
	completedSets, err := strconv.Atoi(c.Query("completed_sets"))
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "Validation error: completed_sets must be an integer")
		return
	}
	completedCircuits, err := strconv.Atoi(c.Query("completed_circuits"))
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "Validation error: completed_circuits must be an integer")
		return
	}

	err = h.sessionService.CompleteSession(c.Request.Context(), c.Param("id"), completedSets, completedCircuits)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			abortWithError(c, http.StatusNotFound, "Session not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to complete session.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session completed successfully"})
}

// GetStats returns the aggregate statistics for the queried user.
func (h *SessionHandler) GetStats(c *gin.Context) {
	stats, err := h.sessionService.GetStats(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve stats.")
		return
	}
	c.JSON(http.StatusOK, stats)
}

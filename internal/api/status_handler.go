package api

import (
	"net/http"

	"github.com/abbasalialoc/HIIT/internal/domain"
	"github.com/abbasalialoc/HIIT/internal/service"

	"github.com/gin-gonic/gin"
)

// StatusHandler holds the status service dependency.
type StatusHandler struct {
	statusService service.StatusService
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(statusService service.StatusService) *StatusHandler {
	return &StatusHandler{statusService: statusService}
}

// CreateStatusCheckRequest defines the JSON for POST /status.
type CreateStatusCheckRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}

// CreateStatusCheck records a timestamped health check for the client.
func (h *StatusHandler) CreateStatusCheck(c *gin.Context) {
	var req CreateStatusCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "Validation error: "+err.Error())
		return
	}

	check, err := h.statusService.RecordCheck(c.Request.Context(), req.ClientName)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to record status check.")
		return
	}
	c.JSON(http.StatusOK, check)
}

// GetStatusChecks lists the recorded health checks.
func (h *StatusHandler) GetStatusChecks(c *gin.Context) {
	checks, err := h.statusService.ListChecks(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve status checks.")
		return
	}
	if checks == nil {
		checks = []domain.StatusCheck{}
	}
	c.JSON(http.StatusOK, checks)
}

package api

import (
	"errors"
	"net/http"

	"github.com/abbasalialoc/HIIT/internal/domain"
	"github.com/abbasalialoc/HIIT/internal/service"

	"github.com/gin-gonic/gin"
)

// SettingsHandler holds the settings service dependency.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// UpsertSettingsRequest defines the JSON for POST /settings. Every field is
// optional; unsupplied fields keep their current (or default) values.
type UpsertSettingsRequest struct {
	WorkTime        *int      `json:"workTime"`
	RestTime        *int      `json:"restTime"`
	SetsPerExercise *int      `json:"setsPerExercise"`
	Circuits        *int      `json:"circuits"`
	ExerciseOrder   *[]string `json:"exerciseOrder"`
	UserID          *string   `json:"userId"`
}

// GetSettings returns the settings for the queried user, creating a default
// record on first access.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve settings.")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpsertSettings creates or updates the settings record keyed on the body's
// userId.
func (h *SettingsHandler) UpsertSettings(c *gin.Context) {
	var req UpsertSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "Validation error: "+err.Error())
		return
	}

	userID := ""
	if req.UserID != nil {
		userID = *req.UserID
	}
	patch := domain.WorkoutSettingsPatch{
		WorkTime:        req.WorkTime,
		RestTime:        req.RestTime,
		SetsPerExercise: req.SetsPerExercise,
		Circuits:        req.Circuits,
		ExerciseOrder:   req.ExerciseOrder,
	}

	settings, err := h.settingsService.UpsertSettings(c.Request.Context(), userID, patch)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save settings.")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings applies a partial update to an existing settings record.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var patch domain.WorkoutSettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "Validation error: "+err.Error())
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), c.Query("user_id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyUpdate):
			abortWithError(c, http.StatusBadRequest, "No update data provided")
		case errors.Is(err, service.ErrSettingsNotFound):
			abortWithError(c, http.StatusNotFound, "Settings not found")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update settings.")
		}
		return
	}
	c.JSON(http.StatusOK, settings)
}

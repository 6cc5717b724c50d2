package api

import (
	"errors"
	"net/http"

	"github.com/abbasalialoc/HIIT/internal/domain"
	"github.com/abbasalialoc/HIIT/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// CreateExerciseRequest defines the expected JSON for creating an exercise.
// isActive defaults to true when omitted.
type CreateExerciseRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	IsActive    *bool  `json:"isActive"`
}

// GetExercises returns every exercise in the library, seeding the defaults
// when the collection is empty.
func (h *ExerciseHandler) GetExercises(c *gin.Context) {
	exercises, err := h.exerciseService.ListExercises(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	c.JSON(http.StatusOK, exercises)
}

// CreateExercise inserts a new exercise from the request body.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "Validation error: "+err.Error())
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), req.Name, req.Description, isActive)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to create exercise.")
		return
	}

	c.JSON(http.StatusOK, exercise)
}

// UpdateExercise applies a partial update to the exercise named by the path.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	var patch domain.ExercisePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.UpdateExercise(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyUpdate):
			abortWithError(c, http.StatusBadRequest, "No update data provided")
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, "Exercise not found")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update exercise.")
		}
		return
	}

	c.JSON(http.StatusOK, exercise)
}

// DeleteExercise removes the exercise named by the path.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	err := h.exerciseService.DeleteExercise(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete exercise.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Exercise deleted successfully"})
}

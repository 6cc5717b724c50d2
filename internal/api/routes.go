package api

import (
	"net/http"

	"github.com/abbasalialoc/HIIT/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// SetupRoutes binds all handlers under the /api prefix and applies the
// permissive CORS policy. CORS here is a deliberate simplification, not a
// security boundary.
func SetupRoutes(
	router *gin.Engine,
	exerciseService service.ExerciseService,
	settingsService service.SettingsService,
	sessionService service.SessionService,
	statusService service.StatusService,
) {
	exerciseHandler := NewExerciseHandler(exerciseService)
	settingsHandler := NewSettingsHandler(settingsService)
	sessionHandler := NewSessionHandler(sessionService)
	statusHandler := NewStatusHandler(statusService)

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
	}))

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Exercise Timer API", "version": apiVersion})
		})

		apiGroup.POST("/status", statusHandler.CreateStatusCheck)
		apiGroup.GET("/status", statusHandler.GetStatusChecks)

		apiGroup.GET("/exercises", exerciseHandler.GetExercises)
		apiGroup.POST("/exercises", exerciseHandler.CreateExercise)
		apiGroup.PUT("/exercises/:id", exerciseHandler.UpdateExercise)
		apiGroup.DELETE("/exercises/:id", exerciseHandler.DeleteExercise)

		apiGroup.GET("/settings", settingsHandler.GetSettings)
		apiGroup.POST("/settings", settingsHandler.UpsertSettings)
		apiGroup.PUT("/settings", settingsHandler.UpdateSettings)

		apiGroup.POST("/sessions", sessionHandler.CreateSession)
		apiGroup.GET("/sessions", sessionHandler.GetSessions)
		apiGroup.PUT("/sessions/:id/complete", sessionHandler.CompleteSession)

		apiGroup.GET("/stats", sessionHandler.GetStats)
	}
}

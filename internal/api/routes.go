package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"betonfit/coach-app/internal/service"
)

// SetupRoutes wires the handlers onto the router. export may be nil when no
// bucket is configured.
func SetupRoutes(
	router *gin.Engine,
	apiKey string,
	plannerService service.PlannerService,
	exportService service.ExportService,
	shareService service.ShareService,
) {
	intakeHandler := NewIntakeHandler(plannerService)
	programmeHandler := NewProgrammeHandler(plannerService, exportService, shareService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")

	// Share links carry their own signature; no API key needed.
	apiV1.GET("/shared/:token", programmeHandler.GetShared)

	protected := apiV1.Group("")
	protected.Use(APIKeyMiddleware(apiKey))
	{
		intakeGroup := protected.Group("/intake")
		{
			intakeGroup.PUT("/:email", intakeHandler.UpsertIntake)
			intakeGroup.GET("/:email", intakeHandler.GetIntake)
		}

		// Latest-per-user lives under /users to keep the :id wildcard
		// unambiguous for the router.
		protected.GET("/users/:email/programmes/latest", programmeHandler.GetLatest)

		programmeGroup := protected.Group("/programmes")
		{
			programmeGroup.POST("/generate", programmeHandler.Generate)
			programmeGroup.POST("/:id/export", programmeHandler.Export)
			programmeGroup.POST("/:id/share", programmeHandler.Share)
		}
	}
}

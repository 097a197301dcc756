package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymtrack/core/internal/auth"
	"gymtrack/core/internal/service"
)

// Version of the service, reported by /api/version.
const Version = "1.0.0"

// SetupRoutes wires every handler onto the router. The health check and the
// version endpoint stay outside the auth middleware; everything under /api
// requires a verified bearer token.
func SetupRoutes(
	router *gin.Engine,
	verifier auth.TokenVerifier,
	corsOrigin string,
	planService service.PlanService,
	exerciseService service.ExerciseService,
	resultService service.ExerciseResultService,
	profileService service.UserProfileService,
) {
	planHandler := NewWeekPlanHandler(planService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	resultHandler := NewExerciseResultHandler(resultService)
	profileHandler := NewUserProfileHandler(profileService)

	router.Use(CORSMiddleware(corsOrigin))

	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/api/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": Version})
	})

	protected := router.Group("/api")
	protected.Use(AuthMiddleware(verifier))
	{
		protected.GET("", func(c *gin.Context) {
			user, ok := mustIdentity(c)
			if !ok {
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Hello, " + user.Name + "!"})
		})

		weekPlanGroup := protected.Group("/week_plans")
		{
			weekPlanGroup.POST("", planHandler.GeneratePlan)
			weekPlanGroup.GET("", planHandler.ListPlans)
			weekPlanGroup.GET("/latest", planHandler.LatestPlan)
			weekPlanGroup.PATCH("/:id", planHandler.CompletePlan)
		}

		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.PUT("/:id", exerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
			exerciseGroup.POST("/:id/video_upload_url", exerciseHandler.VideoUploadURL)
			exerciseGroup.GET("/:id/video_url", exerciseHandler.VideoURL)
		}

		resultGroup := protected.Group("/exercise_results")
		{
			resultGroup.POST("", resultHandler.CreateResult)
			resultGroup.GET("", resultHandler.ListResults)
			resultGroup.GET("/:id", resultHandler.GetResult)
			resultGroup.PATCH("/:id", resultHandler.UpdateResult)
			resultGroup.DELETE("/:id", resultHandler.DeleteResult)
		}

		profileGroup := protected.Group("/user_profile")
		{
			profileGroup.GET("", profileHandler.GetProfile)
			profileGroup.POST("", profileHandler.CreateProfile)
			profileGroup.PATCH("", profileHandler.UpdateProfile)
			profileGroup.DELETE("", profileHandler.DeleteProfile)
		}
	}
}

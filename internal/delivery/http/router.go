package http

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/horsesharing/backend/internal/config"
	"github.com/horsesharing/backend/internal/delivery/http/handler"
	"github.com/horsesharing/backend/internal/delivery/http/middleware"
)

// Dutch postcode: four digits not starting with zero, optional space, two
// letters.
var postcodePattern = regexp.MustCompile(`^[1-9][0-9]{3}\s?[A-Za-z]{2}$`)

type Router struct {
	storage        config.StorageConfig
	authHandler    *handler.AuthHandler
	riderHandler   *handler.RiderHandler
	ownerHandler   *handler.OwnerHandler
	horseHandler   *handler.HorseHandler
	matchHandler   *handler.MatchHandler
	mediaHandler   *handler.MediaHandler
	authMiddleware *middleware.AuthMiddleware
}

func NewRouter(
	storage config.StorageConfig,
	authHandler *handler.AuthHandler,
	riderHandler *handler.RiderHandler,
	ownerHandler *handler.OwnerHandler,
	horseHandler *handler.HorseHandler,
	matchHandler *handler.MatchHandler,
	mediaHandler *handler.MediaHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		storage:        storage,
		authHandler:    authHandler,
		riderHandler:   riderHandler,
		ownerHandler:   ownerHandler,
		horseHandler:   horseHandler,
		matchHandler:   matchHandler,
		mediaHandler:   mediaHandler,
		authMiddleware: authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	registerValidators()

	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// Uploaded media is served straight from disk
	router.Static(r.storage.URLPrefix, r.storage.Path)

	// API v1
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Auth & onboarding routes
			auth := protected.Group("/auth")
			{
				auth.GET("/me", r.authHandler.Me)
				auth.POST("/set-profile-type", r.authHandler.SetProfileType)
				auth.POST("/complete-onboarding", r.authHandler.CompleteOnboarding)
				auth.POST("/reset-profile", r.authHandler.ResetProfile)
			}

			// Rider profile routes
			protected.GET("/rider-profile", r.riderHandler.Get)
			protected.POST("/rider-profile", r.riderHandler.Save)

			// Owner profile routes
			protected.GET("/owner-profile", r.ownerHandler.Get)
			protected.POST("/owner-profile", r.ownerHandler.Save)

			// Horse ad routes
			horses := protected.Group("/horses")
			{
				horses.GET("", r.horseHandler.List)
				horses.POST("", r.horseHandler.Save)
				horses.PUT("/:id", r.horseHandler.Update)
			}

			// Match routes
			matches := protected.Group("/matches")
			{
				matches.GET("", r.matchHandler.List)
				matches.PUT("/:id/status", r.matchHandler.SetStatus)
			}

			// Media routes
			protected.POST("/media/photos", r.mediaHandler.UploadPhotos)
		}
	}

	return router
}

func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("nl_postcode", func(fl validator.FieldLevel) bool {
		return postcodePattern.MatchString(fl.Field().String())
	})
}

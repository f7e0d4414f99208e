// Package server assembles the HTTP router from the configured stores.
package server

import (
	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"youact-backend/internal/config"
	"youact-backend/internal/database"
	"youact-backend/internal/handlers"
	"youact-backend/internal/middleware"
	"youact-backend/internal/services"
)

type Deps struct {
	Config *config.Config
	Store  database.Store
	// Images is nil when storage is not configured; uploads then answer 503.
	Images      services.ImageStore
	RateLimiter *middleware.RateLimiter
	Logger      *log.Logger
}

func NewRouter(deps Deps) *gin.Engine {
	cfg := deps.Config
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	projectService := services.NewProjectService(deps.Store, deps.Images, deps.Logger)
	annotationService := services.NewAnnotationService(deps.Store, deps.Logger)
	imageService := services.NewImageService(deps.Store, deps.Images, cfg.MaxImageBytes, deps.Logger)

	projectsHandler := handlers.NewProjectsHandler(projectService)
	annotationsHandler := handlers.NewAnnotationsHandler(annotationService)
	imagesHandler := handlers.NewImagesHandler(imageService)
	healthHandler := handlers.NewHealthHandler(deps.Store, deps.Images != nil)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", healthHandler.Check)

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))
	if deps.RateLimiter != nil {
		api.Use(deps.RateLimiter.Middleware())
	}

	// Projects
	api.POST("/projects", projectsHandler.CreateProject)
	api.GET("/projects", projectsHandler.ListProjects)
	api.GET("/projects/:project_id", projectsHandler.GetProject)
	api.PUT("/projects/:project_id", projectsHandler.UpdateProject)
	api.DELETE("/projects/:project_id", projectsHandler.DeleteProject)

	// Project timeline
	api.GET("/projects/:project_id/annotations", annotationsHandler.ListAnnotations)
	api.GET("/projects/:project_id/timeline", annotationsHandler.GetTimeline)
	api.POST("/projects/:project_id/images", imagesHandler.UploadImage)

	// Annotations
	api.POST("/annotations", annotationsHandler.CreateAnnotation)
	api.PUT("/annotations/:id", annotationsHandler.UpdateAnnotation)
	api.DELETE("/annotations/:id", annotationsHandler.DeleteAnnotation)

	return router
}

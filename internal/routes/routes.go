package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "jobtracker_backend/docs" // registers the swagger spec
	"jobtracker_backend/internal/handlers"
)

// Options toggles the optional routes.
type Options struct {
	Swagger bool
}

// RegisterRoutes mounts every HTTP route on ginRouter.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	opts Options,
	log *slog.Logger,
) {
	appHandlers.HealthHandler.RegisterRoutes(ginRouter)
	appHandlers.UserHandler.RegisterRoutes(ginRouter)
	appHandlers.ApplicationHandler.RegisterRoutes(ginRouter)

	if opts.Swagger {
		ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		log.Info("Swagger UI registered", "path", "/swagger/index.html")
	}
}

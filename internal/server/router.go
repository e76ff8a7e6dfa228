package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/robokit/robokit-backend/internal/handlers"
	"github.com/robokit/robokit-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler       *handlers.AuthHandler
	AuthMiddleware    *middleware.AuthMiddleware
	ComponentsHandler *handlers.ComponentsHandler
	ConfigHandler     *handlers.ConfigHandler
	HistoryHandler    *handlers.HistoryHandler
	BenchmarkHandler  *handlers.BenchmarkHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	r.GET("/healthcheck", handlers.HealthCheck)

	api := r.Group("/api")
	{
		if cfg.AuthHandler != nil {
			api.POST("/auth/register", cfg.AuthHandler.Register)
			api.POST("/auth/login", cfg.AuthHandler.Login)
		}
		if cfg.ComponentsHandler != nil {
			api.GET("/components", cfg.ComponentsHandler.List)
		}
		if cfg.BenchmarkHandler != nil {
			api.POST("/benchmark/run", cfg.BenchmarkHandler.Run)
		}

		// config works anonymously; a valid token just attributes history
		if cfg.ConfigHandler != nil {
			configGroup := api.Group("/")
			if cfg.AuthMiddleware != nil {
				configGroup.Use(cfg.AuthMiddleware.OptionalAuth())
			}
			configGroup.POST("/config", cfg.ConfigHandler.Generate)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}
		if cfg.HistoryHandler != nil {
			protected.GET("/history/list", cfg.HistoryHandler.List)
			protected.DELETE("/history/clear", cfg.HistoryHandler.Clear)
		}
	}

	return r
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	redisclient "github.com/robokit/robokit-backend/internal/clients/redis"
	"github.com/robokit/robokit-backend/internal/db"
	"github.com/robokit/robokit-backend/internal/handlers"
	"github.com/robokit/robokit-backend/internal/logger"
	"github.com/robokit/robokit-backend/internal/middleware"
	"github.com/robokit/robokit-backend/internal/repos"
	"github.com/robokit/robokit-backend/internal/server"
	"github.com/robokit/robokit-backend/internal/services"
	"github.com/robokit/robokit-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 86400, log)
	catalogSeedPath := utils.GetEnv("CATALOG_SEED_PATH", "", log)

	// Database
	dbService, err := db.NewService(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err = dbService.AutoMigrateAll(); err != nil {
		log.Error("Database auto migration failed", "error", err)
		os.Exit(1)
	}
	theDB := dbService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	partRepo := repos.NewPartRepo(theDB, log)
	userRepo := repos.NewUserRepo(theDB, log)
	userTokenRepo := repos.NewUserTokenRepo(theDB, log)
	historyRepo := repos.NewHistoryRepo(theDB, log)

	// Redis catalog cache (optional)
	catalogCache, err := redisclient.NewCatalogCache(log)
	if err != nil {
		log.Warn("Catalog cache disabled", "error", err)
		catalogCache = nil
	}

	// Services
	log.Info("Setting up services from main...")
	catalogService := services.NewCatalogService(theDB, log, partRepo, catalogCache)
	authService := services.NewAuthService(theDB, log, userRepo, userTokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second)
	configService := services.NewConfigService(theDB, log, catalogService, historyRepo)
	historyService := services.NewHistoryService(theDB, log, historyRepo)
	benchmarkService := services.NewBenchmarkService(log, catalogService)

	// Catalog seed
	if catalogSeedPath != "" {
		if seeded, sErr := catalogService.SeedFromFile(context.Background(), catalogSeedPath); sErr != nil {
			log.Warn("Catalog seeding failed", "error", sErr)
		} else if seeded > 0 {
			log.Info("Catalog seeding complete", "parts", seeded)
		}
	}

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	componentsHandler := handlers.NewComponentsHandler(catalogService)
	configHandler := handlers.NewConfigHandler(configService)
	historyHandler := handlers.NewHistoryHandler(historyService)
	benchmarkHandler := handlers.NewBenchmarkHandler(benchmarkService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	srv := server.NewServer(server.RouterConfig{
		AuthHandler:       authHandler,
		AuthMiddleware:    authMiddleware,
		ComponentsHandler: componentsHandler,
		ConfigHandler:     configHandler,
		HistoryHandler:    historyHandler,
		BenchmarkHandler:  benchmarkHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := srv.Run(":" + port); err != nil {
		log.Warn("Server failed", "error", err)
	}
}

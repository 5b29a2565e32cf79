package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/skillswap/backend/internal/handlers"
	"github.com/skillswap/backend/internal/meeting"
	"github.com/skillswap/backend/internal/middleware"
	"github.com/skillswap/backend/internal/models"
	"github.com/skillswap/backend/internal/repositories"
	"github.com/skillswap/backend/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client, linkProvider meeting.LinkProvider) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.SwapRequest{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	profileRepo := repositories.NewMongoProfileRepository(mgClient.Database("skillswap"))
	swapRepo := repositories.NewPostgresSwapRepository(pgdb)

	// --- Services ---
	swapService := services.NewSwapService(swapRepo, profileRepo, linkProvider)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// User account routes
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterUserRoutes(api)
	log.Println("User routes configured.")

	// Skill profile routes
	profileHandler := handlers.NewProfileHandler(profileRepo)
	profileHandler.RegisterProfileRoutes(api)
	log.Println("Skill profile routes configured.")

	// Match routes
	matchHandler := handlers.NewMatchHandler(profileRepo)
	matchHandler.RegisterMatchRoutes(api)
	log.Println("Match routes configured.")

	// Swap request routes
	swapHandler := handlers.NewSwapHandler(swapService)
	swapHandler.RegisterSwapRoutes(api)
	log.Println("Swap routes configured.")

	log.Println("All routes configured.")
}

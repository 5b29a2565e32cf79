package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/skillswap/backend/internal/meeting"
	"github.com/skillswap/backend/internal/router"
	"github.com/skillswap/backend/pkg/config"
	"github.com/skillswap/backend/pkg/firebase"
	"github.com/skillswap/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Initialize Firebase
	ctx := context.Background()
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	// Meeting link provider: Google Calendar when credentials are configured,
	// local fallback links otherwise
	var linkProvider meeting.LinkProvider
	if cfg.GoogleCredentialsPath != "" {
		linkProvider, err = meeting.NewGoogleCalendarProvider(ctx, cfg.GoogleCredentialsPath, cfg.GoogleCalendarID, 10*time.Second)
		if err != nil {
			log.Fatalf("Failed to initialize Google Calendar provider: %v", err)
		}
		log.Println("Google Calendar meeting link provider configured.")
	} else {
		linkProvider = meeting.NewFallbackProvider()
		log.Println("No Google credentials configured, using fallback meeting links.")
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, db.Mongo, firebaseApp.AuthClient, linkProvider)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/keapril/WebInventory/app"
	"github.com/keapril/WebInventory/config"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	if os.Getenv("ENV") != "production" {
		if err := godotenv.Overload(".env"); err != nil {
			log.Printf("Warning: .env file not found, using system environment variables")
		} else {
			log.Printf("Loaded environment variables from .env (overriding system variables)")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Initialize application
	cleanup, err := app.Initialize(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	// Listen on 0.0.0.0 to accept connections from all interfaces
	addr := "0.0.0.0:" + cfg.Port
	log.Printf("Server starting on %s", addr)

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

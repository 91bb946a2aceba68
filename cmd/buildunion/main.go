package main

import (
	"log"
	"os"

	"buildunion/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	log.SetOutput(os.Stderr)

	service, err := app.New()
	if err != nil {
		log.Fatalf("Failed to initialize service: %v", err)
	}

	if err := service.Run(); err != nil {
		log.Fatalf("Service error: %v", err)
	}
}

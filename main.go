package main

import (
	"log"
	"os"

	"buildunion/internal/app"

	"github.com/joho/godotenv"
)

const (
	envFilePath    = ".env"
	logOutputFlags = log.LstdFlags | log.Lshortfile
)

func main() {
	if err := godotenv.Load(envFilePath); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(logOutputFlags)

	service, err := app.New()
	if err != nil {
		log.Fatalf("Failed to initialize service: %v", err)
	}

	if err := service.Run(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}

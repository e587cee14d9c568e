package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}
}

// Config returns the named environment variable. Values from a local .env
// file are loaded once at startup, so later lookups always hit the process
// environment directly.
func Config(key string) string {
	return os.Getenv(key)
}

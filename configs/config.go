package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Warning: .env file not found, reading from system environment variables")
		}
	})

	return os.Getenv(key)
}

func ConfigOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}

// JWTSecret is shared by the login handler and the auth middleware so both
// sides always sign and verify with the same key.
func JWTSecret() string {
	return ConfigOr("JWT_SECRET", "driving-school-dev-secret")
}

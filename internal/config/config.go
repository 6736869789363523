package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	JWTSecret   string
	ServerPort  string
	AccessTTL   time.Duration
	RefreshTTL  time.Duration
}

// Load reads configuration from the environment, with .env as a fallback
// for local development.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, relying on environment")
	}

	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", "gymbook.db"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		ServerPort:  getEnv("PORT", "8080"),
		AccessTTL:   getDuration("ACCESS_TOKEN_TTL", time.Hour),
		RefreshTTL:  getDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %s", key, v, def)
		return def
	}
	return d
}

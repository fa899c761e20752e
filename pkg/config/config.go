package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port             string
	Environment      string
	MongoURI         string
	MongoDB          string
	RedisAddr        string
	RedisPassword    string
	RateLimitEnabled bool
}

func Load() *Config {
	// Missing .env is fine: plain environment variables still apply.
	_ = godotenv.Load()

	return &Config{
		Port:             getenv("PORT", "8080"),
		Environment:      getenv("APP_ENV", "development"),
		MongoURI:         getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:          getenv("MONGO_DB", "dorset_todo"),
		RedisAddr:        getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getenv("REDIS_PASSWORD", ""),
		RateLimitEnabled: getenv("RATE_LIMIT_ENABLED", "true") == "true",
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

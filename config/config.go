package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all environment variables for the storefront backend.
type Config struct {
	Port string
	Env  string

	// Postgres (users, refresh tokens, orders)
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	// Mongo (product/category catalog)
	MongoURI string
	MongoDB  string

	// Redis (client-state region backend)
	RedisURL string

	// Client-state region: "redis" or "file"
	StateBackend string
	StateDir     string
	StateTTL     time.Duration

	// Kafka checkout events
	KafkaBrokers string
	KafkaTopic   string

	// Auth
	JWTSecret string

	// Gemini
	GeminiAPIKey string
	GeminiModel  string

	// Chat rate limiting (fixed window)
	ChatRateLimit  int
	ChatRateWindow time.Duration
}

// Load reads configuration from the environment, falling back to
// defaults for everything except required secrets.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("APP_ENV", "development"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       getEnv("POSTGRES_DB", "techmart"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:          getEnv("MONGO_DB", "techmart"),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379"),
		StateBackend:     getEnv("STATE_BACKEND", "redis"),
		StateDir:         getEnv("STATE_DIR", "./data/state"),
		StateTTL:         time.Hour * 24 * 30,
		KafkaBrokers:     getEnv("KAFKA_BROKERS", "localhost:9092"),
		KafkaTopic:       getEnv("KAFKA_TOPIC", "checkout.requested"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		ChatRateLimit:    getEnvInt("CHAT_RATE_LIMIT", 20),
		ChatRateWindow:   time.Minute,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set, AI chat will return fallback responses")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

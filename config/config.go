package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Auth       AuthConfig
	Submission SubmissionConfig
	RateLimit  RateLimitConfig
	App        AppConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins string
}

type DatabaseConfig struct {
	DSN      string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Addr string
}

type AuthConfig struct {
	AdminAPIKey             string
	FirebaseCredentialsPath string
}

// SubmissionPolicy selects what happens when a second submission arrives
// for an email that already has a stored application.
type SubmissionPolicy string

const (
	// PolicyUpsert keeps one record per email; later submissions replace
	// earlier ones.
	PolicyUpsert SubmissionPolicy = "upsert"
	// PolicyInsert always creates a new record; duplicate emails are logged,
	// never rejected.
	PolicyInsert SubmissionPolicy = "insert"
)

type SubmissionConfig struct {
	Policy             SubmissionPolicy
	ExperienceMinChars int
}

type RateLimitConfig struct {
	Limit     int
	Window    time.Duration
	GlobalRPS float64
}

type AppConfig struct {
	Environment string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			DSN:      getEnv("DB_DSN", ""),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns: getEnvAsInt("DB_MIN_CONNS", 2),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", ""),
		},
		Auth: AuthConfig{
			AdminAPIKey:             getEnv("ADMIN_API_KEY", ""),
			FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		},
		Submission: SubmissionConfig{
			Policy:             SubmissionPolicy(getEnv("SUBMISSION_POLICY", string(PolicyUpsert))),
			ExperienceMinChars: getEnvAsInt("EXPERIENCE_MIN_CHARS", 50),
		},
		RateLimit: RateLimitConfig{
			Limit:     getEnvAsInt("RATE_LIMIT", 5),
			Window:    getEnvAsDuration("RATE_WINDOW", time.Minute),
			GlobalRPS: getEnvAsFloat("GLOBAL_RPS", 50),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Database.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}

	switch c.Submission.Policy {
	case PolicyUpsert, PolicyInsert:
	default:
		return fmt.Errorf("SUBMISSION_POLICY must be %q or %q, got %q", PolicyUpsert, PolicyInsert, c.Submission.Policy)
	}

	if c.Submission.ExperienceMinChars <= 0 {
		return fmt.Errorf("EXPERIENCE_MIN_CHARS must be positive")
	}

	if c.RateLimit.Limit <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT and RATE_WINDOW must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Port        string
	DatabaseURL string
	RedisURL    string
	FrontendURL string

	// Session tokens
	JWTSecret string
	JWTTTL    time.Duration

	// Google OAuth
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	GoogleUserInfoURL  string

	// Resume parser subprocess
	ParserRuntime string
	ParserArgs    []string
	ParserScript  string
	ParserDir     string
	ParserTimeout time.Duration

	// File storage
	UploadBaseDir string

	// Security settings
	RateLimitPerMinute int
	RateLimitInterval  time.Duration
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTTTL:    getEnvAsDuration("JWT_TTL", 24*time.Hour),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		GoogleUserInfoURL:  getEnv("GOOGLE_USERINFO_URL", "https://www.googleapis.com/oauth2/v3/userinfo"),

		ParserRuntime: getEnv("RESUME_PARSER_RUNTIME", "npx"),
		ParserArgs:    []string{"tsx"},
		ParserScript:  getEnv("RESUME_PARSER_SCRIPT", "parse-resume.ts"),
		ParserDir:     getEnv("RESUME_PARSER_DIR", "open_resume"),
		ParserTimeout: getEnvAsDuration("RESUME_PARSER_TIMEOUT", 30*time.Second),

		UploadBaseDir: getEnv("UPLOAD_BASE_DIR", "uploads"),

		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 100),
		RateLimitInterval:  getEnvAsDuration("RATE_LIMIT_INTERVAL", time.Minute),
	}

	if cfg.JWTSecret == "" && cfg.Environment == "production" {
		log.Fatal("JWT_SECRET must be set in production")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost     string
	ServerPort     string
	AllowedOrigins []string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Ollama generate endpoint
	OllamaURL   string
	OllamaModel string

	// Social OAuth credentials
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
	NaverClientID      string
	NaverClientSecret  string
	NaverRedirectURI   string
	KakaoClientID      string
	KakaoClientSecret  string
	KakaoRedirectURI   string
}

// LoadConfig builds a Config from environment variables. Secrets may instead
// be mounted as Docker secret files; the *_FILE-less fallback reads them from
// SECRETS_DIR when the plain variable is unset.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerHost:     getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ","),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getSecret("DB_PASSWORD", "db_password"),
		DBName:     getEnv("DB_NAME", "pantrychef"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getSecret("REDIS_PASSWORD", "redis_password"),
		RedisURL:      getEnv("REDIS_URL", ""),

		JWTSecret: getSecret("JWT_SECRET", "jwt_secret"),

		OllamaURL:   getEnv("OLLAMA_URL", "http://localhost:11434/api/generate"),
		OllamaModel: getEnv("OLLAMA_MODEL", "llama3.1"),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getSecret("GOOGLE_CLIENT_SECRET", "google_client_secret"),
		GoogleRedirectURI:  getEnv("GOOGLE_REDIRECT_URI", ""),
		NaverClientID:      getEnv("NAVER_CLIENT_ID", ""),
		NaverClientSecret:  getSecret("NAVER_CLIENT_SECRET", "naver_client_secret"),
		NaverRedirectURI:   getEnv("NAVER_REDIRECT_URI", ""),
		KakaoClientID:      getEnv("KAKAO_CLIENT_ID", ""),
		KakaoClientSecret:  getSecret("KAKAO_CLIENT_SECRET", "kakao_client_secret"),
		KakaoRedirectURI:   getEnv("KAKAO_REDIRECT_URI", ""),
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cfg.RedisDB = redisDB

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getSecret prefers the environment variable, then a Docker secret file.
func getSecret(envKey, secretName string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, secretName)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

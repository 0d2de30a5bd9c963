package config

import (
	"fmt"
	"os"
)

// Config holds application configuration
type Config struct {
	Port          string
	DBConn        string
	LogLevel      string
	JWTSecret     string
	MindicadorURL string
	CMFURL        string
	CMFAPIKey     string
	RedisAddr     string
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SenderEmail   string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DBConn:        getEnv("DB_CONN", "host=localhost port=5432 user=finapp password=finapp dbname=finapp sslmode=disable"),
		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		MindicadorURL: getEnv("MINDICADOR_URL", "https://mindicador.cl/api/uf"),
		CMFURL:        getEnv("CMF_URL", "https://api.cmfchile.cl/api-sbifv3/recursos_api/uf"),
		CMFAPIKey:     getEnv("CMF_API_KEY", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		SMTPHost:      getEnv("SMTP_HOST", "localhost"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USER", ""),
		SMTPPassword:  getEnv("SMTP_PASS", ""),
		SenderEmail:   getEnv("SENDER_EMAIL", "no-reply@finapp.cl"),
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.MindicadorURL == "" {
		return nil, fmt.Errorf("MINDICADOR_URL is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

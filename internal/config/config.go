package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string
	Port      int

	// MaxConns caps concurrent connections on the listener.
	MaxConns int

	// Artificial "thinking" pause before the assistant answers, for UX pacing.
	// The engine itself never sleeps.
	ThinkingDelayMinMs int
	ThinkingDelayMaxMs int
}

func Load() *Config {
	return &Config{
		DBHost:     envStr("DB_HOST", "localhost"),
		DBPort:     envInt("DB_PORT", 5432),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		JWTSecret: envStr("JWT_SECRET", "dev-secret-change-me"),
		Port:      envInt("PORT", 8080),
		MaxConns:  envInt("MAX_CONNS", 256),

		ThinkingDelayMinMs: envInt("THINKING_DELAY_MIN_MS", 350),
		ThinkingDelayMaxMs: envInt("THINKING_DELAY_MAX_MS", 1100),
	}
}

func (c *Config) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

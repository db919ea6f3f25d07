package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr              string
	DatabaseURL       string
	Environment       string
	RunMigrations     bool
	MaxBodyBytes      int64
	MetricsEnabled    bool
	DefaultCurrency   string
	OnshoreOTDivisor  float64
	OffshoreOTDivisor float64
	StandbyPayFactor  float64
}

func Load() Config {
	// Local development keeps settings in a .env file; absence is fine.
	_ = godotenv.Load()

	return Config{
		Addr:              getEnv("APP_ADDR", ":8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		Environment:       getEnv("APP_ENV", "development"),
		RunMigrations:     getEnvBool("RUN_MIGRATIONS", true),
		MaxBodyBytes:      int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		MetricsEnabled:    getEnvBool("METRICS_ENABLED", true),
		DefaultCurrency:   getEnv("DEFAULT_CURRENCY", "USD"),
		OnshoreOTDivisor:  getEnvFloat("ONSHORE_OT_DIVISOR", 8),
		OffshoreOTDivisor: getEnvFloat("OFFSHORE_OT_DIVISOR", 14),
		StandbyPayFactor:  getEnvFloat("STANDBY_PAY_FACTOR", 0.5),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.OnshoreOTDivisor <= 0 || c.OffshoreOTDivisor <= 0 {
		return fmt.Errorf("OT divisors must be positive")
	}
	if c.StandbyPayFactor < 0 || c.StandbyPayFactor > 1 {
		return fmt.Errorf("STANDBY_PAY_FACTOR must be between 0 and 1")
	}
	return nil
}

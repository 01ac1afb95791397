package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sjperalta/fintera-amortization/internal/accounting"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	DatabaseURL   string
	RunMigrations bool

	// Background Workers
	WorkerCount int

	// CORS
	AllowedOrigins []string

	// Rate limiting
	RateLimitRPS   float64
	RateLimitBurst int

	// Sentry
	SentryDSN string

	// Accounting
	ResidualThreshold  decimal.Decimal
	LapsedScheduleMode accounting.LapsedMode
	BookingDay         int
	AllowOverpay       bool
	DefaultCurrency    string

	// Reports
	ReportCacheTTL time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		RunMigrations:   getEnvAsBool("RUN_MIGRATIONS", true),
		WorkerCount:     getEnvAsInt("WORKER_COUNT", 5),
		AllowedOrigins:  getEnvAsSlice("ALLOWED_ORIGINS", []string{"*"}),
		RateLimitRPS:    getEnvAsFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst:  getEnvAsInt("RATE_LIMIT_BURST", 40),
		SentryDSN:       getEnv("SENTRY_DSN", ""),
		BookingDay:      getEnvAsInt("BOOKING_DAY", accounting.DefaultBookingDay),
		AllowOverpay:    getEnvAsBool("ALLOW_OVERPAY", false),
		DefaultCurrency: strings.ToUpper(getEnv("DEFAULT_CURRENCY", "HNL")),
		ReportCacheTTL:  getEnvAsDuration("REPORT_CACHE_TTL", 5*time.Minute),
	}

	// Validate required configuration
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	threshold, err := decimal.NewFromString(getEnv("RESIDUAL_THRESHOLD", "100"))
	if err != nil || !threshold.IsPositive() {
		return nil, fmt.Errorf("RESIDUAL_THRESHOLD must be a positive decimal")
	}
	cfg.ResidualThreshold = threshold

	mode, err := accounting.ParseLapsedMode(getEnv("LAPSED_SCHEDULE_MODE", string(accounting.LapsedModePerMonth)))
	if err != nil {
		return nil, fmt.Errorf("LAPSED_SCHEDULE_MODE: %w", err)
	}
	cfg.LapsedScheduleMode = mode

	if cfg.BookingDay < 1 || cfg.BookingDay > 31 {
		return nil, fmt.Errorf("BOOKING_DAY must be between 1 and 31")
	}
	if cfg.ReportCacheTTL <= 0 {
		return nil, fmt.Errorf("REPORT_CACHE_TTL must be positive")
	}

	return cfg, nil
}

// IsProduction reports whether ENVIRONMENT is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as integer
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsSlice reads an environment variable as comma-separated slice
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

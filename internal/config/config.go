package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	CORS     CORSConfig
	Payroll  PayrollConfig
	Invoice  InvoiceConfig
}

type DatabaseConfig struct {
	Host          string
	Port          int
	User          string
	Password      string
	Name          string
	SSLMode       string
	MaxConns      int32
	MinConns      int32
	RunMigrations bool
}

// JWTConfig holds the secret shared with the identity provider. Tokens are
// only verified here, never issued.
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Name        string
	Version     string
	Port        int
	Env         string
	LogLevel    string
	StoreDriver string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// PayrollConfig holds the business constants used by the payroll aggregator.
type PayrollConfig struct {
	StandardHours      float64
	OvertimeMultiplier float64
	TaxRate            float64
	MaxConcurrency     int
}

type InvoiceConfig struct {
	AllocationMaxRetries int
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

func Load() (*Config, error) {
	// A missing .env is fine; the environment may already be populated.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := getEnvInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	maxConns, err := getEnvInt("DB_MAX_CONNS", 25)
	if err != nil {
		return nil, err
	}
	minConns, err := getEnvInt("DB_MIN_CONNS", 5)
	if err != nil {
		return nil, err
	}
	runMigrations, err := getEnvBool("DB_RUN_MIGRATIONS", true)
	if err != nil {
		return nil, err
	}

	config.Database = DatabaseConfig{
		Host:          getEnv("DB_HOST", "localhost"),
		Port:          dbPort,
		User:          getEnv("DB_USER", "postgres"),
		Password:      getEnv("DB_PASSWORD", ""),
		Name:          getEnv("DB_NAME", "payroll_core"),
		SSLMode:       getEnv("DB_SSL_MODE", "disable"),
		MaxConns:      int32(maxConns),
		MinConns:      int32(minConns),
		RunMigrations: runMigrations,
	}

	// Application configuration
	appPort, err := getEnvInt("APP_PORT", 8080)
	if err != nil {
		return nil, err
	}

	config.App = AppConfig{
		Name:        getEnv("APP_NAME", "payroll-core"),
		Version:     getEnv("APP_VERSION", "v1.0.0"),
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		StoreDriver: getEnv("STORE_DRIVER", StoreDriverPostgres),
	}

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	origins := getEnvSlice("CORS_ALLOWED_ORIGINS")
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	config.CORS = CORSConfig{AllowedOrigins: origins}

	// Payroll configuration
	standardHours, err := getEnvFloat("PAYROLL_STANDARD_HOURS", 160)
	if err != nil {
		return nil, err
	}
	overtimeMultiplier, err := getEnvFloat("PAYROLL_OVERTIME_MULTIPLIER", 1.5)
	if err != nil {
		return nil, err
	}
	taxRate, err := getEnvFloat("PAYROLL_TAX_RATE", 0.20)
	if err != nil {
		return nil, err
	}
	maxConcurrency, err := getEnvInt("PAYROLL_MAX_CONCURRENCY", 8)
	if err != nil {
		return nil, err
	}

	config.Payroll = PayrollConfig{
		StandardHours:      standardHours,
		OvertimeMultiplier: overtimeMultiplier,
		TaxRate:            taxRate,
		MaxConcurrency:     maxConcurrency,
	}

	// Invoice configuration
	maxRetries, err := getEnvInt("INVOICE_ALLOCATION_MAX_RETRIES", 5)
	if err != nil {
		return nil, err
	}
	config.Invoice = InvoiceConfig{AllocationMaxRetries: maxRetries}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.App.StoreDriver {
	case StoreDriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
		if c.Database.MinConns > c.Database.MaxConns {
			return fmt.Errorf("DB_MIN_CONNS must not exceed DB_MAX_CONNS")
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q", StoreDriverPostgres, StoreDriverMemory)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.StandardHours <= 0 {
		return fmt.Errorf("PAYROLL_STANDARD_HOURS must be positive")
	}
	if c.Payroll.OvertimeMultiplier < 0 {
		return fmt.Errorf("PAYROLL_OVERTIME_MULTIPLIER must not be negative")
	}
	if c.Payroll.TaxRate < 0 || c.Payroll.TaxRate > 1 {
		return fmt.Errorf("PAYROLL_TAX_RATE must be between 0 and 1")
	}
	if c.Payroll.MaxConcurrency < 1 {
		return fmt.Errorf("PAYROLL_MAX_CONCURRENCY must be at least 1")
	}
	if c.Invoice.AllocationMaxRetries < 1 {
		return fmt.Errorf("INVOICE_ALLOCATION_MAX_RETRIES must be at least 1")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

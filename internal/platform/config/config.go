package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// Payroll policy
	PayrollEpoch       time.Time       // anchor date for the biweekly cadence
	HighValueThreshold decimal.Decimal // sales at/above this require review
	HighValueBonus     decimal.Decimal // flat bonus for qualifying sales
	OvertimeMultiplier decimal.Decimal // rate multiplier for approved overtime
	IngestionRateLimit string          // ulule/limiter formatted rate, e.g. "300-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("PAYROLL_EPOCH", "2024-01-01")
	viper.SetDefault("HIGH_VALUE_THRESHOLD", "5000")
	viper.SetDefault("HIGH_VALUE_BONUS_AMOUNT", "100")
	viper.SetDefault("OVERTIME_MULTIPLIER", "1.5")
	viper.SetDefault("INGESTION_RATE_LIMIT", "300-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	epochStr := viper.GetString("PAYROLL_EPOCH")
	epoch, err := time.Parse("2006-01-02", epochStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_EPOCH %q, expected YYYY-MM-DD: %w", epochStr, err)
	}
	cfg.PayrollEpoch = epoch

	threshold, err := decimal.NewFromString(viper.GetString("HIGH_VALUE_THRESHOLD"))
	if err != nil || !threshold.IsPositive() {
		return nil, fmt.Errorf("invalid HIGH_VALUE_THRESHOLD %q: must be a positive decimal", viper.GetString("HIGH_VALUE_THRESHOLD"))
	}
	cfg.HighValueThreshold = threshold

	bonus, err := decimal.NewFromString(viper.GetString("HIGH_VALUE_BONUS_AMOUNT"))
	if err != nil || bonus.IsNegative() {
		return nil, fmt.Errorf("invalid HIGH_VALUE_BONUS_AMOUNT %q: must be a non-negative decimal", viper.GetString("HIGH_VALUE_BONUS_AMOUNT"))
	}
	cfg.HighValueBonus = bonus

	multiplier, err := decimal.NewFromString(viper.GetString("OVERTIME_MULTIPLIER"))
	if err != nil || !multiplier.IsPositive() {
		return nil, fmt.Errorf("invalid OVERTIME_MULTIPLIER %q: must be a positive decimal", viper.GetString("OVERTIME_MULTIPLIER"))
	}
	cfg.OvertimeMultiplier = multiplier

	cfg.IngestionRateLimit = viper.GetString("INGESTION_RATE_LIMIT")

	return cfg, nil
}

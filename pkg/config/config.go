package config

import (
	"os"
	"strconv"

	// Load environment variables from .env files when present.
	_ "github.com/joho/godotenv/autoload"
)

// Config holds the report-generation defaults. Every value can be
// overridden per build call; these are only the fallbacks.
type Config struct {
	Report Report
	Pay    Pay
	Parse  Parse
}

// Report holds presentation defaults for generated reports.
type Report struct {
	Title       string
	Subtitle    string
	BuyUpCredit float64 // credit-hour threshold below which a line is a buy-up
	BucketWidth float64 // distribution bucket width in hours
}

// Pay holds the hourly rate used for buy-up supplemental pay estimates.
type Pay struct {
	RateMinor int64 // minor units (cents) per credit hour
	Currency  string
}

// Parse holds extraction plausibility bounds.
type Parse struct {
	BidPeriodDays int // fallback period length when the header has no date range
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Report: Report{
			Title:       getEnv("REPORT_TITLE", "Bid Line Analysis"),
			Subtitle:    getEnv("REPORT_SUBTITLE", ""),
			BuyUpCredit: getEnvAsFloat("BUYUP_THRESHOLD", 75.0),
			BucketWidth: getEnvAsFloat("BUCKET_WIDTH_HOURS", 5.0),
		},
		Pay: Pay{
			RateMinor: getEnvAsInt64("PAY_RATE_CENTS", 9500),
			Currency:  getEnv("PAY_CURRENCY", "USD"),
		},
		Parse: Parse{
			BidPeriodDays: int(getEnvAsInt64("BID_PERIOD_DAYS", 31)),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

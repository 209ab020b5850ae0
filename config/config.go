// Package config provides environment-backed configuration helpers.
package config

import (
	"os"
	"strconv"
)

// GetEnv retrieves the value of an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvInt retrieves an integer environment variable with a fallback value if
// not set or not parseable
func GetEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// GetEnvFloat retrieves a float environment variable with a fallback value if
// not set or not parseable
func GetEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

// GeminiAPIKey returns the API key for the Gemini reasoning provider.
// Empty means AI paths are disabled and deterministic fallbacks are used.
func GeminiAPIKey() string {
	return GetEnv("GEMINI_API_KEY", "")
}

// GeminiModel returns the model name used for reasoning calls
func GeminiModel() string {
	return GetEnv("GEMINI_MODEL", "gemini-2.0-flash")
}

// ShopRate returns the in-shop labor rate in dollars per hour
func ShopRate() float64 {
	return GetEnvFloat("SHOP_RATE", 125)
}

// SiteRate returns the on-site labor rate in dollars per hour
func SiteRate() float64 {
	return GetEnvFloat("SITE_RATE", 145)
}

// SeededPricesPath returns the path of the optional JSON file of real
// supplier material prices. The file is allowed to be absent; default
// market-average tables cover every profile regardless.
func SeededPricesPath() string {
	return GetEnv("SEEDED_PRICES_PATH", "seeded_prices.json")
}

// AIWordFloor returns the minimum combined word count of description, notes
// and photo observations before the AI cut-list path is attempted
func AIWordFloor() int {
	return GetEnvInt("AI_WORD_FLOOR", 10)
}

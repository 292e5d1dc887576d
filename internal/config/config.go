package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port string
	Env  string
	// ExchangeRate converts the canonical stored price into the secondary
	// display currency. It is an approximation, not a live rate; the same value
	// must be used for both directions of the conversion.
	ExchangeRate float64
}

// DefaultExchangeRate approximates $1 = ₹75.
const DefaultExchangeRate = 75

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by caller) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.ExchangeRate = parseFloat("DISPLAY_EXCHANGE_RATE", DefaultExchangeRate)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			log.Printf("invalid value for %s: %s", key, v)
			return def
		}
		return f
	}
	return def
}

package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DISPLAY_EXCHANGE_RATE", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("port = %q, want 8080", cfg.Port)
	}
	if cfg.ExchangeRate != DefaultExchangeRate {
		t.Fatalf("exchange rate = %v, want %v", cfg.ExchangeRate, DefaultExchangeRate)
	}
}

func TestLoadExchangeRateOverride(t *testing.T) {
	t.Setenv("DISPLAY_EXCHANGE_RATE", "82.5")
	if got := Load().ExchangeRate; got != 82.5 {
		t.Fatalf("exchange rate = %v, want 82.5", got)
	}
}

func TestLoadExchangeRateRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"abc", "-3", "0"} {
		t.Setenv("DISPLAY_EXCHANGE_RATE", bad)
		if got := Load().ExchangeRate; got != DefaultExchangeRate {
			t.Fatalf("exchange rate for %q = %v, want default", bad, got)
		}
	}
}

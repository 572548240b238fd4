package config

import "testing"

func TestValidateForProduction(t *testing.T) {
	base := func() *Config {
		return &Config{
			Environment:        EnvProduction,
			LogLevel:           "info",
			CORSAllowedOrigins: "https://app.example.com",
			DatabaseURL:        "postgres://user:pass@db:5432/beerstock?sslmode=require",
		}
	}

	t.Run("valid production config passes", func(t *testing.T) {
		if err := ValidateForProduction(base()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-production is not validated", func(t *testing.T) {
		cfg := base()
		cfg.Environment = EnvDevelopment
		cfg.CORSAllowedOrigins = "*"
		cfg.LogLevel = "debug"
		if err := ValidateForProduction(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("debug log level rejected", func(t *testing.T) {
		cfg := base()
		cfg.LogLevel = "debug"
		if err := ValidateForProduction(cfg); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("wildcard CORS rejected", func(t *testing.T) {
		cfg := base()
		cfg.CORSAllowedOrigins = "*"
		if err := ValidateForProduction(cfg); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("sslmode=disable rejected", func(t *testing.T) {
		cfg := base()
		cfg.DatabaseURL = "postgres://user:pass@db:5432/beerstock?sslmode=disable"
		if err := ValidateForProduction(cfg); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

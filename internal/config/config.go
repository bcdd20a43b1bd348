package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator"
	"github.com/joho/godotenv"
)

type Config struct {
	StoreID   string `validate:"required"`
	APIKey    string `validate:"required"`
	SecretKey string `validate:"required"`
	// Sandbox selects the UAT host. Defaults to true so a missing variable
	// never points a test store at production.
	Sandbox bool
	// BaseURL, when set, overrides the host chosen by Sandbox.
	BaseURL string `validate:"omitempty,url"`
	AppEnv  string
}

var envNames = map[string]string{
	"StoreID":   "JKOPAY_STORE_ID",
	"APIKey":    "JKOPAY_API_KEY",
	"SecretKey": "JKOPAY_SECRET_KEY",
	"BaseURL":   "JKOPAY_BASE_URL",
}

var validate = validator.New()

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		StoreID:   os.Getenv("JKOPAY_STORE_ID"),
		APIKey:    os.Getenv("JKOPAY_API_KEY"),
		SecretKey: os.Getenv("JKOPAY_SECRET_KEY"),
		Sandbox:   true,
		BaseURL:   os.Getenv("JKOPAY_BASE_URL"),
		AppEnv:    os.Getenv("APP_ENV"),
	}

	if v := os.Getenv("JKOPAY_SANDBOX"); v != "" {
		sandbox, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("JKOPAY_SANDBOX: %w", err)
		}
		cfg.Sandbox = sandbox
	}

	if err := validate.Struct(cfg); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, err
		}
		var bad []string
		for _, fe := range verrs {
			bad = append(bad, envNames[fe.Field()]+" ("+fe.Tag()+")")
		}
		return nil, fmt.Errorf("invalid environment: %s", strings.Join(bad, ", "))
	}

	return cfg, nil
}

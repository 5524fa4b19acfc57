package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Stripe Stripe `validate:"required"`

	// CatalogPath optionally overrides the built-in catalog and zone
	// table with a JSON file.
	CatalogPath string
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Stripe struct {
	// SecretKey may be empty at boot; checkout requests then fail with a
	// configuration error instead of the process refusing to start.
	SecretKey string

	SuccessURL string `validate:"required,url"`
	CancelURL  string `validate:"required,url"`

	Timeout time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigin string `validate:"required"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigin: env("ALLOWED_CORS_ORIGIN", "*"),
		},

		Stripe: Stripe{
			SecretKey:  env("STRIPE_SECRET_KEY", ""),
			SuccessURL: env("SUCCESS_URL", "https://yourreadymagsite.com/success"),
			CancelURL:  env("CANCEL_URL", "https://yourreadymagsite.com/cancel"),
			Timeout:    envDuration("STRIPE_TIMEOUT", 30*time.Second),
		},

		CatalogPath: env("CATALOG_PATH", ""),
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

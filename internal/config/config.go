package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Port string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	DatabaseURL      string // takes precedence over the discrete POSTGRES_* vars

	JWTSecret      string
	AccessTokenTTL time.Duration

	CartTTL time.Duration

	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	MailFrom   string
	AdminEmail string

	GoEnv string
	FEURL string // front-end origin, for CORS
}

func Load() (Config, error) {
	cfg := Config{
		Port: envOr("PORT", "8080"),

		PostgresUser:     envOr("POSTGRES_USER", "postgres"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       envOr("POSTGRES_DB", "tienda"),
		PostgresHost:     envOr("POSTGRES_HOST", "localhost"),
		PostgresPort:     envOr("POSTGRES_PORT", "5432"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		SMTPHost:   os.Getenv("SMTP_HOST"),
		SMTPPort:   envOr("SMTP_PORT", "587"),
		SMTPUser:   os.Getenv("SMTP_USER"),
		SMTPPass:   os.Getenv("SMTP_PASS"),
		MailFrom:   envOr("MAIL_FROM", "no-reply@tresenuno.cl"),
		AdminEmail: os.Getenv("ADMIN_EMAIL"),

		GoEnv: envOr("GO_ENV", "dev"),
		FEURL: envOr("FE_URL", "http://localhost:5173"),
	}

	var err error
	cfg.AccessTokenTTL, err = durationOr("ACCESS_TOKEN_TTL", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}
	cfg.CartTTL, err = durationOr("CART_TTL", 72*time.Hour)
	if err != nil {
		return Config{}, err
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DatabaseURL == "" && cfg.PostgresPassword == "" {
		return Config{}, fmt.Errorf("DATABASE_URL or POSTGRES_PASSWORD is required")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}

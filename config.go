package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const devJWTSecret = "dev_secret_key_change_me"

// Config holds every environment-driven setting of the server.
type Config struct {
	Production     bool
	Port           string        `validate:"required,numeric"`
	JWTSecret      string        `validate:"required,min=16"`
	TokenTTL       time.Duration `validate:"gt=0"`
	DatabaseFile   string        `validate:"required"`
	WordsDir       string        `validate:"required"`
	SessionDir     string        `validate:"required"`
	SessionTimeout time.Duration `validate:"gt=0"`
	CookieMaxAge   time.Duration `validate:"gt=0"`
	RateLimitRPS   int           `validate:"min=1"`
	RateLimitBurst int           `validate:"min=1"`
}

var validate = validator.New()

// isProductionEnv reports whether GIN_MODE or ENV ask for production mode.
func isProductionEnv() bool {
	return os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production"
}

// loadConfig reads the environment (after .env has been loaded) and
// validates the result.
func loadConfig() (Config, error) {
	cfg := Config{
		Production:     isProductionEnv(),
		Port:           getEnv("PORT", "4000"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenTTL:       getEnvDuration("TOKEN_TTL", 7*24*time.Hour),
		DatabaseFile:   getEnv("DATABASE_FILE", "data/lingvo.sqlite"),
		WordsDir:       getEnv("WORDS_DIR", "data/words"),
		SessionDir:     getEnv("SESSION_DIR", "data/sessions"),
		SessionTimeout: getEnvDuration("SESSION_TIMEOUT", 2*time.Hour),
		CookieMaxAge:   getEnvDuration("COOKIE_MAX_AGE", 2*time.Hour),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
	}
	if cfg.JWTSecret == "" && !cfg.Production {
		logWarn("JWT_SECRET not set, using development secret")
		cfg.JWTSecret = devJWTSecret
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints and reports every violation at once.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("Field: %s, Tag: %s, Param: %s", fe.Field(), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

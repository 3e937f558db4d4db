package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DBDriver      string `env:"DB_DRIVER" envDefault:"mysql"`
	DatabaseDSN   string `env:"DATABASE_DSN"`
	DBAutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`

	SessionSecret string        `env:"SESSION_SECRET"`
	CryptoKey     string        `env:"CRYPTO_KEY"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"2h"`
	SessionStore  string        `env:"SESSION_STORE" envDefault:"memory"`
	CookieSecure  bool          `env:"COOKIE_SECURE" envDefault:"false"`

	QuestionBankPath string `env:"QUESTION_BANK_PATH"`
	Resubmission     string `env:"EXAM_RESUBMISSION" envDefault:"allow"`
	DisplayTimezone  string `env:"DISPLAY_TIMEZONE"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

var Cfg Config

// Load reads an optional .env file and parses the environment into Cfg.
func Load() (Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env config: %w", err)
	}
	switch c.DBDriver {
	case "mysql", "postgres":
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	switch c.SessionStore {
	case "memory", "db":
	default:
		return Config{}, fmt.Errorf("unsupported SESSION_STORE %q", c.SessionStore)
	}
	Cfg = c
	return c, nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	env "github.com/caarlos0/env/v11"
)

const defaultJWTSecret = "change-me"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Environment string `env:"APP_ENV" envDefault:"development"`

	DBDriver string `env:"DB_DRIVER" envDefault:"mysql"`
	DSN      string `env:"DATABASE_DSN" envDefault:"user:password@tcp(localhost:3306)/techshop?charset=utf8mb4&parseTime=True&loc=Local"`
	ResetDB  bool   `env:"RESET_DB" envDefault:"false"`

	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`
	RedisPass string `env:"REDIS_PASSWORD"`

	JWTSecret      string        `env:"JWT_SECRET" envDefault:"change-me"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"30m"`

	LoginMaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS" envDefault:"5"`
	LoginWindow      time.Duration `env:"LOGIN_WINDOW" envDefault:"15m"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	RabbitURL      string `env:"RABBIT_URL"`
	EventsExchange string `env:"EVENTS_EXCHANGE" envDefault:"techshop.events"`

	SeedPolicy  string `env:"SEED_POLICY" envDefault:"reset"`
	SwaggerHost string `env:"SWAGGER_HOST"`
}

// Load builds Config from environment with sensible defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q: use mysql or postgres", c.DBDriver)
	}
	switch c.SeedPolicy {
	case "reset", "skip":
	default:
		return fmt.Errorf("unsupported SEED_POLICY %q: use reset or skip", c.SeedPolicy)
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_TTL must be positive")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is empty")
	}
	if c.JWTSecret == defaultJWTSecret && c.Environment == "production" {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	return nil
}

// CORSOrigins expands ALLOWED_ORIGINS so that each origin matches with and without a
// trailing slash. A wildcard anywhere collapses the list to "*".
func (c *Config) CORSOrigins() []string {
	origins := make([]string, 0, len(c.AllowedOrigins)*2)
	for _, o := range c.AllowedOrigins {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if o == "*" {
			return []string{"*"}
		}
		if strings.HasSuffix(o, "/") {
			origins = append(origins, o, strings.TrimSuffix(o, "/"))
		} else {
			origins = append(origins, o, o+"/")
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

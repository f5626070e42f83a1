package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"8080"`

	FacebookClientID     string   `env:"FACEBOOK_CLIENT_ID"`
	FacebookClientSecret string   `env:"FACEBOOK_CLIENT_SECRET"`
	FacebookCallbackURL  string   `env:"FACEBOOK_CALLBACK_URL"`
	FacebookPermissions  []string `env:"FACEBOOK_PERMISSIONS" envDefault:"email"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SecureCookies bool          `env:"SECURE_COOKIES" envDefault:"true"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

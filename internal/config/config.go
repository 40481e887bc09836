package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type (
	Properties struct {
		Port          string `env:"PORT" envDefault:"4000"`
		LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
		AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"*"`

		DB   DBProperties   `envPrefix:""`
		Auth AuthProperties `envPrefix:""`
		S3   S3Properties   `envPrefix:"S3_"`
	}

	DBProperties struct {
		// Connection string is required; startup fails without it.
		URI  string `env:"DB,notEmpty"`
		Name string `env:"DB_NAME" envDefault:"music"`
	}

	AuthProperties struct {
		JWTSecret string        `env:"JWT_SECRET,notEmpty"`
		TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
	}

	S3Properties struct {
		Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
		AccessKey string `env:"ACCESS_KEY"`
		SecretKey string `env:"SECRET_KEY"`
		Bucket    string `env:"BUCKET" envDefault:"songs"`
		UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
	}
)

func Read() (*Properties, error) {
	props := &Properties{}
	if err := env.Parse(props); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return props, nil
}

package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// Signing secrets are required: a process without them must die at
	// startup, never discover the gap on the first request.
	JWTAccessSecret  string `env:"JWT_ACCESS_SECRET,  required"`
	JWTRefreshSecret string `env:"JWT_REFRESH_SECRET, required"`

	DB DBConfig

	// SeedDemo creates the demo admin/user accounts on an empty database.
	SeedDemo bool `env:"SEED_DEMO, default=false"`
}

type DBConfig struct {
	Path string `env:"SQLITE_PATH, required"`
}

// Load reads configuration from environment variables using go-envconfig.
// A missing required variable is a fatal configuration error.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// IsDevelopment reports whether the process runs in the development env.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Package config loads runtime configuration from the environment.
//
// A .env file in the working directory is loaded first (convenient for
// development; absent in most deployments), then envconfig fills the Config
// struct from the process environment with the defaults declared in the
// struct tags.
package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the full runtime configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int `envconfig:"PORT" default:"3000"`

	// DBPath is the SQLite database file. The parent directory is created
	// at startup if needed.
	DBPath string `envconfig:"DB_PATH" default:"data/tracker.db"`

	// TemplateDir and StaticDir hold the landing page assets.
	TemplateDir string `envconfig:"TEMPLATE_DIR" default:"web/templates"`
	StaticDir   string `envconfig:"STATIC_DIR" default:"web/static"`
}

// Load reads the .env file (if any) and the process environment.
func Load(logger *slog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// No .env is the normal case outside development.
		logger.Debug("no .env file loaded", slog.String("reason", err.Error()))
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing environment configuration: %w", err)
	}

	return &cfg, nil
}

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"colorant-og/models"
)

const (
	// RendererImaging rasterizes layouts in-process
	RendererImaging = "imaging"
	// RendererChrome rasterizes layouts with headless Chrome
	RendererChrome = "chrome"
)

// Config holds the service configuration, read from the environment
type Config struct {
	Port   string `env:"PORT" envDefault:"8080"`
	AppEnv string `env:"APP_ENV" envDefault:"development"`

	// AppBaseURL is the picker front-end; share pages redirect there and the
	// dye catalog is served from it.
	AppBaseURL string `env:"APP_BASE_URL" envDefault:"https://colorant-picker.pl4rd.com"`
	CatalogURL string `env:"CATALOG_URL"`

	CatalogDriveFileID string `env:"CATALOG_DRIVE_FILE_ID"`
	CredentialsPath    string `env:"GOOGLE_APPLICATION_CREDENTIALS"`

	Geometry   string `env:"OG_GEOMETRY" envDefault:"golden"`
	Renderer   string `env:"OG_RENDERER" envDefault:"imaging"`
	ChromePath string `env:"CHROME_PATH"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadDotEnv overloads variables from envPath outside production.
// A missing file is not an error.
func LoadDotEnv(envPath string) (bool, error) {
	if os.Getenv("APP_ENV") == "production" {
		return false, nil
	}
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return false, nil
	}
	if err := godotenv.Overload(envPath); err != nil {
		return false, fmt.Errorf("load %s: %w", envPath, err)
	}
	return true, nil
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.AppBaseURL = strings.TrimRight(cfg.AppBaseURL, "/")
	if cfg.CatalogURL == "" {
		cfg.CatalogURL = cfg.AppBaseURL + "/data/dyes.json"
	}
	cfg.Port = strings.TrimPrefix(cfg.Port, ":")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration contains valid values
func (c *Config) Validate() error {
	if c.AppBaseURL == "" {
		return fmt.Errorf("APP_BASE_URL is required")
	}
	if _, err := models.ParseGeometry(c.Geometry); err != nil {
		return fmt.Errorf("OG_GEOMETRY: %w", err)
	}
	switch c.Renderer {
	case RendererImaging, RendererChrome:
	default:
		return fmt.Errorf("OG_RENDERER: unknown renderer %q: must be one of imaging, chrome", c.Renderer)
	}
	if c.CatalogDriveFileID != "" && c.CredentialsPath == "" {
		return fmt.Errorf("CATALOG_DRIVE_FILE_ID requires GOOGLE_APPLICATION_CREDENTIALS")
	}
	return nil
}

// IsProduction reports whether the service runs with APP_ENV=production
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// GeometryValue returns the validated geometry
func (c *Config) GeometryValue() models.Geometry {
	return models.Geometry(c.Geometry)
}

// Addr returns the listen address. Binding 0.0.0.0 accepts connections from
// all interfaces, as container platforms require.
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

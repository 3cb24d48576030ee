package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"

	"github.com/menta2k/image-variants/pkg/processing"
	"github.com/menta2k/image-variants/pkg/sizes"
)

// Prefix is prepended to every environment variable name
const Prefix = "VARIANTS"

// Config holds the application configuration
type Config struct {
	ImagesDir string   `envconfig:"IMAGES_DIR"`
	Sizes     []string `envconfig:"SIZES" default:"xs:640x360,s:960x540,m:1280x720,l:1600x900"`

	// SingleSize is the label the driver's single-variant run uses; empty
	// means the first catalog entry
	SingleSize string `envconfig:"SINGLE_SIZE"`

	Backend      string  `envconfig:"BACKEND" default:"imaging"`
	Filter       string  `envconfig:"FILTER" default:"lanczos"`
	JPEGQuality  int     `envconfig:"JPEG_QUALITY" default:"85"`
	WebPQuality  float32 `envconfig:"WEBP_QUALITY" default:"85"`
	WebPLossless bool    `envconfig:"WEBP_LOSSLESS" default:"false"`
	AutoOrient   bool    `envconfig:"AUTO_ORIENT" default:"true"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
}

// Load reads the configuration from VARIANTS_* environment variables and
// validates it
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cfg.ImagesDir == "" {
		cfg.ImagesDir = DefaultImagesDir()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.ImagesDir == "" {
		return fmt.Errorf("images_dir cannot be empty")
	}
	catalog, err := c.Catalog()
	if err != nil {
		return fmt.Errorf("sizes: %w", err)
	}
	if _, err := c.SingleSpec(catalog); err != nil {
		return err
	}
	if err := c.ProcessingOptions().Validate(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("log_format must be json or console, got %q", c.LogFormat)
	}
	return nil
}

// Catalog builds the size catalog from the configured entries
func (c *Config) Catalog() (*sizes.Catalog, error) {
	return sizes.ParseCatalog(c.Sizes)
}

// SingleSpec resolves SingleSize against catalog
func (c *Config) SingleSpec(catalog *sizes.Catalog) (sizes.Spec, error) {
	label := c.SingleSize
	if label == "" {
		label = catalog.Specs()[0].Label
	}
	spec, ok := catalog.Lookup(label)
	if !ok {
		return sizes.Spec{}, fmt.Errorf("single_size %q is not in the size catalog", label)
	}
	return spec, nil
}

// ProcessingOptions maps the output settings onto processing.Options
func (c *Config) ProcessingOptions() processing.Options {
	return processing.Options{
		Backend:      processing.Backend(c.Backend),
		Filter:       c.Filter,
		JPEGQuality:  c.JPEGQuality,
		WebPQuality:  c.WebPQuality,
		WebPLossless: c.WebPLossless,
		AutoOrient:   c.AutoOrient,
	}
}

// DefaultImagesDir returns the "images" directory next to the executable,
// falling back to ./images
func DefaultImagesDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "images"
	}
	return filepath.Join(filepath.Dir(exe), "images")
}

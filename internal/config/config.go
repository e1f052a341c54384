package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/talentsift/sift/internal/evaluation"
	"github.com/talentsift/sift/internal/extraction"
	"github.com/talentsift/sift/pkg/database"
	"github.com/talentsift/sift/pkg/mailer"
	"github.com/talentsift/sift/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvSiftEnv             = "SIFT_ENV"
	EnvSiftShutdownTimeout = "SIFT_SHUTDOWN_TIMEOUT"
	EnvSiftVersion         = "SIFT_VERSION"
)

var databaseEnv = &database.Env{
	Host:            "SIFT_DB_HOST",
	Port:            "SIFT_DB_PORT",
	Name:            "SIFT_DB_NAME",
	User:            "SIFT_DB_USER",
	Password:        "SIFT_DB_PASSWORD",
	SSLMode:         "SIFT_DB_SSL_MODE",
	MaxOpenConns:    "SIFT_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "SIFT_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "SIFT_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "SIFT_DB_CONN_TIMEOUT",
}

var storageEnv = &storage.Env{
	ContainerName:    "SIFT_STORAGE_CONTAINER_NAME",
	ConnectionString: "SIFT_STORAGE_CONNECTION_STRING",
}

var mailerEnv = &mailer.Env{
	Host:      "SIFT_SMTP_HOST",
	Port:      "SIFT_SMTP_PORT",
	Username:  "SIFT_SMTP_USERNAME",
	Password:  "SIFT_SMTP_PASSWORD",
	From:      "SIFT_SMTP_FROM",
	Recipient: "SIFT_SMTP_RECIPIENT",
}

var evaluationEnv = &evaluation.Env{
	APIKey:    "SIFT_EVALUATOR_API_KEY",
	Model:     "SIFT_EVALUATOR_MODEL",
	MaxTokens: "SIFT_EVALUATOR_MAX_TOKENS",
}

var extractionEnv = &extraction.Env{
	MinTextLength:  "SIFT_EXTRACTION_MIN_TEXT_LENGTH",
	RendererPath:   "SIFT_EXTRACTION_RENDERER_PATH",
	RecognizerPath: "SIFT_EXTRACTION_RECOGNIZER_PATH",
	RenderDPI:      "SIFT_EXTRACTION_RENDER_DPI",
	OCRConcurrency: "SIFT_EXTRACTION_OCR_CONCURRENCY",
}

// Config is the root configuration for the Sift service.
type Config struct {
	Server          ServerConfig      `toml:"server"`
	Database        database.Config   `toml:"database"`
	Storage         storage.Config    `toml:"storage"`
	Mailer          mailer.Config     `toml:"mailer"`
	Evaluation      evaluation.Config `toml:"evaluation"`
	Extraction      extraction.Config `toml:"extraction"`
	API             APIConfig         `toml:"api"`
	ShutdownTimeout string            `toml:"shutdown_timeout"`
	Version         string            `toml:"version"`
}

// Env returns the SIFT_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvSiftEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.Mailer.Merge(&overlay.Mailer)
	c.Evaluation.Merge(&overlay.Evaluation)
	c.Extraction.Merge(&overlay.Extraction)
	c.API.Merge(&overlay.API)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Mailer.Finalize(mailerEnv); err != nil {
		return fmt.Errorf("mailer: %w", err)
	}
	if err := c.Evaluation.Finalize(evaluationEnv); err != nil {
		return fmt.Errorf("evaluation: %w", err)
	}
	if err := c.Extraction.Finalize(extractionEnv); err != nil {
		return fmt.Errorf("extraction: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvSiftShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvSiftVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvSiftEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

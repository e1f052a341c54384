package mailer

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds SMTP delivery parameters. All fields are optional;
// an unconfigured mailer reports ErrNotConfigured on Send rather
// than failing startup.
type Config struct {
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	From      string `toml:"from"`
	Recipient string `toml:"recipient"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Host      string
	Port      string
	Username  string
	Password  string
	From      string
	Recipient string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	if overlay.Username != "" {
		c.Username = overlay.Username
	}
	if overlay.Password != "" {
		c.Password = overlay.Password
	}
	if overlay.From != "" {
		c.From = overlay.From
	}
	if overlay.Recipient != "" {
		c.Recipient = overlay.Recipient
	}
}

// Configured reports whether enough fields are set to attempt delivery.
func (c *Config) Configured() bool {
	return c.Host != "" && c.Username != "" && c.Password != "" && c.Recipient != ""
}

func (c *Config) loadDefaults() {
	if c.Port == 0 {
		c.Port = 587
	}
	if c.From == "" {
		c.From = c.Username
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Host != "" {
		if v := os.Getenv(env.Host); v != "" {
			c.Host = v
		}
	}
	if env.Port != "" {
		if v := os.Getenv(env.Port); v != "" {
			if port, err := strconv.Atoi(v); err == nil {
				c.Port = port
			}
		}
	}
	if env.Username != "" {
		if v := os.Getenv(env.Username); v != "" {
			c.Username = v
		}
	}
	if env.Password != "" {
		if v := os.Getenv(env.Password); v != "" {
			c.Password = v
		}
	}
	if env.From != "" {
		if v := os.Getenv(env.From); v != "" {
			c.From = v
		}
	}
	if env.Recipient != "" {
		if v := os.Getenv(env.Recipient); v != "" {
			c.Recipient = v
		}
	}

	// From defaults to Username, which env overrides may have set
	if c.From == "" {
		c.From = c.Username
	}
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid smtp port: %d", c.Port)
	}
	return nil
}

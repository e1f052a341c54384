package extraction

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds text extraction parameters.
type Config struct {
	MinTextLength  int    `toml:"min_text_length"`
	RendererPath   string `toml:"renderer_path"`
	RecognizerPath string `toml:"recognizer_path"`
	RenderDPI      int    `toml:"render_dpi"`
	OCRConcurrency int    `toml:"ocr_concurrency"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	MinTextLength  string
	RendererPath   string
	RecognizerPath string
	RenderDPI      string
	OCRConcurrency string
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
	if overlay.MinTextLength != 0 {
		c.MinTextLength = overlay.MinTextLength
	}
	if overlay.RendererPath != "" {
		c.RendererPath = overlay.RendererPath
	}
	if overlay.RecognizerPath != "" {
		c.RecognizerPath = overlay.RecognizerPath
	}
	if overlay.RenderDPI != 0 {
		c.RenderDPI = overlay.RenderDPI
	}
	if overlay.OCRConcurrency != 0 {
		c.OCRConcurrency = overlay.OCRConcurrency
	}
}

func (c *Config) loadDefaults() {
	if c.MinTextLength == 0 {
		c.MinTextLength = 300
	}
	if c.RendererPath == "" {
		c.RendererPath = "pdftoppm"
	}
	if c.RecognizerPath == "" {
		c.RecognizerPath = "tesseract"
	}
	if c.RenderDPI == 0 {
		c.RenderDPI = 300
	}
	if c.OCRConcurrency == 0 {
		c.OCRConcurrency = 4
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.MinTextLength != "" {
		if v := os.Getenv(env.MinTextLength); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.MinTextLength = n
			}
		}
	}
	if env.RendererPath != "" {
		if v := os.Getenv(env.RendererPath); v != "" {
			c.RendererPath = v
		}
	}
	if env.RecognizerPath != "" {
		if v := os.Getenv(env.RecognizerPath); v != "" {
			c.RecognizerPath = v
		}
	}
	if env.RenderDPI != "" {
		if v := os.Getenv(env.RenderDPI); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.RenderDPI = n
			}
		}
	}
	if env.OCRConcurrency != "" {
		if v := os.Getenv(env.OCRConcurrency); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.OCRConcurrency = n
			}
		}
	}
}

func (c *Config) validate() error {
	if c.MinTextLength < 1 {
		return fmt.Errorf("min_text_length must be positive")
	}
	if c.RenderDPI < 72 {
		return fmt.Errorf("render_dpi must be at least 72")
	}
	if c.OCRConcurrency < 1 {
		return fmt.Errorf("ocr_concurrency must be positive")
	}
	return nil
}

package app

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// PDF engines selectable through PDF_ENGINE.
const (
	EngineGotenberg = "gotenberg"
	EngineChromedp  = "chromedp"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"60s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"45s"`
	RateLimit         int           `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	// RedisAddr enables the rendered-PDF cache. Empty disables it.
	RedisAddr      string        `envconfig:"REDIS_ADDR"`
	ExportCacheTTL time.Duration `envconfig:"EXPORT_CACHE_TTL" default:"10m"`

	PDFEngine       string        `envconfig:"PDF_ENGINE" default:"gotenberg"`
	PDFTimeout      time.Duration `envconfig:"PDF_TIMEOUT" default:"30s"`
	GotenbergURL    string        `envconfig:"GOTENBERG_URL" default:"http://127.0.0.1:3000"`
	ChromeRemoteURL string        `envconfig:"CHROME_REMOTE_URL"`
	ChromeNoSandbox bool          `envconfig:"CHROME_NO_SANDBOX" default:"false"`

	CurrencySymbol string `envconfig:"CURRENCY_SYMBOL" default:"₹"`
	SeedSample     bool   `envconfig:"SEED_SAMPLE" default:"false"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.PDFEngine {
	case EngineGotenberg:
		if c.GotenbergURL == "" {
			return fmt.Errorf("GOTENBERG_URL must be set when PDF_ENGINE=%s", EngineGotenberg)
		}
	case EngineChromedp:
	default:
		return fmt.Errorf("unknown PDF_ENGINE %q", c.PDFEngine)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

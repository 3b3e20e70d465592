package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/odyssey-erp/supplierdesk/testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.AppAddr)
	assert.Equal(t, EngineGotenberg, cfg.PDFEngine)
	assert.Equal(t, 10*time.Minute, cfg.ExportCacheTTL)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, "₹", cfg.CurrencySymbol)
	assert.False(t, cfg.SeedSample)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigChromedp(t *testing.T) {
	t.Setenv("PDF_ENGINE", "chromedp")
	t.Setenv("CHROME_REMOTE_URL", "ws://127.0.0.1:9222")
	t.Setenv("SEED_SAMPLE", "true")
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, EngineChromedp, cfg.PDFEngine)
	assert.Equal(t, "ws://127.0.0.1:9222", cfg.ChromeRemoteURL)
	assert.True(t, cfg.SeedSample)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfigRejectsUnknownEngine(t *testing.T) {
	t.Setenv("PDF_ENGINE", "wkhtmltopdf")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wkhtmltopdf")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "WARN", parseLevel(" warn ").String())
	assert.Equal(t, "INFO", parseLevel("loud").String())
}

func TestInTestModeFromHarness(t *testing.T) {
	assert.True(t, InTestMode())
}

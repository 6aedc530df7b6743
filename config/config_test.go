package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")

	cfg, err := Parse()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Equal(t, 180*time.Second, cfg.ReadTimeout())
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout())
	assert.Equal(t, "Portfolio", cfg.Site.Name)
	assert.Equal(t, 10*time.Second, cfg.Contact.Timeout())
	assert.Equal(t, uint64(3), cfg.Contact.MaxRetries)
}

func Test_ParseOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ACCEPTED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SITE_URL", "https://example.com")
	t.Setenv("RESEND_API_KEY", "re_test")
	t.Setenv("RESEND_FROM_EMAIL", "Site <site@example.com>")
	t.Setenv("CONTACT_RECIPIENTS", "me@example.com")

	cfg, err := Parse()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AcceptedOrigins)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.True(t, cfg.JSONLogs())
	assert.Equal(t, "https://example.com", cfg.Site.Site().URL)
	assert.True(t, cfg.Contact.ResendEnabled())
}

func Test_ParseRejectsBadNumbers(t *testing.T) {
	t.Setenv("READ_TIMEOUT_SECONDS", "soon")

	_, err := Parse()

	assert.Error(t, err)
}

func Test_LevelFallsBackToInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, Config{LogLevel: "loud"}.Level())
	assert.Equal(t, zerolog.InfoLevel, Config{}.Level())
}

func Test_LoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SITE_NAME=From File\n"), 0o600))
	t.Setenv("SITE_NAME", "")
	os.Unsetenv("SITE_NAME")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "From File", cfg.Site.Name)
	os.Unsetenv("SITE_NAME")
}

func Test_LoadToleratesMissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.NoError(t, err)
}

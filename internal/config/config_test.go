package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the duration of the test and restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "SERVER_ADDR", "EMAIL_PROVIDER", "EMAIL_TO", "EMAIL_FROM", "MONGO_URI", "MONGO_DB",
		"PUBLIC_BASE_URL", "CACHE_TTL_SECONDS")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, EmailProviderResend, cfg.EmailProvider)
	assert.Equal(t, []string{"info@cryptocardia.ca"}, cfg.EmailTo)
	assert.Equal(t, "PilotRoom <onboarding@resend.dev>", cfg.EmailFrom)
	assert.Equal(t, "http://localhost:3000", cfg.PublicBaseURL)
	assert.Equal(t, 60*time.Second, cfg.CacheTTL())
	assert.Empty(t, cfg.MongoDB)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("EMAIL_PROVIDER", " SES ")
	t.Setenv("EMAIL_TO", "ops@pilotroom.dev, , sales@pilotroom.dev")
	t.Setenv("PUBLIC_BASE_URL", "https://pilotroom.dev/")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017/pilots_prod/extra")
	unsetEnv(t, "MONGO_DB")
	t.Setenv("RATE_LIMIT_WINDOW_SEC", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EmailProviderSES, cfg.EmailProvider)
	assert.Equal(t, []string{"ops@pilotroom.dev", "sales@pilotroom.dev"}, cfg.EmailTo)
	assert.Equal(t, "https://pilotroom.dev", cfg.PublicBaseURL)
	assert.Equal(t, "pilots_prod", cfg.MongoDB)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow())
}

func TestLoadRejectsUnknownEmailProvider(t *testing.T) {
	t.Setenv("EMAIL_PROVIDER", "carrier-pigeon")

	_, err := Load()
	require.Error(t, err)
}

func TestMongoDBFromURI(t *testing.T) {
	assert.Equal(t, "pilotroom", mongoDBFromURI("mongodb://localhost:27017/pilotroom"))
	assert.Equal(t, "", mongoDBFromURI("mongodb://localhost:27017"))
	assert.Equal(t, "", mongoDBFromURI("://bad"))
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordhub/recordhub/pkg/testkeys"
)

func setTestKeys(t *testing.T) {
	privateKey, publicKey := testkeys.GetTestKeys()
	t.Setenv("PASETO_PRIVATE_KEY", privateKey)
	t.Setenv("PASETO_PUBLIC_KEY", publicKey)
}

func TestIsDevelopment(t *testing.T) {
	cfg := &Config{Environment: "development"}
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg = &Config{Environment: "production"}
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())
}

func TestLoadWithOptions(t *testing.T) {
	setTestKeys(t)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("DB_HOST", "testhost")
	t.Setenv("DB_USER", "testuser")
	t.Setenv("DB_PASSWORD", "testpass")
	t.Setenv("DB_NAME", "recordhub_test")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("SEARCH_BACKEND", "memory")
	t.Setenv("SEARCH_ADDRESSES", "http://es1:9200, http://es2:9200")
	t.Setenv("ROOT_USERNAME", "admin")
	t.Setenv("ROOT_EMAIL", "admin@example.com")
	t.Setenv("VERIFY_CODE_MAX_AGE", "120")
	t.Setenv("SESSION_EXPIRY", "2h")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "testhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "testuser", cfg.Database.User)
	assert.Equal(t, "recordhub_test", cfg.Database.DBName)
	assert.Equal(t, "memory", cfg.Search.Backend)
	assert.Equal(t, []string{"http://es1:9200", "http://es2:9200"}, cfg.Search.Addresses)
	assert.Equal(t, "admin", cfg.RootUser.Username)
	assert.Equal(t, "admin@example.com", cfg.RootUser.Email)
	assert.Equal(t, 120*time.Second, cfg.Auth.VerifyCodeMaxAge)
	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionExpiry)
	assert.True(t, cfg.IsDevelopment())
	assert.NotEmpty(t, cfg.Security.PasetoPrivateKeyBytes)
	assert.NotEmpty(t, cfg.Security.PasetoPublicKeyBytes)
}

func TestLoadWithOptions_Defaults(t *testing.T) {
	setTestKeys(t)

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "elasticsearch", cfg.Search.Backend)
	assert.Equal(t, []string{"http://localhost:9200"}, cfg.Search.Addresses)
	assert.Equal(t, 300*time.Second, cfg.Auth.VerifyCodeMaxAge)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionExpiry)
	assert.Equal(t, "none", cfg.Tracing.TraceExporter)
	assert.Equal(t, VERSION, cfg.Version)
}

func TestInvalidConfigHandling(t *testing.T) {
	t.Run("missing private key", func(t *testing.T) {
		t.Setenv("PASETO_PRIVATE_KEY", "")
		t.Setenv("PASETO_PUBLIC_KEY", "c29tZQ==")

		_, err := LoadWithOptions(LoadOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PASETO_PRIVATE_KEY is required")
	})

	t.Run("invalid base64", func(t *testing.T) {
		t.Setenv("PASETO_PRIVATE_KEY", "not-base64!!")
		t.Setenv("PASETO_PUBLIC_KEY", "also-not-base64!!")

		_, err := LoadWithOptions(LoadOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error decoding PASETO_PRIVATE_KEY")
	})

	t.Run("unknown search backend", func(t *testing.T) {
		setTestKeys(t)
		t.Setenv("SEARCH_BACKEND", "solr")

		_, err := LoadWithOptions(LoadOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported SEARCH_BACKEND")
	})

	t.Run("non positive verify code age", func(t *testing.T) {
		setTestKeys(t)
		t.Setenv("VERIFY_CODE_MAX_AGE", "0")

		_, err := LoadWithOptions(LoadOptions{})
		require.Error(t, err)
	})
}

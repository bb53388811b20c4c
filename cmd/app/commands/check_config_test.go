package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atluixx/lynkt/internal/config"
)

func TestRunCheckConfig(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		cfg := &config.Config{
			ServerHost:      "0.0.0.0",
			ServerPort:      3000,
			DBDriver:        "postgres",
			JWTSecret:       "jwt-signing-key",
			TokenExpiration: time.Hour,
			TokenClockSkew:  30 * time.Second,
			FrontendSecret:  "frontend-shared-secret",
			CookieSecure:    true,
			CookieSameSite:  "lax",
		}
		var out bytes.Buffer

		err := RunCheckConfig(cfg, &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "status:            ok")
		assert.Contains(t, out.String(), "metrics:           disabled")
		assert.NotContains(t, out.String(), "jwt-signing-key")
		assert.NotContains(t, out.String(), "frontend-shared-secret")
	})

	t.Run("missing secrets", func(t *testing.T) {
		cfg := &config.Config{DBDriver: "postgres", MetricsEnabled: true, MetricsPort: 3001}
		var out bytes.Buffer

		err := RunCheckConfig(cfg, &out)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
		assert.Contains(t, out.String(), "jwt secret:        missing")
		assert.Contains(t, out.String(), "metrics:           enabled on port 3001")
		assert.Contains(t, out.String(), "status:            invalid")
	})
}

func TestRunServer_InvalidConfig(t *testing.T) {
	err := RunServer(t.Context(), &config.Config{DBDriver: "postgres"}, "test")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

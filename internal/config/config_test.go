package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "NPR", cfg.SourceCurrency)
	assert.Equal(t, "deducted", cfg.FeePolicy)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, time.Minute, cfg.SessionSweepInterval)
	assert.Equal(t, 2*time.Second, cfg.GatewayMaxDelay)
	assert.InDelta(t, 0.1, cfg.GatewayFailureRate, 1e-9)
	assert.Equal(t, "", cfg.CorridorsFile)
}

func TestLoad_PrefixedAliases(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("REMIT_JWT_SECRET", testSecret)
	t.Setenv("REMIT_PORT", "9090")
	t.Setenv("REMIT_FEE_POLICY", "ON_TOP")
	t.Setenv("REMIT_SESSION_TTL", "5m")
	t.Setenv("REMIT_PUBLIC_RATE_LIMIT_RPS", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "on_top", cfg.FeePolicy)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 1, cfg.PublicRateLimitRPS)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{}},
		{"short secret", map[string]string{"JWT_SECRET": "short"}},
		{"bad fee policy", map[string]string{"JWT_SECRET": testSecret, "FEE_POLICY": "split"}},
		{"bad session ttl", map[string]string{"JWT_SECRET": testSecret, "SESSION_TTL": "soon"}},
		{"failure rate out of range", map[string]string{"JWT_SECRET": testSecret, "GATEWAY_FAILURE_RATE": "1.5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv("JWT_SECRET", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

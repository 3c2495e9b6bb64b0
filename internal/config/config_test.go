package config

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("OWNERSHIP_MISMATCH_STATUS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("EMAIL_DOMAIN_CHECK", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.EmailDomainCheck)

	assert.Equal(t, StorePostgres, cfg.StoreDriver)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, http.StatusUnauthorized, cfg.OwnershipMismatchStatus)
	assert.Nil(t, cfg.CORSAllowedOrigins)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Redis")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("OWNERSHIP_MISMATCH_STATUS", "403")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("EMAIL_DOMAIN_CHECK", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.EmailDomainCheck)

	assert.Equal(t, StoreRedis, cfg.StoreDriver)
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
	assert.Equal(t, http.StatusForbidden, cfg.OwnershipMismatchStatus)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, ":9090", cfg.Addr())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown store driver", "STORE_DRIVER", "mongo"},
		{"unsupported mismatch status", "OWNERSHIP_MISMATCH_STATUS", "418"},
		{"negative ttl", "JWT_TTL", "-1h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_NormalizesJWTAlgorithm(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		expected string
	}{
		{"default", "", "HS256"},
		{"hs384 kept", "HS384", "HS384"},
		{"hs512 kept", "HS512", "HS512"},
		{"non-hmac falls back", "RS256", "HS256"},
		{"unknown falls back", "none", "HS256"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_ALGORITHM", tt.env)
			cfg := Load()
			assert.Equal(t, tt.expected, cfg.JWTAlgorithm)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	// blank values read as unset
	t.Setenv("SERVER_PORT", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("REQUESTS_PER_MINUTE", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 60*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 100, cfg.RequestsPerMinute)
}

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if cfg.EndpointAddrHTTP != ":1313" {
		t.Errorf("EndpointAddrHTTP = %q, want %q", cfg.EndpointAddrHTTP, ":1313")
	}
	if cfg.TokenValidityDuration != 15*24*time.Hour {
		t.Errorf("TokenValidityDuration = %v, want %v", cfg.TokenValidityDuration, 15*24*time.Hour)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.SecretKey == "" {
		t.Errorf("SecretKey must have a default")
	}
	if cfg.DatabaseDSN == "" {
		t.Errorf("DatabaseDSN must have a default")
	}
}

func TestSecureCookies(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{EnvDevelopment, false},
		{"production", true},
		{"staging", true},
		{"", true},
	}

	for _, tt := range tests {
		cfg := &Config{Env: tt.env}
		if got := cfg.SecureCookies(); got != tt.want {
			t.Errorf("SecureCookies() with env %q = %v, want %v", tt.env, got, tt.want)
		}
	}
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"storage": map[string]any{
			"provider": "memory",
			"blobUrl":  "",
			"redisUrl": "",
		},
		"catalog": map[string]any{
			"baseUrl": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORAGE_PROVIDER", want: "storage.provider"},
		{envKey: "STORAGE_BLOBURL", want: "storage.blobUrl"},
		{envKey: "STORAGE_REDISURL", want: "storage.redisUrl"},
		{envKey: "CATALOG_BASEURL", want: "catalog.baseUrl"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "memory", cfg.Storage.Provider)
	assert.Equal(t, "sf", cfg.Storage.Prefix)
	assert.Equal(t, "https://fakestoreapi.com", cfg.Catalog.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Visitors.IdleTTL)
	assert.Equal(t, 10000, cfg.Visitors.MaxEntries)
	assert.Equal(t, time.Minute, cfg.Visitors.SweepInterval)
	assert.Empty(t, cfg.HTTP.CORS.AllowOrigins)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Storage.Provider = "redis"
	cfg.Catalog.BaseURL = "http://catalog.local"
	cfg.Catalog.Timeout = time.Second
	cfg.Visitors.MaxEntries = 5
	applyDefaults(cfg)

	assert.Equal(t, "redis", cfg.Storage.Provider)
	assert.Equal(t, "http://catalog.local", cfg.Catalog.BaseURL)
	assert.Equal(t, time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, 5, cfg.Visitors.MaxEntries)
}

package foodgram

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[log]
level = "DEBUG"
format = "json"

[db]
host = "db"
user = "foodgram"
password = "secret"
database = "foodgram"

[web]
port = 9000
base_url = "https://foodgram.example/"
proxy_header = "X-Forwarded-For"
trusted_proxies = ["10.0.0.0/8"]

[auth]
jwt_secret = "s3cr3t"
token_ttl = "2h"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "db", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 10, cfg.DB.PoolSize)
	assert.Equal(t, ":9000", cfg.Web.Address())
	assert.Equal(t, "https://foodgram.example", cfg.Web.BaseURL)
	assert.Equal(t, "X-Forwarded-For", cfg.Web.ProxyHeader)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.Web.TrustedProxies)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TTL())
	assert.Equal(t, "media", cfg.Media.Dir)
	assert.Equal(t, "/media", cfg.Media.URLPrefix)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

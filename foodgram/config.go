package foodgram

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

type Config struct {
	Log    LogConfig    `toml:"log"`
	DB     DBConfig     `toml:"db"`
	Web    WebConfig    `toml:"web"`
	Auth   AuthConfig   `toml:"auth"`
	Spaces SpacesConfig `toml:"spaces"`
	Media  MediaConfig  `toml:"media"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type DBConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	Database     string `toml:"database"`
	PoolSize     int    `toml:"pool_size"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	MaxLifetime  int    `toml:"max_lifetime"`
}

type WebConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	BaseURL     string   `toml:"base_url"`
	CORSOrigins []string `toml:"cors_origins"`
	// ProxyHeader is only honoured for requests from TrustedProxies.
	ProxyHeader    string   `toml:"proxy_header"`
	TrustedProxies []string `toml:"trusted_proxies"`
}

// Address is the listen address for the HTTP server.
func (w WebConfig) Address() string {
	return fmt.Sprintf("%s:%d", w.Host, w.Port)
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	TokenTTL  string `toml:"token_ttl"`
}

// TTL parses token_ttl, falling back to a day for unparsable values.
func (a AuthConfig) TTL() time.Duration {
	ttl, err := time.ParseDuration(a.TokenTTL)
	if err != nil || ttl <= 0 {
		return 24 * time.Hour
	}
	return ttl
}

// SpacesConfig points at an S3 compatible bucket. When Bucket is empty
// uploads go to the local media directory instead.
type SpacesConfig struct {
	Key      string `toml:"key"`
	Secret   string `toml:"secret"`
	Region   string `toml:"region"`
	Bucket   string `toml:"bucket"`
	Root     string `toml:"root"`
	Endpoint string `toml:"endpoint"`
}

type MediaConfig struct {
	Dir       string `toml:"dir"`
	URLPrefix string `toml:"url_prefix"`
}

func (c *Config) applyDefaults() {
	if c.Log.Format == "" {
		c.Log.Format = "pretty"
	}
	if c.DB.Port == 0 {
		c.DB.Port = 5432
	}
	if c.DB.PoolSize == 0 {
		c.DB.PoolSize = 10
	}
	if c.Web.Port == 0 {
		c.Web.Port = 8080
	}
	if c.Web.BaseURL == "" {
		c.Web.BaseURL = fmt.Sprintf("http://localhost:%d", c.Web.Port)
	}
	c.Web.BaseURL = strings.TrimRight(c.Web.BaseURL, "/")
	if len(c.Web.CORSOrigins) == 0 {
		c.Web.CORSOrigins = []string{"http://localhost:3000"}
	}
	if c.Auth.TokenTTL == "" {
		c.Auth.TokenTTL = "24h"
	}
	if c.Media.Dir == "" {
		c.Media.Dir = "media"
	}
	if c.Media.URLPrefix == "" {
		c.Media.URLPrefix = "/media"
	}
}

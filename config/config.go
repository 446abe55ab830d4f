// Package config loads runtime settings for the panel from defaults,
// an optional .env file and the process environment.
package config

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings.
//
// DatabaseURL selects PostgreSQL when set; otherwise the SQLite file at
// SQLitePath is used.
type Config struct {
	Addr           string
	DatabaseURL    string
	SQLitePath     string
	SecretKey      string
	SessionTTL     time.Duration
	CookieSecure   bool
	AllowOrigins   string
	AdminUsername  string
	AdminPassword  string
	LogLevel       string
	LoginRateLimit int
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret and the admin credentials must be overridden in production.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DatabaseURL = ""
	c.SQLitePath = "karyawan.db"
	c.SecretKey = "ini-adalah-secret-key-sangat-rahasia"
	c.SessionTTL = 24 * time.Hour
	c.CookieSecure = false
	c.AllowOrigins = "http://127.0.0.1:8080,http://localhost:8080"
	c.AdminUsername = "admin"
	c.AdminPassword = "admin123"
	c.LogLevel = "info"
	c.LoginRateLimit = 20
}

// Load applies defaults, then .env (if present), then environment variables.
func Load() (*Config, error) {
	// ok if missing
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.LoadDefaults()
	if err := cfg.parseEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) parseEnv() error {
	setString(&c.Addr, "ADDR")
	setString(&c.DatabaseURL, "DATABASE_URL")
	setString(&c.SQLitePath, "SQLITE_PATH")
	setString(&c.SecretKey, "SECRET_KEY")
	setString(&c.AllowOrigins, "ALLOW_ORIGINS")
	setString(&c.AdminUsername, "ADMIN_USERNAME")
	setString(&c.AdminPassword, "ADMIN_PASSWORD")
	setString(&c.LogLevel, "LOG_LEVEL")

	if v, ok := lookup("SESSION_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return fmt.Errorf("invalid SESSION_TTL %q", v)
		}
		c.SessionTTL = d
	}

	if v, ok := lookup("COOKIE_SECURE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid COOKIE_SECURE %q", v)
		}
		c.CookieSecure = b
	}

	if v, ok := lookup("LOGIN_RATE_LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid LOGIN_RATE_LIMIT %q", v)
		}
		c.LoginRateLimit = n
	}

	for _, origin := range strings.Split(c.AllowOrigins, ",") {
		if strings.TrimSpace(origin) == "*" {
			// cookies are sent cross-origin, so a wildcard is refused
			return fmt.Errorf("invalid ALLOW_ORIGINS %q: wildcard not allowed", c.AllowOrigins)
		}
	}

	if c.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY must not be empty")
	}
	return nil
}

// CookieKey derives the base64 AES-256 key used to seal cookies from SecretKey.
func (c *Config) CookieKey() string {
	sum := sha256.Sum256([]byte("cookie:" + c.SecretKey))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// UsePostgres reports whether DatabaseURL points at a PostgreSQL server.
func (c *Config) UsePostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") || strings.HasPrefix(c.DatabaseURL, "postgresql://")
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func setString(dst *string, key string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}

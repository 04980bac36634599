// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// Config holds runtime settings for the GophAuth server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP API.
//   - EndpointAddrGRPC: bind address for the gRPC health endpoint.
//   - StorageDriver: "pgx" (PostgreSQL) or "sqlite".
//   - DatabaseDSN: connection string for the selected driver.
//   - DatabaseUser / DatabasePassword: credentials merged into a URL-form DSN
//     that carries none. Environment or JSON only.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Environment or JSON only, required.
//   - AccessTokenValidityDuration: token lifetime, zero issues tokens without expiry.
//   - PasswordHashCost: bcrypt cost factor.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrHTTP            string        `env:"HTTP_ADDR"`
	EndpointAddrGRPC            string        `env:"GRPC_ADDR"`
	StorageDriver               string        `env:"STORAGE_DRIVER"`
	DatabaseDSN                 string        `env:"DATABASE_DSN"`
	DatabaseUser                string        `env:"DB_USER"`
	DatabasePassword            string        `env:"DB_PASS"`
	SecretKey                   string        `env:"SECRET_KEY"`
	AccessTokenValidityDuration time.Duration `env:"ACCESS_TOKEN_TTL"`
	PasswordHashCost            int           `env:"PASSWORD_HASH_COST"`
	LogLevel                    string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates Config with development defaults. Nothing secret is
// defaulted: SecretKey and database credentials must come from the operator.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.EndpointAddrGRPC = ":50051"
	c.StorageDriver = DriverPostgres
	c.DatabaseDSN = "postgres://localhost:5432/gophauth?sslmode=disable"
	c.AccessTokenValidityDuration = 60 * time.Minute
	c.PasswordHashCost = 12
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("secret key is not set (GOPHAUTH_SECRET_KEY)")
	}
	if c.StorageDriver != DriverPostgres && c.StorageDriver != DriverSQLite {
		return fmt.Errorf("unsupported storage driver %q", c.StorageDriver)
	}
	if c.DatabaseDSN == "" {
		return errors.New("database dsn is not set")
	}
	if c.PasswordHashCost < bcrypt.MinCost || c.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("password hash cost %d out of range [%d, %d]", c.PasswordHashCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.AccessTokenValidityDuration < 0 {
		return errors.New("access token validity must not be negative")
	}
	return nil
}

// DSN returns DatabaseDSN with DatabaseUser/DatabasePassword applied when the
// DSN is a postgres URL without its own credentials. Any other DSN is
// returned unchanged.
func (c *Config) DSN() string {
	if c.DatabaseUser == "" {
		return c.DatabaseDSN
	}
	u, err := url.Parse(c.DatabaseDSN)
	if err != nil || u.User != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") {
		return c.DatabaseDSN
	}
	if c.DatabasePassword != "" {
		u.User = url.UserPassword(c.DatabaseUser, c.DatabasePassword)
	} else {
		u.User = url.User(c.DatabaseUser)
	}
	return u.String()
}

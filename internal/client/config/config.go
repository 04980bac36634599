package config

import "time"

// Config holds runtime settings for the GophAuth CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the HTTP API.
//   - RequestTimeout: upper bound for a single API call.
type Config struct {
	ServerEndpointAddr string        `env:"SERVER_URL"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.RequestTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

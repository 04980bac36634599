package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is shared with the server so one shell profile can hold both.
const EnvPrefix = "GOPHAUTH_"

func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(fmt.Errorf("parse env: %w", err))
	}
}

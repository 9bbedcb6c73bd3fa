package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig is a DTO used exclusively for environment parsing. Only fields
// actually present in the environment are copied into the runtime Config.
type envConfig struct {
	ServerBaseURL  string        `env:"BLOGSITE_SERVER_URL"`
	RequestTimeout time.Duration `env:"BLOGSITE_REQUEST_TIMEOUT"`
	SessionFile    string        `env:"BLOGSITE_SESSION_FILE"`
}

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first when present; a missing file
// is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.ServerBaseURL != "" {
		cfg.ServerBaseURL = ec.ServerBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.SessionFile != "" {
		cfg.SessionFile = ec.SessionFile
	}
}

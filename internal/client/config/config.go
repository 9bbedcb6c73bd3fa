package config

import "time"

// Config holds runtime settings for the BlogSite CLI.
//
// Fields:
//   - ServerBaseURL: origin of the backend REST API, without a trailing slash.
//   - RequestTimeout: per-request HTTP timeout.
//   - SessionFile: path of the durable session record. Empty means the
//     platform default under the user config directory.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	SessionFile    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
	c.SessionFile = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including an optional .env file), a JSON file (if given
// via -c/-config), and command-line flags. Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}

// Package config handles configuration for the terminal client, including
// defaults, environment overlay, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the eventflow client.
//
// Fields:
//   - APIBaseURL: base URL of the eventflow API, including the /api prefix.
//   - DatabasePath: path of the local sqlite file holding client state.
//
// No request timeout is configurable on purpose: requests run until they
// answer or their context is cancelled.
type Config struct {
	APIBaseURL   string
	DatabasePath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.DatabasePath = "eventflow.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

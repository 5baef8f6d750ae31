package config

import "os"

// parseEnv overlays Config with values from the environment.
//
// Supported variables:
//
//	EVENTFLOW_API   base URL of the eventflow API
//	EVENTFLOW_DB    path of the local state database
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("EVENTFLOW_API"); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv("EVENTFLOW_DB"); ok && v != "" {
		cfg.DatabasePath = v
	}
}

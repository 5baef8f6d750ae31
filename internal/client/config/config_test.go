package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	require.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	require.Equal(t, "eventflow.db", cfg.DatabasePath)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("EVENTFLOW_API", "https://api.example.org/api")
	t.Setenv("EVENTFLOW_DB", "/tmp/state.db")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, "https://api.example.org/api", cfg.APIBaseURL)
	require.Equal(t, "/tmp/state.db", cfg.DatabasePath)
}

func TestParseEnv_EmptyValueIgnored(t *testing.T) {
	t.Setenv("EVENTFLOW_API", "")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
}

func TestParseJson_OverlaysOnlyProvidedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_base_url":"http://other:9090/api"}`), 0o600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"prog", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://other:9090/api", cfg.APIBaseURL)
	require.Equal(t, "eventflow.db", cfg.DatabasePath, "field absent from JSON keeps default")
}

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"prog", "-a", "http://flagged:8081/api", "-x", "noise"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, "http://flagged:8081/api", cfg.APIBaseURL)
}

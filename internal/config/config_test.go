package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proars/domnix/internal/config"
)

// newTestFlags registers all config flags on a fresh FlagSet, then parses args.
func newTestFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(newTestFlags(t))
	require.NoError(t, err)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, 10, cfg.Workers)
	assert.Equal(t, 6*time.Second, cfg.Timeout)
	assert.Equal(t, "com", cfg.TLD)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoad_FlagOverrides(t *testing.T) {
	cfg, err := config.Load(newTestFlags(t,
		"--verbose",
		"--output=json",
		"--workers=25",
		"--timeout=1500ms",
		"--tld=net",
	))
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 25, cfg.Workers)
	assert.Equal(t, 1500*time.Millisecond, cfg.Timeout)
	assert.Equal(t, "net", cfg.TLD)
}

func TestLoad_ShortFlags(t *testing.T) {
	cfg, err := config.Load(newTestFlags(t, "-v", "-o", "plain", "-w", "3", "-t", "2s"))
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "plain", cfg.Output)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestLoad_ConfigFileValues(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	yamlContent := "output: plain\nworkers: 20\ntimeout: 10s\ntld: org\n"
	require.NoError(t, os.WriteFile(cfgFile, []byte(yamlContent), 0o600))

	cfg, err := config.Load(newTestFlags(t, "--config="+cfgFile))
	require.NoError(t, err)
	assert.Equal(t, cfgFile, cfg.ConfigFile)
	assert.Equal(t, "plain", cfg.Output)
	assert.Equal(t, 20, cfg.Workers)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "org", cfg.TLD)
}

func TestLoad_FlagBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("workers: 20\n"), 0o600))

	cfg, err := config.Load(newTestFlags(t, "--config="+cfgFile, "--workers=2"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	t.Setenv("DOMNIX_WORKERS", "7")

	cfg, err := config.Load(newTestFlags(t))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Workers)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	_, err := config.Load(newTestFlags(t, "--config=/nonexistent/config.yaml"))
	require.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "Z1", cfg.Defaults.Zone)
	assert.Equal(t, 96, cfg.Defaults.Horizon)
	assert.Equal(t, 2.0, cfg.Defaults.Battery.CapacityMWh)
	assert.Equal(t, 0.95, cfg.Defaults.Battery.ChargeEfficiency)
	assert.Equal(t, time.Hour, cfg.Warehouse.CacheTTL)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := []byte(`
server:
  port: 9001
defaults:
  zone: Z7
  battery:
    capacity_mwh: 4.0
    power_mw: 2.0
    min_soc: 0.05
    max_soc: 0.95
    charge_efficiency: 0.9
    discharge_efficiency: 0.9
`)
	require.NoError(t, os.WriteFile(path, yaml, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Server.Port)
	assert.Equal(t, "Z7", cfg.Defaults.Zone)
	assert.Equal(t, 4.0, cfg.Defaults.Battery.CapacityMWh)
	assert.Equal(t, 0.05, cfg.Defaults.Battery.MinSOC)
	// Untouched sections keep defaults.
	assert.Equal(t, "./data", cfg.Warehouse.Dir)
}

func TestLoad_EnvBeatsYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9001\n"), 0o600))

	t.Setenv("API_PORT", "9002")
	t.Setenv("DATA_DIR", "/var/aurora")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9002, cfg.Server.Port)
	assert.Equal(t, "/var/aurora", cfg.Warehouse.Dir)
}

func TestToBatteryParams(t *testing.T) {
	p := Default().Defaults.Battery.ToBatteryParams()
	require.NoError(t, p.Validate())
	assert.Equal(t, 1.0, p.PowerMW)
	assert.Equal(t, 0.10, p.MinSOC)
	assert.Equal(t, 0.90, p.MaxSOC)
}

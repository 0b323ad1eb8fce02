package config

import (
	"fmt"
	"os"
	"time"

	"aurora-grid/internal/model"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). Environment variables
// override file values; the file itself is optional and everything has a
// working default, so the server runs with zero configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Warehouse WarehouseConfig `yaml:"warehouse"`
	Defaults  DefaultsConfig  `yaml:"defaults"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port int    `yaml:"port" env:"API_PORT"`
	Env  string `yaml:"env" env:"API_ENV"`
}

type WarehouseConfig struct {
	Dir      string        `yaml:"dir" env:"DATA_DIR"`
	CacheTTL time.Duration `yaml:"cache_ttl" env:"CACHE_TTL"`
}

type DefaultsConfig struct {
	Zone    string        `yaml:"zone" env:"DEFAULT_ZONE"`
	Horizon int           `yaml:"horizon" env:"DEFAULT_HORIZON"`
	Battery BatteryConfig `yaml:"battery"`
}

type BatteryConfig struct {
	CapacityMWh         float64 `yaml:"capacity_mwh"`
	PowerMW             float64 `yaml:"power_mw"`
	MinSOC              float64 `yaml:"min_soc"`
	MaxSOC              float64 `yaml:"max_soc"`
	ChargeEfficiency    float64 `yaml:"charge_efficiency"`
	DischargeEfficiency float64 `yaml:"discharge_efficiency"`
}

type LoggingConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

// Default returns the zero-configuration setup.
func Default() *Config {
	b := model.DefaultBattery()
	return &Config{
		Server:    ServerConfig{Port: 8080, Env: "development"},
		Warehouse: WarehouseConfig{Dir: "./data", CacheTTL: time.Hour},
		Defaults: DefaultsConfig{
			Zone:    "Z1",
			Horizon: 96,
			Battery: BatteryConfig{
				CapacityMWh:         b.CapacityMWh,
				PowerMW:             b.PowerMW,
				MinSOC:              b.MinSOC,
				MaxSOC:              b.MaxSOC,
				ChargeEfficiency:    b.ChargeEfficiency,
				DischargeEfficiency: b.DischargeEfficiency,
			},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the YAML file at path (skipped when path is empty or the file
// is absent) and then applies environment overrides.
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(raw, c); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}
	return c, nil
}

// ToBatteryParams converts the configured defaults into model params.
func (b BatteryConfig) ToBatteryParams() model.BatteryParams {
	return model.BatteryParams{
		CapacityMWh:         b.CapacityMWh,
		PowerMW:             b.PowerMW,
		MinSOC:              b.MinSOC,
		MaxSOC:              b.MaxSOC,
		ChargeEfficiency:    b.ChargeEfficiency,
		DischargeEfficiency: b.DischargeEfficiency,
	}
}

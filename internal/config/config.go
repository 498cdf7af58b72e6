// Package config loads the optional TOML configuration file. Flags on the
// command line always win; the file only fills in values the operator did
// not pass explicitly.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config mirrors the daemon's tunable knobs.
type Config struct {
	Poll            Duration `toml:"poll"`
	Broker          string   `toml:"broker"`
	DBPath          string   `toml:"db_path"`
	HTTPAddr        string   `toml:"http"`
	I2CBus          string   `toml:"i2c_bus"`
	SensorAddr      int      `toml:"sensor_addr"`
	DisplayWidth    int      `toml:"display_width"`
	DisplayHeight   int      `toml:"display_height"`
	BeeperChip      string   `toml:"beeper_chip"`
	BeeperLine      int      `toml:"beeper_line"`
	BatteryName     string   `toml:"battery"`
	DiagInterval    Duration `toml:"diag_interval"`
	BatteryInterval Duration `toml:"battery_interval"`
	ModalTimeout    Duration `toml:"modal_timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Poll:            Duration{50 * time.Millisecond},
		Broker:          "tcp://192.168.1.200:1883",
		DBPath:          "/var/lib/cores3cloud/prefs.db",
		HTTPAddr:        ":80",
		I2CBus:          "",
		SensorAddr:      0x5a,
		DisplayWidth:    128,
		DisplayHeight:   64,
		BeeperChip:      "gpiochip0",
		BeeperLine:      13,
		BatteryName:     "battery",
		DiagInterval:    Duration{10 * time.Second},
		BatteryInterval: Duration{30 * time.Second},
		ModalTimeout:    Duration{0},
	}
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults; a missing file is an error (the operator named it explicitly).
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

// Duration wraps time.Duration for TOML strings like "50ms" or "10s".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText renders the duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

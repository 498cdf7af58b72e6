package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Poll.Duration != 50*time.Millisecond {
		t.Errorf("Poll: got %v, want 50ms", cfg.Poll.Duration)
	}
	if cfg.Broker != "tcp://192.168.1.200:1883" {
		t.Errorf("Broker: got %q", cfg.Broker)
	}
	if cfg.SensorAddr != 0x5a {
		t.Errorf("SensorAddr: got %#x, want 0x5a", cfg.SensorAddr)
	}
	if cfg.ModalTimeout.Duration != 0 {
		t.Errorf("ModalTimeout: got %v, want 0", cfg.ModalTimeout.Duration)
	}
}

func TestEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestMissingFileIsAnError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected an error for a named but missing file")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
poll = "100ms"
broker = "tcp://10.0.0.5:1883"
db_path = "/tmp/prefs.db"
modal_timeout = "30s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Poll.Duration != 100*time.Millisecond {
		t.Errorf("Poll: got %v, want 100ms", cfg.Poll.Duration)
	}
	if cfg.Broker != "tcp://10.0.0.5:1883" {
		t.Errorf("Broker: got %q", cfg.Broker)
	}
	if cfg.DBPath != "/tmp/prefs.db" {
		t.Errorf("DBPath: got %q", cfg.DBPath)
	}
	if cfg.ModalTimeout.Duration != 30*time.Second {
		t.Errorf("ModalTimeout: got %v, want 30s", cfg.ModalTimeout.Duration)
	}
}

func TestUnsetKeysKeepDefaults(t *testing.T) {
	path := writeConfig(t, `broker = "tcp://10.0.0.5:1883"`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Poll.Duration != 50*time.Millisecond {
		t.Errorf("Poll must keep its default, got %v", cfg.Poll.Duration)
	}
	if cfg.DisplayWidth != 128 || cfg.DisplayHeight != 64 {
		t.Errorf("display size must keep its default, got %dx%d",
			cfg.DisplayWidth, cfg.DisplayHeight)
	}
}

func TestBadDurationIsAnError(t *testing.T) {
	path := writeConfig(t, `poll = "fifty"`)

	if _, err := Load(path); err == nil {
		t.Error("expected an error for an unparseable duration")
	}
}

func TestBadTOMLIsAnError(t *testing.T) {
	path := writeConfig(t, `poll = [not toml`)

	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed TOML")
	}
}

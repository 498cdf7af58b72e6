//go:build linux

package battery

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SysfsSource reads the kernel power-supply class for a named battery.
type SysfsSource struct {
	dir string
}

// NewSysfsSource binds to /sys/class/power_supply/<name>.
func NewSysfsSource(name string) (*SysfsSource, error) {
	dir := filepath.Join("/sys/class/power_supply", name)
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("power supply %q: %w", name, err)
	}
	return &SysfsSource{dir: dir}, nil
}

// Read returns the current capacity percentage and charging state.
func (s *SysfsSource) Read() (Reading, error) {
	capRaw, err := os.ReadFile(filepath.Join(s.dir, "capacity"))
	if err != nil {
		return Reading{}, fmt.Errorf("read capacity: %w", err)
	}
	percent, err := strconv.Atoi(strings.TrimSpace(string(capRaw)))
	if err != nil {
		return Reading{}, fmt.Errorf("parse capacity: %w", err)
	}

	statusRaw, err := os.ReadFile(filepath.Join(s.dir, "status"))
	if err != nil {
		return Reading{}, fmt.Errorf("read status: %w", err)
	}
	status := strings.TrimSpace(string(statusRaw))

	return Reading{
		Percent:  percent,
		Charging: status == "Charging" || status == "Full",
	}, nil
}

// Close is a no-op; sysfs files are opened per read.
func (s *SysfsSource) Close() error {
	return nil
}

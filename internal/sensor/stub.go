//go:build !linux

package sensor

import "errors"

// MLX90614 is not available on non-Linux platforms.
type MLX90614 struct{}

// NewMLX90614 returns an error on non-Linux platforms.
func NewMLX90614(busName string, addr uint16) (*MLX90614, error) {
	return nil, errors.New("sensor: not supported on this platform (requires Linux)")
}

// ReadRaw is not implemented on non-Linux platforms.
func (m *MLX90614) ReadRaw() (float64, error) {
	return 0, errors.New("sensor: not supported")
}

// Close is not implemented on non-Linux platforms.
func (m *MLX90614) Close() error {
	return nil
}

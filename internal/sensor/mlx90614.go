//go:build linux

package sensor

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// MLX90614 RAM register holding the object temperature (Tobj1).
// The register value is in units of 0.02 K.
const regTobj1 = 0x07

// MLX90614 reads object temperature from the IR sensor over I2C.
type MLX90614 struct {
	bus i2c.BusCloser
	dev i2c.Dev
}

// NewMLX90614 opens the named I2C bus ("" = first available) and binds the
// sensor at addr.
func NewMLX90614(busName string, addr uint16) (*MLX90614, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init host: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", busName, err)
	}

	return &MLX90614{
		bus: bus,
		dev: i2c.Dev{Bus: bus, Addr: addr},
	}, nil
}

// ReadRaw returns the object temperature in hundredths of °C.
func (m *MLX90614) ReadRaw() (float64, error) {
	// SMBus word read: register address, then 16-bit little-endian value.
	var buf [2]byte
	if err := m.dev.Tx([]byte{regTobj1}, buf[:]); err != nil {
		return 0, fmt.Errorf("read tobj1: %w", err)
	}

	raw := uint16(buf[0]) | uint16(buf[1])<<8
	if raw&0x8000 != 0 {
		return 0, fmt.Errorf("sensor flagged error in tobj1 read: %#04x", raw)
	}

	// 0.02 K per LSB → centi-kelvin is raw*2; shift to centi-celsius.
	centiC := int32(raw)*2 - 27315
	return float64(centiC), nil
}

// Close releases the I2C bus.
func (m *MLX90614) Close() error {
	return m.bus.Close()
}

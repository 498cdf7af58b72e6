//go:build linux

package touch

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// DefaultI2CAddr is the FT6336 capacitive touch controller address.
const DefaultI2CAddr = 0x38

// FT6336 register map: touch count, then P1 XH/XL/YH/YL.
const regTDStatus = 0x02

// FT6336 polls the capacitive touch controller and derives press/held/
// release phases from consecutive contact states.
type FT6336 struct {
	bus i2c.BusCloser
	dev i2c.Dev

	contact bool
	lastX   int
	lastY   int
}

// NewFT6336 opens the named I2C bus ("" = first available) and binds the
// controller at addr.
func NewFT6336(busName string, addr uint16) (*FT6336, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init host: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", busName, err)
	}

	return &FT6336{
		bus: bus,
		dev: i2c.Dev{Bus: bus, Addr: addr},
	}, nil
}

// Poll reads the controller and returns the per-tick sample. A release
// reports the last known contact point, matching the debounce contract
// the dispatcher expects.
func (f *FT6336) Poll() (Sample, error) {
	var buf [5]byte
	if err := f.dev.Tx([]byte{regTDStatus}, buf[:]); err != nil {
		return Sample{}, fmt.Errorf("read touch registers: %w", err)
	}

	touches := int(buf[0] & 0x0f)
	if touches == 0 {
		if f.contact {
			f.contact = false
			return Sample{Phase: PhaseReleased, X: f.lastX, Y: f.lastY}, nil
		}
		return Sample{Phase: PhaseNone}, nil
	}

	x := int(buf[1]&0x0f)<<8 | int(buf[2])
	y := int(buf[3]&0x0f)<<8 | int(buf[4])
	f.lastX, f.lastY = x, y

	if !f.contact {
		f.contact = true
		return Sample{Phase: PhasePressed, X: x, Y: y}, nil
	}
	return Sample{Phase: PhaseHeld, X: x, Y: y}, nil
}

// Close releases the I2C bus.
func (f *FT6336) Close() error {
	return f.bus.Close()
}

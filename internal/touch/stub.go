//go:build !linux

package touch

import "errors"

// DefaultI2CAddr is the FT6336 capacitive touch controller address.
const DefaultI2CAddr = 0x38

// FT6336 is not available on non-Linux platforms.
type FT6336 struct{}

// NewFT6336 returns an error on non-Linux platforms.
func NewFT6336(busName string, addr uint16) (*FT6336, error) {
	return nil, errors.New("touch: not supported on this platform (requires Linux)")
}

// Poll is not implemented on non-Linux platforms.
func (f *FT6336) Poll() (Sample, error) {
	return Sample{}, errors.New("touch: not supported")
}

// Close is not implemented on non-Linux platforms.
func (f *FT6336) Close() error {
	return nil
}

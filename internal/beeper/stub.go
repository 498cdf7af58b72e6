//go:build !linux

package beeper

import (
	"errors"
	"time"
)

// DefaultLine is the piezo line (BCM numbering).
const DefaultLine = 13

// RealBeeper is not available on non-Linux platforms.
type RealBeeper struct{}

// NewRealBeeper returns an error on non-Linux platforms.
func NewRealBeeper(chipName string, line int) (*RealBeeper, error) {
	return nil, errors.New("beeper: not supported on this platform (requires Linux)")
}

// Tone is not implemented on non-Linux platforms.
func (b *RealBeeper) Tone(freqHz int, d time.Duration) error {
	return errors.New("beeper: not supported")
}

// Close is not implemented on non-Linux platforms.
func (b *RealBeeper) Close() error {
	return nil
}

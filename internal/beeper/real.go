//go:build linux

package beeper

import (
	"fmt"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

// DefaultLine is the piezo line (BCM numbering).
const DefaultLine = 13

// RealBeeper drives a piezo by toggling a GPIO line at the tone frequency.
type RealBeeper struct {
	chip *gpiocdev.Chip
	line *gpiocdev.Line
}

// NewRealBeeper requests the piezo line as an output, initially low.
func NewRealBeeper(chipName string, line int) (*RealBeeper, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	l, err := chip.RequestLine(line, gpiocdev.AsOutput(0))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request beeper line %d: %w", line, err)
	}

	return &RealBeeper{chip: chip, line: l}, nil
}

// Tone generates a square wave at freqHz for d. Cue durations are tens of
// milliseconds, so blocking the control loop for one is acceptable.
func (b *RealBeeper) Tone(freqHz int, d time.Duration) error {
	if freqHz <= 0 {
		return fmt.Errorf("invalid frequency %d", freqHz)
	}

	half := time.Second / time.Duration(2*freqHz)
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if err := b.line.SetValue(1); err != nil {
			return fmt.Errorf("set beeper line: %w", err)
		}
		time.Sleep(half)
		if err := b.line.SetValue(0); err != nil {
			return fmt.Errorf("clear beeper line: %w", err)
		}
		time.Sleep(half)
	}
	return nil
}

// Close drives the line low and releases GPIO resources.
func (b *RealBeeper) Close() error {
	var errs []error

	if b.line != nil {
		if err := b.line.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("clear beeper line: %w", err))
		}
		if err := b.line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close beeper line: %w", err))
		}
	}
	if b.chip != nil {
		if err := b.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

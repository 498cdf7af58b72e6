// Package beeper provides audible feedback cues with hardware abstraction.
// The real implementation bit-bangs a piezo on a GPIO line.
package beeper

import "time"

// Cue frequencies and durations.
const (
	SuccessFreqHz = 1000
	SuccessDur    = 50 * time.Millisecond
	FailureFreqHz = 500
	FailureDur    = 100 * time.Millisecond
)

// Beeper plays a tone.
type Beeper interface {
	// Tone plays freqHz for d. Blocks for the duration.
	Tone(freqHz int, d time.Duration) error

	// Close releases beeper resources.
	Close() error
}

// Success plays the confirmation cue.
func Success(b Beeper) error {
	return b.Tone(SuccessFreqHz, SuccessDur)
}

// Failure plays the alert cue.
func Failure(b Beeper) error {
	return b.Tone(FailureFreqHz, FailureDur)
}

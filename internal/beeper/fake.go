package beeper

import "time"

// PlayedTone records one Tone call.
type PlayedTone struct {
	FreqHz int
	Dur    time.Duration
}

// FakeBeeper records tones for test assertions.
type FakeBeeper struct {
	// Tones contains all played tones.
	Tones []PlayedTone

	// ToneError, if set, will be returned by Tone.
	ToneError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeBeeper creates a FakeBeeper.
func NewFakeBeeper() *FakeBeeper {
	return &FakeBeeper{}
}

// Tone records the cue without sleeping.
func (f *FakeBeeper) Tone(freqHz int, d time.Duration) error {
	if f.ToneError != nil {
		return f.ToneError
	}
	f.Tones = append(f.Tones, PlayedTone{FreqHz: freqHz, Dur: d})
	return nil
}

// Close marks the beeper as closed.
func (f *FakeBeeper) Close() error {
	f.Closed = true
	return nil
}

// Reset clears recorded tones.
func (f *FakeBeeper) Reset() {
	f.Tones = nil
	f.Closed = false
	f.ToneError = nil
}

package touch

// FakeSource is a test double that returns scripted touch samples.
type FakeSource struct {
	// Samples contains scripted samples. Each call to Poll consumes the
	// next one; after exhaustion Poll reports no contact.
	Samples []Sample

	// index tracks current position in Samples
	index int

	// Closed tracks if Close was called
	Closed bool

	// PollError, if set, will be returned by Poll()
	PollError error
}

// NewFakeSource creates a FakeSource with the given samples.
func NewFakeSource(samples []Sample) *FakeSource {
	return &FakeSource{Samples: samples}
}

// Poll returns the next scripted sample, or a no-contact sample once the
// script is exhausted.
func (f *FakeSource) Poll() (Sample, error) {
	if f.PollError != nil {
		return Sample{}, f.PollError
	}

	if f.index >= len(f.Samples) {
		return Sample{Phase: PhaseNone}, nil
	}

	s := f.Samples[f.index]
	f.index++
	return s, nil
}

// Close marks the source as closed.
func (f *FakeSource) Close() error {
	f.Closed = true
	return nil
}

// Reset resets the source to the beginning of samples.
func (f *FakeSource) Reset() {
	f.index = 0
	f.Closed = false
}

// Tap appends a press/release pair at the given point.
func (f *FakeSource) Tap(x, y int) {
	f.Samples = append(f.Samples,
		Sample{Phase: PhasePressed, X: x, Y: y},
		Sample{Phase: PhaseReleased, X: x, Y: y},
	)
}

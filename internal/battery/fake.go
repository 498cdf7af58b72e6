package battery

// FakeSource is a test double that returns a settable battery reading.
type FakeSource struct {
	// Reading is returned by Read.
	Reading Reading

	// ReadError, if set, will be returned by Read.
	ReadError error

	// Closed tracks if Close was called.
	Closed bool

	// Reads counts calls to Read.
	Reads int
}

// NewFakeSource creates a FakeSource with the given reading.
func NewFakeSource(percent int, charging bool) *FakeSource {
	return &FakeSource{Reading: Reading{Percent: percent, Charging: charging}}
}

// Read returns the configured reading.
func (f *FakeSource) Read() (Reading, error) {
	f.Reads++
	if f.ReadError != nil {
		return Reading{}, f.ReadError
	}
	return f.Reading, nil
}

// Close marks the source as closed.
func (f *FakeSource) Close() error {
	f.Closed = true
	return nil
}

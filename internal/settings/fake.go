package settings

// FakeStore is an in-memory test double for the preference store.
type FakeStore struct {
	// Values holds the stored key/value pairs.
	Values map[string]string

	// GetError, if set, will be returned by Get.
	GetError error

	// PutError, if set, will be returned by Put.
	PutError error

	// Puts counts calls to Put across all opens.
	Puts int

	// Opens counts how many times Opener handed out the store.
	Opens int

	// Closes counts calls to Close.
	Closes int
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{Values: map[string]string{}}
}

// Opener returns an Opener that hands out this store. Open/Close counts
// let tests assert the scoped-acquisition contract.
func (f *FakeStore) Opener() Opener {
	return func() (Store, error) {
		f.Opens++
		return f, nil
	}
}

// Get returns the stored value, if any.
func (f *FakeStore) Get(key string) (string, bool, error) {
	if f.GetError != nil {
		return "", false, f.GetError
	}
	v, ok := f.Values[key]
	return v, ok, nil
}

// Put stores the value.
func (f *FakeStore) Put(key, value string) error {
	if f.PutError != nil {
		return f.PutError
	}
	f.Values[key] = value
	f.Puts++
	return nil
}

// Close records the close. The fake stays usable afterwards so a single
// instance can back many Load/Save cycles.
func (f *FakeStore) Close() error {
	f.Closes++
	return nil
}

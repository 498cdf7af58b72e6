// Package battery reads the battery charge level with hardware abstraction.
package battery

// Reading is one battery sample.
type Reading struct {
	Percent  int
	Charging bool
}

// Source reads the battery state.
type Source interface {
	Read() (Reading, error)
	Close() error
}

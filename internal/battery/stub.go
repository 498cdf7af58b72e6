//go:build !linux

package battery

import "errors"

// SysfsSource is not available on non-Linux platforms.
type SysfsSource struct{}

// NewSysfsSource returns an error on non-Linux platforms.
func NewSysfsSource(name string) (*SysfsSource, error) {
	return nil, errors.New("battery: not supported on this platform (requires Linux)")
}

// Read is not implemented on non-Linux platforms.
func (s *SysfsSource) Read() (Reading, error) {
	return Reading{}, errors.New("battery: not supported")
}

// Close is not implemented on non-Linux platforms.
func (s *SysfsSource) Close() error {
	return nil
}

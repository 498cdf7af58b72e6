// Package sensor provides contact-free temperature sampling with hardware
// abstraction. The real implementation reads an MLX90614 over I2C.
// The fake implementation allows testing without hardware.
package sensor

// Source yields one raw temperature sample per poll.
type Source interface {
	// ReadRaw returns the object temperature in hundredths of a degree
	// Celsius (the sensor's native scale; callers divide by 100).
	ReadRaw() (float64, error)

	// Close releases sensor resources.
	Close() error
}

// Default I2C wiring for the MLX90614.
const (
	DefaultI2CAddr = 0x5a
	DefaultI2CBus  = "" // first available bus
)

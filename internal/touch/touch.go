// Package touch converts raw per-tick touch samples into debounced button
// events. This package has NO external dependencies; the physical touch
// controller sits behind the Source interface.
package touch

// Phase classifies a single touch sample.
type Phase int

const (
	PhaseNone Phase = iota
	PhasePressed
	PhaseHeld
	PhaseReleased
)

func (p Phase) String() string {
	switch p {
	case PhasePressed:
		return "pressed"
	case PhaseHeld:
		return "held"
	case PhaseReleased:
		return "released"
	default:
		return "none"
	}
}

// Sample is one polled touch reading.
type Sample struct {
	Phase Phase
	X, Y  int
}

// Source reports one touch sample per control-loop tick.
type Source interface {
	// Poll returns the current touch sample.
	Poll() (Sample, error)

	// Close releases input resources.
	Close() error
}

// Button is an ephemeral hit target, rebuilt per frame from current state.
type Button struct {
	ID          string
	X, Y, W, H  int
	Label       string
	Enabled     bool
	IsToggle    bool
	ToggleState bool
}

// Contains reports whether the point falls inside the button's bounds.
func (b Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// EventType distinguishes semantic button events.
type EventType string

const (
	ButtonPressed  EventType = "PRESSED"
	ButtonReleased EventType = "RELEASED"
)

// Event is a semantic button event produced by the Dispatcher.
type Event struct {
	Type     EventType
	ButtonID string
}

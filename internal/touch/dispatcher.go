package touch

// Dispatcher resolves touch samples against the live button set and emits
// at most one semantic event per tick. Exactly one button may be armed
// (pressed and awaiting release) at a time; the armed button is held
// by value, so losing it can never leak anything.
type Dispatcher struct {
	armed    Button
	hasArmed bool
}

// NewDispatcher creates a Dispatcher with no armed button.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Dispatch advances the press/release cycle with one sample.
// Returns nil when the sample produces no semantic event:
//   - pressed outside every enabled button,
//   - held samples (no repeat-fire),
//   - pressed while a button is already armed,
//   - released outside the armed button's bounds (drag-off cancel),
//   - none while armed (lost contact; the armed button is cleared
//     defensively so no stuck pressed state survives a missed release).
func (d *Dispatcher) Dispatch(s Sample, live []Button) *Event {
	switch s.Phase {
	case PhaseNone:
		if d.hasArmed {
			d.disarm()
		}
		return nil

	case PhasePressed:
		if d.hasArmed {
			// A press cycle is already in flight; ignore until it resolves.
			return nil
		}
		for _, b := range live {
			if b.Enabled && b.Contains(s.X, s.Y) {
				d.armed = b
				d.hasArmed = true
				return &Event{Type: ButtonPressed, ButtonID: b.ID}
			}
		}
		return nil

	case PhaseHeld:
		return nil

	case PhaseReleased:
		if !d.hasArmed {
			return nil
		}
		armed := d.armed
		d.disarm()
		if !armed.Contains(s.X, s.Y) {
			return nil
		}
		return &Event{Type: ButtonReleased, ButtonID: armed.ID}
	}

	return nil
}

// Armed returns a copy of the armed button, if any. Used by the renderer
// to draw the pressed visual state.
func (d *Dispatcher) Armed() (Button, bool) {
	return d.armed, d.hasArmed
}

// Reset clears any armed button, e.g. on a screen transition where the
// previous button set is no longer live.
func (d *Dispatcher) Reset() {
	d.disarm()
}

func (d *Dispatcher) disarm() {
	d.armed = Button{}
	d.hasArmed = false
}

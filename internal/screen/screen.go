// Package screen contains the navigation state machine: which screen is
// active, the settings-menu cursor, and the staged emissivity value.
// Transitions are pure value functions; side effects are requested via
// Effect and executed by the control loop.
package screen

import (
	"math"
	"time"

	"github.com/ReptilePvP/Cores3Cloud/internal/settings"
)

// ID identifies the active screen.
type ID int

const (
	Main ID = iota
	SettingsMenu
	EmissivityModal
	RestartConfirm
)

func (id ID) String() string {
	switch id {
	case SettingsMenu:
		return "settings"
	case EmissivityModal:
		return "emissivity"
	case RestartConfirm:
		return "restart-confirm"
	default:
		return "main"
	}
}

// Button IDs, stable across frames.
const (
	BtnMonitor  = "monitor"
	BtnSettings = "settings"
	BtnBack     = "back"

	BtnItemUnit       = "item-unit"
	BtnItemSound      = "item-sound"
	BtnItemBrightness = "item-brightness"
	BtnItemEmissivity = "item-emissivity"
	BtnItemTarget     = "item-target"
	BtnItemTolerance  = "item-tolerance"

	BtnEmisMinus = "emis-minus"
	BtnEmisPlus  = "emis-plus"
	BtnEmisDone  = "emis-done"

	BtnRestart = "confirm-restart"
	BtnCancel  = "confirm-cancel"
)

// menuItems maps the settings-menu cursor to button IDs, in display order.
var menuItems = []string{
	BtnItemUnit,
	BtnItemSound,
	BtnItemBrightness,
	BtnItemEmissivity,
	BtnItemTarget,
	BtnItemTolerance,
}

// State is the current navigation state. Exactly one screen is active.
// Pending holds the staged emissivity while the modal (or its restart
// confirmation) is active; it never touches Settings until confirmed.
type State struct {
	Screen    ID
	Selected  int // settings-menu cursor, 0..5
	Pending   float64
	ModalFrom time.Time // when the modal was entered, for the optional timeout
}

// Cue is an audible feedback request.
type Cue int

const (
	CueNone Cue = iota
	CueSuccess
	CueFailure
)

// Effect describes what the control loop must do after a transition.
// Settings always carries the (possibly mutated) record.
type Effect struct {
	Settings         settings.Settings
	Persist          bool
	Redraw           bool
	ToggleMonitoring bool
	ApplyBrightness  bool
	Restart          bool
	Cue              Cue
}

// HandleRelease advances the state machine with one ButtonReleased event.
// Events for buttons not live on the current screen are ignored.
func HandleRelease(st State, buttonID string, cfg settings.Settings, now time.Time) (State, Effect) {
	eff := Effect{Settings: cfg}

	switch st.Screen {
	case Main:
		switch buttonID {
		case BtnMonitor:
			eff.ToggleMonitoring = true
			eff.Redraw = true
		case BtnSettings:
			st.Screen = SettingsMenu
			st.Selected = 0
			eff.Redraw = true
		}

	case SettingsMenu:
		switch buttonID {
		case BtnBack:
			st.Screen = Main
			eff.Persist = true
			eff.Redraw = true
		case BtnItemUnit:
			st.Selected = 0
			eff.Settings = cfg.ToggleUnit()
			adjusted(&eff)
		case BtnItemSound:
			st.Selected = 1
			eff.Settings = cfg.ToggleSound()
			adjusted(&eff)
		case BtnItemBrightness:
			st.Selected = 2
			eff.Settings = cfg.CycleBrightness()
			eff.ApplyBrightness = true
			adjusted(&eff)
		case BtnItemEmissivity:
			st.Selected = 3
			st.Screen = EmissivityModal
			st.Pending = cfg.Emissivity
			st.ModalFrom = now
			eff.Redraw = true
		case BtnItemTarget:
			st.Selected = 4
			eff.Settings = cfg.StepTargetTemp()
			adjusted(&eff)
		case BtnItemTolerance:
			st.Selected = 5
			eff.Settings = cfg.StepTolerance()
			adjusted(&eff)
		}

	case EmissivityModal:
		switch buttonID {
		case BtnEmisMinus:
			st.Pending = settings.ClampEmissivity(st.Pending - settings.EmissivityStep)
			eff.Redraw = true
		case BtnEmisPlus:
			st.Pending = settings.ClampEmissivity(st.Pending + settings.EmissivityStep)
			eff.Redraw = true
		case BtnEmisDone:
			if emissivityChanged(st.Pending, cfg.Emissivity) {
				st.Screen = RestartConfirm
			} else {
				st.Screen = Main
			}
			eff.Redraw = true
		}

	case RestartConfirm:
		switch buttonID {
		case BtnRestart:
			eff.Settings = cfg.WithEmissivity(st.Pending)
			eff.Persist = true
			eff.Restart = true
		case BtnCancel:
			st.Screen = Main
			eff.Redraw = true
		}
	}

	return st, eff
}

// Expired reports whether the modal timeout elapsed. A timeout of 0
// preserves the original indefinite-block semantics.
func (st State) Expired(now time.Time, timeout time.Duration) bool {
	if timeout <= 0 {
		return false
	}
	if st.Screen != EmissivityModal && st.Screen != RestartConfirm {
		return false
	}
	return now.Sub(st.ModalFrom) >= timeout
}

// adjusted marks the common post-mutation effects of a menu adjustment:
// persist the full record and cue confirmation if sound is enabled.
func adjusted(eff *Effect) {
	eff.Persist = true
	eff.Redraw = true
	if eff.Settings.SoundEnabled {
		eff.Cue = CueSuccess
	}
}

func emissivityChanged(pending, current float64) bool {
	return math.Abs(pending-current) > 1e-9
}

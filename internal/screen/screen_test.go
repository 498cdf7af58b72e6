package screen

import (
	"math"
	"testing"
	"time"

	"github.com/ReptilePvP/Cores3Cloud/internal/settings"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestMonitorButtonTogglesMonitoring(t *testing.T) {
	st := State{Screen: Main}
	cfg := settings.Default()

	st, eff := HandleRelease(st, BtnMonitor, cfg, t0)
	if st.Screen != Main {
		t.Errorf("monitor toggle must stay on main, got %v", st.Screen)
	}
	if !eff.ToggleMonitoring {
		t.Error("expected ToggleMonitoring")
	}
	if eff.Persist {
		t.Error("monitoring toggle is not a settings change; no persist")
	}
}

func TestSettingsButtonOpensMenu(t *testing.T) {
	st := State{Screen: Main, Selected: 3}
	cfg := settings.Default()

	st, eff := HandleRelease(st, BtnSettings, cfg, t0)
	if st.Screen != SettingsMenu {
		t.Fatalf("expected settings menu, got %v", st.Screen)
	}
	if st.Selected != 0 {
		t.Errorf("cursor must reset on entry, got %d", st.Selected)
	}
	if !eff.Redraw {
		t.Error("expected redraw")
	}
}

func TestBackPersistsAndReturnsToMain(t *testing.T) {
	st := State{Screen: SettingsMenu}
	cfg := settings.Default()

	st, eff := HandleRelease(st, BtnBack, cfg, t0)
	if st.Screen != Main {
		t.Errorf("expected main, got %v", st.Screen)
	}
	if !eff.Persist {
		t.Error("leaving the menu must persist the record")
	}
}

func TestMenuAdjustmentsPersistAndCue(t *testing.T) {
	cfg := settings.Default() // sound enabled

	tests := []struct {
		button string
		check  func(t *testing.T, eff Effect)
	}{
		{BtnItemUnit, func(t *testing.T, eff Effect) {
			if eff.Settings.UseCelsius {
				t.Error("unit must toggle to Fahrenheit")
			}
		}},
		{BtnItemBrightness, func(t *testing.T, eff Effect) {
			if eff.Settings.Brightness != 192 {
				t.Errorf("brightness: got %d, want 192", eff.Settings.Brightness)
			}
			if !eff.ApplyBrightness {
				t.Error("brightness change must apply to the panel")
			}
		}},
		{BtnItemTarget, func(t *testing.T, eff Effect) {
			if eff.Settings.TargetTemp != 343.0 {
				t.Errorf("target: got %v, want 343.0", eff.Settings.TargetTemp)
			}
		}},
		{BtnItemTolerance, func(t *testing.T, eff Effect) {
			if eff.Settings.Tolerance != 5.5 {
				t.Errorf("tolerance: got %v, want 5.5", eff.Settings.Tolerance)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.button, func(t *testing.T) {
			st := State{Screen: SettingsMenu}
			st, eff := HandleRelease(st, tt.button, cfg, t0)
			if st.Screen != SettingsMenu {
				t.Errorf("adjustment must stay in the menu, got %v", st.Screen)
			}
			if !eff.Persist {
				t.Error("every adjustment persists the full record")
			}
			if eff.Cue != CueSuccess {
				t.Error("expected success cue with sound enabled")
			}
			tt.check(t, eff)
		})
	}
}

func TestCueSuppressedWhenSoundDisabled(t *testing.T) {
	cfg := settings.Default()
	cfg.SoundEnabled = false

	st := State{Screen: SettingsMenu}
	_, eff := HandleRelease(st, BtnItemUnit, cfg, t0)
	if eff.Cue != CueNone {
		t.Error("no cue with sound disabled")
	}
}

func TestSoundToggleCueFollowsNewValue(t *testing.T) {
	// Turning sound OFF: the new value is off, so no cue plays.
	cfg := settings.Default()
	st := State{Screen: SettingsMenu}
	_, eff := HandleRelease(st, BtnItemSound, cfg, t0)
	if eff.Settings.SoundEnabled {
		t.Fatal("sound must toggle off")
	}
	if eff.Cue != CueNone {
		t.Error("turning sound off must not cue")
	}

	// Turning sound ON: the new value is on, so it does.
	cfg.SoundEnabled = false
	_, eff = HandleRelease(st, BtnItemSound, cfg, t0)
	if !eff.Settings.SoundEnabled {
		t.Fatal("sound must toggle on")
	}
	if eff.Cue != CueSuccess {
		t.Error("turning sound on must cue")
	}
}

func TestEmissivityItemOpensModalWithStagedValue(t *testing.T) {
	cfg := settings.Default()
	st := State{Screen: SettingsMenu}

	st, eff := HandleRelease(st, BtnItemEmissivity, cfg, t0)
	if st.Screen != EmissivityModal {
		t.Fatalf("expected emissivity modal, got %v", st.Screen)
	}
	if st.Pending != cfg.Emissivity {
		t.Errorf("staged value must start at current: got %v, want %v",
			st.Pending, cfg.Emissivity)
	}
	if !st.ModalFrom.Equal(t0) {
		t.Errorf("modal entry time: got %v, want %v", st.ModalFrom, t0)
	}
	if eff.Persist {
		t.Error("opening the modal must not persist")
	}
}

func TestModalStepsStagedValueOnly(t *testing.T) {
	cfg := settings.Default() // emissivity 0.95
	st := State{Screen: EmissivityModal, Pending: 0.95}

	st, eff := HandleRelease(st, BtnEmisMinus, cfg, t0)
	if math.Abs(st.Pending-0.94) > 1e-9 {
		t.Errorf("minus: got %v, want 0.94", st.Pending)
	}
	if eff.Persist {
		t.Error("stepping the staged value must not persist")
	}
	if eff.Settings.Emissivity != 0.95 {
		t.Error("live settings must not change while staging")
	}

	st, _ = HandleRelease(st, BtnEmisPlus, cfg, t0)
	if math.Abs(st.Pending-0.95) > 1e-9 {
		t.Errorf("plus: got %v, want 0.95", st.Pending)
	}
}

func TestModalStepsClampAtBounds(t *testing.T) {
	cfg := settings.Default()

	st := State{Screen: EmissivityModal, Pending: settings.MaxEmissivity}
	st, _ = HandleRelease(st, BtnEmisPlus, cfg, t0)
	if st.Pending != settings.MaxEmissivity {
		t.Errorf("plus at max: got %v", st.Pending)
	}

	st = State{Screen: EmissivityModal, Pending: settings.MinEmissivity}
	st, _ = HandleRelease(st, BtnEmisMinus, cfg, t0)
	if st.Pending != settings.MinEmissivity {
		t.Errorf("minus at min: got %v", st.Pending)
	}
}

func TestDoneWithChangeAsksForRestart(t *testing.T) {
	cfg := settings.Default()
	st := State{Screen: EmissivityModal, Pending: 0.90}

	st, eff := HandleRelease(st, BtnEmisDone, cfg, t0)
	if st.Screen != RestartConfirm {
		t.Fatalf("changed value must require confirmation, got %v", st.Screen)
	}
	if eff.Persist {
		t.Error("nothing persists until the restart is confirmed")
	}
}

func TestDoneWithoutChangeReturnsToMain(t *testing.T) {
	cfg := settings.Default()
	st := State{Screen: EmissivityModal, Pending: cfg.Emissivity}

	st, eff := HandleRelease(st, BtnEmisDone, cfg, t0)
	if st.Screen != Main {
		t.Errorf("unchanged value skips confirmation, got %v", st.Screen)
	}
	if eff.Persist || eff.Restart {
		t.Error("unchanged value must not persist or restart")
	}
}

func TestConfirmRestartCommitsStagedEmissivity(t *testing.T) {
	cfg := settings.Default()
	st := State{Screen: RestartConfirm, Pending: 0.90}

	_, eff := HandleRelease(st, BtnRestart, cfg, t0)
	if !eff.Restart {
		t.Error("expected restart")
	}
	if !eff.Persist {
		t.Error("restart must persist the committed record first")
	}
	if math.Abs(eff.Settings.Emissivity-0.90) > 1e-9 {
		t.Errorf("committed emissivity: got %v, want 0.90", eff.Settings.Emissivity)
	}
}

func TestCancelDiscardsStagedEmissivity(t *testing.T) {
	cfg := settings.Default()
	st := State{Screen: RestartConfirm, Pending: 0.90}

	st, eff := HandleRelease(st, BtnCancel, cfg, t0)
	if st.Screen != Main {
		t.Errorf("cancel returns to main, got %v", st.Screen)
	}
	if eff.Restart || eff.Persist {
		t.Error("cancel must neither persist nor restart")
	}
	if eff.Settings.Emissivity != cfg.Emissivity {
		t.Error("cancel must leave the live emissivity untouched")
	}
}

func TestForeignButtonsAreIgnoredPerScreen(t *testing.T) {
	cfg := settings.Default()

	tests := []struct {
		screen ID
		button string
	}{
		{Main, BtnBack},
		{Main, BtnEmisDone},
		{SettingsMenu, BtnMonitor},
		{SettingsMenu, BtnRestart},
		{EmissivityModal, BtnItemUnit},
		{RestartConfirm, BtnEmisPlus},
	}
	for _, tt := range tests {
		st := State{Screen: tt.screen}
		got, eff := HandleRelease(st, tt.button, cfg, t0)
		if got != st {
			t.Errorf("%v + %s: state changed to %+v", tt.screen, tt.button, got)
		}
		if eff.Persist || eff.Restart || eff.ToggleMonitoring || eff.Redraw {
			t.Errorf("%v + %s: unexpected effect %+v", tt.screen, tt.button, eff)
		}
	}
}

func TestModalTimeout(t *testing.T) {
	st := State{Screen: EmissivityModal, ModalFrom: t0}

	if st.Expired(t0.Add(time.Minute), 0) {
		t.Error("zero timeout means the modal never expires")
	}
	if st.Expired(t0.Add(29*time.Second), 30*time.Second) {
		t.Error("not yet expired")
	}
	if !st.Expired(t0.Add(30*time.Second), 30*time.Second) {
		t.Error("expired at the timeout")
	}

	st.Screen = RestartConfirm
	if !st.Expired(t0.Add(time.Minute), 30*time.Second) {
		t.Error("the confirmation screen shares the modal timeout")
	}

	st.Screen = Main
	if st.Expired(t0.Add(time.Hour), 30*time.Second) {
		t.Error("timeouts only apply to the modal screens")
	}
}

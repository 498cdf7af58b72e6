package internal

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/ReptilePvP/Cores3Cloud/internal/monitor"
	"github.com/ReptilePvP/Cores3Cloud/internal/screen"
	"github.com/ReptilePvP/Cores3Cloud/internal/sensor"
	"github.com/ReptilePvP/Cores3Cloud/internal/settings"
	"github.com/ReptilePvP/Cores3Cloud/internal/telemetry"
	"github.com/ReptilePvP/Cores3Cloud/internal/touch"
)

// TestIntegrationSensorToTelemetry drives scripted raw samples through the
// monitor and verifies what reaches the telemetry sink.
func TestIntegrationSensorToTelemetry(t *testing.T) {
	samples := []float64{
		2500,  // 25.00°C - first sample, significant
		2550,  // 25.50°C - 0.5°C change, insignificant
		2650,  // 26.50°C - 1.5°C from displayed value, significant
		99999, // out of band, dropped
		2660,  // 26.60°C - insignificant vs 26.50
	}

	src := sensor.NewFakeSource(samples)
	publisher := telemetry.NewFakePublisher()
	startTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	mon := monitor.New(startTime)
	target := monitor.Target{Temp: 338, Tolerance: 5}

	pollInterval := 50 * time.Millisecond

	for i := range samples {
		raw, err := src.ReadRaw()
		if err != nil {
			t.Fatalf("sample %d: sensor read error: %v", i, err)
		}

		now := startTime.Add(time.Duration(i) * pollInterval)
		update, rejected := mon.Ingest(raw, target)
		if rejected || update == nil {
			continue
		}

		if err := publisher.Publish(telemetry.Reading{
			Timestamp:  now,
			Fahrenheit: update.Fahrenheit,
			Celsius:    update.Celsius,
			Monitoring: mon.Monitoring(),
		}); err != nil {
			t.Fatalf("sample %d: publish error: %v", i, err)
		}
	}

	if len(publisher.Readings) != 2 {
		t.Fatalf("expected 2 readings, got %d", len(publisher.Readings))
	}
	if publisher.Readings[0].Celsius != 25.0 {
		t.Errorf("reading 0: expected 25.0, got %v", publisher.Readings[0].Celsius)
	}
	if publisher.Readings[1].Celsius != 26.5 {
		t.Errorf("reading 1: expected 26.5, got %v", publisher.Readings[1].Celsius)
	}

	for i, payload := range publisher.Payloads {
		var parsed telemetry.Payload
		if err := json.Unmarshal(payload, &parsed); err != nil {
			t.Errorf("payload %d: invalid JSON: %v", i, err)
		}
		if parsed.Thermometer.Timestamp == "" {
			t.Errorf("payload %d: missing timestamp", i)
		}
	}
}

// TestIntegrationTouchToSettings walks a full menu interaction: open
// settings, toggle the unit, leave the menu, and verifies persistence.
func TestIntegrationTouchToSettings(t *testing.T) {
	const w, h = 320, 240

	touchSrc := touch.NewFakeSource(nil)
	touchSrc.Tap(240, 210) // Settings, bottom-right bar
	touchSrc.Tap(80, 32)   // Unit item, first menu cell
	touchSrc.Tap(160, 216) // Back bar

	store := settings.NewFakeStore()
	dispatcher := touch.NewDispatcher()
	startTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	cfg, err := settings.Load(store.Opener())
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	st := screen.State{Screen: screen.Main}

	for i := 0; ; i++ {
		sample, err := touchSrc.Poll()
		if err != nil {
			t.Fatalf("poll %d: %v", i, err)
		}
		if sample.Phase == touch.PhaseNone {
			break
		}

		live := screen.Buttons(st, cfg, false, w, h)
		ev := dispatcher.Dispatch(sample, live)
		if ev == nil || ev.Type != touch.ButtonReleased {
			continue
		}

		now := startTime.Add(time.Duration(i) * 50 * time.Millisecond)
		newSt, eff := screen.HandleRelease(st, ev.ButtonID, cfg, now)
		st = newSt
		cfg = eff.Settings
		if eff.Persist {
			if err := settings.Save(store.Opener(), cfg); err != nil {
				t.Fatalf("save settings: %v", err)
			}
		}
	}

	if st.Screen != screen.Main {
		t.Errorf("expected main screen at the end, got %v", st.Screen)
	}
	if cfg.UseCelsius {
		t.Error("expected Fahrenheit after toggle")
	}

	reloaded, err := settings.Load(store.Opener())
	if err != nil {
		t.Fatalf("reload settings: %v", err)
	}
	if reloaded.UseCelsius {
		t.Error("toggled unit must survive a reload")
	}
	if reloaded.Brightness != settings.DefaultBrightness {
		t.Errorf("untouched fields must survive, got brightness %d", reloaded.Brightness)
	}
}

// TestIntegrationEmissivityStagingNeverLeaks verifies the staged value
// stays out of the store until the restart is confirmed.
func TestIntegrationEmissivityStagingNeverLeaks(t *testing.T) {
	store := settings.NewFakeStore()
	cfg, _ := settings.Load(store.Opener())
	startTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	st := screen.State{Screen: screen.SettingsMenu}
	st, _ = screen.HandleRelease(st, screen.BtnItemEmissivity, cfg, startTime)
	st, _ = screen.HandleRelease(st, screen.BtnEmisMinus, cfg, startTime)
	st, _ = screen.HandleRelease(st, screen.BtnEmisMinus, cfg, startTime)

	if store.Puts != 0 {
		t.Fatalf("staging must not touch the store, got %d puts", store.Puts)
	}

	st, _ = screen.HandleRelease(st, screen.BtnEmisDone, cfg, startTime)
	if st.Screen != screen.RestartConfirm {
		t.Fatalf("expected restart confirmation, got %v", st.Screen)
	}

	_, eff := screen.HandleRelease(st, screen.BtnRestart, cfg, startTime)
	if !eff.Restart || !eff.Persist {
		t.Fatalf("confirm must persist and restart, got %+v", eff)
	}
	if err := settings.Save(store.Opener(), eff.Settings); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, _ := settings.Load(store.Opener())
	want := settings.DefaultEmissivity - 2*settings.EmissivityStep
	if math.Abs(reloaded.Emissivity-want) > 1e-9 {
		t.Errorf("reloaded emissivity: got %v, want %v", reloaded.Emissivity, want)
	}
}

// TestIntegrationAlertFlow verifies the monitoring status line follows the
// samples in and out of the target band.
func TestIntegrationAlertFlow(t *testing.T) {
	startTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	mon := monitor.New(startTime)
	target := monitor.Target{Temp: 338, Tolerance: 5}

	mon.SetMonitoring(true)

	steps := []struct {
		raw       float64
		wantAlert bool
		wantMsg   string
	}{
		{33600, false, monitor.MsgMonitoring},  // 336°C, in band
		{34500, true, monitor.MsgOutOfRange},   // 345°C, out
		{33700, false, monitor.MsgMonitoring},  // 337°C, back in
	}

	for i, step := range steps {
		update, rejected := mon.Ingest(step.raw, target)
		if rejected {
			t.Fatalf("step %d: unexpected rejection", i)
		}
		if update == nil {
			t.Fatalf("step %d: expected an update", i)
		}
		if update.Alert != step.wantAlert {
			t.Errorf("step %d: alert = %v, want %v", i, update.Alert, step.wantAlert)
		}
		msg, _ := mon.StatusLine()
		if msg != step.wantMsg {
			t.Errorf("step %d: status = %q, want %q", i, msg, step.wantMsg)
		}
	}
}

// TestIntegrationReadingPayloadFormat verifies the exact JSON structure.
func TestIntegrationReadingPayloadFormat(t *testing.T) {
	publisher := telemetry.NewFakePublisher()
	publisher.Publish(telemetry.Reading{
		Timestamp:  time.Date(2026, 2, 2, 22, 18, 12, 0, time.UTC),
		Fahrenheit: 640.4,
		Celsius:    338,
		Monitoring: true,
	})

	expected := `{"thermometer":{"timestamp":"2026-02-02T22:18:12Z","temperature_f":640.4,"temperature_c":338,"monitoring":true}}`

	if string(publisher.Payloads[0]) != expected {
		t.Errorf("unexpected payload:\ngot:  %s\nwant: %s", string(publisher.Payloads[0]), expected)
	}
}

// TestIntegrationRestartPayloadFormat verifies the exact JSON structure
// for the restart lifecycle event.
func TestIntegrationRestartPayloadFormat(t *testing.T) {
	publisher := telemetry.NewFakePublisher()
	publisher.PublishSystem(telemetry.SystemEvent{
		Timestamp: time.Date(2026, 2, 3, 10, 30, 45, 0, time.UTC),
		Event:     "RESTART",
		Reason:    "emissivity change",
		Retained:  true,
	})

	expected := `{"system":{"timestamp":"2026-02-03T10:30:45Z","event":"RESTART","reason":"emissivity change"}}`

	if string(publisher.SystemPayloads[0]) != expected {
		t.Errorf("unexpected payload:\ngot:  %s\nwant: %s", string(publisher.SystemPayloads[0]), expected)
	}
}

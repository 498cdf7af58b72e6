// Package device owns the control loop: once per tick it polls touch
// input, dispatches button events through the navigation state machine,
// polls the sensor, evaluates the sample, and redraws when anything
// visible changed. All mutable state (settings, monitor, screen) lives on
// the Device and is only touched from the loop goroutine.
package device

import (
	"errors"
	"log"
	"os"
	"syscall"
	"time"

	"github.com/ReptilePvP/Cores3Cloud/internal/battery"
	"github.com/ReptilePvP/Cores3Cloud/internal/beeper"
	"github.com/ReptilePvP/Cores3Cloud/internal/display"
	"github.com/ReptilePvP/Cores3Cloud/internal/monitor"
	"github.com/ReptilePvP/Cores3Cloud/internal/screen"
	"github.com/ReptilePvP/Cores3Cloud/internal/sensor"
	"github.com/ReptilePvP/Cores3Cloud/internal/settings"
	"github.com/ReptilePvP/Cores3Cloud/internal/status"
	"github.com/ReptilePvP/Cores3Cloud/internal/telemetry"
	"github.com/ReptilePvP/Cores3Cloud/internal/touch"
)

// ErrRestartRequested is returned by Run when the operator confirmed an
// emissivity change. The new value is persisted before Run returns; the
// supervisor is expected to start a fresh process.
var ErrRestartRequested = errors.New("device restart requested")

// Config wires the collaborators and timing knobs into a Device.
type Config struct {
	Sensor    sensor.Source
	Touch     touch.Source
	Surface   display.Surface
	Beeper    beeper.Beeper
	Battery   battery.Source
	Publisher telemetry.Publisher
	OpenStore settings.Opener

	// Optional observers.
	Tracker    *status.Tracker
	MQTTStatus telemetry.ConnectionStatus

	DiagInterval    time.Duration
	BatteryInterval time.Duration

	// ModalTimeout bounds the emissivity modal; 0 keeps it operator-bound.
	ModalTimeout time.Duration

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

// Device is the control loop driver.
type Device struct {
	c Config

	cfg        settings.Settings
	mon        *monitor.Monitor
	st         screen.State
	dispatcher *touch.Dispatcher

	prevArmed  string
	needRedraw bool
}

// New creates a Device. Settings are loaded on Run, not here.
func New(c Config) *Device {
	if c.Now == nil {
		c.Now = time.Now
	}
	return &Device{
		c:          c,
		dispatcher: touch.NewDispatcher(),
	}
}

// Run drives the loop until a signal arrives or a restart is requested.
// tick paces the loop; sig delivers shutdown signals.
func (d *Device) Run(tick <-chan time.Time, sig <-chan os.Signal) error {
	start := d.c.Now()
	d.mon = monitor.New(start)

	cfg, err := settings.Load(d.c.OpenStore)
	if err != nil {
		// Defaults still let the device operate; persistence may recover.
		log.Printf("settings load: %v", err)
	}
	d.cfg = cfg
	d.c.Surface.SetBrightness(d.cfg.Brightness)
	log.Printf("settings: celsius=%v sound=%v brightness=%d emissivity=%.2f target=%.1f tolerance=%.1f",
		cfg.UseCelsius, cfg.SoundEnabled, cfg.Brightness, cfg.Emissivity, cfg.TargetTemp, cfg.Tolerance)

	if err := d.c.Publisher.PublishSystem(telemetry.SystemEvent{
		Timestamp: start,
		Event:     "STARTUP",
		Retained:  true,
	}); err != nil {
		log.Printf("failed to publish startup event: %v", err)
	}

	d.redraw()
	d.publishTracker()

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			signalName := "UNKNOWN"
			if s == syscall.SIGINT {
				signalName = "SIGINT"
			} else if s == syscall.SIGTERM {
				signalName = "SIGTERM"
			}
			if err := d.c.Publisher.PublishSystem(telemetry.SystemEvent{
				Timestamp: d.c.Now(),
				Event:     "SHUTDOWN",
				Reason:    signalName,
				Retained:  true,
			}); err != nil {
				log.Printf("failed to publish shutdown event: %v", err)
			}
			return nil

		case <-tick:
			if err := d.step(d.c.Now()); err != nil {
				return err
			}
		}
	}
}

// step runs one control-loop tick.
func (d *Device) step(now time.Time) error {
	d.needRedraw = false

	if d.st.Expired(now, d.c.ModalTimeout) {
		// Hardening option: abandon the modal, discarding the staged value.
		log.Printf("screen: emissivity modal timed out, discarding staged value")
		d.st.Screen = screen.Main
		d.dispatcher.Reset()
		d.needRedraw = true
	}

	if err := d.handleTouch(now); err != nil {
		return err
	}
	d.handleSensor(now)
	d.handleBattery(now)
	d.handleDiagnostics(now)

	d.publishTracker()

	if d.needRedraw {
		d.redraw()
	}
	return nil
}

func (d *Device) handleTouch(now time.Time) error {
	sample, err := d.c.Touch.Poll()
	if err != nil {
		log.Printf("touch poll error: %v", err)
		return nil
	}

	w, h := d.c.Surface.Size()
	live := screen.Buttons(d.st, d.cfg, d.mon.Monitoring(), w, h)
	ev := d.dispatcher.Dispatch(sample, live)

	// Arming and disarming both change the pressed visual state.
	armedID := ""
	if b, ok := d.dispatcher.Armed(); ok {
		armedID = b.ID
	}
	if armedID != d.prevArmed {
		d.prevArmed = armedID
		d.needRedraw = true
	}

	if ev == nil {
		return nil
	}

	switch ev.Type {
	case touch.ButtonPressed:
		if d.cfg.SoundEnabled {
			d.cue(screen.CueSuccess)
		}
		return nil

	case touch.ButtonReleased:
		return d.applyRelease(ev.ButtonID, now)
	}
	return nil
}

func (d *Device) applyRelease(buttonID string, now time.Time) error {
	st, eff := screen.HandleRelease(d.st, buttonID, d.cfg, now)
	d.st = st
	d.cfg = eff.Settings

	if eff.ToggleMonitoring {
		d.mon.SetMonitoring(!d.mon.Monitoring())
		log.Printf("monitoring: %v", d.mon.Monitoring())
	}
	if eff.ApplyBrightness {
		d.c.Surface.SetBrightness(d.cfg.Brightness)
	}
	if eff.Persist {
		if err := settings.Save(d.c.OpenStore, d.cfg); err != nil {
			log.Printf("settings save: %v", err)
			d.cue(screen.CueFailure)
			if eff.Restart {
				// Do not restart into unpersisted state; back to Main.
				d.st.Screen = screen.Main
				d.needRedraw = true
				return nil
			}
		}
	}
	d.cue(eff.Cue)
	if eff.Redraw {
		d.needRedraw = true
	}

	if eff.Restart {
		log.Printf("emissivity confirmed (%.2f), restarting", d.cfg.Emissivity)
		if err := d.c.Publisher.PublishSystem(telemetry.SystemEvent{
			Timestamp: now,
			Event:     "RESTART",
			Reason:    "emissivity change",
			Retained:  true,
		}); err != nil {
			log.Printf("failed to publish restart event: %v", err)
		}
		return ErrRestartRequested
	}
	return nil
}

func (d *Device) handleSensor(now time.Time) {
	raw, err := d.c.Sensor.ReadRaw()
	if err != nil {
		log.Printf("sensor read error: %v", err)
		return
	}

	update, rejected := d.mon.Ingest(raw, monitor.Target{
		Temp:      d.cfg.TargetTemp,
		Tolerance: d.cfg.Tolerance,
	})
	if rejected {
		log.Printf("sensor: sample %.0f out of valid band, dropped", raw)
		return
	}
	if update == nil {
		return
	}

	d.needRedraw = true
	if update.Alert && d.cfg.SoundEnabled {
		d.cue(screen.CueFailure)
	}

	if err := d.c.Publisher.Publish(telemetry.Reading{
		Timestamp:  now,
		Fahrenheit: update.Fahrenheit,
		Celsius:    update.Celsius,
		Monitoring: d.mon.Monitoring(),
	}); err != nil {
		log.Printf("telemetry publish error: %v", err)
		// Don't crash on publish failure
	}
}

func (d *Device) handleBattery(now time.Time) {
	if d.c.Battery == nil || !d.mon.BatteryDue(now, d.c.BatteryInterval) {
		return
	}
	r, err := d.c.Battery.Read()
	if err != nil {
		log.Printf("battery read error: %v", err)
		return
	}
	if d.mon.SetBattery(r.Percent, r.Charging) {
		log.Printf("battery: %d%% charging=%v low=%v", r.Percent, r.Charging, d.mon.LowBattery())
		d.needRedraw = true
	}
	if d.c.Tracker != nil {
		d.c.Tracker.SetBattery(r.Percent, r.Charging, d.mon.LowBattery())
	}
}

func (d *Device) handleDiagnostics(now time.Time) {
	diag := d.mon.CheckDiagnostics(now, d.c.DiagInterval, d.cfg.UseCelsius)
	if diag == nil {
		return
	}
	log.Printf("diag: raw=%.0f c=%.2f f=%.2f display=%s uptime=%v",
		diag.Raw, diag.Celsius, diag.Fahrenheit, diag.Display, diag.Uptime)
}

func (d *Device) redraw() {
	msg, level := d.mon.StatusLine()
	screen.Draw(d.c.Surface, d.st, d.cfg, screen.View{
		TempC:      d.mon.CurrentC(),
		HaveSample: d.mon.HaveSample(),
		Monitoring: d.mon.Monitoring(),
		Message:    msg,
		Level:      level,
		LowBattery: d.mon.LowBattery(),
		ArmedID:    d.prevArmed,
	})
	if err := d.c.Surface.Flush(); err != nil {
		log.Printf("display flush error: %v", err)
	}
}

func (d *Device) cue(c screen.Cue) {
	var err error
	switch c {
	case screen.CueSuccess:
		err = beeper.Success(d.c.Beeper)
	case screen.CueFailure:
		err = beeper.Failure(d.c.Beeper)
	default:
		return
	}
	if err != nil {
		log.Printf("beeper error: %v", err)
	}
}

func (d *Device) publishTracker() {
	if d.c.Tracker == nil {
		return
	}
	msg, level := d.mon.StatusLine()
	d.c.Tracker.Update(d.mon.CurrentC(), d.mon.HaveSample(), d.mon.Monitoring(), msg, level, d.st.Screen.String())
	d.c.Tracker.SetSettings(d.cfg)
	if d.c.MQTTStatus != nil {
		d.c.Tracker.SetMQTTConnected(d.c.MQTTStatus.IsConnected())
	}
}

// Settings returns the current settings record. Test hook.
func (d *Device) Settings() settings.Settings {
	return d.cfg
}

// Screen returns the active screen. Test hook.
func (d *Device) Screen() screen.ID {
	return d.st.Screen
}

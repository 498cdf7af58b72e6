// Package status provides a thread-safe status tracker for the thermometer
// daemon. It is read by the HTTP dashboard handlers.
package status

import (
	"sync"
	"time"

	"github.com/ReptilePvP/Cores3Cloud/internal/monitor"
	"github.com/ReptilePvP/Cores3Cloud/internal/settings"
)

// Config contains daemon configuration for display.
type Config struct {
	PollMs      int64
	DiagMs      int64
	BatteryMs   int64
	Broker      string
	HTTPAddr    string
	DBPath      string
	I2CBus      string
	ModalTimeMs int64
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type — safe to use after the lock is released.
type Snapshot struct {
	TempC      float64
	HaveSample bool
	Monitoring bool
	Message    string
	Level      monitor.Status
	Screen     string

	Settings settings.Settings

	BatteryPercent  int
	BatteryCharging bool
	LowBattery      bool

	MQTTConnected bool
	StartTime     time.Time
	Now           time.Time
	Config        Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// DisplayTemp renders the current temperature in the configured unit,
// or "--" before the first sample.
func (s Snapshot) DisplayTemp() string {
	if !s.HaveSample {
		return "--"
	}
	return monitor.FormatTemp(s.TempC, s.Settings.UseCelsius)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update sets temperature, monitoring, status line and active screen.
// Called from the control loop on every tick.
func (t *Tracker) Update(tempC float64, haveSample, monitoring bool, msg string, level monitor.Status, screen string) {
	t.mu.Lock()
	t.snap.TempC = tempC
	t.snap.HaveSample = haveSample
	t.snap.Monitoring = monitoring
	t.snap.Message = msg
	t.snap.Level = level
	t.snap.Screen = screen
	t.mu.Unlock()
}

// SetSettings records the current settings record.
func (t *Tracker) SetSettings(s settings.Settings) {
	t.mu.Lock()
	t.snap.Settings = s
	t.mu.Unlock()
}

// SetBattery records the last battery reading and warning state.
func (t *Tracker) SetBattery(percent int, charging, low bool) {
	t.mu.Lock()
	t.snap.BatteryPercent = percent
	t.snap.BatteryCharging = charging
	t.snap.LowBattery = low
	t.mu.Unlock()
}

// SetMQTTConnected sets the MQTT connection status.
func (t *Tracker) SetMQTTConnected(connected bool) {
	t.mu.Lock()
	t.snap.MQTTConnected = connected
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}

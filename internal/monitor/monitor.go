// Package monitor contains pure business logic for temperature monitoring
// and alerting. This package has NO external dependencies (no I2C, MQTT,
// OS, or time.Sleep). Time is always injectable via time.Time parameters.
package monitor

import (
	"fmt"
	"time"
)

// Status classifies the status line.
type Status int

const (
	StatusNormal Status = iota
	StatusWarning
	StatusError
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	case StatusSuccess:
		return "success"
	default:
		return "normal"
	}
}

// Evaluation thresholds.
const (
	// SignificanceC is the minimum change (°C) for a sample to update
	// state, the sole trigger for display and telemetry updates.
	SignificanceC = 1.0

	// MinValidC and MaxValidC bound the physically plausible band
	// (converted °C). Samples outside are dropped without touching state.
	MinValidC = -20.0
	MaxValidC = 400.0

	// LowBatteryPercent is the warning threshold while discharging.
	LowBatteryPercent = 20
)

// Status messages.
const (
	MsgMonitoring = "Monitoring"
	MsgOutOfRange = "Temperature Out of Range!"
	MsgLowBattery = "Low Battery!"
)

// DisplayUpdate describes a significant sample the control loop must act
// on: redraw, and forward Fahrenheit to the telemetry sink.
type DisplayUpdate struct {
	Celsius    float64
	Fahrenheit float64

	// Alert is set when monitoring is on and the sample left the
	// target±tolerance band.
	Alert bool
}

// Target holds the alert thresholds a sample is evaluated against.
// Values come from the persisted settings; both are °C-native.
type Target struct {
	Temp      float64
	Tolerance float64
}

// Monitor tracks the current temperature and alert status.
type Monitor struct {
	monitoring bool
	currentC   float64
	haveSample bool

	statusMsg   string
	statusLevel Status

	lastRaw     float64
	lastDiag    time.Time
	lastBattery time.Time
	lowBattery  bool

	startTime time.Time
}

// New creates a Monitor. currentC starts at its zero value; the first
// in-band sample is always significant.
func New(startTime time.Time) *Monitor {
	return &Monitor{
		startTime:   startTime,
		lastDiag:    startTime,
		lastBattery: startTime,
	}
}

// Ingest evaluates one raw sample (hundredths of °C). It returns a
// DisplayUpdate for significant samples, nil for insignificant ones, and
// rejected=true for out-of-band samples (log-only; no state change, no
// baseline reset).
func (m *Monitor) Ingest(raw float64, target Target) (update *DisplayUpdate, rejected bool) {
	m.lastRaw = raw
	c := raw / 100.0

	if c < MinValidC || c > MaxValidC {
		return nil, true
	}

	if m.haveSample && abs(c-m.currentC) < SignificanceC {
		return nil, false
	}

	m.currentC = c
	m.haveSample = true

	u := &DisplayUpdate{
		Celsius:    c,
		Fahrenheit: CToF(c),
	}

	if m.monitoring {
		diff := abs(c - target.Temp)
		if diff > target.Tolerance {
			m.statusMsg = MsgOutOfRange
			m.statusLevel = StatusWarning
			u.Alert = true
		} else {
			m.statusMsg = MsgMonitoring
			m.statusLevel = StatusSuccess
		}
	}

	return u, false
}

// SetMonitoring turns monitoring on or off and resets the status line.
func (m *Monitor) SetMonitoring(on bool) {
	m.monitoring = on
	if on {
		m.statusMsg = MsgMonitoring
		m.statusLevel = StatusSuccess
	} else {
		m.statusMsg = ""
		m.statusLevel = StatusNormal
	}
}

// Monitoring reports whether monitoring is on.
func (m *Monitor) Monitoring() bool {
	return m.monitoring
}

// CurrentC returns the last significant temperature in °C.
func (m *Monitor) CurrentC() float64 {
	return m.currentC
}

// HaveSample reports whether a significant sample has been recorded.
func (m *Monitor) HaveSample() bool {
	return m.haveSample
}

// StatusLine returns the advisory message and its level. A pending low
// battery warning takes precedence over the monitoring status.
func (m *Monitor) StatusLine() (string, Status) {
	if m.lowBattery {
		return MsgLowBattery, StatusError
	}
	return m.statusMsg, m.statusLevel
}

// BatteryDue reports whether the battery should be re-checked, stamping
// the check time when it is.
func (m *Monitor) BatteryDue(now time.Time, interval time.Duration) bool {
	if interval <= 0 {
		return false
	}
	if now.Sub(m.lastBattery) < interval {
		return false
	}
	m.lastBattery = now
	return true
}

// SetBattery records a battery reading. Returns true when the low-battery
// warning flipped, so the caller knows to redraw.
func (m *Monitor) SetBattery(percent int, charging bool) bool {
	low := percent <= LowBatteryPercent && !charging
	changed := low != m.lowBattery
	m.lowBattery = low
	return changed
}

// LowBattery reports whether the low-battery warning is active.
func (m *Monitor) LowBattery() bool {
	return m.lowBattery
}

// Diagnostics is a verbose observational record of the last raw sample.
type Diagnostics struct {
	Timestamp  time.Time
	Raw        float64
	Celsius    float64
	Fahrenheit float64
	Display    string
	Uptime     time.Duration
}

// CheckDiagnostics returns a diagnostic record if the interval has elapsed
// since the last one (or startup). Returns nil if the interval has not
// elapsed or if interval is <= 0 (disabled). This path never changes
// monitoring state; it only reports.
func (m *Monitor) CheckDiagnostics(now time.Time, interval time.Duration, useCelsius bool) *Diagnostics {
	if interval <= 0 {
		return nil
	}
	if now.Sub(m.lastDiag) < interval {
		return nil
	}

	m.lastDiag = now
	c := m.lastRaw / 100.0
	return &Diagnostics{
		Timestamp:  now,
		Raw:        m.lastRaw,
		Celsius:    c,
		Fahrenheit: CToF(c),
		Display:    FormatTemp(c, useCelsius),
		Uptime:     now.Sub(m.startTime),
	}
}

// CToF converts Celsius to Fahrenheit.
func CToF(c float64) float64 {
	return c*9.0/5.0 + 32.0
}

// FormatTemp renders a °C-native value in the display unit.
func FormatTemp(c float64, useCelsius bool) string {
	if useCelsius {
		return fmt.Sprintf("%.1f°C", c)
	}
	return fmt.Sprintf("%.1f°F", CToF(c))
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

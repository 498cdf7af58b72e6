package web

import (
	"encoding/json"
	"time"

	"github.com/ReptilePvP/Cores3Cloud/internal/status"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Temperature   *TempJSON    `json:"temperature,omitempty"`
	Monitoring    bool         `json:"monitoring"`
	Message       string       `json:"message,omitempty"`
	Level         string       `json:"level"`
	Screen        string       `json:"screen"`
	Settings      SettingsJSON `json:"settings"`
	Battery       BatteryJSON  `json:"battery"`
	UptimeSeconds int64        `json:"uptime_seconds"`
	StartTime     string       `json:"start_time"`
	Timestamp     string       `json:"timestamp"`
	MQTT          MQTTStatus   `json:"mqtt"`
	Config        ConfigJSON   `json:"config"`
}

// TempJSON is the JSON representation of the current reading.
type TempJSON struct {
	Celsius float64 `json:"celsius"`
	Display string  `json:"display"`
}

// SettingsJSON is the JSON representation of the persisted settings.
type SettingsJSON struct {
	UseCelsius   bool    `json:"use_celsius"`
	SoundEnabled bool    `json:"sound_enabled"`
	Brightness   int     `json:"brightness"`
	Emissivity   float64 `json:"emissivity"`
	TargetTemp   float64 `json:"target_temp"`
	Tolerance    float64 `json:"tolerance"`
}

// BatteryJSON is the JSON representation of the battery state.
type BatteryJSON struct {
	Percent  int  `json:"percent"`
	Charging bool `json:"charging"`
	Low      bool `json:"low"`
}

// MQTTStatus reports MQTT connection state.
type MQTTStatus struct {
	Connected bool   `json:"connected"`
	Broker    string `json:"broker"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	PollMs    int64  `json:"poll_ms"`
	DiagMs    int64  `json:"diag_ms"`
	BatteryMs int64  `json:"battery_ms"`
	Broker    string `json:"broker"`
	HTTPAddr  string `json:"http_addr"`
	DBPath    string `json:"db_path"`
}

// FormatJSON returns the JSON status for the web endpoint.
func FormatJSON(snap status.Snapshot) []byte {
	inner := StatusInner{
		Monitoring:    snap.Monitoring,
		Message:       snap.Message,
		Level:         snap.Level.String(),
		Screen:        snap.Screen,
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		MQTT:          MQTTStatus{Connected: snap.MQTTConnected, Broker: snap.Config.Broker},
		Settings: SettingsJSON{
			UseCelsius:   snap.Settings.UseCelsius,
			SoundEnabled: snap.Settings.SoundEnabled,
			Brightness:   snap.Settings.Brightness,
			Emissivity:   snap.Settings.Emissivity,
			TargetTemp:   snap.Settings.TargetTemp,
			Tolerance:    snap.Settings.Tolerance,
		},
		Battery: BatteryJSON{
			Percent:  snap.BatteryPercent,
			Charging: snap.BatteryCharging,
			Low:      snap.LowBattery,
		},
		Config: ConfigJSON{
			PollMs:    snap.Config.PollMs,
			DiagMs:    snap.Config.DiagMs,
			BatteryMs: snap.Config.BatteryMs,
			Broker:    snap.Config.Broker,
			HTTPAddr:  snap.Config.HTTPAddr,
			DBPath:    snap.Config.DBPath,
		},
	}

	if snap.HaveSample {
		inner.Temperature = &TempJSON{
			Celsius: snap.TempC,
			Display: snap.DisplayTemp(),
		}
	}

	data, _ := json.MarshalIndent(StatusJSON{Status: inner}, "", "  ")
	return data
}

// Package telemetry mirrors temperature readings to the cloud dashboard
// over MQTT, with abstraction for testing.
package telemetry

import (
	"encoding/json"
	"time"
)

// Topic is the MQTT topic for temperature readings.
const Topic = "devices/thermometer/temperature"

// TopicSystem is the MQTT topic for system lifecycle events.
const TopicSystem = "devices/thermometer/system"

// Publisher pushes readings to the dashboard.
type Publisher interface {
	// Publish sends one temperature reading to the broker.
	// Returns error if publishing fails (should not crash the process).
	Publish(r Reading) error

	// PublishSystem sends a system lifecycle event to the broker.
	PublishSystem(event SystemEvent) error

	// Close disconnects from the broker.
	Close() error
}

// ConnectionStatus reports whether the MQTT connection is active.
type ConnectionStatus interface {
	IsConnected() bool
}

// Reading is one significant temperature sample. The dashboard property
// is the Fahrenheit value; Celsius rides along for debugging.
type Reading struct {
	Timestamp  time.Time
	Fahrenheit float64
	Celsius    float64
	Monitoring bool
}

// SystemEvent represents a system lifecycle event (e.g., startup, shutdown, restart).
type SystemEvent struct {
	Timestamp time.Time
	Event     string // e.g., "STARTUP", "SHUTDOWN", "RESTART"
	Reason    string // e.g., "SIGTERM", "emissivity change"
	Retained  bool   // Whether the message should be retained by the broker
}

// Payload represents the MQTT message payload structure.
type Payload struct {
	Thermometer ThermometerPayload `json:"thermometer"`
}

// ThermometerPayload contains the reading details.
type ThermometerPayload struct {
	Timestamp    string  `json:"timestamp"`
	TemperatureF float64 `json:"temperature_f"`
	TemperatureC float64 `json:"temperature_c"`
	Monitoring   bool    `json:"monitoring"`
}

// FormatPayload creates the JSON payload for a reading.
func FormatPayload(r Reading) ([]byte, error) {
	payload := Payload{
		Thermometer: ThermometerPayload{
			Timestamp:    r.Timestamp.UTC().Format(time.RFC3339),
			TemperatureF: r.Fahrenheit,
			TemperatureC: r.Celsius,
			Monitoring:   r.Monitoring,
		},
	}
	return json.Marshal(payload)
}

// SystemPayload represents the MQTT message payload for system events.
type SystemPayload struct {
	System SystemPayloadInner `json:"system"`
}

// SystemPayloadInner contains the system event details.
type SystemPayloadInner struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	Reason    string `json:"reason,omitempty"`
}

// FormatSystemPayload creates the JSON payload for a system event.
func FormatSystemPayload(event SystemEvent) ([]byte, error) {
	payload := SystemPayload{
		System: SystemPayloadInner{
			Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
			Event:     event.Event,
			Reason:    event.Reason,
		},
	}
	return json.Marshal(payload)
}

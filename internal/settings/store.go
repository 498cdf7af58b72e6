package settings

import (
	"fmt"
	"log"
	"strconv"
)

// Preference keys. The store maps each to a string-encoded value.
const (
	KeyUseCelsius   = "useCelsius"
	KeySoundEnabled = "soundEnabled"
	KeyBrightness   = "brightness"
	KeyEmissivity   = "emissivity"
	KeyTargetTemp   = "targetTemp"
	KeyTolerance    = "tolerance"
)

// Store persists named preferences. Implementations: sqliteStore (real),
// FakeStore (tests).
type Store interface {
	// Get returns the stored value for key and whether it was present.
	Get(key string) (string, bool, error)

	// Put stores value under key, replacing any previous value.
	Put(key, value string) error

	// Close releases store resources.
	Close() error
}

// Opener acquires a Store for the duration of a single Load or Save call.
// The store is never held open across control-loop ticks.
type Opener func() (Store, error)

// Load reads every preference from the store. A missing or unparseable key
// yields its documented default, never an error; the only error path is
// failing to open the store itself.
func Load(open Opener) (Settings, error) {
	st, err := open()
	if err != nil {
		return Default(), fmt.Errorf("open settings store: %w", err)
	}
	defer st.Close()

	s := Default()
	s.UseCelsius = loadBool(st, KeyUseCelsius, DefaultUseCelsius)
	s.SoundEnabled = loadBool(st, KeySoundEnabled, DefaultSoundEnabled)
	s.Brightness = loadInt(st, KeyBrightness, DefaultBrightness)
	s.Emissivity = ClampEmissivity(loadFloat(st, KeyEmissivity, DefaultEmissivity))
	s.TargetTemp = loadFloat(st, KeyTargetTemp, DefaultTargetTemp)
	s.Tolerance = loadFloat(st, KeyTolerance, DefaultTolerance)
	return s, nil
}

// Save writes every field to the store. The caller treats a nil return as
// the record being durable; partial writes surface as an error.
func Save(open Opener, s Settings) error {
	st, err := open()
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	defer st.Close()

	pairs := []struct{ key, value string }{
		{KeyUseCelsius, strconv.FormatBool(s.UseCelsius)},
		{KeySoundEnabled, strconv.FormatBool(s.SoundEnabled)},
		{KeyBrightness, strconv.Itoa(s.Brightness)},
		{KeyEmissivity, strconv.FormatFloat(s.Emissivity, 'f', -1, 64)},
		{KeyTargetTemp, strconv.FormatFloat(s.TargetTemp, 'f', -1, 64)},
		{KeyTolerance, strconv.FormatFloat(s.Tolerance, 'f', -1, 64)},
	}
	for _, p := range pairs {
		if err := st.Put(p.key, p.value); err != nil {
			return fmt.Errorf("put %s: %w", p.key, err)
		}
	}
	return nil
}

func loadBool(st Store, key string, def bool) bool {
	raw, ok, err := st.Get(key)
	if err != nil || !ok {
		logMiss(key, err)
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("settings: bad value for %s: %q, using default", key, raw)
		return def
	}
	return v
}

func loadInt(st Store, key string, def int) int {
	raw, ok, err := st.Get(key)
	if err != nil || !ok {
		logMiss(key, err)
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("settings: bad value for %s: %q, using default", key, raw)
		return def
	}
	return v
}

func loadFloat(st Store, key string, def float64) float64 {
	raw, ok, err := st.Get(key)
	if err != nil || !ok {
		logMiss(key, err)
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("settings: bad value for %s: %q, using default", key, raw)
		return def
	}
	return v
}

func logMiss(key string, err error) {
	if err != nil {
		log.Printf("settings: read %s: %v, using default", key, err)
	}
	// A plain miss is the expected first-boot case; stay quiet.
}

// Package settings holds the validated device configuration and its
// bounded adjustment operators. This package has NO external dependencies;
// persistence is behind the Store interface in store.go.
package settings

// Field bounds and adjustment steps.
const (
	MinEmissivity  = 0.65
	MaxEmissivity  = 1.00
	EmissivityStep = 0.01

	MinTargetTemp    = 100.0 // °C
	MaxTargetTemp    = 400.0 // °C
	TargetStepC      = 5.0
	TargetStepF      = 10.0 // step used while the display unit is Fahrenheit
	MinTolerance     = 1.0
	MaxTolerance     = 20.0
	ToleranceStepC   = 0.5
	ToleranceStepF   = 1.0
	BrightnessStep   = 64
	BrightnessLevels = 256
)

// Defaults applied when a key is missing from the store.
const (
	DefaultUseCelsius   = true
	DefaultSoundEnabled = true
	DefaultBrightness   = 128
	DefaultEmissivity   = 0.95
	DefaultTargetTemp   = 338.0
	DefaultTolerance    = 5.0
)

// Settings is the persisted device configuration. Every field holds either
// a value loaded from the store or the output of one of the bounded
// operators below; no other code mutates it.
type Settings struct {
	UseCelsius   bool
	SoundEnabled bool
	Brightness   int     // 0..255
	Emissivity   float64 // MinEmissivity..MaxEmissivity
	TargetTemp   float64 // °C-native regardless of display unit
	Tolerance    float64
}

// Default returns the documented default for every field.
func Default() Settings {
	return Settings{
		UseCelsius:   DefaultUseCelsius,
		SoundEnabled: DefaultSoundEnabled,
		Brightness:   DefaultBrightness,
		Emissivity:   DefaultEmissivity,
		TargetTemp:   DefaultTargetTemp,
		Tolerance:    DefaultTolerance,
	}
}

// ToggleUnit flips the display unit. TargetTemp and Tolerance stay in
// their stored scale; see TestUnitToggleDoesNotConvertThresholds.
func (s Settings) ToggleUnit() Settings {
	s.UseCelsius = !s.UseCelsius
	return s
}

// ToggleSound flips audible feedback.
func (s Settings) ToggleSound() Settings {
	s.SoundEnabled = !s.SoundEnabled
	return s
}

// CycleBrightness advances brightness by BrightnessStep, wrapping modulo 256.
// Starting from the default this walks 128 → 192 → 0 → 64 → 128.
func (s Settings) CycleBrightness() Settings {
	s.Brightness = (s.Brightness + BrightnessStep) % BrightnessLevels
	return s
}

// StepTargetTemp advances the target temperature by the unit-dependent
// step, wrapping from above MaxTargetTemp back to MinTargetTemp.
func (s Settings) StepTargetTemp() Settings {
	step := TargetStepC
	if !s.UseCelsius {
		step = TargetStepF
	}
	s.TargetTemp += step
	if s.TargetTemp > MaxTargetTemp {
		s.TargetTemp = MinTargetTemp
	}
	return s
}

// StepTolerance advances the alert tolerance by the unit-dependent step,
// wrapping from above MaxTolerance back to MinTolerance.
func (s Settings) StepTolerance() Settings {
	step := ToleranceStepC
	if !s.UseCelsius {
		step = ToleranceStepF
	}
	s.Tolerance += step
	if s.Tolerance > MaxTolerance {
		s.Tolerance = MinTolerance
	}
	return s
}

// WithEmissivity returns a copy with emissivity clamped to its valid range.
// Emissivity is only ever written through the modal confirm path.
func (s Settings) WithEmissivity(e float64) Settings {
	s.Emissivity = ClampEmissivity(e)
	return s
}

// ClampEmissivity bounds e to [MinEmissivity, MaxEmissivity].
func ClampEmissivity(e float64) float64 {
	if e < MinEmissivity {
		return MinEmissivity
	}
	if e > MaxEmissivity {
		return MaxEmissivity
	}
	return e
}

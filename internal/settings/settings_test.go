package settings

import "testing"

func TestDefaults(t *testing.T) {
	s := Default()
	if !s.UseCelsius {
		t.Error("default unit should be celsius")
	}
	if !s.SoundEnabled {
		t.Error("sound should default to enabled")
	}
	if s.Brightness != 128 {
		t.Errorf("expected default brightness 128, got %d", s.Brightness)
	}
	if s.Emissivity != 0.95 {
		t.Errorf("expected default emissivity 0.95, got %v", s.Emissivity)
	}
	if s.TargetTemp != 338.0 {
		t.Errorf("expected default target 338.0, got %v", s.TargetTemp)
	}
	if s.Tolerance != 5.0 {
		t.Errorf("expected default tolerance 5.0, got %v", s.Tolerance)
	}
}

func TestBrightnessCycleIsClosedWithPeriodFour(t *testing.T) {
	s := Default()

	want := []int{192, 0, 64, 128}
	for i, w := range want {
		s = s.CycleBrightness()
		if s.Brightness != w {
			t.Errorf("step %d: expected brightness %d, got %d", i+1, w, s.Brightness)
		}
	}

	if s.Brightness != Default().Brightness {
		t.Errorf("four steps should return to the default, got %d", s.Brightness)
	}
}

func TestBrightnessStaysInRange(t *testing.T) {
	s := Default()
	for i := 0; i < 20; i++ {
		s = s.CycleBrightness()
		if s.Brightness < 0 || s.Brightness > 255 {
			t.Fatalf("step %d: brightness %d out of range", i, s.Brightness)
		}
	}
}

func TestTargetTempWrapsAboveMax(t *testing.T) {
	s := Default()
	s.TargetTemp = MaxTargetTemp - 2 // just below max

	s = s.StepTargetTemp()
	if s.TargetTemp != MinTargetTemp {
		t.Errorf("expected wrap to %v, got %v", MinTargetTemp, s.TargetTemp)
	}

	// Keep stepping; it must never exceed the max.
	for i := 0; i < 100; i++ {
		s = s.StepTargetTemp()
		if s.TargetTemp > MaxTargetTemp {
			t.Fatalf("step %d: target %v above max", i, s.TargetTemp)
		}
		if s.TargetTemp < MinTargetTemp {
			t.Fatalf("step %d: target %v below min", i, s.TargetTemp)
		}
	}
}

func TestTargetTempStepDependsOnUnit(t *testing.T) {
	s := Default()
	s.TargetTemp = 200

	c := s.StepTargetTemp()
	if c.TargetTemp != 205 {
		t.Errorf("celsius step: expected 205, got %v", c.TargetTemp)
	}

	s.UseCelsius = false
	f := s.StepTargetTemp()
	if f.TargetTemp != 210 {
		t.Errorf("fahrenheit step: expected 210, got %v", f.TargetTemp)
	}
}

func TestToleranceWraps(t *testing.T) {
	s := Default()
	s.Tolerance = 20.0

	s = s.StepTolerance()
	if s.Tolerance != MinTolerance {
		t.Errorf("expected wrap to %v, got %v", MinTolerance, s.Tolerance)
	}
}

func TestToleranceStepDependsOnUnit(t *testing.T) {
	s := Default()
	s.Tolerance = 5.0

	c := s.StepTolerance()
	if c.Tolerance != 5.5 {
		t.Errorf("celsius step: expected 5.5, got %v", c.Tolerance)
	}

	s.UseCelsius = false
	f := s.StepTolerance()
	if f.Tolerance != 6.0 {
		t.Errorf("fahrenheit step: expected 6.0, got %v", f.Tolerance)
	}
}

// TestUnitToggleDoesNotConvertThresholds pins intentional behavior: the
// stored target and tolerance stay in their original scale when the
// display unit flips, so the alert band does not move.
func TestUnitToggleDoesNotConvertThresholds(t *testing.T) {
	s := Default()
	s.TargetTemp = 338.0
	s.Tolerance = 5.0

	flipped := s.ToggleUnit()
	if flipped.UseCelsius {
		t.Error("expected unit to flip to fahrenheit")
	}
	if flipped.TargetTemp != 338.0 {
		t.Errorf("target must not be converted, got %v", flipped.TargetTemp)
	}
	if flipped.Tolerance != 5.0 {
		t.Errorf("tolerance must not be converted, got %v", flipped.Tolerance)
	}

	back := flipped.ToggleUnit()
	if !back.UseCelsius {
		t.Error("expected unit to flip back to celsius")
	}
}

func TestToggleSound(t *testing.T) {
	s := Default()
	s = s.ToggleSound()
	if s.SoundEnabled {
		t.Error("expected sound off after toggle")
	}
	s = s.ToggleSound()
	if !s.SoundEnabled {
		t.Error("expected sound on after second toggle")
	}
}

func TestClampEmissivity(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.5, MinEmissivity},
		{0.65, 0.65},
		{0.80, 0.80},
		{1.00, 1.00},
		{1.10, MaxEmissivity},
	}
	for _, tt := range tests {
		if got := ClampEmissivity(tt.in); got != tt.want {
			t.Errorf("ClampEmissivity(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWithEmissivityClamps(t *testing.T) {
	s := Default().WithEmissivity(2.0)
	if s.Emissivity != MaxEmissivity {
		t.Errorf("expected clamp to %v, got %v", MaxEmissivity, s.Emissivity)
	}
}

package screen

import (
	"fmt"

	"github.com/ReptilePvP/Cores3Cloud/internal/display"
	"github.com/ReptilePvP/Cores3Cloud/internal/monitor"
	"github.com/ReptilePvP/Cores3Cloud/internal/settings"
	"github.com/ReptilePvP/Cores3Cloud/internal/touch"
)

// View is everything the renderer needs beyond navigation state.
type View struct {
	TempC      float64
	HaveSample bool
	Monitoring bool
	Message    string
	Level      monitor.Status
	LowBattery bool

	// ArmedID highlights the button currently held down, "" for none.
	ArmedID string
}

// Draw renders the active screen onto the surface. The caller flushes.
func Draw(s display.Surface, st State, cfg settings.Settings, v View) {
	w, h := s.Size()
	s.FillScreen(display.ColorBlack)

	switch st.Screen {
	case SettingsMenu:
		drawMenu(s, st, cfg, v, w, h)
	case EmissivityModal:
		drawModal(s, st, cfg, v, w, h)
	case RestartConfirm:
		drawConfirm(s, v, w, h)
	default:
		drawMain(s, st, cfg, v, w, h)
	}
}

func drawMain(s display.Surface, st State, cfg settings.Settings, v View, w, h int) {
	temp := "--"
	if v.HaveSample {
		temp = monitor.FormatTemp(v.TempC, cfg.UseCelsius)
	}
	s.TextCentered(temp, w/2, h/4, display.ColorWhite)

	if v.Monitoring {
		target := fmt.Sprintf("Target %s ±%.1f",
			monitor.FormatTemp(cfg.TargetTemp, cfg.UseCelsius), cfg.Tolerance)
		s.TextCentered(target, w/2, h/4+20, display.ColorGrey)
	}

	if v.Message != "" {
		s.TextCentered(v.Message, w/2, h/2+8, statusColor(v.Level))
	}

	if v.LowBattery {
		// Battery glyph in the top-right corner.
		s.DrawRect(w-24, 4, 18, 10, display.ColorRed)
		s.FillRect(w-6, 6, 2, 6, display.ColorRed)
	}

	drawButtons(s, Buttons(st, cfg, v.Monitoring, w, h), v.ArmedID)
}

func drawMenu(s display.Surface, st State, cfg settings.Settings, v View, w, h int) {
	buttons := Buttons(st, cfg, v.Monitoring, w, h)
	for i, b := range buttons {
		fill := display.ColorBlack
		if b.ID == v.ArmedID {
			fill = display.ColorGrey
		} else if i == st.Selected && b.ID != BtnBack {
			fill = display.ColorBlue
		}
		if fill != display.ColorBlack {
			s.FillRoundRect(b.X+2, b.Y+2, b.W-4, b.H-4, 4, fill)
		}
		s.DrawRoundRect(b.X+2, b.Y+2, b.W-4, b.H-4, 4, display.ColorWhite)
		s.TextCentered(b.Label, b.X+b.W/2, b.Y+b.H/2-6, display.ColorWhite)
	}
}

func drawModal(s display.Surface, st State, cfg settings.Settings, v View, w, h int) {
	boxW, boxH := w*3/4, h/2
	boxX, boxY := (w-boxW)/2, (h-boxH)/2

	s.FillRoundRect(boxX, boxY, boxW, boxH, 6, display.ColorBlack)
	s.DrawRoundRect(boxX, boxY, boxW, boxH, 6, display.ColorWhite)
	s.TextCentered("Emissivity", w/2, boxY+6, display.ColorWhite)
	s.TextCentered(fmt.Sprintf("%.2f", st.Pending), w/2, boxY+boxH/3, display.ColorYellow)

	drawButtons(s, Buttons(st, cfg, v.Monitoring, w, h), v.ArmedID)
}

func drawConfirm(s display.Surface, v View, w, h int) {
	s.TextCentered("Apply new emissivity?", w/2, h/4, display.ColorWhite)
	s.TextCentered("Device will restart", w/2, h/4+20, display.ColorOrange)

	// Warning triangle above the prompt.
	s.FillTriangle(w/2-12, h/8+16, w/2+12, h/8+16, w/2, h/8-8, display.ColorYellow)

	drawButtons(s, confirmButtons(w, h), v.ArmedID)
}

func drawButtons(s display.Surface, buttons []touch.Button, armedID string) {
	for _, b := range buttons {
		fill := display.ColorBlack
		if b.ID == armedID {
			fill = display.ColorGrey
		} else if b.IsToggle && b.ToggleState {
			fill = display.ColorGreen
		}
		if fill != display.ColorBlack {
			s.FillRoundRect(b.X+2, b.Y+2, b.W-4, b.H-4, 4, fill)
		}
		outline := display.ColorWhite
		if !b.Enabled {
			outline = display.ColorGrey
		}
		s.DrawRoundRect(b.X+2, b.Y+2, b.W-4, b.H-4, 4, outline)
		s.TextCentered(b.Label, b.X+b.W/2, b.Y+b.H/2-6, outline)
	}
}

func statusColor(level monitor.Status) display.Color {
	switch level {
	case monitor.StatusWarning:
		return display.ColorOrange
	case monitor.StatusError:
		return display.ColorRed
	case monitor.StatusSuccess:
		return display.ColorGreen
	default:
		return display.ColorWhite
	}
}

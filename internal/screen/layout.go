package screen

import (
	"fmt"

	"github.com/ReptilePvP/Cores3Cloud/internal/settings"
	"github.com/ReptilePvP/Cores3Cloud/internal/touch"
)

// Buttons builds the live hit-target set for the current screen. The same
// set drives both hit testing and rendering, so the two can never skew.
func Buttons(st State, cfg settings.Settings, monitoring bool, w, h int) []touch.Button {
	switch st.Screen {
	case SettingsMenu:
		return menuButtons(cfg, w, h)
	case EmissivityModal:
		return modalButtons(st, w, h)
	case RestartConfirm:
		return confirmButtons(w, h)
	default:
		return mainButtons(monitoring, w, h)
	}
}

func mainButtons(monitoring bool, w, h int) []touch.Button {
	bh := h / 4
	label := "Monitor"
	if monitoring {
		label = "Stop"
	}
	return []touch.Button{
		{
			ID: BtnMonitor, Label: label, Enabled: true,
			IsToggle: true, ToggleState: monitoring,
			X: 0, Y: h - bh, W: w / 2, H: bh,
		},
		{
			ID: BtnSettings, Label: "Settings", Enabled: true,
			X: w / 2, Y: h - bh, W: w - w/2, H: bh,
		},
	}
}

func menuButtons(cfg settings.Settings, w, h int) []touch.Button {
	labels := []string{
		"Unit: " + unitLabel(cfg.UseCelsius),
		"Sound: " + onOff(cfg.SoundEnabled),
		fmt.Sprintf("Brightness: %d", cfg.Brightness),
		fmt.Sprintf("Emissivity: %.2f", cfg.Emissivity),
		fmt.Sprintf("Target: %.1f", cfg.TargetTemp),
		fmt.Sprintf("Tolerance: %.1f", cfg.Tolerance),
	}

	backH := h / 5
	gridH := h - backH
	cellW := w / 2
	cellH := gridH / 3

	buttons := make([]touch.Button, 0, len(menuItems)+1)
	for i, id := range menuItems {
		col := i % 2
		row := i / 2
		buttons = append(buttons, touch.Button{
			ID: id, Label: labels[i], Enabled: true,
			X: col * cellW, Y: row * cellH, W: cellW, H: cellH,
		})
	}

	buttons = append(buttons, touch.Button{
		ID: BtnBack, Label: "Back", Enabled: true,
		X: 0, Y: gridH, W: w, H: backH,
	})
	return buttons
}

func modalButtons(st State, w, h int) []touch.Button {
	// Centered box with -/+ flanking the staged value and Done below.
	boxW, boxH := w*3/4, h/2
	boxX, boxY := (w-boxW)/2, (h-boxH)/2
	btn := boxH / 3

	return []touch.Button{
		{
			ID: BtnEmisMinus, Label: "-", Enabled: st.Pending > settings.MinEmissivity,
			X: boxX + 8, Y: boxY + btn/2, W: btn, H: btn,
		},
		{
			ID: BtnEmisPlus, Label: "+", Enabled: st.Pending < settings.MaxEmissivity,
			X: boxX + boxW - btn - 8, Y: boxY + btn/2, W: btn, H: btn,
		},
		{
			ID: BtnEmisDone, Label: "Done", Enabled: true,
			X: boxX + 8, Y: boxY + boxH - btn - 8, W: boxW - 16, H: btn,
		},
	}
}

func confirmButtons(w, h int) []touch.Button {
	bh := h / 4
	return []touch.Button{
		{
			ID: BtnRestart, Label: "Restart", Enabled: true,
			X: 0, Y: h - bh, W: w / 2, H: bh,
		},
		{
			ID: BtnCancel, Label: "Cancel", Enabled: true,
			X: w / 2, Y: h - bh, W: w - w/2, H: bh,
		},
	}
}

func unitLabel(celsius bool) string {
	if celsius {
		return "°C"
	}
	return "°F"
}

func onOff(on bool) string {
	if on {
		return "On"
	}
	return "Off"
}

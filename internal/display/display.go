// Package display defines the draw capability the control loop renders
// through, with hardware abstraction. The real implementation rasterizes
// primitives and pushes them to an SSD1306 panel over I2C; the fake
// implementation records draw operations for tests.
package display

// Color is a 24-bit RGB value (0xRRGGBB). Monochrome surfaces map any
// non-black color to lit pixels.
type Color uint32

const (
	ColorBlack  Color = 0x000000
	ColorWhite  Color = 0xffffff
	ColorRed    Color = 0xff0000
	ColorGreen  Color = 0x00cc44
	ColorBlue   Color = 0x2266ff
	ColorYellow Color = 0xffcc00
	ColorOrange Color = 0xff8800
	ColorGrey   Color = 0x666666
)

// Surface accepts draw commands in a fixed pixel coordinate space matching
// the physical screen. Nothing is visible until Flush.
type Surface interface {
	// Size returns the screen dimensions in pixels.
	Size() (w, h int)

	// FillScreen clears the whole screen to c.
	FillScreen(c Color)

	FillRect(x, y, w, h int, c Color)
	DrawRect(x, y, w, h int, c Color)
	FillRoundRect(x, y, w, h, r int, c Color)
	DrawRoundRect(x, y, w, h, r int, c Color)
	FillCircle(x, y, r int, c Color)
	FillTriangle(x0, y0, x1, y1, x2, y2 int, c Color)

	// Text draws s with its top-left corner at (x, y).
	Text(s string, x, y int, c Color)

	// TextCentered draws s horizontally centered on x with its top at y.
	TextCentered(s string, x, y int, c Color)

	// SetBrightness adjusts the backlight/contrast, 0..255.
	SetBrightness(b int)

	// Flush pushes the frame to the panel.
	Flush() error

	// Close releases display resources.
	Close() error
}

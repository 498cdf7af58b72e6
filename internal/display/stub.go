//go:build !linux

package display

import "errors"

// SSD1306 is not available on non-Linux platforms.
type SSD1306 struct{}

// NewSSD1306 returns an error on non-Linux platforms.
func NewSSD1306(busName string, w, h int) (*SSD1306, error) {
	return nil, errors.New("display: not supported on this platform (requires Linux)")
}

func (d *SSD1306) Size() (int, int)                                 { return 0, 0 }
func (d *SSD1306) FillScreen(c Color)                               {}
func (d *SSD1306) FillRect(x, y, w, h int, c Color)                 {}
func (d *SSD1306) DrawRect(x, y, w, h int, c Color)                 {}
func (d *SSD1306) FillRoundRect(x, y, w, h, r int, c Color)         {}
func (d *SSD1306) DrawRoundRect(x, y, w, h, r int, c Color)         {}
func (d *SSD1306) FillCircle(x, y, r int, c Color)                  {}
func (d *SSD1306) FillTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {}
func (d *SSD1306) Text(s string, x, y int, c Color)                 {}
func (d *SSD1306) TextCentered(s string, x, y int, c Color)         {}
func (d *SSD1306) SetBrightness(b int)                              {}
func (d *SSD1306) Flush() error                                     { return errors.New("display: not supported") }
func (d *SSD1306) Close() error                                     { return nil }

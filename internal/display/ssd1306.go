//go:build linux

package display

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"
)

// SSD1306 renders draw primitives into a frame buffer and pushes it to an
// SSD1306 OLED over I2C. The panel is monochrome: any non-black Color
// lights the pixel.
type SSD1306 struct {
	dev *ssd1306.Dev
	img *image1bit.VerticalLSB
	w   int
	h   int
}

// NewSSD1306 opens the named I2C bus ("" = first available) and binds a
// panel with the given dimensions.
func NewSSD1306(busName string, w, h int) (*SSD1306, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init host: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", busName, err)
	}

	opts := ssd1306.DefaultOpts
	opts.W = w
	opts.H = h
	dev, err := ssd1306.NewI2C(bus, &opts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("init ssd1306: %w", err)
	}

	return &SSD1306{
		dev: dev,
		img: image1bit.NewVerticalLSB(image.Rect(0, 0, w, h)),
		w:   w,
		h:   h,
	}, nil
}

func (d *SSD1306) Size() (int, int) { return d.w, d.h }

func (d *SSD1306) FillScreen(c Color) {
	d.FillRect(0, 0, d.w, d.h, c)
}

func (d *SSD1306) FillRect(x, y, w, h int, c Color) {
	bit := toBit(c)
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			d.set(px, py, bit)
		}
	}
}

func (d *SSD1306) DrawRect(x, y, w, h int, c Color) {
	bit := toBit(c)
	for px := x; px < x+w; px++ {
		d.set(px, y, bit)
		d.set(px, y+h-1, bit)
	}
	for py := y; py < y+h; py++ {
		d.set(x, py, bit)
		d.set(x+w-1, py, bit)
	}
}

// FillRoundRect approximates rounded corners with a cross of rects plus
// quarter circles. Good enough at panel resolution.
func (d *SSD1306) FillRoundRect(x, y, w, h, r int, c Color) {
	if r <= 0 {
		d.FillRect(x, y, w, h, c)
		return
	}
	d.FillRect(x+r, y, w-2*r, h, c)
	d.FillRect(x, y+r, r, h-2*r, c)
	d.FillRect(x+w-r, y+r, r, h-2*r, c)
	d.FillCircle(x+r, y+r, r, c)
	d.FillCircle(x+w-r-1, y+r, r, c)
	d.FillCircle(x+r, y+h-r-1, r, c)
	d.FillCircle(x+w-r-1, y+h-r-1, r, c)
}

func (d *SSD1306) DrawRoundRect(x, y, w, h, r int, c Color) {
	// Corner fidelity does not matter on a 1-bit panel; draw the outline square.
	d.DrawRect(x, y, w, h, c)
}

func (d *SSD1306) FillCircle(cx, cy, r int, c Color) {
	bit := toBit(c)
	for py := -r; py <= r; py++ {
		for px := -r; px <= r; px++ {
			if px*px+py*py <= r*r {
				d.set(cx+px, cy+py, bit)
			}
		}
	}
}

func (d *SSD1306) FillTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	bit := toBit(c)
	minX, maxX := min3(x0, x1, x2), max3(x0, x1, x2)
	minY, maxY := min3(y0, y1, y2), max3(y0, y1, y2)
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			e0 := (x1-x0)*(py-y0) - (y1-y0)*(px-x0)
			e1 := (x2-x1)*(py-y1) - (y2-y1)*(px-x1)
			e2 := (x0-x2)*(py-y2) - (y0-y2)*(px-x2)
			if (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0) {
				d.set(px, py, bit)
			}
		}
	}
}

func (d *SSD1306) Text(s string, x, y int, c Color) {
	face := basicfont.Face7x13
	drawer := font.Drawer{
		Dst:  d.img,
		Src:  image.NewUniform(toGray(c)),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	drawer.DrawString(s)
}

func (d *SSD1306) TextCentered(s string, x, y int, c Color) {
	w := font.MeasureString(basicfont.Face7x13, s).Ceil()
	d.Text(s, x-w/2, y, c)
}

func (d *SSD1306) SetBrightness(b int) {
	if b < 0 {
		b = 0
	}
	if b > 255 {
		b = 255
	}
	// SSD1306 has no backlight; contrast is the closest analogue.
	if err := d.dev.SetContrast(byte(b)); err != nil {
		log.Printf("display: set contrast: %v", err)
	}
}

func (d *SSD1306) Flush() error {
	if err := d.dev.Draw(d.dev.Bounds(), d.img, image.Point{}); err != nil {
		return fmt.Errorf("push frame: %w", err)
	}
	return nil
}

func (d *SSD1306) Close() error {
	return d.dev.Halt()
}

func (d *SSD1306) set(x, y int, bit image1bit.Bit) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return
	}
	d.img.SetBit(x, y, bit)
}

func toBit(c Color) image1bit.Bit {
	return image1bit.Bit(c != ColorBlack)
}

func toGray(c Color) color.Color {
	if c == ColorBlack {
		return color.Gray{Y: 0}
	}
	return color.Gray{Y: 255}
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

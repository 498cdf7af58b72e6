package display

// Op records a single draw operation for test assertions.
type Op struct {
	Kind  string // "fillScreen", "fillRect", "rect", "fillRoundRect", "roundRect", "circle", "triangle", "text", "textCentered"
	X, Y  int
	W, H  int
	Text  string
	Color Color
}

// FakeSurface records draw commands instead of rendering them.
type FakeSurface struct {
	// W, H is the reported screen size.
	W, H int

	// Ops contains every draw operation since the last Reset.
	Ops []Op

	// Brightness is the last value passed to SetBrightness (-1 = never set).
	Brightness int

	// Flushes counts Flush calls.
	Flushes int

	// Closed tracks if Close was called.
	Closed bool

	// FlushError, if set, will be returned by Flush.
	FlushError error
}

// NewFakeSurface creates a FakeSurface with the given dimensions.
func NewFakeSurface(w, h int) *FakeSurface {
	return &FakeSurface{W: w, H: h, Brightness: -1}
}

func (f *FakeSurface) Size() (int, int) { return f.W, f.H }

func (f *FakeSurface) FillScreen(c Color) {
	f.Ops = append(f.Ops, Op{Kind: "fillScreen", W: f.W, H: f.H, Color: c})
}

func (f *FakeSurface) FillRect(x, y, w, h int, c Color) {
	f.Ops = append(f.Ops, Op{Kind: "fillRect", X: x, Y: y, W: w, H: h, Color: c})
}

func (f *FakeSurface) DrawRect(x, y, w, h int, c Color) {
	f.Ops = append(f.Ops, Op{Kind: "rect", X: x, Y: y, W: w, H: h, Color: c})
}

func (f *FakeSurface) FillRoundRect(x, y, w, h, r int, c Color) {
	f.Ops = append(f.Ops, Op{Kind: "fillRoundRect", X: x, Y: y, W: w, H: h, Color: c})
}

func (f *FakeSurface) DrawRoundRect(x, y, w, h, r int, c Color) {
	f.Ops = append(f.Ops, Op{Kind: "roundRect", X: x, Y: y, W: w, H: h, Color: c})
}

func (f *FakeSurface) FillCircle(x, y, r int, c Color) {
	f.Ops = append(f.Ops, Op{Kind: "circle", X: x, Y: y, W: r, Color: c})
}

func (f *FakeSurface) FillTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	f.Ops = append(f.Ops, Op{Kind: "triangle", X: x0, Y: y0, Color: c})
}

func (f *FakeSurface) Text(s string, x, y int, c Color) {
	f.Ops = append(f.Ops, Op{Kind: "text", X: x, Y: y, Text: s, Color: c})
}

func (f *FakeSurface) TextCentered(s string, x, y int, c Color) {
	f.Ops = append(f.Ops, Op{Kind: "textCentered", X: x, Y: y, Text: s, Color: c})
}

func (f *FakeSurface) SetBrightness(b int) { f.Brightness = b }

func (f *FakeSurface) Flush() error {
	if f.FlushError != nil {
		return f.FlushError
	}
	f.Flushes++
	return nil
}

func (f *FakeSurface) Close() error {
	f.Closed = true
	return nil
}

// Reset clears recorded operations but keeps size and brightness.
func (f *FakeSurface) Reset() {
	f.Ops = nil
	f.Flushes = 0
}

// HasText reports whether any text op since the last Reset contains s.
func (f *FakeSurface) HasText(s string) bool {
	for _, op := range f.Ops {
		if (op.Kind == "text" || op.Kind == "textCentered") && op.Text == s {
			return true
		}
	}
	return false
}

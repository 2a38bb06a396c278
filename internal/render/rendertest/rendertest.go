// Package rendertest provides in-memory render backends for tests.
// Nothing is drawn; every call is counted so tests can assert on what a
// viewer asked the backend to do.
package rendertest

import (
	"image"
	"image/color"

	"chosenoffset.com/serpent/internal/render"
)

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return &GeoM{} }
	}
}

// Renderer records draw calls.
type Renderer struct {
	FilledCircles  int
	StrokedCircles int
	Lines          int
	Polygons       int
	Texts          []string
	ImagesCreated  int
}

// NewImage creates a blank in-memory image.
func (r *Renderer) NewImage(width, height int) render.Image {
	r.ImagesCreated++
	return NewImage(width, height)
}

// FillCircle records a filled circle.
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.FilledCircles++
}

// StrokeCircle records a circle outline.
func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	r.StrokedCircles++
}

// StrokeLine records a line.
func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	r.Lines++
}

// FillPolygon records a polygon fill.
func (r *Renderer) FillPolygon(dst render.Image, points []render.Vec, clr color.Color) {
	r.Polygons++
}

// DrawText records the text.
func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.Texts = append(r.Texts, text)
}

// MeasureText uses a fixed 7x13 cell.
func (r *Renderer) MeasureText(text string, scale float64) (width, height int) {
	return len(text) * 7, 13
}

// Reset clears all counters.
func (r *Renderer) Reset() {
	*r = Renderer{}
}

// Image is a sized surface that ignores drawing.
type Image struct {
	bounds image.Rectangle
	Fills  int
	Draws  int
}

// NewImage creates an image of the given size.
func NewImage(width, height int) *Image {
	return &Image{bounds: image.Rect(0, 0, width, height)}
}

func (i *Image) Bounds() image.Rectangle { return i.bounds }
func (i *Image) Size() (int, int)        { return i.bounds.Dx(), i.bounds.Dy() }
func (i *Image) Fill(clr color.Color)    { i.Fills++ }
func (i *Image) Dispose()                {}

func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	i.Draws++
}

// GeoM is a no-op transformation.
type GeoM struct {
	TX, TY float64
}

func (g *GeoM) Translate(tx, ty float64) { g.TX += tx; g.TY += ty }

// Input is a scripted InputManager. Keys in JustPressed fire once and are
// cleared by the next call to Frame.
type Input struct {
	JustPressed map[render.Key]bool
	CursorX     int
	CursorY     int
}

// NewInput creates an input with nothing pressed.
func NewInput() *Input {
	return &Input{
		JustPressed: make(map[render.Key]bool),
	}
}

// Tap marks key as just pressed for the next frame.
func (in *Input) Tap(key render.Key) {
	in.JustPressed[key] = true
}

// Frame clears just-pressed keys.
func (in *Input) Frame() {
	in.JustPressed = make(map[render.Key]bool)
}

func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.JustPressed[key] }
func (in *Input) GetCursorPosition() (int, int)        { return in.CursorX, in.CursorY }

// Package hud provides a heads-up display for the chain viewer: tick count,
// head kinematics, leash tension and world bounds status.
package hud

import (
	"fmt"
	"image/color"
	"math"

	"chosenoffset.com/serpent/internal/chain"
	"chosenoffset.com/serpent/internal/core/geometry"
	"chosenoffset.com/serpent/internal/render"
)

// minPanelWidth is the narrowest the panel gets; longer lines widen it.
const minPanelWidth = 200

// HUDConfig defines what to display in the HUD
type HUDConfig struct {
	ShowPosition bool    // Show head position
	ShowHeading  bool    // Show heading and speed
	ShowTension  bool    // Show leash tension bar
	Position     string  // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity      float64 // Background opacity (0-1)
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		ShowPosition: true,
		ShowHeading:  true,
		ShowTension:  true,
		Position:     "top-left",
		Opacity:      0.7,
	}
}

// Status is the viewer state the HUD reports alongside the chain
type Status struct {
	Paused     bool
	CursorOver bool // Cursor is inside the body silhouette
}

// HUD manages the heads-up display
type HUD struct {
	config       *HUDConfig
	screenWidth  int
	screenHeight int

	chain  *chain.Chain
	status Status

	// Cached layout
	panelWidth  int
	panelHeight int
	panel       render.Image
}

// New creates a new HUD with the given configuration
func New(config *HUDConfig, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		panelWidth:   minPanelWidth,
	}
}

// SetChain sets the chain to report on
func (h *HUD) SetChain(c *chain.Chain) {
	h.chain = c
}

// SetStatus updates the viewer status line
func (h *HUD) SetStatus(s Status) {
	h.status = s
}

// Lines returns the text lines of the panel, top to bottom
func (h *HUD) Lines() []string {
	if h.chain == nil {
		return nil
	}

	head := h.chain.Head()
	state := "Running"
	if h.status.Paused {
		state = "Paused"
	}

	lines := []string{
		fmt.Sprintf("Tick: %d  [%s]", h.chain.Ticks(), state),
		fmt.Sprintf("Segments: %d", head.Len()),
	}

	if h.config.ShowPosition {
		p := head.Point()
		lines = append(lines, fmt.Sprintf("Head: %.1f, %.1f", p.X, p.Y))
	}
	if h.config.ShowHeading {
		lines = append(lines, fmt.Sprintf("Heading: %.1f deg", normalizeDegrees(head.Theta())))
		lines = append(lines, fmt.Sprintf("Speed: %.2f", head.Speed()))
	}
	if !h.chain.Contains(head.Point()) {
		lines = append(lines, "Head out of bounds")
	}
	if h.status.CursorOver {
		lines = append(lines, "Cursor on body")
	}

	return lines
}

// Tension returns how taut the tightest leash is, from 0 (slack) to 1 (taut)
func Tension(c *chain.Chain) float64 {
	spacing := c.NodeDistancing()
	prev := c.Head().Point()
	maxDist := 0.0
	for _, n := range c.Head().Nodes() {
		maxDist = math.Max(maxDist, geometry.Distance(prev, n.Point()))
		prev = n.Point()
	}
	return math.Min(maxDist/spacing, 1)
}

// Draw renders the HUD to the screen
func (h *HUD) Draw(screen render.Image, r render.Renderer) {
	if h.chain == nil {
		return
	}

	lines := h.Lines()

	// Size the panel to its content
	h.panelWidth = minPanelWidth
	for _, line := range lines {
		if w, _ := r.MeasureText(line, 1.0); w+16 > h.panelWidth {
			h.panelWidth = w + 16
		}
	}
	h.panelHeight = 16 + len(lines)*16
	if h.config.ShowTension {
		h.panelHeight += 24
	}

	// Calculate position based on config
	x, y := h.calculatePosition()

	// Draw panel background
	h.drawPanel(screen, r, x, y)

	// Current Y offset for drawing
	currentY := y + 8
	for i, line := range lines {
		clr := color.RGBA{200, 200, 200, 255}
		if i == 0 {
			clr = color.RGBA{255, 255, 200, 255}
		}
		h.drawText(screen, r, line, x+8, currentY, clr)
		currentY += 16
	}

	if h.config.ShowTension {
		h.drawTensionBar(screen, r, x+8, currentY+4)
	}
}

// calculatePosition returns the top-left corner of the HUD panel
func (h *HUD) calculatePosition() (int, int) {
	padding := 10

	switch h.config.Position {
	case "top-right":
		return h.screenWidth - h.panelWidth - padding, padding
	case "bottom-left":
		return padding, h.screenHeight - h.panelHeight - padding
	case "bottom-right":
		return h.screenWidth - h.panelWidth - padding, h.screenHeight - h.panelHeight - padding
	default: // "top-left"
		return padding, padding
	}
}

// drawPanel draws the semi-transparent background panel
func (h *HUD) drawPanel(screen render.Image, r render.Renderer, x, y int) {
	// Rebuild the panel image only when its size changes
	if h.panel == nil || h.panel.Bounds().Dx() != h.panelWidth || h.panel.Bounds().Dy() != h.panelHeight {
		if h.panel != nil {
			h.panel.Dispose()
		}
		alpha := uint8(h.config.Opacity * 255)
		h.panel = r.NewImage(h.panelWidth, h.panelHeight)
		h.panel.Fill(color.NRGBA{20, 20, 30, alpha})
	}

	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(h.panel, opts)

	// Border
	borderColor := color.RGBA{60, 60, 80, 255}
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+h.panelWidth), float32(y+h.panelHeight)
	r.StrokeLine(screen, x0, y0, x1, y0, 1, borderColor)
	r.StrokeLine(screen, x1, y0, x1, y1, 1, borderColor)
	r.StrokeLine(screen, x1, y1, x0, y1, 1, borderColor)
	r.StrokeLine(screen, x0, y1, x0, y0, 1, borderColor)
}

// drawTensionBar draws the leash tension as a filled bar
func (h *HUD) drawTensionBar(screen render.Image, r render.Renderer, x, y int) {
	barWidth := float32(h.panelWidth - 16)
	barHeight := float32(12)
	fx, fy := float32(x), float32(y)

	// Background
	r.StrokeLine(screen, fx, fy+barHeight/2, fx+barWidth, fy+barHeight/2, barHeight, color.RGBA{40, 40, 60, 255})

	tension := Tension(h.chain)
	if tension <= 0 {
		return
	}

	// Color based on tension
	var fillColor color.RGBA
	if tension > 0.99 {
		fillColor = color.RGBA{200, 50, 50, 255} // Taut - red
	} else if tension > 0.6 {
		fillColor = color.RGBA{200, 180, 50, 255} // Yellow
	} else {
		fillColor = color.RGBA{50, 180, 50, 255} // Slack - green
	}

	fillWidth := barWidth * float32(tension)
	r.StrokeLine(screen, fx, fy+barHeight/2, fx+fillWidth, fy+barHeight/2, barHeight-2, fillColor)
}

// drawText draws text with a shadow for readability
func (h *HUD) drawText(screen render.Image, r render.Renderer, text string, x, y int, clr color.Color) {
	r.DrawText(screen, text, x+1, y+1, color.RGBA{0, 0, 0, 200}, 1.0)
	r.DrawText(screen, text, x, y, clr, 1.0)
}

// normalizeDegrees converts radians to degrees in [0, 360)
func normalizeDegrees(theta float64) float64 {
	deg := math.Mod(theta*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

package game

import (
	"image/color"

	"chosenoffset.com/serpent/internal/core/geometry"
	"chosenoffset.com/serpent/internal/render"
)

// Draw renders the chain to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(g.Palette.Background)

	if g.FillBody {
		g.drawBody(screen)
	}
	g.drawSideLines(screen)
	g.drawNodes(screen)
	if g.ShowSides {
		g.drawSides(screen)
	}
	g.drawHead(screen)

	g.drawUI(screen)
	if g.ShowHUD {
		g.GameHUD.Draw(screen, g.Renderer)
	}
}

func vec(p geometry.Point) render.Vec {
	return render.Vec{X: float32(p.X), Y: float32(p.Y)}
}

func (g *Game) drawBody(screen render.Image) {
	outline := g.Chain.Outline()
	points := make([]render.Vec, len(outline))
	for i, p := range outline {
		points[i] = vec(p)
	}

	clr := g.Palette.Body
	if g.CursorOver {
		clr = g.Palette.Highlight
	}
	g.Renderer.FillPolygon(screen, points, clr)
}

// drawSideLines connects the left sides and the right sides of consecutive
// nodes, tracing the two edges of the body.
func (g *Game) drawSideLines(screen render.Image) {
	nodes := g.Chain.Head().Nodes()
	for i := 1; i < len(nodes); i++ {
		a, b := nodes[i-1].Sides(), nodes[i].Sides()
		g.line(screen, a.Left, b.Left, g.Palette.Outline)
		g.line(screen, a.Right, b.Right, g.Palette.Outline)
	}
}

func (g *Game) line(screen render.Image, a, b geometry.Point, clr color.Color) {
	g.Renderer.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, clr)
}

func (g *Game) drawNodes(screen render.Image) {
	for _, n := range g.Chain.Head().Nodes() {
		p := n.Point()
		g.Renderer.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(n.Radial()), 1, g.Palette.Node)
	}
}

func (g *Game) drawSides(screen render.Image) {
	for _, n := range g.Chain.Head().Nodes() {
		s := n.Sides()
		g.Renderer.FillCircle(screen, float32(s.Left.X), float32(s.Left.Y), 4, g.Palette.Left)
		g.Renderer.FillCircle(screen, float32(s.Right.X), float32(s.Right.Y), 4, g.Palette.Right)
	}
}

func (g *Game) drawHead(screen render.Image) {
	head := g.Chain.Head()
	p := head.Point()
	g.Renderer.FillCircle(screen, float32(p.X), float32(p.Y), float32(head.Radius()), g.Palette.Head)
	g.Renderer.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(head.Radius()), 2, color.RGBA{200, 200, 50, 255})
}

func (g *Game) drawUI(screen render.Image) {
	// Messages stack upward from the bottom edge
	_, h := screen.Size()
	y := h - 30
	for _, msg := range g.Messages {
		g.Renderer.DrawText(screen, msg.Text, 20, y, messageColor(msg), 1.0)
		y -= 20
	}
}

// messageColor fades a message out over its lifetime.
func messageColor(msg Message) color.NRGBA {
	alpha := uint8(255 * (msg.TimeLeft / msg.MaxTime))
	return color.NRGBA{255, 255, 255, alpha}
}

// Package game is the interactive chain viewer. It implements render.Game,
// so any render backend can drive it: one Update call advances the chain by
// one tick unless the viewer is paused.
package game

import (
	"log"

	"chosenoffset.com/serpent/internal/chain"
	"chosenoffset.com/serpent/internal/core/geometry"
	"chosenoffset.com/serpent/internal/render"
	"chosenoffset.com/serpent/internal/simulation"
	"chosenoffset.com/serpent/internal/ui/hud"
)

// Game holds the viewer state around a single chain.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Chain        *chain.Chain
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Palette      Palette

	// HUD
	GameHUD *hud.HUD

	// Display toggles
	ShowHUD   bool
	ShowSides bool
	FillBody  bool

	// Clock
	Paused bool
	TPS    int

	// UI state
	Messages   []Message
	CursorOver bool
}

// NewGame creates a viewer for c using the viewer settings.
func NewGame(c *chain.Chain, r render.Renderer, input render.InputManager, cfg simulation.ViewerConfig) *Game {
	w, h := c.Bounds()
	hudConfig := &hud.HUDConfig{
		ShowPosition: cfg.HUD.ShowPosition,
		ShowHeading:  cfg.HUD.ShowHeading,
		ShowTension:  cfg.HUD.ShowTension,
		Position:     cfg.HUD.Position,
		Opacity:      cfg.HUD.Opacity,
	}
	g := &Game{
		ScreenWidth:  w,
		ScreenHeight: h,
		Chain:        c,
		Renderer:     r,
		InputMgr:     input,
		Palette:      DefaultPalette(),
		GameHUD:      hud.New(hudConfig, w, h),
		ShowHUD:      cfg.ShowHUD,
		ShowSides:    cfg.ShowSides,
		FillBody:     cfg.FillBody,
		TPS:          cfg.TPS,
	}
	if g.TPS <= 0 || g.TPS > simulation.MaxTPS {
		g.TPS = 60
	}
	g.GameHUD.SetChain(c)
	return g
}

// Update handles input and advances the chain by one tick.
func (g *Game) Update() error {
	dt := 1.0 / float64(g.TPS)

	// Update message timers
	g.updateMessages(dt)

	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		log.Printf("Viewer closed at tick %d", g.Chain.Ticks())
		return render.ErrTerminated
	}

	g.handleToggles()

	if g.InputMgr.IsKeyJustPressed(render.KeySpace) {
		g.Paused = !g.Paused
		if g.Paused {
			g.ShowMessage("Paused")
		} else {
			g.ShowMessage("Resumed")
		}
	}

	if !g.Paused {
		g.Chain.Travel()
	} else if g.InputMgr.IsKeyJustPressed(render.KeyRight) {
		g.Chain.Travel()
	}

	// Hover test against the silhouette
	cx, cy := g.InputMgr.GetCursorPosition()
	g.CursorOver = g.Chain.Covers(geometry.Point{X: float64(cx), Y: float64(cy)})

	g.GameHUD.SetStatus(hud.Status{Paused: g.Paused, CursorOver: g.CursorOver})
	return nil
}

func (g *Game) handleToggles() {
	if g.InputMgr.IsKeyJustPressed(render.KeyH) {
		g.ShowHUD = !g.ShowHUD
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyF) {
		g.FillBody = !g.FillBody
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyS) {
		g.ShowSides = !g.ShowSides
	}
}

// Layout returns the world bounds as the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 2.0,
		MaxTime:  2.0,
	})

	log.Printf("Message: %s (tick %d)", text, g.Chain.Ticks())
}

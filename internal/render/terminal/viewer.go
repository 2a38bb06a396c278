package terminal

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/serpent/internal/chain"
	"chosenoffset.com/serpent/internal/core/geometry"
	"chosenoffset.com/serpent/internal/simulation"
)

var (
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleLeft   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleRight  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// Viewer draws a chain on a tcell screen and advances it on a ticker.
type Viewer struct {
	screen tcell.Screen
	chain  *chain.Chain
	proj   Projection

	tps       int
	paused    bool
	showSides bool

	clicker *Clicker
}

// NewViewer creates a viewer for c on an initialized screen.
func NewViewer(screen tcell.Screen, c *chain.Chain, cfg simulation.ViewerConfig) *Viewer {
	v := &Viewer{
		screen:    screen,
		chain:     c,
		tps:       cfg.TPS,
		showSides: cfg.ShowSides,
	}
	if v.tps <= 0 {
		v.tps = 15
	}
	if v.tps > simulation.MaxTPS {
		v.tps = simulation.MaxTPS
	}
	v.resize()
	return v
}

// EnableSound turns on the step click. Failure leaves the viewer silent.
func (v *Viewer) EnableSound() error {
	clicker, err := NewClicker()
	if err != nil {
		return err
	}
	v.clicker = clicker
	return nil
}

// Paused reports whether the ticker is currently ignored.
func (v *Viewer) Paused() bool {
	return v.paused
}

// resize fits the projection to the screen, keeping the last row for the
// status line.
func (v *Viewer) resize() {
	w, h := v.screen.Size()
	maxX, maxY := v.chain.Bounds()
	v.proj = NewProjection(w, h-1, maxX, maxY)
}

// HandleEvent applies one input event. It returns false when the viewer
// should quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRight:
			v.step()
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				v.paused = !v.paused
				log.Printf("Paused: %v (tick %d)", v.paused, v.chain.Ticks())
			case '.':
				v.step()
			case 's':
				v.showSides = !v.showSides
			}
		}

	case *tcell.EventResize:
		v.screen.Sync()
		v.resize()
	}

	return true
}

// step advances one tick while paused.
func (v *Viewer) step() {
	if !v.paused {
		return
	}
	v.chain.Travel()
	v.clicker.Click()
}

// Tick is called on every timer tick.
func (v *Viewer) Tick() {
	if !v.paused {
		v.chain.Travel()
	}
}

// Draw renders the chain and the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()

	for _, n := range v.chain.Head().Nodes() {
		if v.showSides {
			s := n.Sides()
			v.plot(s.Left, '·', styleLeft)
			v.plot(s.Right, '·', styleRight)
		}
		v.plot(n.Point(), 'o', styleBody)
	}
	v.plot(v.chain.Head().Point(), '@', styleHead)

	v.drawStatus()
	v.screen.Show()
}

func (v *Viewer) plot(p geometry.Point, r rune, style tcell.Style) {
	if x, y, ok := v.proj.Cell(p); ok {
		v.screen.SetContent(x, y, r, nil, style)
	}
}

// StatusLine returns the text shown on the bottom row.
func (v *Viewer) StatusLine() string {
	state := "running"
	if v.paused {
		state = "paused"
	}
	p := v.chain.Head().Point()
	return fmt.Sprintf(" tick %d  head (%.0f, %.0f)  [%s]  space:pause .:step s:sides esc:quit",
		v.chain.Ticks(), p.X, p.Y, state)
}

func (v *Viewer) drawStatus() {
	w, h := v.screen.Size()
	line := []rune(v.StatusLine())
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		v.screen.SetContent(x, h-1, r, nil, styleStatus)
	}
}

// TickInterval is the time between two ticker ticks.
func (v *Viewer) TickInterval() time.Duration {
	return time.Second / time.Duration(v.tps)
}

// Run drives the viewer until the user quits. Events are read on a separate
// goroutine and handled on the loop goroutine, which owns the chain.
func (v *Viewer) Run() {
	ticker := time.NewTicker(v.TickInterval())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	v.Draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !v.HandleEvent(ev) {
				log.Printf("Terminal viewer closed at tick %d", v.chain.Ticks())
				return
			}
			v.Draw()

		case <-ticker.C:
			v.Tick()
			v.Draw()
		}
	}
}

// Close releases the screen and the speaker.
func (v *Viewer) Close() {
	v.clicker.Close()
	v.screen.Fini()
}

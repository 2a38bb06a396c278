package hud

import (
	"math"
	"strings"
	"testing"

	"chosenoffset.com/serpent/internal/chain"
	"chosenoffset.com/serpent/internal/render/rendertest"
)

func newChain(t *testing.T, m chain.Motion) *chain.Chain {
	t.Helper()
	radials := []float64{64, 64, 68, 68, 66, 64, 62, 60, 60, 56}
	c, err := chain.CreateWithMotion(200, 200, 32, radials, 1000, 1000, m)
	if err != nil {
		t.Fatalf("Failed to create chain: %v", err)
	}
	return c
}

func TestLines(t *testing.T) {
	h := New(nil, 1000, 1000)
	if lines := h.Lines(); lines != nil {
		t.Errorf("Expected no lines without a chain, got %v", lines)
	}

	h.SetChain(newChain(t, chain.DefaultMotion()))
	lines := h.Lines()

	want := []string{
		"Tick: 0  [Running]",
		"Segments: 10",
		"Head: 200.0, 204.0",
		"Heading: 92.0 deg",
		"Speed: 4.00",
	}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Expected line %d %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestLinesStatus(t *testing.T) {
	config := DefaultConfig()
	config.ShowPosition = false
	config.ShowHeading = false

	h := New(config, 1000, 1000)
	h.SetChain(newChain(t, chain.Motion{Heading: math.Pi, Speed: 500}))
	h.SetStatus(Status{Paused: true, CursorOver: true})

	joined := strings.Join(h.Lines(), "\n")
	if !strings.Contains(joined, "[Paused]") {
		t.Errorf("Expected paused marker, got %q", joined)
	}
	if !strings.Contains(joined, "Head out of bounds") {
		t.Errorf("Expected out of bounds warning, got %q", joined)
	}
	if !strings.Contains(joined, "Cursor on body") {
		t.Errorf("Expected cursor line, got %q", joined)
	}
	if strings.Contains(joined, "Speed") {
		t.Errorf("Expected heading lines hidden, got %q", joined)
	}
}

func TestTension(t *testing.T) {
	moving := newChain(t, chain.DefaultMotion())
	if got := Tension(moving); got < 0.99 || got > 1 {
		t.Errorf("Expected taut leash after a pull, got %g", got)
	}

	// Stationary head along x: nodes sit exactly one spacing apart
	still := newChain(t, chain.Motion{Heading: 0, Speed: 0})
	if got := Tension(still); got != 1 {
		t.Errorf("Expected tension 1, got %g", got)
	}
}

func TestDraw(t *testing.T) {
	r := &rendertest.Renderer{}
	screen := rendertest.NewImage(1000, 1000)

	h := New(nil, 1000, 1000)
	h.Draw(screen, r)
	if screen.Draws != 0 || len(r.Texts) != 0 {
		t.Error("Expected nothing drawn without a chain")
	}

	h.SetChain(newChain(t, chain.DefaultMotion()))
	h.Draw(screen, r)
	h.Draw(screen, r)

	if r.ImagesCreated != 1 {
		t.Errorf("Expected panel image to be cached, created %d", r.ImagesCreated)
	}
	if screen.Draws != 2 {
		t.Errorf("Expected panel drawn twice, got %d", screen.Draws)
	}
	// Each line is drawn with a shadow
	if got, want := len(r.Texts), 2*2*len(h.Lines()); got != want {
		t.Errorf("Expected %d text draws, got %d", want, got)
	}
}

func TestPanelWidensForLongLines(t *testing.T) {
	r := &rendertest.Renderer{}
	screen := rendertest.NewImage(1000, 1000)

	h := New(nil, 1000, 1000)
	h.SetChain(newChain(t, chain.DefaultMotion()))
	h.Draw(screen, r)
	if h.panelWidth != minPanelWidth {
		t.Errorf("Expected default width %d, got %d", minPanelWidth, h.panelWidth)
	}

	// A head far outside the world prints long coordinates
	h.SetChain(newChain(t, chain.Motion{Heading: math.Pi, Speed: 1e20}))
	h.Draw(screen, r)

	widest := 0
	for _, line := range h.Lines() {
		if w, _ := r.MeasureText(line, 1.0); w > widest {
			widest = w
		}
	}
	if widest+16 <= minPanelWidth {
		t.Fatalf("Expected a line wider than the panel, widest is %d", widest)
	}
	if h.panelWidth != widest+16 {
		t.Errorf("Expected width %d, got %d", widest+16, h.panelWidth)
	}
	if r.ImagesCreated != 2 {
		t.Errorf("Expected panel rebuilt after resize, created %d", r.ImagesCreated)
	}
}

func TestCalculatePosition(t *testing.T) {
	config := DefaultConfig()
	config.Position = "bottom-right"
	h := New(config, 800, 600)
	h.panelHeight = 100

	x, y := h.calculatePosition()
	if x != 800-200-10 || y != 600-100-10 {
		t.Errorf("Expected (590, 490), got (%d, %d)", x, y)
	}
}

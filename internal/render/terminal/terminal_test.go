package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/serpent/internal/chain"
	"chosenoffset.com/serpent/internal/core/geometry"
	"chosenoffset.com/serpent/internal/simulation"
)

// mockScreen records cell writes; other tcell.Screen methods are unused.
type mockScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]rune
	shows         int
	syncs         int
	finis         int
}

func newMockScreen(w, h int) *mockScreen {
	return &mockScreen{width: w, height: h, cells: make(map[[2]int]rune)}
}

func (m *mockScreen) Size() (int, int) { return m.width, m.height }
func (m *mockScreen) Clear()           { m.cells = make(map[[2]int]rune) }
func (m *mockScreen) Show()            { m.shows++ }
func (m *mockScreen) Sync()            { m.syncs++ }
func (m *mockScreen) Fini()            { m.finis++ }
func (m *mockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = mainc
}

func (m *mockScreen) count(r rune) int {
	n := 0
	for _, c := range m.cells {
		if c == r {
			n++
		}
	}
	return n
}

func newTestViewer(t *testing.T, w, h int) (*Viewer, *mockScreen) {
	t.Helper()
	cfg := simulation.DefaultConfig()
	c, err := cfg.NewChain()
	if err != nil {
		t.Fatalf("Failed to create chain: %v", err)
	}
	screen := newMockScreen(w, h)
	return NewViewer(screen, c, cfg.Viewer), screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestProjectionCell(t *testing.T) {
	p := NewProjection(100, 50, 1000, 1000)

	tests := []struct {
		name   string
		pt     geometry.Point
		x, y   int
		inside bool
	}{
		{"origin", geometry.Point{X: 0, Y: 0}, 0, 0, true},
		{"center", geometry.Point{X: 500, Y: 500}, 50, 25, true},
		{"last cell", geometry.Point{X: 999, Y: 999}, 99, 49, true},
		{"far edge", geometry.Point{X: 1000, Y: 500}, 0, 0, false},
		{"negative", geometry.Point{X: -1, Y: 10}, 0, 0, false},
		{"below", geometry.Point{X: 10, Y: 1200}, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := p.Cell(tt.pt)
			if ok != tt.inside {
				t.Fatalf("Expected inside=%v, got %v", tt.inside, ok)
			}
			if ok && (x != tt.x || y != tt.y) {
				t.Errorf("Expected cell (%d, %d), got (%d, %d)", tt.x, tt.y, x, y)
			}
		})
	}
}

func TestProjectionEmptyGrid(t *testing.T) {
	p := NewProjection(0, 0, 1000, 1000)
	if _, _, ok := p.Cell(geometry.Point{X: 1, Y: 1}); ok {
		t.Error("Expected no cell on an empty grid")
	}
}

func TestViewerReservesStatusRow(t *testing.T) {
	v, _ := newTestViewer(t, 80, 25)
	if v.proj.Cols != 80 || v.proj.Rows != 24 {
		t.Errorf("Expected 80x24 projection, got %dx%d", v.proj.Cols, v.proj.Rows)
	}
}

func TestViewerTickAndPause(t *testing.T) {
	v, _ := newTestViewer(t, 80, 25)

	v.Tick()
	v.Tick()
	if got := v.chain.Ticks(); got != 2 {
		t.Fatalf("Expected 2 ticks, got %d", got)
	}

	// Stepping only applies while paused
	v.HandleEvent(char('.'))
	if got := v.chain.Ticks(); got != 2 {
		t.Errorf("Expected step ignored while running, got %d ticks", got)
	}

	v.HandleEvent(char(' '))
	if !v.Paused() {
		t.Fatal("Expected viewer to be paused")
	}
	v.Tick()
	if got := v.chain.Ticks(); got != 2 {
		t.Errorf("Expected paused ticker to hold, got %d ticks", got)
	}

	v.HandleEvent(char('.'))
	v.HandleEvent(key(tcell.KeyRight))
	if got := v.chain.Ticks(); got != 4 {
		t.Errorf("Expected two single steps, got %d ticks", got)
	}

	v.HandleEvent(char(' '))
	if v.Paused() {
		t.Error("Expected viewer to resume")
	}
}

func TestViewerQuit(t *testing.T) {
	v, _ := newTestViewer(t, 80, 25)

	if !v.HandleEvent(char('x')) {
		t.Error("Expected unbound key to be ignored")
	}
	if v.HandleEvent(key(tcell.KeyEscape)) {
		t.Error("Expected escape to quit")
	}
	if v.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("Expected ctrl-c to quit")
	}
}

func TestViewerDraw(t *testing.T) {
	v, screen := newTestViewer(t, 200, 101)

	v.Draw()
	if screen.shows != 1 {
		t.Errorf("Expected one Show, got %d", screen.shows)
	}
	if got := screen.count('@'); got != 1 {
		t.Errorf("Expected head drawn once, got %d", got)
	}
	if got := screen.count('o'); got == 0 {
		t.Error("Expected body cells")
	}
	if got := screen.count('·'); got == 0 {
		t.Error("Expected side markers")
	}

	// Status line fills the bottom row
	var b strings.Builder
	for x := 0; x < 200; x++ {
		b.WriteRune(screen.cells[[2]int{x, 100}])
	}
	if !strings.HasPrefix(b.String(), " tick 0  head (200, 204)  [running]") {
		t.Errorf("Expected status line, got %q", b.String())
	}

	v.HandleEvent(char('s'))
	v.Draw()
	if got := screen.count('·'); got != 0 {
		t.Errorf("Expected side markers hidden, got %d", got)
	}
}

func TestViewerResize(t *testing.T) {
	v, screen := newTestViewer(t, 80, 25)

	screen.width, screen.height = 120, 41
	v.HandleEvent(tcell.NewEventResize(120, 41))
	if screen.syncs != 1 {
		t.Errorf("Expected Sync on resize, got %d", screen.syncs)
	}
	if v.proj.Cols != 120 || v.proj.Rows != 40 {
		t.Errorf("Expected 120x40 projection, got %dx%d", v.proj.Cols, v.proj.Rows)
	}
}

func TestViewerTickInterval(t *testing.T) {
	cfg := simulation.DefaultConfig()
	c, err := cfg.NewChain()
	if err != nil {
		t.Fatalf("Failed to create chain: %v", err)
	}

	tests := []struct {
		tps  int
		want time.Duration
	}{
		{15, time.Second / 15},
		{0, time.Second / 15},
		{simulation.MaxTPS, time.Millisecond},
		{2_000_000_000, time.Millisecond},
	}

	for _, tt := range tests {
		cfg.Viewer.TPS = tt.tps
		v := NewViewer(newMockScreen(80, 25), c, cfg.Viewer)
		if got := v.TickInterval(); got != tt.want {
			t.Errorf("tps %d: expected interval %v, got %v", tt.tps, tt.want, got)
		}
	}
}

func TestSilentClicker(t *testing.T) {
	var c *Clicker
	c.Click()
	c.Close()
}

func TestViewerClose(t *testing.T) {
	v, screen := newTestViewer(t, 80, 25)
	v.Close()
	if screen.finis != 1 {
		t.Errorf("Expected Fini, got %d", screen.finis)
	}
}

func TestProjectionFollowsChain(t *testing.T) {
	radials := []float64{64, 64, 68, 68, 66, 64, 62, 60, 60, 56}
	c, err := chain.Create(500, 500, 32, radials, 1000, 1000)
	if err != nil {
		t.Fatalf("Failed to create chain: %v", err)
	}
	p := NewProjection(100, 100, 1000, 1000)

	// Head at (500, 504) after construction
	x, y, ok := p.Cell(c.Head().Point())
	if !ok || x != 50 || y != 50 {
		t.Errorf("Expected head in cell (50, 50), got (%d, %d, %v)", x, y, ok)
	}
}

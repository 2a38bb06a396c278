package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/serpent/internal/chain"
	"chosenoffset.com/serpent/internal/game"
	ebitenrender "chosenoffset.com/serpent/internal/render/ebiten"
	"chosenoffset.com/serpent/internal/render/terminal"
	"chosenoffset.com/serpent/internal/simulation"
	"chosenoffset.com/serpent/internal/trace"
)

func main() {
	configPath := flag.String("config", "serpent.toml", "Config file (.toml or .json); defaults are used when it is missing")
	mode := flag.String("mode", "window", "Driver: window, terminal or headless")
	steps := flag.Int("steps", 0, "Ticks to record in headless mode (0 uses the config)")
	output := flag.String("output", "", "CSV trace path in headless mode (empty uses the config, then stdout)")
	sound := flag.Bool("sound", false, "Click on single steps in terminal mode")
	flag.Parse()

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Loaded config from %s", *configPath)

	if *steps > 0 {
		cfg.Trace.Steps = *steps
	}
	if *output != "" {
		cfg.Trace.Output = *output
	}

	c, err := cfg.NewChain()
	if err != nil {
		log.Fatalf("Failed to build chain: %v", err)
	}

	log.Printf("Starting %s mode", *mode)
	switch *mode {
	case "window":
		err = runWindow(cfg, c)
	case "terminal":
		err = runTerminal(cfg, c, *sound)
	case "headless":
		err = runHeadless(cfg, c)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runWindow(cfg *simulation.Config, c *chain.Chain) error {
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	viewer := game.NewGame(c, renderer, inputMgr, cfg.Viewer)

	w, h := c.Bounds()
	engine.SetWindowSize(w, h)
	engine.SetWindowTitle(cfg.Viewer.Title)
	engine.SetWindowResizable(true)
	engine.SetTPS(viewer.TPS)

	return engine.RunGame(viewer)
}

func runTerminal(cfg *simulation.Config, c *chain.Chain, sound bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}

	viewer := terminal.NewViewer(screen, c, cfg.Viewer)
	defer viewer.Close()

	if sound {
		if err := viewer.EnableSound(); err != nil {
			// Non-fatal, the viewer runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	viewer.Run()
	return nil
}

func runHeadless(cfg *simulation.Config, c *chain.Chain) error {
	if cfg.Trace.Output == "" {
		if err := trace.Record(os.Stdout, c, cfg.Trace.Steps); err != nil {
			return err
		}
	} else {
		if err := trace.RecordFile(cfg.Trace.Output, c, cfg.Trace.Steps); err != nil {
			return err
		}
		log.Printf("Wrote %d ticks to %s", cfg.Trace.Steps, cfg.Trace.Output)
	}

	log.Printf("Final state:\n%s", c)
	return nil
}

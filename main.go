package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-decay/events"
	"github.com/sheikhrachel/go-gol-decay/gui"
	"github.com/sheikhrachel/go-gol-decay/model"
	"github.com/sheikhrachel/go-gol-decay/render"
	"github.com/sheikhrachel/go-gol-decay/utils"
)

// frameInterval is how often the main loop polls the tick timer.
const frameInterval = 16 * time.Millisecond

func main() {
	flags := utils.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(flags.ConfigPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Fatalf("failed to load configuration: %v", err)
		}
		fmt.Printf("Using default configuration (%s not found)\n", flags.ConfigPath)
		config = utils.DefaultConfig()
	}
	flags.Apply(&config)
	if err = config.Validate(); err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}

	sim, err := initializeSimulation(config, logger)
	if err != nil {
		logger.Fatalf("startup failed: %+v", err)
	}
	displayGameInfo(config, sim)

	var reason string
	switch config.Renderer {
	case utils.RendererGUI:
		err = runGUI(sim)
	case utils.RendererTerminal:
		reason, err = runTerminal(sim)
	default:
		reason, err = runText(sim)
	}
	if err != nil {
		logger.Fatalf("renderer failed: %+v", err)
	}
	// the terminal screen is finalized by now
	if reason != "" {
		fmt.Printf("Stopping: %s\n", reason)
	}
	displayFinalStats(sim)
}

// runText prints every generation to stdout
func runText(sim *simulation) (string, error) {
	renderer := render.NewTextRenderer(os.Stdout, sim.engine.Board(), true)
	sim.router.Register(renderer)
	sim.router.Register(events.HandlerFunc(func(int, []model.Change) {
		fmt.Println(gameStatus(sim))
	}))
	renderer.Display(sim.engine.Generation())

	return loop(sim, nil), nil
}

// runTerminal draws into a tcell screen until q, Esc or Ctrl+C
func runTerminal(sim *simulation) (string, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return "", errors.Wrap(err, "[runTerminal] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return "", errors.Wrap(err, "[runTerminal] failed to init screen")
	}
	defer screen.Fini()

	renderer := render.NewTerminalRenderer(screen, sim.engine.Board())
	sim.router.Register(events.HandlerFunc(func(int, []model.Change) {
		renderer.SetStatus(gameStatus(sim) + " | q/Esc to quit")
	}))
	sim.router.Register(renderer)
	renderer.SetStatus(gameStatus(sim))
	renderer.Draw()

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				// screen finalized
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	return loop(sim, quit), nil
}

// runGUI hands the tick loop to ebiten
func runGUI(sim *simulation) error {
	game := gui.New(sim, sim.engine.Board(), sim.config.Scale, int(time.Second/frameInterval))
	sim.router.Register(game)
	return gui.Run(game, "go-gol-decay - "+sim.engine.Board().Variant().String())
}

// loop polls the tick timer every frame until a stop condition, a signal or
// quit, and returns why it stopped. Quitting from the keyboard returns "".
// It writes nothing to stdout; the caller reports the reason.
func loop(sim *simulation, quit <-chan struct{}) string {
	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-sigChan:
			return "interrupted, shutting down gracefully"
		case <-quit:
			return ""
		case now := <-ticker.C:
			delta := now.Sub(last)
			last = now
			if !sim.Advance(delta) {
				continue
			}
			if stop, reason := checkStopConditions(sim); stop {
				return reason
			}
		}
	}
}

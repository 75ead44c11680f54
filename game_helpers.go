package main

import (
	"fmt"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-decay/events"
	"github.com/sheikhrachel/go-gol-decay/model"
	"github.com/sheikhrachel/go-gol-decay/seed"
	"github.com/sheikhrachel/go-gol-decay/utils"
)

// simulation owns the engine and fans every completed tick out to the
// registered renderers.
type simulation struct {
	config   utils.Config
	engine   *model.Engine
	router   *events.Router
	timer    *utils.FixedTimer
	stats    *utils.Stats
	lastStep time.Time
}

// initializeSimulation loads the seed file and builds the initial board and engine
func initializeSimulation(config utils.Config, logger *log.Logger) (*simulation, error) {
	variant, err := config.ParsedVariant()
	if err != nil {
		return nil, err
	}
	rule, err := config.ParsedRule()
	if err != nil {
		return nil, err
	}
	dims := config.Dims()

	alive, err := seed.Load(config.SeedFile, variant, dims, logger)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeSimulation] failed to load seed")
	}

	board, err := model.NewBoardFromSeed(variant, dims, alive, config.DecayTicks)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeSimulation] failed to create board")
	}

	engine := model.NewEngine(board, rule,
		model.WithDecayTicks(config.DecayTicks),
		model.WithParallelCount(config.UseParallel),
		model.WithHistory(config.HistorySize),
	)

	return &simulation{
		config:   config,
		engine:   engine,
		router:   events.NewRouter(),
		timer:    utils.NewFixedTimer(config.FrameRate),
		stats:    utils.NewStats(),
		lastStep: time.Now(),
	}, nil
}

// Advance feeds elapsed time to the tick timer and, when a tick runs,
// updates stats and dispatches the changes.
func (s *simulation) Advance(delta time.Duration) bool {
	changes, stepped := s.engine.Advance(delta, s.timer)
	if !stepped {
		return false
	}

	births, deaths := countFlips(changes)
	now := time.Now()
	s.stats.Update(s.engine.Generation(), s.engine.Board().CountLivingCells(), births, deaths, now.Sub(s.lastStep))
	s.lastStep = now

	s.router.Dispatch(s.engine.Generation(), changes)
	return true
}

func countFlips(changes []model.Change) (births, deaths int) {
	for _, c := range changes {
		if c.Alive {
			births++
		} else {
			deaths++
		}
	}
	return
}

// displayGameInfo shows the initial simulation information
func displayGameInfo(config utils.Config, s *simulation) {
	d := s.engine.Board().Dims()
	fmt.Printf("Variant: %s | Rule: %v | Decay ticks: %d | Parallel count: %v\n",
		s.engine.Board().Variant(), s.engine.Rule(), s.engine.DecayTicks(), config.UseParallel)
	fmt.Printf("Board: %dx%dx%d | Initial living cells: %d\n",
		d.Width, d.Height, d.Depth, s.engine.Board().CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// gameStatus summarizes the latest generation
func gameStatus(s *simulation) string {
	var (
		board   = s.engine.Board()
		living  = board.CountLivingCells()
		density = float64(living) / float64(board.Dims().Volume()) * 100
		status  = "Active"
	)
	if s.engine.Stagnant() {
		status = "Stagnant"
	}
	if living == 0 {
		status = "Extinct"
	}
	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | %.1f gen/sec",
		s.engine.Generation(), living, density, status, s.stats.GenerationsPerSecond)
}

// checkStopConditions determines if the simulation should end
func checkStopConditions(s *simulation) (bool, string) {
	if s.config.MaxGenerations > 0 && s.engine.Generation() >= s.config.MaxGenerations {
		return true, fmt.Sprintf("reached maximum generations limit (%d)", s.config.MaxGenerations)
	}
	if s.config.StopOnStagnant && s.engine.Stagnant() {
		return true, "stagnation detected"
	}
	return false, ""
}

// displayFinalStats prints the summary on exit
func displayFinalStats(s *simulation) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		s.engine.Generation(), time.Since(s.stats.StartTime).Seconds())
	fmt.Printf("Births: %d | Deaths: %d | Avg population: %.1f\n",
		s.stats.Births, s.stats.Deaths, s.stats.AveragePopulation)
}

//go:build !ebiten

package gui

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-decay/model"
)

// Stepper advances the simulation by at most one tick per call.
type Stepper interface {
	Advance(delta time.Duration) bool
}

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New returns a placeholder; Run reports that the GUI is unavailable.
func New(Stepper, *model.Board, int, int) *Game { return &Game{} }

// HandleChanges is a no-op placeholder.
func (g *Game) HandleChanges(int, []model.Change) {}

// Run always reports that the GUI build tag is missing.
func Run(*Game, string) error {
	return errors.New("the gui renderer requires building with the 'ebiten' tag")
}

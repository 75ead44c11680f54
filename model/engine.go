package model

import (
	"time"

	"github.com/sheikhrachel/go-gol-decay/rules"
)

// Change reports a cell whose Dead flag flipped during a tick.
type Change struct {
	Pos   Position
	Alive bool
}

// Ticker decides whether enough time has passed for the next tick.
type Ticker interface {
	Tick(delta time.Duration) bool
}

// Engine advances a Board through count, spawn, decay and kill phases.
type Engine struct {
	board      *Board
	rule       rules.Rule
	decayTicks uint32
	parallel   bool

	generation  int
	history     []string // recent board hashes for cycle detection
	historySize int
	wasDead     []bool   // Dead flags at the start of the current tick
}

// Option configures an Engine.
type Option func(*Engine)

// WithDecayTicks sets the decay budget given to spawned cells.
func WithDecayTicks(n uint32) Option {
	return func(e *Engine) { e.decayTicks = n }
}

// WithParallelCount runs the count phase across worker goroutines.
func WithParallelCount(parallel bool) Option {
	return func(e *Engine) { e.parallel = parallel }
}

// WithHistory sets how many past board hashes Stagnant compares against.
// Zero disables stagnation tracking.
func WithHistory(n int) Option {
	return func(e *Engine) { e.historySize = max(n, 0) }
}

// NewEngine creates an engine that owns board from now on.
func NewEngine(board *Board, rule rules.Rule, opts ...Option) *Engine {
	e := &Engine{
		board:       board,
		rule:        rule,
		decayTicks:  DefaultDecayTicks,
		historySize: 5,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Board returns the board. Callers must not mutate it.
func (e *Engine) Board() *Board { return e.board }

// Rule returns the active thresholds.
func (e *Engine) Rule() rules.Rule { return e.rule }

// DecayTicks returns the budget given to spawned cells.
func (e *Engine) DecayTicks() uint32 { return e.decayTicks }

// Generation returns the number of completed ticks.
func (e *Engine) Generation() int { return e.generation }

// Tick applies one full generation and returns the cells whose Dead flag
// differs from the previous generation, in board order. A cell that spawns
// and dies within the same tick is not reported.
func (e *Engine) Tick() []Change {
	e.countPhase()
	e.snapshot()
	e.spawnPhase()
	e.decayPhase()
	e.killPhase()
	changes := e.diff()

	e.generation++
	e.updateHistory()
	return changes
}

// Advance ticks once if the ticker says the interval elapsed. Calls below the
// interval are no-ops; at most one tick is applied per call.
func (e *Engine) Advance(delta time.Duration, t Ticker) ([]Change, bool) {
	if !t.Tick(delta) {
		return nil, false
	}
	return e.Tick(), true
}

func (e *Engine) countPhase() {
	if e.parallel {
		e.board.CountNeighborsParallel()
		return
	}
	e.board.CountNeighbors()
}

func (e *Engine) snapshot() {
	if len(e.wasDead) != len(e.board.cells) {
		e.wasDead = make([]bool, len(e.board.cells))
	}
	for i := range e.board.cells {
		e.wasDead[i] = e.board.cells[i].Dead
	}
}

func (e *Engine) spawnPhase() {
	for i := range e.board.cells {
		cell := &e.board.cells[i]
		if !cell.Dead {
			continue
		}
		if e.rule.ShouldSpawn(cell.Neighbors) {
			cell.Dead = false
			cell.Decaying = false
			cell.DecayingTicks = e.decayTicks
		}
	}
}

// decayPhase starts the countdown of cells meeting the decay rule and
// decrements cells that were already decaying before this tick. Entering
// decay does not consume a tick.
func (e *Engine) decayPhase() {
	for i := range e.board.cells {
		cell := &e.board.cells[i]
		if cell.Dead {
			continue
		}
		if !cell.Decaying {
			if e.rule.ShouldDecay(cell.Neighbors) {
				cell.Decaying = true
			}
			continue
		}
		if cell.DecayingTicks > 0 {
			cell.DecayingTicks--
		}
	}
}

func (e *Engine) killPhase() {
	for i := range e.board.cells {
		cell := &e.board.cells[i]
		if !cell.Dead && cell.Decaying && cell.DecayingTicks == 0 {
			cell.Dead = true
		}
	}
}

// diff reports the net flip of every cell against the tick's snapshot.
func (e *Engine) diff() []Change {
	var changes []Change
	for i := range e.board.cells {
		if dead := e.board.cells[i].Dead; dead != e.wasDead[i] {
			changes = append(changes, Change{Pos: e.board.PositionOf(i), Alive: !dead})
		}
	}
	return changes
}

// updateHistory adds the current state to history and maintains size
func (e *Engine) updateHistory() {
	if e.historySize == 0 {
		return
	}
	e.history = append(e.history, e.board.Hash())
	if len(e.history) > e.historySize+1 {
		e.history = e.history[1:]
	}
}

// Stagnant reports whether the latest generation repeats one of the previous
// few, i.e. the board is static or cycling with a short period.
func (e *Engine) Stagnant() bool {
	if len(e.history) < 2 {
		return false
	}
	current := e.history[len(e.history)-1]
	for _, h := range e.history[:len(e.history)-1] {
		if h == current {
			return true
		}
	}
	return false
}

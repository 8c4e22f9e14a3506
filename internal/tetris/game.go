package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// simEpoch anchors the simulated clock. Game time is derived from the tick
// count so that runs with the same seed and inputs are reproducible.
var simEpoch = time.Unix(0, 0)

// Game adapts the engine to the platform's fixed-step loop.
type Game struct {
	cfg      config.TetrisConfig
	engine   *Engine
	tick     uint64
	tickRate int
	seed     int64
}

// New creates a game with the given rules. Call Reset before stepping.
func New(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset discards the current session and creates an idle engine.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.tick = 0
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.seed = rc.Seed
	g.engine = NewEngine(
		WithConfig(g.cfg),
		WithGenerator(NewRandomGenerator(rc.Seed)),
	)
}

// now returns the simulated time of the current tick.
func (g *Game) now() time.Time {
	return simEpoch.Add(time.Duration(g.tick) * time.Second / time.Duration(g.tickRate))
}

// Step applies one frame of input and advances gravity.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		g.Reset(core.DefaultConfig())
	}
	g.tick++
	now := g.now()

	prevLines := g.engine.Lines()
	prevLevel := g.engine.Level()

	for _, a := range in.Ordered() {
		g.apply(a, now)
	}
	g.engine.Tick(now)

	cleared := g.engine.Lines() - prevLines
	if cleared < 0 {
		// restart zeroed the counter this frame
		cleared = 0
	}
	return core.StepResult{
		State:        g.State(),
		Cleared:      cleared,
		LevelChanged: g.engine.Level() != prevLevel,
	}
}

// apply maps a platform action onto the engine.
func (g *Game) apply(a core.Action, now time.Time) {
	e := g.engine
	switch a {
	case core.ActionLeft:
		e.Apply(CommandMoveLeft, now)
	case core.ActionRight:
		e.Apply(CommandMoveRight, now)
	case core.ActionSoftDrop:
		e.Apply(CommandSoftDrop, now)
	case core.ActionRotateCW:
		e.Apply(CommandRotateCW, now)
	case core.ActionRotateCCW:
		e.Apply(CommandRotateCCW, now)
	case core.ActionHardDrop:
		e.Apply(CommandHardDrop, now)
	case core.ActionPause:
		e.Apply(CommandTogglePause, now)
	case core.ActionRestart:
		e.Apply(CommandRestart, now)
	case core.ActionStart:
		switch e.Phase() {
		case PhaseIdle:
			e.Apply(CommandStart, now)
		case PhaseEnded:
			// a finished board is never resumed
			e.Restart(true, now)
		}
	case core.ActionLevelUp:
		e.SetLevel(e.Level() + 1)
	case core.ActionLevelDown:
		e.SetLevel(e.Level() - 1)
	}
}

// State returns the summary used by the platform loop.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	e := g.engine
	return core.GameState{
		Score:    e.Score(),
		Lines:    e.Lines(),
		Level:    e.Level(),
		Running:  e.Running(),
		GameOver: e.Phase() == PhaseEnded,
		Paused:   e.Paused(),
	}
}

// Snapshot returns a copy of the engine state.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{}
	}
	return g.engine.Snapshot()
}

// PreferredLevel is the level worth remembering for the next run: the
// selected level before a session starts, the start level afterwards.
func (g *Game) PreferredLevel() int {
	if g.engine == nil {
		return config.ClampLevel(g.cfg.StartLevel)
	}
	if g.engine.Phase() == PhaseIdle {
		return g.engine.Level()
	}
	return g.engine.StartLevel()
}

// Tick returns the number of steps taken since Reset.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Seed returns the seed passed to the last Reset.
func (g *Game) Seed() int64 {
	return g.seed
}

// SetLevel changes the level outside of the input stream, e.g. from stored
// preferences before the first session starts.
func (g *Game) SetLevel(level int) {
	if g.engine == nil {
		g.Reset(core.DefaultConfig())
	}
	g.engine.SetLevel(level)
}

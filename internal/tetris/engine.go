package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle    Phase = iota // No session started
	PhaseRunning              // Pieces are falling
	PhasePaused               // Running but suspended
	PhaseEnded                // Game over; needs Start or Restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Command is a discrete player action accepted by Engine.Apply.
type Command int

const (
	CommandMoveLeft Command = iota + 1
	CommandMoveRight
	CommandSoftDrop
	CommandRotateCW
	CommandRotateCCW
	CommandHardDrop
	CommandTogglePause
	CommandRestart
	CommandStart
)

// Engine owns one game session. It is not safe for concurrent use: a single
// driver must call Tick and the command methods one at a time.
type Engine struct {
	rules config.TetrisConfig
	curve config.LevelCurve
	gen   Generator

	board   Board
	current *Piece
	next    *Piece

	score      int
	lines      int
	level      int
	startLevel int
	interval   time.Duration

	phase          Phase
	manualOverride bool
	lastDrop       time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig sets the rules (scoring, timing, progression, start level).
func WithConfig(cfg config.TetrisConfig) Option {
	return func(e *Engine) {
		e.rules = cfg
	}
}

// WithGenerator sets the piece source.
func WithGenerator(g Generator) Option {
	return func(e *Engine) {
		e.gen = g
	}
}

// NewEngine creates an idle engine with an empty board.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rules: config.DefaultTetrisConfig(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.gen == nil {
		e.gen = NewRandomGenerator(time.Now().UnixNano())
	}
	e.curve = config.NewLevelCurve(e.rules)
	e.level = config.ClampLevel(e.rules.StartLevel)
	e.startLevel = e.level
	e.interval = e.curve.Interval(e.level)
	return e
}

func (e *Engine) newPiece() *Piece {
	p := NewPiece(e.gen.Next())
	return &p
}

// Phase returns the lifecycle state.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Running reports whether a session is in progress (paused or not).
func (e *Engine) Running() bool {
	return e.phase == PhaseRunning || e.phase == PhasePaused
}

// Paused reports whether the running session is suspended.
func (e *Engine) Paused() bool {
	return e.phase == PhasePaused
}

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Lines returns the total rows cleared this session.
func (e *Engine) Lines() int { return e.lines }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// StartLevel returns the level the current session began at.
func (e *Engine) StartLevel() int { return e.startLevel }

// Interval returns the current gravity interval.
func (e *Engine) Interval() time.Duration { return e.interval }

// ManualOverride reports whether SetLevel disabled automatic progression.
func (e *Engine) ManualOverride() bool { return e.manualOverride }

// Start begins a session from Idle or Ended. The board and score are left
// as they are; Restart clears them.
func (e *Engine) Start(now time.Time) bool {
	if e.Running() {
		return false
	}
	if e.next == nil {
		e.next = e.newPiece()
	}
	e.level = config.ClampLevel(e.level)
	e.interval = e.curve.Interval(e.level)
	e.startLevel = e.level
	e.manualOverride = false
	e.phase = PhaseRunning
	e.spawn()
	e.lastDrop = now
	return true
}

// spawn promotes the next piece to current and draws a new next piece.
func (e *Engine) spawn() {
	cur := e.next
	if cur == nil {
		cur = e.newPiece()
	}
	cur.X = SpawnX
	cur.Y = SpawnY
	e.current = cur
	e.next = e.newPiece()
}

// Tick advances gravity. Nothing happens unless running, not paused and at
// least one interval has elapsed since the last drop. Returns true when a
// gravity step was taken.
func (e *Engine) Tick(now time.Time) bool {
	if e.phase != PhaseRunning || e.current == nil {
		return false
	}
	if now.Sub(e.lastDrop) < e.interval {
		return false
	}
	if !e.tryMove(0, 1) {
		e.settle()
	}
	e.lastDrop = now
	return true
}

// tryMove shifts the current piece if the target is valid.
func (e *Engine) tryMove(dx, dy int) bool {
	p := e.current
	if p == nil {
		return false
	}
	if !e.board.IsValid(p.Blocks, p.X+dx, p.Y+dy) {
		return false
	}
	p.X += dx
	p.Y += dy
	return true
}

// settle locks the current piece, clears rows, scores, relevels, then either
// ends the session or spawns the next piece.
func (e *Engine) settle() {
	e.board.Lock(*e.current)
	cleared := e.board.ClearLines()
	if cleared > 0 {
		e.lines += cleared
		e.score += e.rules.Scoring.LinePoints(cleared) * e.level
		e.updateLevel()
	}
	if e.board.TopBlocked() {
		e.phase = PhaseEnded
		e.current = nil
		return
	}
	e.spawn()
}

func (e *Engine) updateLevel() {
	if e.manualOverride || !e.curve.IsEnabled() {
		return
	}
	target := e.curve.Target(e.startLevel, e.lines)
	if target != e.level {
		e.level = target
		e.interval = e.curve.Interval(e.level)
	}
}

func (e *Engine) canAct() bool {
	return e.phase == PhaseRunning && e.current != nil
}

// MoveLeft shifts the piece one column left.
func (e *Engine) MoveLeft() bool {
	return e.canAct() && e.tryMove(-1, 0)
}

// MoveRight shifts the piece one column right.
func (e *Engine) MoveRight() bool {
	return e.canAct() && e.tryMove(1, 0)
}

// SoftDrop moves the piece down one row and awards soft-drop points on success.
func (e *Engine) SoftDrop() bool {
	if !e.canAct() || !e.tryMove(0, 1) {
		return false
	}
	e.score += e.rules.Scoring.SoftDrop
	return true
}

// HardDrop drops the piece to rest, awards points per cell travelled, and
// locks it. Returns the number of cells dropped, or -1 when not allowed.
func (e *Engine) HardDrop() int {
	if !e.canAct() {
		return -1
	}
	dropped := 0
	for e.tryMove(0, 1) {
		dropped++
	}
	e.score += dropped * e.rules.Scoring.HardDrop
	e.settle()
	return dropped
}

// Rotate turns the piece and resolves wall kicks. Either the rotated blocks
// and the kicked anchor are both committed, or nothing changes.
func (e *Engine) Rotate(dir Direction) bool {
	if !e.canAct() {
		return false
	}
	p := e.current
	rotated := rotateBlocks(p.Blocks, dir)
	for _, k := range kicks {
		if e.board.IsValid(rotated, p.X+k.X, p.Y+k.Y) {
			p.Blocks = rotated
			p.X += k.X
			p.Y += k.Y
			if dir == Clockwise {
				p.Rotation = (p.Rotation + 1) % 4
			} else {
				p.Rotation = (p.Rotation + 3) % 4
			}
			return true
		}
	}
	return false
}

// TogglePause flips between running and paused. Resuming restarts the drop
// timer at now so time spent paused never causes an immediate drop.
func (e *Engine) TogglePause(now time.Time) bool {
	switch e.phase {
	case PhaseRunning:
		e.phase = PhasePaused
	case PhasePaused:
		e.phase = PhaseRunning
		e.lastDrop = now
	default:
		return false
	}
	return true
}

// Restart clears the board and counters. The level is kept (clamped to
// 1..99) and becomes the new start level. With keepRunning a new session
// starts immediately; otherwise the engine is left idle.
func (e *Engine) Restart(keepRunning bool, now time.Time) {
	e.board.Reset()
	e.score = 0
	e.lines = 0
	e.level = config.ClampLevel(e.level)
	e.interval = e.curve.Interval(e.level)
	e.phase = PhaseIdle
	e.current = nil
	e.next = nil
	e.manualOverride = false
	e.startLevel = e.level
	if keepRunning {
		e.Start(now)
	}
}

// SetLevel sets the level (clamped to 1..99) and its interval. While a
// session runs this also freezes automatic progression.
func (e *Engine) SetLevel(level int) {
	e.level = config.ClampLevel(level)
	e.interval = e.curve.Interval(e.level)
	if e.Running() {
		e.manualOverride = true
	}
}

// Apply executes a command at time now. Commands whose preconditions do not
// hold, and unknown commands, are ignored and report false.
func (e *Engine) Apply(cmd Command, now time.Time) bool {
	switch cmd {
	case CommandMoveLeft:
		return e.MoveLeft()
	case CommandMoveRight:
		return e.MoveRight()
	case CommandSoftDrop:
		return e.SoftDrop()
	case CommandRotateCW:
		return e.Rotate(Clockwise)
	case CommandRotateCCW:
		return e.Rotate(CounterClockwise)
	case CommandHardDrop:
		return e.HardDrop() >= 0
	case CommandTogglePause:
		return e.TogglePause(now)
	case CommandRestart:
		e.Restart(true, now)
		return true
	case CommandStart:
		return e.Start(now)
	default:
		return false
	}
}

// GhostY returns the lowest anchor row the current piece could drop to.
// ok is false when there is no current piece.
func (e *Engine) GhostY() (y int, ok bool) {
	p := e.current
	if p == nil {
		return 0, false
	}
	y = p.Y
	for i := 0; i < Rows+len(p.Blocks); i++ {
		if !e.board.IsValid(p.Blocks, p.X, y+1) {
			break
		}
		y++
	}
	return y, true
}

// Package snake implements the snake simulation engine: movement and
// collisions, food and obstacle placement, death particles and the
// menu/play/pause/game-over state machine.
//
// The engine is deterministic for a given seed, input sequence and clock
// readings. It never blocks and reports everything through Frame.
package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
)

// ScoreStore persists the high score. Implementations handle their own
// failures: Load returns 0 when nothing can be read, Save never fails.
type ScoreStore interface {
	Load() int
	Save(score int)
}

// Status summarizes what one Step did.
type Status struct {
	State         State
	Transitioned  bool // Input changed the state
	Moved         bool
	Ate           bool
	FoodRelocated bool // An expired bonus food moved
	Died          bool
	GameOver      bool // Entered StateGameOver after the grace period
	NewHighScore  bool
}

// Game is the controller: it owns the snake, the food and the obstacles
// and advances them once per frame.
type Game struct {
	cfg    config.Config
	grid   core.Grid
	store  ScoreStore
	rng    *rand.Rand // Gameplay placement
	fxRng  *rand.Rand // Cosmetic effects
	modes  []Mode     // Selectable modes
	cursor int

	state State
	mode  Mode

	snake     *Snake
	spawner   *FoodSpawner
	food      Food
	obstacles *ObstacleSet

	highScore int
	newHigh   bool
	err       error

	now      time.Duration
	stepped  bool // Step has been called at least once
	lastMove time.Duration
	pausedAt time.Duration

	// Death sequence
	graceSet      bool
	graceDeadline time.Duration

	// Visual feedback timers
	shakeLeft time.Duration
	flashLeft time.Duration
	shake     core.Point
}

// New creates a game in the menu state. store may be nil.
func New(cfg config.Config, store ScoreStore, seed int64) *Game {
	grid := core.NewGrid(cfg.Grid.Width, cfg.Grid.Height)
	rng := rand.New(rand.NewSource(seed))
	fxRng := rand.New(rand.NewSource(seed ^ 0x5eed))

	g := &Game{
		cfg:     cfg,
		grid:    grid,
		store:   store,
		rng:     rng,
		fxRng:   fxRng,
		state:   StateMenu,
		snake:   NewSnake(grid, cfg.Snake, cfg.Effects, max(cfg.Grid.CellSize, 1), fxRng),
		spawner: NewFoodSpawner(rng, grid, cfg.Food, cfg.Placement.MaxAttempts),
	}
	for _, m := range AllModes {
		if cfg.HasMode(m.String()) {
			g.modes = append(g.modes, m)
		}
	}
	if len(g.modes) > 0 {
		g.mode = g.modes[0]
	}
	if store != nil {
		g.highScore = max(store.Load(), 0)
	}
	return g
}

// Step advances the game by one frame at monotonic time now.
// At most one state transition is applied per frame.
func (g *Game) Step(in core.InputFrame, now time.Duration) Status {
	var dt time.Duration
	if g.stepped && now > g.now {
		dt = now - g.now
	}
	if !g.stepped || now > g.now {
		g.now = now
	}
	g.stepped = true
	now = g.now

	var st Status
	st.Transitioned = g.handleInput(in, now)

	g.shakeLeft = max(g.shakeLeft-dt, 0)
	g.flashLeft = max(g.flashLeft-dt, 0)

	switch g.state {
	case StatePlaying:
		g.obstacles.Advance(g.cfg.Obstacles.PulseSpeed * dt.Seconds())
		g.snake.UpdateParticles()
		if !st.Transitioned {
			g.updatePlaying(now, &st)
		}
	case StateGameOver:
		g.obstacles.Advance(g.cfg.Obstacles.PulseSpeed * dt.Seconds())
		g.snake.UpdateParticles()
	}

	g.updateShake()
	st.State = g.state
	return st
}

// handleInput applies the input of one frame. It reports whether the state changed.
func (g *Game) handleInput(in core.InputFrame, now time.Duration) bool {
	switch g.state {
	case StateMenu:
		if in.Has(core.ActionConfirm) {
			g.state = StateModeSelect
			return true
		}

	case StateModeSelect:
		if in.Has(core.ActionBack) {
			g.state = StateMenu
			return true
		}
		for i, a := range []core.Action{core.ActionMode1, core.ActionMode2, core.ActionMode3} {
			if in.Has(a) && g.selectable(AllModes[i]) {
				return g.startSession(AllModes[i], now) == nil
			}
		}
		if in.Has(core.ActionConfirm) && len(g.modes) > 0 {
			return g.startSession(g.modes[g.cursor], now) == nil
		}
		if len(g.modes) > 0 {
			if in.Has(core.ActionUp) {
				g.cursor = (g.cursor + len(g.modes) - 1) % len(g.modes)
			} else if in.Has(core.ActionDown) {
				g.cursor = (g.cursor + 1) % len(g.modes)
			}
		}

	case StatePlaying:
		if in.Has(core.ActionPause) && g.snake.Alive() {
			g.state = StatePaused
			g.pausedAt = now
			return true
		}
		g.steer(in)

	case StatePaused:
		if in.Has(core.ActionBack) {
			g.state = StateMenu
			return true
		}
		if in.Has(core.ActionResume) {
			g.resume(now)
			return true
		}

	case StateGameOver:
		if in.Has(core.ActionBack) {
			g.state = StateMenu
			return true
		}
		if in.Has(core.ActionRestart) {
			return g.startSession(g.mode, now) == nil
		}
	}
	return false
}

// steer buffers the first accepted direction of the frame.
func (g *Game) steer(in core.InputFrame) {
	if !g.snake.Alive() {
		return
	}
	keys := []struct {
		action core.Action
		dir    Direction
	}{
		{core.ActionUp, DirUp},
		{core.ActionDown, DirDown},
		{core.ActionLeft, DirLeft},
		{core.ActionRight, DirRight},
	}
	for _, k := range keys {
		if in.Has(k.action) && k.dir != g.snake.Direction().Opposite() {
			g.snake.SetPendingDirection(k.dir)
			return
		}
	}
}

// resume leaves the pause and shifts every deadline by the paused time.
func (g *Game) resume(now time.Duration) {
	paused := now - g.pausedAt
	g.lastMove += paused
	g.food = g.food.Delay(paused)
	if g.graceSet {
		g.graceDeadline += paused
	}
	g.state = StatePlaying
}

func (g *Game) updatePlaying(now time.Duration, st *Status) {
	if g.snake.Alive() {
		food, moved, err := g.spawner.Tick(g.food, now, g.blocked)
		if err != nil {
			g.snake.Die(DeathBoardFull, now)
		} else {
			g.food = food
			st.FoodRelocated = moved
		}
	}

	if g.snake.Alive() && now-g.lastMove >= g.snake.Interval() {
		g.lastMove = now
		st.Moved = g.snake.Move(g.mode, g.obstacles, now)
		if st.Moved && g.snake.Head() == g.food.Pos {
			g.eat(now)
			st.Ate = true
		}
	}

	if g.snake.Alive() {
		return
	}

	if !g.graceSet {
		g.graceSet = true
		g.graceDeadline = g.snake.DeathTime() + g.cfg.Effects.GracePeriod
		g.shakeLeft = g.cfg.Effects.ShakeDuration
		g.flashLeft = g.cfg.Effects.FlashDuration
		st.Died = true
	}
	if now >= g.graceDeadline {
		st.NewHighScore = g.enterGameOver()
		st.GameOver = true
	}
}

func (g *Game) eat(now time.Duration) {
	g.snake.Grow(g.food.Points())
	food, err := g.spawner.Place(now, g.blocked)
	if err != nil {
		g.snake.Die(DeathBoardFull, now)
		return
	}
	g.food = food
}

// enterGameOver records the final score. It reports whether the high score was beaten.
func (g *Game) enterGameOver() bool {
	g.state = StateGameOver
	score := g.snake.Score()
	if score <= g.highScore {
		return false
	}
	g.highScore = score
	g.newHigh = true
	if g.store != nil {
		g.store.Save(score)
	}
	return true
}

// startSession resets the field for mode. On failure the game keeps its state
// and the error is kept for Err.
func (g *Game) startSession(mode Mode, now time.Duration) error {
	g.snake.Reset()
	g.obstacles = nil

	food, err := g.spawner.Place(now, g.snake.Occupies)
	if err != nil {
		g.err = fmt.Errorf("snake: cannot place food: %w", err)
		return g.err
	}

	var obstacles *ObstacleSet
	if mode.HasObstacles() {
		obstacles, err = GenerateObstacles(g.rng, g.grid, ObstacleRequest{
			Count:       g.cfg.Obstacles.Count,
			Occupied:    g.snake.Occupies,
			Food:        food.Pos,
			Head:        g.snake.Head(),
			SafeRadius:  g.cfg.Obstacles.SafeRadius,
			MaxAttempts: g.cfg.Placement.MaxAttempts,
		})
		if err != nil {
			g.err = fmt.Errorf("snake: cannot start %s: %w", mode, err)
			return g.err
		}
	}

	g.mode = mode
	g.food = food
	g.obstacles = obstacles
	g.state = StatePlaying
	g.err = nil
	g.lastMove = now
	g.newHigh = false
	g.graceSet = false
	g.graceDeadline = 0
	g.shakeLeft = 0
	g.flashLeft = 0
	g.shake = core.Point{}
	for i, m := range g.modes {
		if m == mode {
			g.cursor = i
		}
	}
	return nil
}

// Start begins a session in mode immediately, skipping the menus.
func (g *Game) Start(mode Mode, now time.Duration) error {
	if !g.selectable(mode) {
		return fmt.Errorf("snake: mode %s is not available", mode)
	}
	switch g.state {
	case StateMenu, StateModeSelect, StateGameOver:
	default:
		return errors.New("snake: a session is already running")
	}
	if now > g.now {
		g.now = now
	}
	return g.startSession(mode, now)
}

func (g *Game) updateShake() {
	mag := g.cfg.Effects.ShakeMagnitude
	if g.shakeLeft <= 0 || mag <= 0 {
		g.shake = core.Point{}
		return
	}
	g.shake = core.Point{
		X: g.fxRng.Intn(2*mag+1) - mag,
		Y: g.fxRng.Intn(2*mag+1) - mag,
	}
}

// blocked reports whether food may not be placed at p.
func (g *Game) blocked(p core.Point) bool {
	return g.snake.Occupies(p) || g.obstacles.Contains(p)
}

func (g *Game) selectable(m Mode) bool {
	for _, s := range g.modes {
		if s == m {
			return true
		}
	}
	return false
}

// State returns the current state.
func (g *Game) State() State { return g.state }

// Mode returns the mode of the current or last session.
func (g *Game) Mode() Mode { return g.mode }

// Modes returns the selectable modes.
func (g *Game) Modes() []Mode { return append([]Mode(nil), g.modes...) }

// Score returns the score of the current session.
func (g *Game) Score() int { return g.snake.Score() }

// HighScore returns the best score known to the game.
func (g *Game) HighScore() int { return g.highScore }

// Err returns the last session start failure, or nil.
func (g *Game) Err() error { return g.err }

// Config returns the configuration the game runs with.
func (g *Game) Config() config.Config { return g.cfg }

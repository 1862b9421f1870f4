package snake

import (
	"time"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// FoodView is the renderable state of the food.
type FoodView struct {
	Pos       core.Point
	Kind      string
	Bonus     bool
	Visible   bool // Blink phase
	Color     core.Color
	Points    int
	Remaining time.Duration // 0 for untimed food
}

// ParticleView is a particle in cell coordinates.
type ParticleView struct {
	X, Y    float64
	Color   core.Color
	Opacity float64
	Size    float64
}

// Frame is everything a renderer needs to draw one frame.
type Frame struct {
	Title  string
	State  State
	Mode   Mode
	Modes  []Mode
	Cursor int
	Grid   core.Grid

	Snake         []core.Point
	Alive         bool
	DeathReason   DeathReason
	DeathProgress float64

	Food      FoodView
	Obstacles []Obstacle
	Particles []ParticleView

	Score        int
	HighScore    int
	NewHighScore bool // The session beat the previous high score
	Interval     time.Duration

	Shake         core.Point
	Flash         core.Color
	FlashStrength float64 // 1 at the start of the flash, 0 when over

	Err error
}

// InSession reports whether the frame shows a field.
func (f Frame) InSession() bool {
	switch f.State {
	case StatePlaying, StatePaused, StateGameOver:
		return true
	default:
		return false
	}
}

// Frame returns the renderable state at the time of the last Step.
func (g *Game) Frame() Frame {
	f := Frame{
		Title:        g.cfg.Title,
		State:        g.state,
		Mode:         g.mode,
		Modes:        g.Modes(),
		Cursor:       g.cursor,
		Grid:         g.grid,
		Score:        g.snake.Score(),
		HighScore:    g.highScore,
		NewHighScore: g.newHigh,
		Interval:     g.snake.Interval(),
		Shake:        g.shake,
		Flash:        g.cfg.Palette.Flash,
		Err:          g.err,
	}
	if g.cfg.Effects.FlashDuration > 0 {
		f.FlashStrength = core.ClampF(float64(g.flashLeft)/float64(g.cfg.Effects.FlashDuration), 0, 1)
	}
	if !f.InSession() {
		return f
	}

	// Timed values freeze while paused
	at := g.now
	if g.state == StatePaused {
		at = g.pausedAt
	}

	f.Snake = g.snake.Segments()
	f.Alive = g.snake.Alive()
	f.DeathReason = g.snake.DeathReason()
	f.DeathProgress = g.snake.DeathProgress(at)

	f.Food = FoodView{
		Pos:       g.food.Pos,
		Kind:      g.food.Kind.Name,
		Bonus:     g.food.Bonus,
		Visible:   g.food.BlinkOn(at, g.cfg.Food.BlinkPeriod),
		Color:     g.food.Kind.Color,
		Points:    g.food.Points(),
		Remaining: g.food.Remaining(at),
	}
	f.Obstacles = g.obstacles.Obstacles()

	cs := float64(g.snake.CellSize())
	for _, p := range g.snake.Particles() {
		f.Particles = append(f.Particles, ParticleView{
			X:       p.X / cs,
			Y:       p.Y / cs,
			Color:   p.Color,
			Opacity: p.Opacity(),
			Size:    p.Size / cs,
		})
	}
	return f
}

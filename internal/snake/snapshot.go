package snake

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// Snapshot captures the gameplay state for determinism testing and replay.
// Cosmetic state (particles, shake, pulse) is left out.
type Snapshot struct {
	State       State
	Mode        Mode
	Score       int
	HighScore   int
	Alive       bool
	DeathReason DeathReason
	Dir         Direction
	Segments    []core.Point
	Food        core.Point
	FoodKind    string
	Obstacles   []core.Point
	Interval    time.Duration
}

// Snapshot returns the current gameplay snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:       g.state,
		Mode:        g.mode,
		Score:       g.snake.Score(),
		HighScore:   g.highScore,
		Alive:       g.snake.Alive(),
		DeathReason: g.snake.DeathReason(),
		Dir:         g.snake.Direction(),
		Segments:    g.snake.Segments(),
		Food:        g.food.Pos,
		FoodKind:    g.food.Kind.Name,
		Obstacles:   g.obstacles.Cells(),
		Interval:    g.snake.Interval(),
	}
}

// String returns a compact multi-line description, handy in test failures.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "State: %s, Mode: %s, Score: %d, High: %d\n", s.State, s.Mode, s.Score, s.HighScore)
	fmt.Fprintf(&b, "Alive: %v, Reason: %q, Dir: %s, Interval: %v\n", s.Alive, s.DeathReason, s.Dir, s.Interval)
	if len(s.Segments) > 0 {
		fmt.Fprintf(&b, "Head: (%d, %d), Len: %d, Food: (%d, %d) %s\n",
			s.Segments[0].X, s.Segments[0].Y, len(s.Segments), s.Food.X, s.Food.Y, s.FoodKind)
	}
	fmt.Fprintf(&b, "Obstacles: %d\n", len(s.Obstacles))
	return b.String()
}

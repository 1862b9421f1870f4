package snake

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// Obstacle placement errors. Both indicate a configuration that cannot run.
var (
	ErrObstacleCapacity   = errors.New("snake: obstacle count exceeds free cells")
	ErrPlacementExhausted = errors.New("snake: placement attempt budget exhausted")
)

// Blocker reports whether a cell is occupied by a hazard.
type Blocker interface {
	Contains(p core.Point) bool
}

// Obstacle is a hazard cell with a cosmetic pulse phase.
type Obstacle struct {
	Pos   core.Point
	Phase float64 // Radians
}

// Pulse returns the pulse intensity in [0,1].
func (o Obstacle) Pulse() float64 {
	return (math.Sin(o.Phase) + 1) / 2
}

// ObstacleSet holds the obstacles of one session.
type ObstacleSet struct {
	list  []Obstacle
	index map[core.Point]int
}

// NewObstacleSet creates a set from the given obstacles. Duplicate positions are dropped.
func NewObstacleSet(obstacles []Obstacle) *ObstacleSet {
	s := &ObstacleSet{index: make(map[core.Point]int, len(obstacles))}
	for _, o := range obstacles {
		if _, dup := s.index[o.Pos]; dup {
			continue
		}
		s.index[o.Pos] = len(s.list)
		s.list = append(s.list, o)
	}
	return s
}

// Contains reports whether p is an obstacle cell. A nil set contains nothing.
func (s *ObstacleSet) Contains(p core.Point) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[p]
	return ok
}

// Len returns the number of obstacles.
func (s *ObstacleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.list)
}

// Cells returns the obstacle positions in placement order.
func (s *ObstacleSet) Cells() []core.Point {
	if s == nil {
		return nil
	}
	cells := make([]core.Point, len(s.list))
	for i, o := range s.list {
		cells[i] = o.Pos
	}
	return cells
}

// Obstacles returns a copy of the obstacles.
func (s *ObstacleSet) Obstacles() []Obstacle {
	if s == nil {
		return nil
	}
	out := make([]Obstacle, len(s.list))
	copy(out, s.list)
	return out
}

// Advance moves every pulse phase forward by delta radians.
func (s *ObstacleSet) Advance(delta float64) {
	if s == nil || delta == 0 {
		return
	}
	for i := range s.list {
		s.list[i].Phase = math.Mod(s.list[i].Phase+delta, 2*math.Pi)
	}
}

// ObstacleRequest describes one obstacle generation.
type ObstacleRequest struct {
	Count       int
	Occupied    func(core.Point) bool // Snake cells
	Food        core.Point
	Head        core.Point
	SafeRadius  int
	MaxAttempts int
}

func (r ObstacleRequest) eligible(p core.Point) bool {
	if r.Occupied != nil && r.Occupied(p) {
		return false
	}
	if p == r.Food {
		return false
	}
	return core.Chebyshev(p, r.Head) > r.SafeRadius
}

// GenerateObstacles places req.Count distinct obstacles by uniform rejection sampling.
// It fails fast when the grid cannot hold the requested count and gives up
// after req.MaxAttempts draws.
func GenerateObstacles(rng *rand.Rand, grid core.Grid, req ObstacleRequest) (*ObstacleSet, error) {
	if req.Count <= 0 {
		return NewObstacleSet(nil), nil
	}

	free := 0
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if req.eligible(core.Point{X: x, Y: y}) {
				free++
			}
		}
	}
	if req.Count > free {
		return nil, fmt.Errorf("%w: want %d, %d eligible", ErrObstacleCapacity, req.Count, free)
	}

	chosen := make(map[core.Point]bool, req.Count)
	obstacles := make([]Obstacle, 0, req.Count)
	for attempts := 0; len(obstacles) < req.Count; attempts++ {
		if req.MaxAttempts > 0 && attempts >= req.MaxAttempts {
			return nil, fmt.Errorf("%w: placed %d of %d obstacles", ErrPlacementExhausted, len(obstacles), req.Count)
		}
		p := core.Point{X: rng.Intn(grid.Width), Y: rng.Intn(grid.Height)}
		if chosen[p] || !req.eligible(p) {
			continue
		}
		chosen[p] = true
		obstacles = append(obstacles, Obstacle{Pos: p, Phase: rng.Float64() * 2 * math.Pi})
	}
	return NewObstacleSet(obstacles), nil
}

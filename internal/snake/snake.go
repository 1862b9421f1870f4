package snake

import (
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
)

// Snake owns the segment chain, the direction buffer, the speed curve and
// the death particles.
type Snake struct {
	grid     core.Grid
	cfg      config.SnakeConfig
	fx       config.EffectsConfig
	cellSize int

	body     []core.Point // Head at index 0
	length   int          // Target length
	dir      Direction
	pending  Direction // Buffered direction for next move
	score    int
	interval time.Duration

	alive     bool
	reason    DeathReason
	deathTime time.Duration

	particles *ParticleSystem
}

// NewSnake creates a snake in its start position.
func NewSnake(grid core.Grid, cfg config.SnakeConfig, fx config.EffectsConfig, cellSize int, rng *rand.Rand) *Snake {
	s := &Snake{
		grid:      grid,
		cfg:       cfg,
		fx:        fx,
		cellSize:  cellSize,
		particles: NewParticleSystem(rng),
	}
	s.Reset()
	return s
}

// Reset restores the start state: head at the grid center, the rest of the
// body straight below it, facing up.
func (s *Snake) Reset() {
	head := s.grid.Center()
	s.length = max(s.cfg.InitialLength, 1)
	s.body = make([]core.Point, 0, s.length)
	for i := 0; i < s.length; i++ {
		s.body = append(s.body, s.grid.Wrap(core.Point{X: head.X, Y: head.Y + i}))
	}
	s.dir = DirUp
	s.pending = DirUp
	s.score = 0
	s.interval = s.cfg.InitialInterval
	s.alive = true
	s.reason = DeathNone
	s.deathTime = 0
	s.particles.Clear()
}

// SetPendingDirection buffers d for the next move. The exact reverse of the
// current direction is ignored.
func (s *Snake) SetPendingDirection(d Direction) {
	if d == s.dir.Opposite() {
		return
	}
	s.pending = d
}

// Move advances the snake one cell. It reports whether the snake is still
// alive afterwards. Collisions are checked in order: wall, self, obstacle;
// a fatal move leaves the body untouched.
func (s *Snake) Move(mode Mode, obstacles Blocker, now time.Duration) bool {
	if !s.alive {
		return false
	}

	s.dir = s.pending
	next := s.Head().Add(s.dir.Offset())

	if mode.Wraps() {
		next = s.grid.Wrap(next)
	} else if !s.grid.InBounds(next) {
		s.Die(DeathWall, now)
		return false
	}

	// The tail has not moved yet, so it still counts as occupied
	if slices.Contains(s.body, next) {
		s.Die(DeathSelf, now)
		return false
	}

	if mode.HasObstacles() && obstacles != nil && obstacles.Contains(next) {
		s.Die(DeathObstacle, now)
		return false
	}

	s.body = slices.Insert(s.body, 0, next)
	if len(s.body) > s.length {
		s.body = s.body[:s.length]
	}
	return true
}

// Grow extends the target length by one and adds points to the score.
// The move interval shrinks by one step per SpeedStepEvery points, down to the floor.
func (s *Snake) Grow(points int) {
	if !s.alive {
		return
	}
	s.length++
	if points > 0 {
		s.score += points
	}
	s.interval = s.intervalFor(s.score)
}

func (s *Snake) intervalFor(score int) time.Duration {
	steps := 0
	if s.cfg.SpeedStepEvery > 0 {
		steps = score / s.cfg.SpeedStepEvery
	}
	interval := s.cfg.InitialInterval - time.Duration(steps)*s.cfg.SpeedStep
	return max(interval, s.cfg.MinInterval)
}

// Die kills the snake. Only the first call has any effect.
func (s *Snake) Die(reason DeathReason, now time.Duration) {
	if !s.alive {
		return
	}
	s.alive = false
	s.reason = reason
	s.deathTime = now

	palette := s.fx.DeathPalette
	size := s.fx.ParticleSize
	life := s.fx.ParticleLifetime

	hx, hy := s.cellCenter(s.Head())
	s.particles.Burst(hx, hy, s.fx.DeathBurst, palette, size, life)
	for _, seg := range s.body {
		x, y := s.cellCenter(seg)
		s.particles.Burst(x, y, s.fx.SegmentBurst, palette, size, life)
	}
}

// UpdateParticles advances the death particles by one frame.
func (s *Snake) UpdateParticles() {
	s.particles.Advance()
}

// DeathProgress returns how far the death color blend is at now, in [0,1].
func (s *Snake) DeathProgress(now time.Duration) float64 {
	if s.alive {
		return 0
	}
	if s.fx.DeathAnimation <= 0 {
		return 1
	}
	return core.ClampF(float64(now-s.deathTime)/float64(s.fx.DeathAnimation), 0, 1)
}

func (s *Snake) cellCenter(p core.Point) (float64, float64) {
	cs := float64(s.cellSize)
	return float64(p.X)*cs + cs/2, float64(p.Y)*cs + cs/2
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []core.Point {
	return slices.Clone(s.body)
}

// Occupies reports whether p is part of the body.
func (s *Snake) Occupies(p core.Point) bool {
	return slices.Contains(s.body, p)
}

// Len returns the current number of segments.
func (s *Snake) Len() int { return len(s.body) }

// Length returns the target length.
func (s *Snake) Length() int { return s.length }

// Score returns the points collected this session.
func (s *Snake) Score() int { return s.score }

// Interval returns the current time between moves.
func (s *Snake) Interval() time.Duration { return s.interval }

// Alive reports whether the snake is alive.
func (s *Snake) Alive() bool { return s.alive }

// DeathReason returns what killed the snake, or DeathNone.
func (s *Snake) DeathReason() DeathReason { return s.reason }

// DeathTime returns when the snake died.
func (s *Snake) DeathTime() time.Duration { return s.deathTime }

// Direction returns the committed direction.
func (s *Snake) Direction() Direction { return s.dir }

// PendingDirection returns the buffered direction.
func (s *Snake) PendingDirection() Direction { return s.pending }

// Particles returns a copy of the live death particles.
func (s *Snake) Particles() []Particle { return s.particles.Particles() }

// CellSize returns the particle-space size of one grid cell.
func (s *Snake) CellSize() int { return s.cellSize }

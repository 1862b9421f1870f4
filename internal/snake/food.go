package snake

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
)

// ErrNoFreeCell is returned when every cell of the grid is blocked.
var ErrNoFreeCell = errors.New("snake: no free cell for food")

// normalKind is the name of the base food kind.
const normalKind = "normal"

// Food is the single food item on the field.
type Food struct {
	Pos       core.Point
	Kind      config.FoodKind
	Bonus     bool
	Base      int // Base award, always granted
	SpawnedAt time.Duration
	ExpiresAt time.Duration
	HasExpiry bool
}

// Points returns the award for eating this food. Bonus extra points add to the base.
func (f Food) Points() int {
	if f.Bonus {
		return f.Base + f.Kind.Points
	}
	return f.Base
}

// Expired reports whether a timed food outlived its expiry at now.
func (f Food) Expired(now time.Duration) bool {
	return f.HasExpiry && now > f.ExpiresAt
}

// Remaining returns the lifetime left at now, or 0 for untimed food.
func (f Food) Remaining(now time.Duration) time.Duration {
	if !f.HasExpiry || now >= f.ExpiresAt {
		return 0
	}
	return f.ExpiresAt - now
}

// BlinkOn reports whether a blinking food is in its visible half-period.
// Non-blinking food is always on.
func (f Food) BlinkOn(now time.Duration, period time.Duration) bool {
	if !f.Kind.Blink || period <= 0 {
		return true
	}
	elapsed := now - f.SpawnedAt
	if elapsed < 0 {
		elapsed = 0
	}
	return (elapsed/period)%2 == 0
}

// Delay shifts the food's timestamps by d, used while the game is paused.
func (f Food) Delay(d time.Duration) Food {
	f.SpawnedAt += d
	if f.HasExpiry {
		f.ExpiresAt += d
	}
	return f
}

// FoodSpawner picks food kinds and free cells.
type FoodSpawner struct {
	rng         *rand.Rand
	grid        core.Grid
	cfg         config.FoodConfig
	maxAttempts int
}

// NewFoodSpawner creates a spawner for the grid.
func NewFoodSpawner(rng *rand.Rand, grid core.Grid, cfg config.FoodConfig, maxAttempts int) *FoodSpawner {
	return &FoodSpawner{rng: rng, grid: grid, cfg: cfg, maxAttempts: maxAttempts}
}

// Place creates a new food at a cell for which blocked returns false.
// Sampling is bounded by the attempt budget and falls back to a scan of
// the free cells; only a fully blocked grid returns ErrNoFreeCell.
func (s *FoodSpawner) Place(now time.Duration, blocked func(core.Point) bool) (Food, error) {
	pos, err := s.freeCell(blocked)
	if err != nil {
		return Food{}, err
	}

	food := Food{
		Pos:       pos,
		Kind:      config.FoodKind{Name: normalKind, Points: s.cfg.Points, Color: s.cfg.Color},
		Base:      s.cfg.Points,
		SpawnedAt: now,
	}
	if kind, ok := s.rollBonus(); ok {
		food.Kind = kind
		food.Bonus = true
		if kind.Lifetime > 0 {
			food.HasExpiry = true
			food.ExpiresAt = now + kind.Lifetime
		}
	}
	return food, nil
}

// Tick relocates an expired bonus food. It reports whether the food moved.
func (s *FoodSpawner) Tick(food Food, now time.Duration, blocked func(core.Point) bool) (Food, bool, error) {
	if !food.Expired(now) {
		return food, false, nil
	}
	next, err := s.Place(now, blocked)
	if err != nil {
		return food, false, err
	}
	return next, true, nil
}

// rollBonus draws one uniform value against the cumulative bonus chances.
func (s *FoodSpawner) rollBonus() (config.FoodKind, bool) {
	if len(s.cfg.Bonus) == 0 {
		return config.FoodKind{}, false
	}
	roll := s.rng.Float64()
	var acc float64
	for _, kind := range s.cfg.Bonus {
		acc += kind.Chance
		if roll < acc {
			return kind, true
		}
	}
	return config.FoodKind{}, false
}

func (s *FoodSpawner) freeCell(blocked func(core.Point) bool) (core.Point, error) {
	if blocked == nil {
		blocked = func(core.Point) bool { return false }
	}
	for i := 0; i < s.maxAttempts; i++ {
		p := core.Point{X: s.rng.Intn(s.grid.Width), Y: s.rng.Intn(s.grid.Height)}
		if !blocked(p) {
			return p, nil
		}
	}

	var free []core.Point
	for y := 0; y < s.grid.Height; y++ {
		for x := 0; x < s.grid.Width; x++ {
			p := core.Point{X: x, Y: y}
			if !blocked(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return core.Point{}, ErrNoFreeCell
	}
	return free[s.rng.Intn(len(free))], nil
}

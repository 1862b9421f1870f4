// Package config provides YAML-based engine configuration loading,
// built-in game variants and difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Mode names accepted in the modes list.
const (
	ModeClassic   = "classic"
	ModeWalls     = "walls"
	ModeObstacles = "obstacles"
)

// KnownModes lists the mode names in selection order.
var KnownModes = []string{ModeClassic, ModeWalls, ModeObstacles}

// Config contains all tunables of one game variant.
type Config struct {
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	Grid        GridConfig      `yaml:"grid"`
	Snake       SnakeConfig     `yaml:"snake"`
	Food        FoodConfig      `yaml:"food"`
	Obstacles   ObstacleConfig  `yaml:"obstacles"`
	Effects     EffectsConfig   `yaml:"effects"`
	Placement   PlacementConfig `yaml:"placement"`
	Palette     PaletteConfig   `yaml:"palette"`
	Modes       []string        `yaml:"modes"` // Selectable modes
}

// GridConfig defines the playfield.
type GridConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"` // Particle-space units per cell
}

// SnakeConfig defines the snake's start and speed curve.
type SnakeConfig struct {
	InitialLength   int           `yaml:"initial_length"`
	InitialInterval time.Duration `yaml:"initial_interval"` // Time between moves at score 0
	MinInterval     time.Duration `yaml:"min_interval"`     // Floor of the move interval
	SpeedStep       time.Duration `yaml:"speed_step"`       // Interval decrement per threshold
	SpeedStepEvery  int           `yaml:"speed_step_every"` // Score threshold
}

// FoodKind describes a bonus food type. Points are added to the base award.
type FoodKind struct {
	Name     string        `yaml:"name"`
	Points   int           `yaml:"points"`
	Chance   float64       `yaml:"chance"`
	Lifetime time.Duration `yaml:"lifetime"` // 0 means the food never expires
	Color    core.Color    `yaml:"color"`
	Blink    bool          `yaml:"blink"`
}

// FoodConfig defines normal food and the bonus table.
type FoodConfig struct {
	Points      int           `yaml:"points"`
	Color       core.Color    `yaml:"color"`
	BlinkPeriod time.Duration `yaml:"blink_period"`
	Bonus       []FoodKind    `yaml:"bonus"`
}

// ObstacleConfig defines the hazards of obstacles mode.
type ObstacleConfig struct {
	Count      int     `yaml:"count"`
	SafeRadius int     `yaml:"safe_radius"` // Chebyshev radius kept free around the start head
	PulseSpeed float64 `yaml:"pulse_speed"` // Radians per second
}

// EffectsConfig defines death feedback.
type EffectsConfig struct {
	DeathBurst       int           `yaml:"death_burst"`       // Particles at the head
	SegmentBurst     int           `yaml:"segment_burst"`     // Particles per body segment
	ParticleLifetime int           `yaml:"particle_lifetime"` // Frames
	ParticleSize     float64       `yaml:"particle_size"`
	ShakeMagnitude   int           `yaml:"shake_magnitude"` // Cells
	ShakeDuration    time.Duration `yaml:"shake_duration"`
	FlashDuration    time.Duration `yaml:"flash_duration"`
	GracePeriod      time.Duration `yaml:"grace_period"`    // Death to game over
	DeathAnimation   time.Duration `yaml:"death_animation"` // Color blend duration
	DeathPalette     []core.Color  `yaml:"death_palette"`
}

// PlacementConfig bounds the random placement searches.
type PlacementConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// PaletteConfig holds render colors.
type PaletteConfig struct {
	Snake    core.Color `yaml:"snake"`
	Head     core.Color `yaml:"head"`
	Dead     core.Color `yaml:"dead"`
	Obstacle core.Color `yaml:"obstacle"`
	Border   core.Color `yaml:"border"`
	Text     core.Color `yaml:"text"`
	Accent   core.Color `yaml:"accent"`
	Flash    core.Color `yaml:"flash"`
}

// HasMode reports whether the named mode is selectable.
func (c Config) HasMode(name string) bool {
	for _, m := range c.Modes {
		if m == name {
			return true
		}
	}
	return false
}

// Validate checks that the configuration can run. It rejects obstacle counts
// that cannot fit beside the snake, the food and the safe square.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Grid.Width >= 5 && c.Grid.Height >= 5, "grid must be at least 5x5, got %dx%d", c.Grid.Width, c.Grid.Height)
	check(c.Grid.CellSize > 0, "grid.cell_size must be positive")
	check(c.Snake.InitialLength >= 1, "snake.initial_length must be at least 1")
	check(c.Snake.InitialLength <= c.Grid.Height/2, "snake.initial_length %d does not fit the grid", c.Snake.InitialLength)
	check(c.Snake.InitialInterval > 0, "snake.initial_interval must be positive")
	check(c.Snake.MinInterval > 0, "snake.min_interval must be positive")
	check(c.Snake.MinInterval <= c.Snake.InitialInterval, "snake.min_interval exceeds snake.initial_interval")
	check(c.Snake.SpeedStep >= 0, "snake.speed_step must not be negative")
	check(c.Snake.SpeedStepEvery > 0, "snake.speed_step_every must be positive")
	check(c.Food.Points > 0, "food.points must be positive")
	check(c.Placement.MaxAttempts > 0, "placement.max_attempts must be positive")

	var total float64
	for i, k := range c.Food.Bonus {
		check(k.Points > 0, "food.bonus[%d] (%s) must award extra points", i, k.Name)
		check(k.Chance >= 0 && k.Chance <= 1, "food.bonus[%d] (%s) chance %.2f outside [0,1]", i, k.Name, k.Chance)
		check(k.Lifetime >= 0, "food.bonus[%d] (%s) lifetime must not be negative", i, k.Name)
		total += k.Chance
	}
	check(total <= 1, "food.bonus chances sum to %.2f, above 1", total)

	check(len(c.Modes) > 0, "at least one mode must be selectable")
	for _, m := range c.Modes {
		check(isKnownMode(m), "unknown mode %q", m)
	}

	if c.HasMode(ModeObstacles) {
		check(c.Obstacles.Count >= 0, "obstacles.count must not be negative")
		check(c.Obstacles.SafeRadius >= 0, "obstacles.safe_radius must not be negative")
		side := 2*c.Obstacles.SafeRadius + 1
		safe := min(side, c.Grid.Width) * min(side, c.Grid.Height)
		free := c.Grid.Width*c.Grid.Height - safe - c.Snake.InitialLength - 1
		check(c.Obstacles.Count <= free/2, "obstacles.count %d too close to grid capacity (%d free cells)", c.Obstacles.Count, free)
	}

	check(c.Effects.DeathBurst >= 0 && c.Effects.SegmentBurst >= 0, "effects bursts must not be negative")
	check(c.Effects.DeathBurst+c.Effects.SegmentBurst == 0 || c.Effects.ParticleLifetime > 0, "effects.particle_lifetime must be positive")
	check(c.Effects.DeathBurst+c.Effects.SegmentBurst == 0 || len(c.Effects.DeathPalette) > 0, "effects.death_palette must not be empty")
	check(c.Effects.GracePeriod >= 0, "effects.grace_period must not be negative")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

func isKnownMode(name string) bool {
	for _, m := range KnownModes {
		if m == name {
			return true
		}
	}
	return false
}

package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/neon-snake/internal/core"
)

//go:embed defaults/neon.yaml
var defaultNeonYAML []byte

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/advanced.yaml
var defaultAdvancedYAML []byte

// DefaultVariant is played when no variant is named.
const DefaultVariant = "neon"

// VariantInfo contains metadata about a built-in variant.
type VariantInfo struct {
	ID    string
	Title string
}

// variantOrder is the display order of built-in variants.
var variantOrder = []string{"neon", "classic", "advanced"}

// Variants returns the built-in variants in display order.
func Variants() []VariantInfo {
	result := make([]VariantInfo, 0, len(variantOrder))
	for _, id := range variantOrder {
		cfg, err := Embedded(id)
		if err != nil {
			continue
		}
		result = append(result, VariantInfo{ID: id, Title: cfg.Title})
	}
	return result
}

// IsVariant checks if a built-in variant with the given ID exists.
func IsVariant(id string) bool {
	return GetDefaultYAML(id) != nil
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case "neon":
		return defaultNeonYAML
	case "classic":
		return defaultClassicYAML
	case "advanced":
		return defaultAdvancedYAML
	default:
		return nil
	}
}

// Default returns the hardcoded configuration of the neon variant.
// It matches defaults/neon.yaml and is the fallback if the embed fails to parse.
func Default() Config {
	return Config{
		Title:       "Neon Snake",
		Description: "Wrap-around, walls and obstacle modes with bonus food and death effects",
		Grid: GridConfig{
			Width:    40,
			Height:   30,
			CellSize: 20,
		},
		Snake: SnakeConfig{
			InitialLength:   3,
			InitialInterval: 100 * time.Millisecond,
			MinInterval:     30 * time.Millisecond,
			SpeedStep:       2 * time.Millisecond,
			SpeedStepEvery:  50,
		},
		Food: FoodConfig{
			Points:      10,
			Color:       core.RGB(255, 0, 0),
			BlinkPeriod: 200 * time.Millisecond,
			Bonus: []FoodKind{
				{
					Name:     "bonus",
					Points:   20,
					Chance:   0.15,
					Lifetime: 5 * time.Second,
					Color:    core.RGB(255, 255, 0),
					Blink:    true,
				},
			},
		},
		Obstacles: ObstacleConfig{
			Count:      20,
			SafeRadius: 2,
			PulseSpeed: 3.0,
		},
		Effects: EffectsConfig{
			DeathBurst:       80,
			SegmentBurst:     5,
			ParticleLifetime: 45,
			ParticleSize:     4,
			ShakeMagnitude:   1,
			ShakeDuration:    400 * time.Millisecond,
			FlashDuration:    150 * time.Millisecond,
			GracePeriod:      1500 * time.Millisecond,
			DeathAnimation:   time.Second,
			DeathPalette: []core.Color{
				core.RGB(255, 0, 0),
				core.RGB(255, 165, 0),
				core.RGB(255, 255, 0),
				core.RGB(255, 255, 255),
			},
		},
		Placement: PlacementConfig{
			MaxAttempts: 10000,
		},
		Palette: PaletteConfig{
			Snake:    core.RGB(0, 255, 0),
			Head:     core.RGB(0, 100, 0),
			Dead:     core.RGB(255, 0, 0),
			Obstacle: core.RGB(128, 0, 128),
			Border:   core.RGB(169, 169, 169),
			Text:     core.RGB(255, 255, 255),
			Accent:   core.RGB(0, 255, 255),
			Flash:    core.RGB(255, 255, 255),
		},
		Modes: []string{ModeClassic, ModeWalls, ModeObstacles},
	}
}

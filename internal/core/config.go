package core

// RuntimeConfig holds the platform settings of one run: the terminal size,
// the frame rate and the seed of the engine's random sources.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in columns
	ScreenH  int   // Terminal height in rows
	TickRate int   // Frames per second
	Seed     int64 // Seed handed to the engine
}

// Fallback values used when the terminal cannot be probed.
const (
	FallbackScreenW = 80
	FallbackScreenH = 24
	DefaultTickRate = 60
)

// Normalized returns a copy with non-positive sizes and rates replaced by
// the fallback values. The seed is left untouched.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = FallbackScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = FallbackScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

package snake

import (
	"fmt"

	"github.com/vovakirdan/neon-snake/internal/config"
)

// Mode represents the game mode, fixed for the duration of a session.
type Mode int

const (
	ModeClassic   Mode = iota // Edges wrap around
	ModeWalls                 // Edges kill
	ModeObstacles             // Edges kill, static hazards on the field
)

// AllModes lists the modes in selection order.
var AllModes = []Mode{ModeClassic, ModeWalls, ModeObstacles}

func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return config.ModeClassic
	case ModeWalls:
		return config.ModeWalls
	case ModeObstacles:
		return config.ModeObstacles
	default:
		return "unknown"
	}
}

// Title returns the display name of the mode.
func (m Mode) Title() string {
	switch m {
	case ModeClassic:
		return "Classic"
	case ModeWalls:
		return "Walls"
	case ModeObstacles:
		return "Obstacles"
	default:
		return "Unknown"
	}
}

// Wraps reports whether moving off an edge re-enters on the opposite side.
func (m Mode) Wraps() bool {
	return m == ModeClassic
}

// HasObstacles reports whether the mode places hazards.
func (m Mode) HasObstacles() bool {
	return m == ModeObstacles
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range AllModes {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("snake: unknown mode %q", s)
}

// State is the controller's state machine state.
type State int

const (
	StateMenu State = iota
	StateModeSelect
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateModeSelect:
		return "mode_select"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// DeathReason tags what killed the snake.
type DeathReason string

const (
	DeathNone      DeathReason = ""
	DeathWall      DeathReason = "wall"
	DeathSelf      DeathReason = "self"
	DeathObstacle  DeathReason = "obstacle"
	DeathBoardFull DeathReason = "board_full" // No free cell left for food
)

// Message returns the game-over line for the reason.
func (r DeathReason) Message() string {
	switch r {
	case DeathWall:
		return "Hit the wall"
	case DeathSelf:
		return "Bit your own tail"
	case DeathObstacle:
		return "Crashed into an obstacle"
	case DeathBoardFull:
		return "No room left to grow"
	case DeathNone:
		return ""
	default:
		return string(r)
	}
}

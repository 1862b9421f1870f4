package storage

import (
	"io"

	"github.com/charmbracelet/log"
)

// Keeper binds a Store to one variant and exposes the Load/Save pair the
// engine reports high scores through. Storage failures never reach the
// engine: Load falls back to 0 and Save keeps going after logging.
// A Keeper with a nil Store only remembers scores in memory.
type Keeper struct {
	store   *Store
	variant string
	logger  *log.Logger
	last    int
}

// NewKeeper creates a keeper. store may be nil.
func NewKeeper(store *Store, variant string, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Keeper{
		store:   store,
		variant: variant,
		logger:  logger.With("variant", variant),
	}
}

// Load returns the persisted high score, or 0 if it cannot be read.
func (k *Keeper) Load() int {
	if k.store == nil {
		return k.last
	}
	score, err := k.store.HighScore(k.variant)
	if err != nil {
		k.logger.Warn("could not load high score", "error", err)
		return k.last
	}
	k.last = score
	k.logger.Debug("loaded high score", "score", score)
	return score
}

// Save persists a new high score. Failures are logged and otherwise ignored.
func (k *Keeper) Save(score int) {
	if score > k.last {
		k.last = score
	}
	if k.store == nil {
		return
	}
	if err := k.store.SetHighScore(k.variant, score); err != nil {
		k.logger.Error("could not save high score", "score", score, "error", err)
		return
	}
	k.logger.Info("new high score", "score", score)
}

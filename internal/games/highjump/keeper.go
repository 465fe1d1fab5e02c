package highjump

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/highjump/internal/storage"
)

// storeKeeper is the SQLite-backed high score. The simulation raises the
// score every climbing tick, so writes are buffered until Flush.
type storeKeeper struct {
	store  *storage.Store
	gameID string
	logger *log.Logger

	best  int
	dirty bool
}

func newStoreKeeper(store *storage.Store, gameID string, logger *log.Logger) *storeKeeper {
	k := &storeKeeper{store: store, gameID: gameID, logger: logger}
	best, err := store.HighScore(gameID)
	if err != nil {
		logger.Warn("load high score failed", "game", gameID, "err", err)
		return k
	}
	k.best = best
	return k
}

// HighScore returns the best score seen so far, including unflushed ones.
func (k *storeKeeper) HighScore() int {
	return k.best
}

// SetHighScore records a new best. Lower scores are ignored.
func (k *storeKeeper) SetHighScore(score int) {
	if score <= k.best {
		return
	}
	k.best = score
	k.dirty = true
}

// Flush writes a pending best score to the store. A failed write stays
// pending for the next flush.
func (k *storeKeeper) Flush() error {
	if !k.dirty {
		return nil
	}
	if err := k.store.SetHighScore(k.gameID, k.best); err != nil {
		k.logger.Warn("save high score failed", "game", k.gameID, "err", err)
		return err
	}
	k.dirty = false
	return nil
}

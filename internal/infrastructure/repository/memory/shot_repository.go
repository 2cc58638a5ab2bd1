package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/worldcup-shotmap/internal/domain/shot"
)

type ShotRepository struct {
	mu    sync.RWMutex
	items []shot.Shot
}

func NewShotRepository(shots []shot.Shot) *ShotRepository {
	return &ShotRepository{items: append([]shot.Shot(nil), shots...)}
}

func (r *ShotRepository) List(_ context.Context) ([]shot.Shot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]shot.Shot(nil), r.items...), nil
}

// Replace swaps the whole dataset.
func (r *ShotRepository) Replace(shots []shot.Shot) {
	r.mu.Lock()
	r.items = append([]shot.Shot(nil), shots...)
	r.mu.Unlock()
}

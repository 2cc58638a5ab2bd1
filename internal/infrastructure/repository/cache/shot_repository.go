package cache

import (
	"context"

	"github.com/riskibarqy/worldcup-shotmap/internal/domain/shot"
	basecache "github.com/riskibarqy/worldcup-shotmap/internal/platform/cache"
)

const shotListPrefix = "shots:list:"

// versioner is implemented by sources that can tell when their contents
// changed, like csvfile.ShotRepository.
type versioner interface {
	Version(ctx context.Context) (string, error)
}

type ShotRepository struct {
	next  shot.Repository
	cache *basecache.Store
}

func NewShotRepository(next shot.Repository, cache *basecache.Store) *ShotRepository {
	return &ShotRepository{next: next, cache: cache}
}

// List serves the dataset from cache while the source version is unchanged.
// A new version evicts older entries before loading.
func (r *ShotRepository) List(ctx context.Context) ([]shot.Shot, error) {
	version := "static"
	if v, ok := r.next.(versioner); ok {
		current, err := v.Version(ctx)
		if err != nil {
			return nil, err
		}
		version = current
	}

	key := shotListPrefix + version
	if _, ok := r.cache.Get(ctx, key); !ok {
		r.cache.DeletePrefix(ctx, shotListPrefix)
	}

	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]shot.Shot(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]shot.Shot)
	return append([]shot.Shot(nil), items...), nil
}

package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/worldcup-shotmap/internal/domain/shot"
	basecache "github.com/riskibarqy/worldcup-shotmap/internal/platform/cache"
)

type fakeShotSource struct {
	mu      sync.Mutex
	version string
	items   []shot.Shot
	err     error
	calls   int
}

func (f *fakeShotSource) List(context.Context) ([]shot.Shot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]shot.Shot(nil), f.items...), nil
}

func (f *fakeShotSource) Version(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.version, nil
}

func TestShotRepository_List_CachesPerVersion(t *testing.T) {
	src := &fakeShotSource{
		version: "v1",
		items:   []shot.Shot{{MatchID: "France vs Croatia", Team: "France"}},
	}
	store := basecache.NewStore(time.Minute)
	repo := NewShotRepository(src, store)

	for i := 0; i < 3; i++ {
		items, err := repo.List(context.Background())
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("unexpected row count: %d", len(items))
		}
	}
	if src.calls != 1 {
		t.Fatalf("source loaded %d times, want 1", src.calls)
	}

	src.mu.Lock()
	src.version = "v2"
	src.items = append(src.items, shot.Shot{MatchID: "France vs Croatia", Team: "Croatia"})
	src.mu.Unlock()

	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("stale rows after version change: %d", len(items))
	}
	if _, ok := store.Get(context.Background(), shotListPrefix+"v1"); ok {
		t.Fatalf("old version not evicted")
	}
	if _, ok := store.Get(context.Background(), shotListPrefix+"v2"); !ok {
		t.Fatalf("new version not cached")
	}
}

func TestShotRepository_List_ReturnsCopies(t *testing.T) {
	src := &fakeShotSource{version: "v1", items: []shot.Shot{{Team: "France"}}}
	repo := NewShotRepository(src, basecache.NewStore(time.Minute))

	first, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	first[0].Team = "mutated"

	second, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if second[0].Team != "France" {
		t.Fatalf("cached rows were mutated through a returned slice")
	}
}

func TestShotRepository_List_PropagatesErrors(t *testing.T) {
	errBoom := errors.New("boom")
	src := &fakeShotSource{version: "v1", err: errBoom}
	repo := NewShotRepository(src, basecache.NewStore(time.Minute))

	if _, err := repo.List(context.Background()); !errors.Is(err, errBoom) {
		t.Fatalf("expected source error, got %v", err)
	}
}

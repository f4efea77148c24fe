package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "snapshot", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "stats:demo-golfer", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "snapshot" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_EntriesExpireAfterTTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "handicap:u1", 12.3)
	if v, ok := store.Get(context.Background(), "handicap:u1"); !ok || v != 12.3 {
		t.Fatalf("expected fresh entry, got v=%v ok=%v", v, ok)
	}

	now = now.Add(time.Minute)
	if _, ok := store.Get(context.Background(), "handicap:u1"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_InvalidateDuringLoadDiscardsResult(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		_, _ = store.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
			close(started)
			<-release
			return "stale", nil
		})
	}()

	<-started
	store.Invalidate(ctx, "k")
	close(release)
	<-done

	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatalf("stale load must not populate the cache after invalidation")
	}

	v, err := store.GetOrLoad(ctx, "k", func(context.Context) (any, error) { return "fresh", nil })
	if err != nil || v != "fresh" {
		t.Fatalf("expected fresh value, got v=%v err=%v", v, err)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	loadErr := errors.New("db down")
	var calls atomic.Int32
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return nil, loadErr
	}

	for i := 0; i < 2; i++ {
		if _, err := store.GetOrLoad(context.Background(), "k", loader); !errors.Is(err, loadErr) {
			t.Fatalf("expected load error, got %v", err)
		}
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2", got)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")

func TestStore_SetIfVersionRejectsAfterInvalidate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	version := store.Version("k")
	store.Invalidate(ctx, "k")
	if store.SetIfVersion(ctx, "k", "stale", version) {
		t.Fatalf("expected write with an old version to be rejected")
	}
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatalf("rejected write must not populate the cache")
	}

	if !store.SetIfVersion(ctx, "k", "fresh", store.Version("k")) {
		t.Fatalf("expected write with the current version to succeed")
	}
	if v, ok := store.Get(ctx, "k"); !ok || v != "fresh" {
		t.Fatalf("expected fresh value, got v=%v ok=%v", v, ok)
	}
}

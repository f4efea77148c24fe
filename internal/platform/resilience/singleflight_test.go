package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_DoCollapsesConcurrentCalls(t *testing.T) {
	var g SingleFlight
	var counter atomic.Int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err, _ := g.Do("stats:u1", func() (any, error) {
				counter.Add(1)
				time.Sleep(20 * time.Millisecond)
				return 17.3, nil
			})
			if err != nil || v != 17.3 {
				t.Errorf("unexpected result: v=%v err=%v", v, err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := counter.Load(); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_ForgetStartsFreshCall(t *testing.T) {
	var g SingleFlight
	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_, _, _ = g.Do("k", func() (any, error) {
			close(started)
			<-release
			return "stale", nil
		})
	}()
	<-started

	g.Forget("k")
	v, _, shared := g.Do("k", func() (any, error) { return "fresh", nil })
	close(release)

	if shared || v != "fresh" {
		t.Fatalf("expected fresh unshared call, got v=%v shared=%v", v, shared)
	}
}

package gateway

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	perr "navline/internal/platform/errors"
)

func TestRun_ReturnsValue(t *testing.T) {
	p := NewPool(2)
	v, err := Run(context.Background(), p, func(context.Context) (string, error) { return "ok", nil })
	if err != nil || v != "ok" {
		t.Fatalf("%q %v", v, err)
	}
}

func TestRun_BoundsConcurrency(t *testing.T) {
	p := NewPool(2)
	var cur, peak atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = Run(context.Background(), p, func(context.Context) (int, error) {
				n := cur.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				cur.Add(-1)
				return 0, nil
			})
		}()
	}
	wg.Wait()
	if peak.Load() > 2 {
		t.Fatalf("peak concurrency %d", peak.Load())
	}
}

func TestRun_CallerCanLeaveEarly(t *testing.T) {
	p := NewPool(1)
	release := make(chan struct{})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := Run(ctx, p, func(context.Context) (int, error) {
		<-release
		return 1, nil
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err %v", err)
	}

	// slot is still held by the abandoned call
	busyCtx, busyCancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer busyCancel()
	if _, err := Run(busyCtx, p, func(context.Context) (int, error) { return 0, nil }); perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("expected busy pool, got %v", err)
	}

	close(release)
	time.Sleep(10 * time.Millisecond)
	if _, err := Run(context.Background(), p, func(context.Context) (int, error) { return 0, nil }); err != nil {
		t.Fatalf("slot should be free again: %v", err)
	}
}

func TestRun_PanicBecomesError(t *testing.T) {
	p := NewPool(1)
	_, err := Run(context.Background(), p, func(context.Context) (int, error) { panic("lib crash") })
	if perr.CodeOf(err) != perr.ErrorCodePanic {
		t.Fatalf("err %v", err)
	}
	if p.Size() != 1 || NewPool(0).Size() != 1 {
		t.Fatal("size")
	}
}

package throttle

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"navline/internal/platform/testkit"
)

func TestAdmit_ExactlyLimitWithinWindow(t *testing.T) {
	clk := testkit.NewClock()
	l := New(time.Minute, 30, clk)

	for i := 0; i < 30; i++ {
		if !l.Admit("0501234567") {
			t.Fatalf("admit %d rejected", i+1)
		}
		clk.Advance(time.Second)
	}
	if l.Admit("0501234567") {
		t.Fatal("31st request inside the window must be rejected")
	}
}

func TestAdmit_ResumesWhenOldestSlidesOut(t *testing.T) {
	clk := testkit.NewClock()
	l := New(time.Minute, 3, clk)

	l.Admit("c") // t=0
	clk.Advance(10 * time.Second)
	l.Admit("c") // t=10
	l.Admit("c") // t=10
	if l.Admit("c") {
		t.Fatal("expected rejection at limit")
	}

	clk.Advance(50 * time.Second) // t=60, oldest is exactly window old
	if !l.Admit("c") {
		t.Fatal("expected admission once the oldest timestamp left the window")
	}
	if l.Admit("c") {
		t.Fatal("only one slot should have been freed")
	}
}

func TestAdmit_RejectionsDoNotExtendWindow(t *testing.T) {
	clk := testkit.NewClock()
	l := New(time.Minute, 1, clk)
	l.Admit("c")
	for i := 0; i < 5; i++ {
		clk.Advance(10 * time.Second)
		l.Admit("c")
	}
	clk.Advance(10 * time.Second) // t=60
	if !l.Admit("c") {
		t.Fatal("rejected attempts must not count against the caller")
	}
}

func TestAdmit_CallersAreIndependent(t *testing.T) {
	l := New(time.Minute, 1, testkit.NewClock())
	if !l.Admit("a") || !l.Admit("b") {
		t.Fatal("distinct callers share nothing")
	}
	if l.Admit("a") {
		t.Fatal("a is over the limit")
	}
}

func TestAdmit_BlankCallersShareAnonymousBucket(t *testing.T) {
	l := New(time.Minute, 2, testkit.NewClock())
	l.Admit("")
	l.Admit("   ")
	if l.Admit(Anonymous) {
		t.Fatal("blank ids and the anonymous bucket are the same caller")
	}
	if l.Tracked() != 1 {
		t.Fatalf("tracked %d", l.Tracked())
	}
}

func TestNew_Defaults(t *testing.T) {
	l := New(0, 0, nil)
	if l.window != DefaultWindow || l.limit != DefaultLimit {
		t.Fatalf("got %v %d", l.window, l.limit)
	}
}

func TestAdmit_ConcurrentNoLostUpdates(t *testing.T) {
	l := New(time.Minute, 100, testkit.NewClock())
	var admitted atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				if l.Admit("shared") {
					admitted.Add(1)
				}
			}
		}()
	}
	wg.Wait()
	if admitted.Load() != 100 {
		t.Fatalf("admitted %d want 100", admitted.Load())
	}
}

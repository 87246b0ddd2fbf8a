package respcache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"navline/internal/platform/config"
	"navline/internal/platform/testkit"

	"github.com/redis/go-redis/v9"
)

func TestMemory_RoundTripWithinTTL(t *testing.T) {
	clk := testkit.NewClock()
	c := NewMemory(time.Minute, clk)
	ctx := context.Background()

	c.Set(ctx, "media:some song", []byte(`[{"id":"abc"}]`))
	clk.Advance(59 * time.Second)
	got, ok := c.Get(ctx, "media:some song")
	if !ok || string(got) != `[{"id":"abc"}]` {
		t.Fatalf("got %q %v", got, ok)
	}
}

func TestMemory_ExpiresLazilyAfterTTL(t *testing.T) {
	clk := testkit.NewClock()
	c := NewMemory(time.Minute, clk)
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"))
	clk.Advance(61 * time.Second)
	if c.Len() != 1 {
		t.Fatal("no background sweep expected before read")
	}
	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatal("expected miss after TTL")
	}
	if c.Len() != 0 {
		t.Fatal("stale entry should be removed by the read that found it")
	}
}

func TestMemory_BoundaryIsInclusive(t *testing.T) {
	clk := testkit.NewClock()
	c := NewMemory(time.Minute, clk)
	c.Set(context.Background(), "k", []byte("v"))
	clk.Advance(time.Minute)
	if _, ok := c.Get(context.Background(), "k"); !ok {
		t.Fatal("entry exactly TTL old is still fresh")
	}
}

func TestMemory_KeysAreExact(t *testing.T) {
	c := NewMemory(0, nil)
	ctx := context.Background()
	c.Set(ctx, "places:Haifa", []byte("1"))
	if _, ok := c.Get(ctx, "places:haifa"); ok {
		t.Fatal("keys must not be normalized")
	}
}

func TestMemory_ValuesAreCopied(t *testing.T) {
	c := NewMemory(0, nil)
	ctx := context.Background()
	in := []byte("abc")
	c.Set(ctx, "k", in)
	in[0] = 'X'
	out, _ := c.Get(ctx, "k")
	if string(out) != "abc" {
		t.Fatalf("stored value mutated through caller slice: %q", out)
	}
	out[1] = 'Y'
	again, _ := c.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("stored value mutated through returned slice: %q", again)
	}
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	c := NewMemory(0, nil)
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%4)
			for j := 0; j < 100; j++ {
				c.Set(ctx, key, []byte{byte(j)})
				c.Get(ctx, key)
			}
		}(i)
	}
	wg.Wait()
	if c.Len() != 4 {
		t.Fatalf("len %d", c.Len())
	}
	if err := c.Ping(ctx); err != nil {
		t.Fatal(err)
	}
}

func TestRedis_ErrorsReadAsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	r := NewRedisClient(client, "t:", 0)
	defer func() { _ = r.Close() }()

	ctx := context.Background()
	r.Set(ctx, "k", []byte("v"))
	if _, ok := r.Get(ctx, "k"); ok {
		t.Fatal("unreachable redis must read as a miss")
	}
	if err := r.Ping(ctx); err == nil {
		t.Fatal("expected ping error")
	}
}

func TestNewRedis_BadURL(t *testing.T) {
	if _, err := NewRedis(context.Background(), "not-a-url://", "", 0); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFromConfig_DefaultsToMemory(t *testing.T) {
	t.Setenv("RESPCACHE_BACKEND", "")
	c, err := FromConfig(context.Background(), config.New().Prefix("RESPCACHE_"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*Memory); !ok {
		t.Fatalf("got %T", c)
	}
}

func TestFromConfig_InvalidBackendPanics(t *testing.T) {
	t.Setenv("RESPCACHE_BACKEND", "memcached")
	testkit.MustPanic(t, func() {
		_, _ = FromConfig(context.Background(), config.New().Prefix("RESPCACHE_"))
	})
}

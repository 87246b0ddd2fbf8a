// Package gateway is the uniform call path to external providers: content
// screening, short-TTL memoization, then a primary-to-fallback chain where each
// link is retried with exponential backoff under a per-attempt timeout and
// guarded by its own circuit breaker
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"navline/internal/core/blocklist"
	"navline/internal/core/respcache"
	perr "navline/internal/platform/errors"
	"navline/internal/platform/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

// Defaults
const (
	DefaultAttempts        = 3
	DefaultRetryBase       = time.Second
	DefaultTimeout         = 12 * time.Second
	DefaultBreakerFailures = 5
	DefaultBreakerCooldown = 30 * time.Second
)

// Options tunes retries, timeouts and breakers
type Options struct {
	Attempts        int
	RetryBase       time.Duration
	Timeout         time.Duration
	BreakerFailures uint32
	BreakerCooldown time.Duration

	// Cacheable lists capabilities whose successes are memoized
	Cacheable []Capability
}

// DefaultOptions caches media search and place lookup
func DefaultOptions() Options {
	return Options{
		Attempts:        DefaultAttempts,
		RetryBase:       DefaultRetryBase,
		Timeout:         DefaultTimeout,
		BreakerFailures: DefaultBreakerFailures,
		BreakerCooldown: DefaultBreakerCooldown,
		Cacheable:       []Capability{Media, Places},
	}
}

// Gateway owns the shared filter, cache and breakers. Safe for concurrent use
type Gateway struct {
	filter    *blocklist.Filter
	cache     respcache.Cache
	opts      Options
	cacheable map[Capability]bool

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker

	sleep func(ctx context.Context, d time.Duration) error // seam
}

// New builds a Gateway; zero option fields take the defaults
func New(filter *blocklist.Filter, cache respcache.Cache, opts Options) *Gateway {
	def := DefaultOptions()
	if opts.Attempts <= 0 {
		opts.Attempts = def.Attempts
	}
	if opts.RetryBase <= 0 {
		opts.RetryBase = def.RetryBase
	}
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.BreakerFailures == 0 {
		opts.BreakerFailures = def.BreakerFailures
	}
	if opts.BreakerCooldown <= 0 {
		opts.BreakerCooldown = def.BreakerCooldown
	}
	if opts.Cacheable == nil {
		opts.Cacheable = def.Cacheable
	}
	cacheable := make(map[Capability]bool, len(opts.Cacheable))
	for _, c := range opts.Cacheable {
		cacheable[c] = true
	}
	return &Gateway{
		filter:    filter,
		cache:     cache,
		opts:      opts,
		cacheable: cacheable,
		breakers:  make(map[string]*gobreaker.CircuitBreaker),
		sleep:     sleepCtx,
	}
}

// Unsafe exposes the content filter so callers can screen non-query fields
func (g *Gateway) Unsafe(texts ...string) bool { return g.filter.Unsafe(texts...) }

// Cache returns the backing cache
func (g *Gateway) Cache() respcache.Cache { return g.cache }

// CacheKey is capability + ":" + query with no normalization
func CacheKey(c Capability, query string) string { return string(c) + ":" + query }

// Call runs query through the chain for capability c and returns a typed result.
// It never panics past its boundary and never returns an error; failures are Kinds
func Call[T any](ctx context.Context, g *Gateway, c Capability, query string, chain Chain[T]) (res Result[T]) {
	log := logger.C(ctx).With().
		Str("capability", string(c)).
		Str("call_id", uuid.NewString()).
		Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("provider chain panic")
			res = Result[T]{Kind: KindFatal}
		}
	}()

	if g.filter.Unsafe(query) {
		log.Info().Msg("query blocked by content filter")
		return Result[T]{Kind: KindUnsafe}
	}

	key := CacheKey(c, query)
	cacheable := g.cache != nil && g.cacheable[c]
	if cacheable {
		if b, ok := g.cache.Get(ctx, key); ok {
			var v T
			if err := json.Unmarshal(b, &v); err == nil && !chain.isEmpty(v) {
				log.Debug().Msg("cache hit")
				return Result[T]{OK: true, Payload: v, Provider: "cache"}
			}
		}
	}

	kind := KindNoResult
	for i, link := range chain.Links {
		v, err := runLink(ctx, g, &log, link, query, chain)
		if err == nil {
			if i > 0 {
				log.Warn().Str("provider", link.Name).Int("link", i).Msg("fallback used")
			}
			if cacheable {
				if b, mErr := json.Marshal(v); mErr == nil {
					g.cache.Set(ctx, key, b)
				}
			}
			return Result[T]{OK: true, Payload: v, Provider: link.Name, Fallback: i > 0}
		}

		kind = Classify(err)
		log.Warn().Err(err).Str("provider", link.Name).Str("kind", kind.String()).Msg("provider link failed")
		if ctx.Err() != nil {
			kind = KindTransient
			break
		}
	}
	return Result[T]{Kind: kind}
}

// runLink retries one provider. Empty results, fatal errors and open breakers
// end the link at once; transient errors back off base, 2*base, 4*base
func runLink[T any](ctx context.Context, g *Gateway, log *zerolog.Logger, link Handle[T], query string, chain Chain[T]) (T, error) {
	var zero T
	cb := g.breaker(link.Name)

	var err error
	for attempt := 0; attempt < g.opts.Attempts; attempt++ {
		var v T
		v, err = callOnce(ctx, g, cb, link, query)
		if err == nil {
			if chain.isEmpty(v) {
				return zero, errEmpty
			}
			return v, nil
		}
		if !perr.Retryable(err) || attempt == g.opts.Attempts-1 {
			break
		}
		back := g.backoff(attempt)
		log.Debug().Err(err).Str("provider", link.Name).Int("attempt", attempt).Dur("retry_in", back).Msg("provider transient error retrying")
		if sErr := g.sleep(ctx, back); sErr != nil {
			return zero, sErr
		}
	}
	return zero, err
}

// callOnce is one breaker-guarded provider call bounded by the per-attempt timeout
func callOnce[T any](ctx context.Context, g *Gateway, cb *gobreaker.CircuitBreaker, link Handle[T], query string) (T, error) {
	var zero T
	out, err := cb.Execute(func() (any, error) {
		actx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
		return link.Call(actx, query)
	})
	if err != nil {
		// breaker rejections are not retryable, so an open breaker skips the link
		return zero, err
	}
	v, _ := out.(T)
	return v, nil
}

func (g *Gateway) backoff(attempt int) time.Duration {
	d := g.opts.RetryBase << uint(attempt)
	if d > 30*time.Second {
		d = 30 * time.Second
	}
	return d
}

// breaker returns the per-provider breaker, creating it on first use
func (g *Gateway) breaker(name string) *gobreaker.CircuitBreaker {
	g.mu.Lock()
	defer g.mu.Unlock()
	if cb, ok := g.breakers[name]; ok {
		return cb
	}
	failures := g.opts.BreakerFailures
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     g.opts.BreakerCooldown,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= failures
		},
		// a provider that answered "nothing" or a caller that hung up is not a sick provider
		IsSuccessful: func(err error) bool {
			return err == nil ||
				perr.IsCode(err, perr.ErrorCodeNotFound) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Named("gateway").Warn().
				Str("provider", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	})
	g.breakers[name] = cb
	return cb
}

// BreakerState reports the breaker state for a provider; unknown providers read closed
func (g *Gateway) BreakerState(name string) gobreaker.State {
	g.mu.Lock()
	defer g.mu.Unlock()
	if cb, ok := g.breakers[name]; ok {
		return cb.State()
	}
	return gobreaker.StateClosed
}

// Breakers snapshots provider -> state for every breaker created so far
func (g *Gateway) Breakers() map[string]string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[string]string, len(g.breakers))
	for name, cb := range g.breakers {
		out[name] = cb.State().String()
	}
	return out
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

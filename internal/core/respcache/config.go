package respcache

import (
	"context"

	"navline/internal/platform/config"
)

// FromConfig picks the backend from RESPCACHE_BACKEND (memory|redis).
// cfg is expected to be prefixed already (RESPCACHE_)
func FromConfig(ctx context.Context, cfg config.Conf) (Cache, error) {
	ttl := cfg.MayDuration("TTL", DefaultTTL)
	switch cfg.MayEnum("BACKEND", "memory", "memory", "redis") {
	case "redis":
		return NewRedis(ctx, cfg.MustString("REDIS_URL"), cfg.MayString("KEY_PREFIX", "navline:"), ttl)
	default:
		return NewMemory(ttl, nil), nil
	}
}

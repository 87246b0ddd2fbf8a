// Package modkit provides module wiring and core deps
package modkit

import (
	"navline/internal/core/blocklist"
	"navline/internal/core/gateway"
	"navline/internal/core/respcache"
	"navline/internal/core/throttle"
	"navline/internal/platform/config"
	"navline/internal/platform/logger"
)

// Deps holds the shared owned structures passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log      logger.Logger
	Cfg      config.Conf
	Cache    respcache.Cache
	Filter   *blocklist.Filter
	Gateway  *gateway.Gateway
	Throttle *throttle.Limiter
	Pool     *gateway.Pool
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check optional members
func (d Deps) ZeroOK() bool { return true }

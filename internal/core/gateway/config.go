package gateway

import "navline/internal/platform/config"

// OptionsFromConfig reads gateway tuning from a prefixed view (IVR_ in the binary)
func OptionsFromConfig(cfg config.Conf) Options {
	def := DefaultOptions()
	o := Options{
		Attempts:        cfg.MayInt("RETRY_ATTEMPTS", def.Attempts),
		RetryBase:       cfg.MayDuration("RETRY_BASE", def.RetryBase),
		Timeout:         cfg.MayDuration("PROVIDER_TIMEOUT", def.Timeout),
		BreakerFailures: uint32(max(cfg.MayInt("BREAKER_FAILURES", int(def.BreakerFailures)), 1)),
		BreakerCooldown: cfg.MayDuration("BREAKER_COOLDOWN", def.BreakerCooldown),
	}
	for _, c := range cfg.MayCSV("CACHEABLE", []string{string(Media), string(Places)}) {
		o.Cacheable = append(o.Cacheable, Capability(c))
	}
	if o.Cacheable == nil {
		o.Cacheable = []Capability{}
	}
	return o
}

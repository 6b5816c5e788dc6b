package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Server-side defaults are applied lazily at the call sites (cmd/server),
// so an empty config is still a valid starting point.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Adapter.CallerID) == "" {
		return ErrInvalidCallerID
	}

	return nil
}

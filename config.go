package signals

import (
	"log/slog"
	"sync"
)

// Config holds process-wide defaults applied to every SetHandler call
// before its options.
type Config struct {
	// Logger receives worker diagnostics. Nil discards them.
	Logger *slog.Logger
	// Policy is the panic policy. Nil means recover and log panics.
	Policy *Policy
	// Source registers signals with the OS. Nil means os/signal.
	Source Source
}

var (
	configMu sync.RWMutex
	config   *Config
)

// SetConfig replaces the process-wide defaults. It is safe to call
// concurrently. Use nil to restore the built-in defaults. Workers already
// running keep the settings they started with.
func SetConfig(cfg *Config) {
	configMu.Lock()
	defer configMu.Unlock()
	if cfg == nil {
		config = nil
		return
	}
	c := *cfg
	if cfg.Policy != nil {
		p := *cfg.Policy
		c.Policy = &p
	}
	config = &c
}

// getConfig returns the current defaults with nil fields filled in. It
// never returns nil.
func getConfig() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	var c Config
	if config != nil {
		c = *config
	}
	if c.Policy == nil {
		p := defaultPolicy()
		c.Policy = &p
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.Source == nil {
		c.Source = defaultSignalSource{}
	}
	return &c
}

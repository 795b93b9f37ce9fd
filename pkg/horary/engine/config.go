package engine

// EngineConfig contains configuration for the verdict engine.
type EngineConfig struct {
	// FatalCombustion controls whether the "combustion" blocker is treated
	// as disqualifying. When false, combustion is noted but does not void
	// the outcome.
	// Default: true (blocking).
	FatalCombustion bool

	// EnableTrace records per-phase trace steps in the result for
	// debugging.
	// Warning: enabling trace adds allocation overhead.
	// Default: false.
	EnableTrace bool
}

// DefaultEngineConfig returns the default engine configuration.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		FatalCombustion: true,
		EnableTrace:     false,
	}
}

// Validate validates the engine configuration.
//
// Every combination of the current options is valid; Validate exists so the
// construction path stays uniform as options grow.
func (c *EngineConfig) Validate() error {
	return nil
}

// WithFatalCombustion sets whether combustion disqualifies the outcome.
func (c *EngineConfig) WithFatalCombustion(fatal bool) *EngineConfig {
	c.FatalCombustion = fatal
	return c
}

// WithTrace enables or disables evaluation tracing.
func (c *EngineConfig) WithTrace(enabled bool) *EngineConfig {
	c.EnableTrace = enabled
	return c
}

package signals

// Policy controls what happens when a Handler panics on the worker.
type Policy struct {
	// RecoverPanics keeps the worker alive after a panicking handler. When
	// false the panic propagates and crashes the process.
	RecoverPanics bool
	// LogPanics logs recovered panics with a stack trace at error level.
	LogPanics bool
}

func defaultPolicy() Policy {
	return Policy{
		RecoverPanics: true,
		LogPanics:     true,
	}
}

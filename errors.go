package signals

import "errors"

var (
	// ErrUnknownSignal is returned when a name does not match any Signal.
	ErrUnknownSignal = errors.New("signals: unknown signal")
)

package signals

import (
	"context"
	"testing"
	"time"
)

// FuzzCoordinator runs permutations of coordinator operations against a
// plain bitmask model. It avoids real OS signals.
func FuzzCoordinator(f *testing.F) {
	f.Add([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	f.Add([]byte{12, 12, 12, 200, 201, 13, 14, 201})

	f.Fuzz(func(t *testing.T, data []byte) {
		c := newCoordinator()
		var model Set

		const maxOps = 256
		for i := 0; i < len(data) && i < maxOps; i++ {
			b := data[i]
			switch {
			case b < 2*uint8(numSignals): // record
				s := Signal(b % uint8(numSignals))
				c.record(s)
				model |= s.bit()
			case b < 200: // deliver by OS number
				c.deliver(Signal(b % uint8(numSignals)).OS())
				model |= Signal(b % uint8(numSignals)).bit()
			case b < 240: // drain
				if got := c.drain(); got != model {
					t.Fatalf("drain = %v, model %v", got, model)
				}
				model = 0
			default: // wait with a short deadline
				ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
				err := c.wait(ctx)
				cancel()
				if (err == nil) != (model != 0) {
					t.Fatalf("wait err=%v with model %v", err, model)
				}
			}
		}
		if got := c.drain(); got != model {
			t.Fatalf("final drain = %v, model %v", got, model)
		}
		if got := c.drain(); got != 0 {
			t.Fatalf("second drain = %v, want empty", got)
		}
	})
}

package signals

import (
	"context"
	"os"
	"strings"
	"sync/atomic"
)

// Set is a bitmask of signals, one bit per Signal.
type Set uint32

// Has reports whether s is in the set.
func (m Set) Has(s Signal) bool {
	return s.Valid() && m&s.bit() != 0
}

// Signals lists the members of the set in canonical order.
func (m Set) Signals() []Signal {
	if m == 0 {
		return nil
	}
	out := make([]Signal, 0, numSignals)
	for s := Signal(0); s < numSignals; s++ {
		if m&s.bit() != 0 {
			out = append(out, s)
		}
	}
	return out
}

func (m Set) String() string {
	sigs := m.Signals()
	names := make([]string, len(sigs))
	for i, s := range sigs {
		names[i] = s.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}

// coordinator is the only channel between signal delivery and ordinary
// code. The mask is touched with atomics only; wake carries at most one
// pending notification and is sent to without blocking.
type coordinator struct {
	mask atomic.Uint32
	wake chan struct{}
}

func newCoordinator() *coordinator {
	return &coordinator{wake: make(chan struct{}, 1)}
}

// pending is the process-wide coordinator shared by every SetHandler call.
var pending = newCoordinator()

// deliver is the delivery-path routine. Unknown signals are dropped.
func (c *coordinator) deliver(sig os.Signal) {
	s, ok := FromOS(sig)
	if !ok {
		return
	}
	c.record(s)
}

// record sets the bit for s and wakes a waiter. It must not block or
// allocate.
func (c *coordinator) record(s Signal) {
	bit := uint32(s.bit())
	for {
		old := c.mask.Load()
		if c.mask.CompareAndSwap(old, old|bit) {
			break
		}
	}
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// wait blocks until the mask is non-zero or ctx is done. A wake with an
// empty mask (another worker drained first) is absorbed by re-checking.
func (c *coordinator) wait(ctx context.Context) error {
	for c.mask.Load() == 0 {
		select {
		case <-c.wake:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// drain atomically takes and clears every pending bit.
func (c *coordinator) drain() Set {
	return Set(c.mask.Swap(0))
}

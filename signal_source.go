package signals

import (
	"os"
	"os/signal"
	"sync"
)

// Source abstracts OS-level signal registration. It is primarily useful for
// injecting fakes during testing.
type Source interface {
	// Notify registers the provided channel to receive the given signals.
	Notify(chan<- os.Signal, ...os.Signal)
}

// defaultSignalSource is the production implementation of Source.
// It delegates to the standard library's signal.Notify function.
type defaultSignalSource struct{}

// Notify registers the provided channel to receive the specified OS signals.
func (defaultSignalSource) Notify(c chan<- os.Signal, sig ...os.Signal) {
	signal.Notify(c, sig...)
}

// relay owns one channel per Signal and the goroutines that hand
// deliveries to a coordinator. Each channel holds a single pending
// delivery; os/signal drops a send to a full channel, so a flood of one
// signal can only drop copies of that same signal.
type relay struct {
	once  [numSignals]sync.Once
	chs   [numSignals]chan os.Signal
	coord *coordinator
}

func newRelay(c *coordinator) *relay {
	r := &relay{coord: c}
	for i := range r.chs {
		r.chs[i] = make(chan os.Signal, 1)
	}
	return r
}

// defaultRelay feeds the process-wide coordinator.
var defaultRelay = newRelay(pending)

// install asks src to deliver each of sigs on its own channel and starts
// that channel's forwarder on first use. Installing the same signal again
// is harmless.
func (r *relay) install(src Source, sigs []Signal) {
	for _, s := range sigs {
		ch := r.chs[s]
		r.once[s].Do(func() {
			go r.forward(ch)
		})
		src.Notify(ch, s.OS())
	}
}

func (r *relay) forward(ch <-chan os.Signal) {
	for sig := range ch {
		r.coord.deliver(sig)
	}
}

// stop ends every forwarder. The source must no longer deliver to the
// relay, so it is only used for private relays whose source is a fake.
func (r *relay) stop() {
	for _, ch := range r.chs {
		close(ch)
	}
}

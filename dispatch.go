package signals

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"
)

// Handler receives every signal drained in one batch, in canonical order.
// Each Signal appears at most once per batch no matter how many times it
// was delivered.
type Handler func(sigs []Signal)

// SetHandler routes the given signals to h and returns immediately.
//
// Every call installs OS-level delivery for sigs and starts one new worker
// goroutine that runs for the rest of the process. The worker waits for
// pending signals, drains them, and calls h with the batch. Calls to h from
// one worker never overlap.
//
// All workers share one process-wide pending set, so when SetHandler is
// called more than once the first worker to drain takes the batch; the
// others do not see those signals. There is no way to stop a worker or
// remove its handler.
func SetHandler(sigs []Signal, h Handler, opts ...Option) {
	setHandler(context.Background(), defaultRelay, sigs, h, opts...)
}

func setHandler(ctx context.Context, r *relay, sigs []Signal, h Handler, opts ...Option) *dispatcher {
	o := buildOptions(opts)
	valid := make([]Signal, 0, len(sigs))
	for _, s := range sigs {
		if !s.Valid() {
			o.logger.Debug("signals: ignoring unsupported signal", "signal", s)
			continue
		}
		valid = append(valid, s)
	}
	r.install(o.source, valid)

	d := newDispatcher(r.coord, h, o)
	o.logger.Debug("signals: worker started", "signals", fmt.Sprint(valid))
	go d.run(ctx)
	return d
}

// dispatcher is the state of one worker.
type dispatcher struct {
	coord   *coordinator
	handler Handler
	logger  *slog.Logger
	policy  Policy
}

func newDispatcher(c *coordinator, h Handler, o options) *dispatcher {
	if h == nil {
		h = func([]Signal) {}
	}
	return &dispatcher{
		coord:   c,
		handler: h,
		logger:  o.logger,
		policy:  o.policy,
	}
}

// run loops until ctx ends, which only happens for private coordinators.
func (d *dispatcher) run(ctx context.Context) {
	for {
		if err := d.coord.wait(ctx); err != nil {
			return
		}
		batch := d.coord.drain().Signals()
		if len(batch) == 0 {
			continue
		}
		d.dispatch(batch)
	}
}

func (d *dispatcher) dispatch(batch []Signal) {
	start := time.Now()
	if d.policy.RecoverPanics {
		defer func() {
			if rec := recover(); rec != nil && d.policy.LogPanics {
				d.logger.Error("signals: panic in handler",
					"signals", fmt.Sprint(batch),
					"panic", rec,
					"stack", string(debug.Stack()),
				)
			}
		}()
	}
	d.handler(batch)
	d.logger.Debug("signals: handled batch", "signals", fmt.Sprint(batch), "elapsed", time.Since(start))
}

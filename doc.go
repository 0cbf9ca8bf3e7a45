// Package signals lets applications react to Unix process signals with
// ordinary Go code.
//
// Signal delivery only records which signals arrived, using a lock-free bit
// set. A worker goroutine started by SetHandler waits for that set to become
// non-empty, drains it in one atomic step, and passes the batch to the
// caller's Handler. Repeated deliveries of one signal before a drain collapse
// into a single entry, and batches are always ordered by the declared order
// of the Signal constants rather than by arrival.
//
//	signals.SetHandler([]signals.Signal{signals.Int, signals.Term}, func(sigs []signals.Signal) {
//		log.Println("caught", sigs)
//	})
//
// Handlers cannot be removed once set, and workers run until the process
// exits.
package signals

//go:build !windows

package signals

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// osNumbers is indexed by Signal. Values differ between platforms.
var osNumbers = [numSignals]syscall.Signal{
	Hup:  unix.SIGHUP,
	Int:  unix.SIGINT,
	Quit: unix.SIGQUIT,
	Ill:  unix.SIGILL,
	Abrt: unix.SIGABRT,
	Fpe:  unix.SIGFPE,
	Kill: unix.SIGKILL,
	Segv: unix.SIGSEGV,
	Pipe: unix.SIGPIPE,
	Alrm: unix.SIGALRM,
	Term: unix.SIGTERM,
}

//go:build windows

package signals

import "syscall"

// Windows only ever delivers Int and Term to a Go program; the remaining
// numbers exist so the table stays total.
var osNumbers = [numSignals]syscall.Signal{
	Hup:  syscall.SIGHUP,
	Int:  syscall.SIGINT,
	Quit: syscall.SIGQUIT,
	Ill:  syscall.SIGILL,
	Abrt: syscall.SIGABRT,
	Fpe:  syscall.SIGFPE,
	Kill: syscall.SIGKILL,
	Segv: syscall.SIGSEGV,
	Pipe: syscall.SIGPIPE,
	Alrm: syscall.SIGALRM,
	Term: syscall.SIGTERM,
}

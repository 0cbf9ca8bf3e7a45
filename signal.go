package signals

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/hashicorp/go-multierror"
)

// Signal identifies one of the process signals this package can observe.
// The declared order is the order used when a drained batch is reported.
type Signal uint8

// Supported signals, in canonical order.
const (
	Hup Signal = iota
	Int
	Quit
	Ill
	Abrt
	Fpe
	Kill
	Segv
	Pipe
	Alrm
	Term

	numSignals
)

var signalNames = [numSignals]string{
	Hup:  "HUP",
	Int:  "INT",
	Quit: "QUIT",
	Ill:  "ILL",
	Abrt: "ABRT",
	Fpe:  "FPE",
	Kill: "KILL",
	Segv: "SEGV",
	Pipe: "PIPE",
	Alrm: "ALRM",
	Term: "TERM",
}

// All returns every supported signal in canonical order.
func All() []Signal {
	all := make([]Signal, numSignals)
	for i := range all {
		all[i] = Signal(i)
	}
	return all
}

// Valid reports whether s is one of the declared signals.
func (s Signal) Valid() bool {
	return s < numSignals
}

// String returns the short upper-case name, e.g. "INT".
func (s Signal) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Signal(%d)", uint8(s))
	}
	return signalNames[s]
}

// OS returns the operating system signal number for s. It returns 0 for
// values outside the declared set.
func (s Signal) OS() syscall.Signal {
	if !s.Valid() {
		return 0
	}
	return osNumbers[s]
}

// bit returns the pending-mask bit owned by s.
func (s Signal) bit() Set {
	return 1 << s
}

// FromOS maps an operating system signal back to a Signal. Signals outside
// the supported set report false. It is called on the delivery path and must
// not allocate.
func FromOS(sig os.Signal) (Signal, bool) {
	num, ok := sig.(syscall.Signal)
	if !ok {
		return 0, false
	}
	for i := Signal(0); i < numSignals; i++ {
		if osNumbers[i] == num {
			return i, true
		}
	}
	return 0, false
}

// Parse converts a signal name to a Signal. Matching is case-insensitive
// and the "SIG" prefix is optional, so "int", "SIGINT" and "Int" all parse.
func Parse(name string) (Signal, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "SIG")
	for i, sn := range signalNames {
		if sn == n {
			return Signal(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSignal, name)
}

// ParseList parses a comma-separated list of signal names. Every invalid
// entry is reported in the returned error. Empty entries are skipped.
func ParseList(list string) ([]Signal, error) {
	var (
		out  []Signal
		errs *multierror.Error
	)
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		s, err := Parse(name)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		out = append(out, s)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// List is a set of signals usable as a command line flag value. It
// satisfies the pflag.Value and flag.Value interfaces.
type List []Signal

// String renders the list as comma-separated lower-case names.
func (l *List) String() string {
	if l == nil {
		return ""
	}
	names := make([]string, len(*l))
	for i, s := range *l {
		names[i] = strings.ToLower(s.String())
	}
	return strings.Join(names, ",")
}

// Set replaces the list with the parsed contents of v.
func (l *List) Set(v string) error {
	sigs, err := ParseList(v)
	if err != nil {
		return err
	}
	*l = sigs
	return nil
}

// Type names the flag value type in help output.
func (l *List) Type() string {
	return "signals"
}

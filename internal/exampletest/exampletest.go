// Package exampletest builds and drives the example programs from their
// tests.
package exampletest

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Build compiles the package in the test's working directory and returns
// the binary path.
func Build(t *testing.T, name string) string {
	t.Helper()
	bin := filepath.Join(t.TempDir(), name)
	if runtime.GOOS == "windows" {
		bin += ".exe"
	}
	cmd := exec.Command("go", "build", "-o", bin, ".")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "build failed:\n%s", out)
	return bin
}

// Process is a running example with its combined output captured.
type Process struct {
	cmd *exec.Cmd
	ctx context.Context
	out *lockedBuffer
}

// Start runs bin with args and env appended to the current environment.
// The process is killed if it outlives timeout.
func Start(t *testing.T, timeout time.Duration, bin string, env []string, args ...string) *Process {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Env = append(os.Environ(), env...)
	buf := &lockedBuffer{}
	cmd.Stdout = buf
	cmd.Stderr = buf
	require.NoError(t, cmd.Start())
	return &Process{cmd: cmd, ctx: ctx, out: buf}
}

// Signal sends sig to the process.
func (p *Process) Signal(t *testing.T, sig os.Signal) {
	t.Helper()
	require.NoError(t, p.cmd.Process.Signal(sig))
}

// Wait waits for exit and fails the test if the timeout fired first.
func (p *Process) Wait(t *testing.T) error {
	t.Helper()
	err := p.cmd.Wait()
	require.NotErrorIs(t, p.ctx.Err(), context.DeadlineExceeded, "example did not exit in time; output:\n%s", p.Output())
	return err
}

// WaitForOutput polls until the output contains substr.
func (p *Process) WaitForOutput(t *testing.T, substr string) {
	t.Helper()
	require.Eventually(t, func() bool {
		return bytes.Contains(p.out.Bytes(), []byte(substr))
	}, 5*time.Second, 10*time.Millisecond, "output never contained %q:\n%s", substr, p.Output())
}

// Output returns everything written so far.
func (p *Process) Output() string {
	return string(p.out.Bytes())
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.buf.Bytes()...)
}

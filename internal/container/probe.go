// SPDX-License-Identifier: MPL-2.0

package container

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"time"
)

const (
	// DefaultProbeTimeout bounds a single probe invocation. A probe that
	// has not completed by then is treated as a failed probe and its
	// process is killed.
	DefaultProbeTimeout = 10 * time.Second

	// probeWaitDelay is the grace period between the context firing and
	// Wait giving up on the process releasing its output pipes.
	probeWaitDelay = time.Second
)

type (
	// ExecCommandFunc is the function signature for creating exec.Cmd.
	// This allows injection of mock implementations for testing.
	ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

	// ProberOption configures a Prober.
	ProberOption func(*Prober)

	// Prober runs an external executable with a bounded wait and captures
	// its merged stdout/stderr. Probes observe environment state only;
	// every failure mode (missing binary, timeout, interruption) is folded
	// into an empty result, never an error. A probe may block its caller
	// for up to the configured timeout.
	Prober struct {
		execCommand ExecCommandFunc
		timeout     time.Duration
	}

	// ProbeResult is the observed outcome of a single probe.
	ProbeResult struct {
		// Output is the merged stdout/stderr text, UTF-8 as produced by
		// the process. Empty when the probe could not run or timed out.
		Output string

		// ExitCode is the process exit code, or -1 when the probe never
		// produced one (missing binary, timeout, interruption).
		ExitCode int
	}
)

// WithExecCommand overrides how commands are created. Intended for tests.
func WithExecCommand(f ExecCommandFunc) ProberOption {
	return func(p *Prober) {
		p.execCommand = f
	}
}

// WithTimeout overrides the per-probe timeout.
func WithTimeout(d time.Duration) ProberOption {
	return func(p *Prober) {
		p.timeout = d
	}
}

// NewProber creates a Prober with the default timeout.
func NewProber(opts ...ProberOption) *Prober {
	p := &Prober{
		execCommand: exec.CommandContext,
		timeout:     DefaultProbeTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run invokes name with args and waits for completion, up to the probe
// timeout. Error output is merged into the captured text. The spawned
// process is torn down on every exit path: on timeout or cancellation the
// context kills it, and Wait is bounded by probeWaitDelay so an inherited
// pipe cannot keep the call hanging.
func (p *Prober) Run(ctx context.Context, name string, args ...string) ProbeResult {
	runCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var out bytes.Buffer
	cmd := p.execCommand(runCtx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out
	if cmd.Cancel != nil {
		cmd.WaitDelay = probeWaitDelay
	}

	err := cmd.Run()
	switch {
	case err == nil:
		return ProbeResult{Output: out.String(), ExitCode: 0}
	case runCtx.Err() != nil:
		slog.Debug("probe did not complete in time", "command", name, "timeout", p.timeout)
		return ProbeResult{ExitCode: -1}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The process ran to completion; callers decide what a non-zero
		// exit means for their classification.
		return ProbeResult{Output: out.String(), ExitCode: exitErr.ExitCode()}
	}

	// Spawn failure, typically a binary that is not installed. Probing a
	// missing tool is an expected outcome.
	slog.Debug("probe could not run", "command", name, "error", err)
	return ProbeResult{ExitCode: -1}
}

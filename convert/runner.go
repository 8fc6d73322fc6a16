// SPDX-License-Identifier: MIT

// Package convert: the external-tool port.
// Core logic never shells out directly; it talks to a Runner so tests can
// inject a fake and the library stays testable without the Java/Python
// binaries installed. A non-zero exit is fatal for the operation and is
// never retried here — retry policy, if any, belongs to the caller.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Runner executes one external command synchronously. Implementations
// must honor ctx cancellation and return an ErrSubprocess-class error
// (normally *ExitError) on non-zero exit.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExitError reports a failed external invocation with enough context to be
// actionable without re-running: the full command line, the exit code, and
// a bounded stderr tail.
type ExitError struct {
	Cmd    string
	Code   int
	Stderr string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	msg := fmt.Sprintf("convert: %q exited with code %d", e.Cmd, e.Code)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}

	return msg
}

// Unwrap makes errors.Is(err, ErrSubprocess) match every ExitError.
func (e *ExitError) Unwrap() error { return ErrSubprocess }

// stderrTailLimit bounds how much captured stderr an ExitError carries.
const stderrTailLimit = 2048

// ExecRunner is the production Runner on top of os/exec.
type ExecRunner struct {
	// Stdout receives the tool's stdout; nil discards it.
	Stdout io.Writer
}

// Run starts name with args under ctx and waits for completion.
// Stderr is captured so failures carry the tool's own diagnostics.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stdout = r.Stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	line := strings.Join(append([]string{name}, args...), " ")
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return &ExitError{Cmd: line, Code: ee.ExitCode(), Stderr: tail(stderr.String())}
	}

	// Start failures (binary not found, ctx canceled before exec).
	return fmt.Errorf("convert: run %q: %v: %w", line, err, ErrSubprocess)
}

// tail returns the last stderrTailLimit bytes of s, trimmed.
func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > stderrTailLimit {
		s = s[len(s)-stderrTailLimit:]
	}

	return s
}

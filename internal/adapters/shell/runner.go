// Package shell provides the external tool runner adapter.
package shell

import (
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/picon/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolRunner = (*Runner)(nil)

// Runner implements ports.ToolRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// LookPath reports the absolute path of an executable on PATH.
func (r *Runner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "executable not found"), "tool", name)
	}
	return path, nil
}

// Run executes the program as a one-shot subprocess and waits for it.
// Stdout and stderr are streamed to the logger line by line.
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // Tool name is a fixed engine constant

	cmd.Stdout = &logWriter{logger: r.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: r.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, "command failed"), "tool", name), "exit_code", exitCode)
	}

	return nil
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (int, error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if line == "" {
			continue
		}
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}

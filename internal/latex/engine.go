// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package latex runs an external typesetting engine (xelatex by default)
// on generated .tex files. Engine failures are reported in the result and
// never returned as errors: a missing PDF does not abort a run.
package latex

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"

	"github.com/pdiddy/tichy-diktat/pkg/types"
)

const (
	// DefaultEngine is the engine binary used when none is configured.
	DefaultEngine = "xelatex"

	// notRun is the exit code reported when the engine never started.
	notRun = -1
)

// DefaultArgs keeps the engine from stopping at an interactive prompt.
var DefaultArgs = []string{"-interaction=nonstopmode"}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, dir, name string, args []string, stdout io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(ctx context.Context, dir, name string, args []string, stdout io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stdout
	return cmd.Run()
}

// Engine compiles .tex files with a configured binary.
type Engine struct {
	bin  string
	args []string
	exec executor

	// Output receives the engine's console output. Nil discards it.
	Output io.Writer
}

var defaultExec = &osExecutor{}

// NewEngine creates an engine from cfg, filling in defaults.
func NewEngine(cfg types.CompileConfig) *Engine {
	return newEngine(cfg, defaultExec)
}

func newEngine(cfg types.CompileConfig, exec executor) *Engine {
	bin := cfg.Engine
	if bin == "" {
		bin = DefaultEngine
	}
	args := cfg.Args
	if args == nil {
		args = DefaultArgs
	}
	return &Engine{bin: bin, args: args, exec: exec}
}

// Name returns the engine binary name.
func (e *Engine) Name() string { return e.bin }

// Available returns nil when the engine binary is on PATH.
func (e *Engine) Available() error {
	if _, err := e.exec.LookPath(e.bin); err != nil {
		return fmt.Errorf("%s not found on PATH: %w", e.bin, err)
	}
	return nil
}

// Compile runs the engine on texPath inside the file's directory, so the
// PDF lands next to the source. The exit status is recorded in the result.
func (e *Engine) Compile(ctx context.Context, texPath string) types.CompileResult {
	res := types.CompileResult{
		TexPath:  texPath,
		PDFPath:  types.PDFPath(texPath),
		ExitCode: notRun,
	}

	if _, err := e.exec.LookPath(e.bin); err != nil {
		res.Err = fmt.Errorf("%s not found on PATH: %w", e.bin, err)
		return res
	}

	out := e.Output
	if out == nil {
		out = io.Discard
	}

	args := make([]string, 0, len(e.args)+1)
	args = append(args, e.args...)
	args = append(args, filepath.Base(texPath))

	err := e.exec.Run(ctx, filepath.Dir(texPath), e.bin, args, out)
	if err == nil {
		res.ExitCode = 0
		return res
	}

	// *exec.ExitError carries the status.
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		res.ExitCode = coded.ExitCode()
	}
	res.Err = fmt.Errorf("running %s on %s: %w", e.bin, filepath.Base(texPath), err)
	return res
}

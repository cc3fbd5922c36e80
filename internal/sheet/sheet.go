// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sheet turns one dictation into an exercise sheet and a solution
// sheet: it writes the raw text dumps, renders both LaTeX documents and
// hands them to the typesetting engine.
package sheet

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pdiddy/tichy-diktat/internal/logging"
	"github.com/pdiddy/tichy-diktat/internal/marking"
	"github.com/pdiddy/tichy-diktat/internal/normalize"
	"github.com/pdiddy/tichy-diktat/internal/render"
	"github.com/pdiddy/tichy-diktat/pkg/types"
)

const (
	defaultDir  = "."
	defaultBase = "diktat"

	// maxLineSize bounds a single input line.
	maxLineSize = 1 << 20
)

// Compiler runs the typesetting engine on one source file.
type Compiler interface {
	Compile(ctx context.Context, texPath string) types.CompileResult
}

// Options configures Generate and GenerateBatch.
type Options struct {
	Marking types.MarkingConfig
	Output  types.OutputConfig
	Title   string

	// Renderer renders both documents. Nil uses the embedded template.
	Renderer *render.Renderer

	// Compiler is invoked once per document. Nil skips compilation.
	Compiler Compiler

	// Logger receives progress records. Nil discards them.
	Logger *slog.Logger
}

// Result describes one generated sheet.
type Result struct {
	Sheet    types.Sheet
	Files    types.OutputFiles
	Compiled []types.CompileResult
}

// ReadInput reads r line by line until EOF. Each line, with a trailing
// carriage return removed, is followed by a blank line so every input line
// becomes its own paragraph.
func ReadInput(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var b strings.Builder
	for sc.Scan() {
		b.WriteString(strings.TrimSuffix(sc.Text(), "\r"))
		b.WriteString("\n\n")
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return b.String(), nil
}

// Prepare runs the text pipeline: NFC canonicalization and capitalization
// normalization, then ambiguity marking with the table built from cfg.
func Prepare(raw string, cfg types.MarkingConfig) types.Sheet {
	normalized := normalize.Canonical(raw)
	return types.Sheet{
		Raw:        raw,
		Normalized: normalized,
		Marked:     marking.MarkString(normalized, marking.NewTable(cfg)),
	}
}

// Generate writes the text dumps and both documents for raw, then compiles
// them. File system and template errors are returned; compile failures are
// only logged and recorded in the result.
func Generate(ctx context.Context, raw string, opts Options) (Result, error) {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	renderer := opts.Renderer
	if renderer == nil {
		var err error
		if renderer, err = render.New(""); err != nil {
			return Result{}, err
		}
	}

	dir, base := opts.Output.Dir, opts.Output.Base
	if dir == "" {
		dir = defaultDir
	}
	if base == "" {
		base = defaultBase
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating output directory: %w", err)
	}
	files := types.NewOutputFiles(dir, base)

	// Both dumps hold the text before any transformation.
	if err := writeFile(files.Plain, raw); err != nil {
		return Result{}, err
	}
	log.Info("input saved", "path", files.Plain)
	if err := writeFile(files.Solved, raw); err != nil {
		return Result{}, err
	}

	sheet := Prepare(raw, opts.Marking)

	exercise, err := renderer.Render(render.Document{Text: sheet.Marked, Title: opts.Title})
	if err != nil {
		return Result{}, err
	}
	solution, err := renderer.Render(render.Document{Text: raw, Title: opts.Title, Solution: true})
	if err != nil {
		return Result{}, err
	}

	log.Debug("writing exercise document", "path", files.Exercise)
	if err := writeFile(files.Exercise, exercise); err != nil {
		return Result{}, err
	}
	log.Debug("writing solution document", "path", files.Solution)
	if err := writeFile(files.Solution, solution); err != nil {
		return Result{}, err
	}

	res := Result{Sheet: sheet, Files: files}
	if opts.Compiler == nil {
		return res, nil
	}

	for _, tex := range []string{files.Exercise, files.Solution} {
		log.Debug("compiling", "path", tex)
		cr := opts.Compiler.Compile(ctx, tex)
		if cr.OK() {
			log.Debug("compiled", "pdf", cr.PDFPath, "exit_code", cr.ExitCode)
		} else {
			log.Debug("compile failed", "path", tex, "exit_code", cr.ExitCode, "error", cr.Err)
		}
		res.Compiled = append(res.Compiled, cr)
	}
	return res, nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

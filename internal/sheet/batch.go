// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheet

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/tichy-diktat/pkg/types"
)

// BatchResult holds the outcome of a batch run.
type BatchResult struct {
	Generated int
	Skipped   int
	Failed    int
}

// Total returns the number of files processed.
func (r BatchResult) Total() int {
	return r.Generated + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

type batchStatus int

const (
	statusGenerated batchStatus = iota
	statusSkipped
	statusFailed
)

// GenerateBatch generates one sheet per dictation file, named after the file
// without its extension. A file whose exercise document already exists is
// skipped unless opts.Output.Force is set. Per-file status and a summary are
// printed to w.
func GenerateBatch(ctx context.Context, paths []string, opts Options, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range paths {
		switch generateFile(ctx, p, opts, w) {
		case statusGenerated:
			result.Generated++
		case statusSkipped:
			result.Skipped++
		case statusFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d generated, %d skipped, %d failed (total: %d)\n",
		result.Generated, result.Skipped, result.Failed, result.Total())
	return result
}

func generateFile(ctx context.Context, path string, opts Options, w io.Writer) batchStatus {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	opts.Output.Base = base

	dir := opts.Output.Dir
	if dir == "" {
		dir = defaultDir
	}
	files := types.NewOutputFiles(dir, base)
	if _, err := os.Stat(files.Exercise); err == nil && !opts.Output.Force {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", base)
		return statusSkipped
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return statusFailed
	}
	raw, err := ReadInput(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return statusFailed
	}

	res, err := Generate(ctx, raw, opts)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return statusFailed
	}

	fmt.Fprintf(w, "generated: %s%s\n", base, compileNote(res.Compiled))
	return statusGenerated
}

// compileNote summarizes engine results for a status line.
func compileNote(results []types.CompileResult) string {
	if len(results) == 0 {
		return ""
	}
	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	if failed == 0 {
		return ""
	}
	return fmt.Sprintf(" (%d of %d PDFs not produced)", failed, len(results))
}

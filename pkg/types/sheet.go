// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"path/filepath"
	"strings"
)

// Sheet holds the text of one dictation at each pipeline stage.
type Sheet struct {
	// Raw is the input as read, each line followed by a blank line.
	Raw string `json:"raw" yaml:"raw"`

	// Normalized is Raw after canonicalization and capitalization normalization.
	Normalized string `json:"normalized" yaml:"normalized"`

	// Marked is Normalized with ambiguity markup applied.
	Marked string `json:"marked" yaml:"marked"`
}

// OutputFiles lists the paths written for one sheet.
type OutputFiles struct {
	// Plain is the raw text dump (<base>.txt).
	Plain string `json:"plain" yaml:"plain"`

	// Solved is the pre-transformation text dump (<base>.solved.txt).
	Solved string `json:"solved" yaml:"solved"`

	// Exercise is the student document source (<base>.tex).
	Exercise string `json:"exercise" yaml:"exercise"`

	// Solution is the solution document source (<base>.solved.tex).
	Solution string `json:"solution" yaml:"solution"`
}

// NewOutputFiles derives the output paths for base inside dir.
func NewOutputFiles(dir, base string) OutputFiles {
	p := func(ext string) string { return filepath.Join(dir, base+ext) }
	return OutputFiles{
		Plain:    p(".txt"),
		Solved:   p(".solved.txt"),
		Exercise: p(".tex"),
		Solution: p(".solved.tex"),
	}
}

// PDFPath returns the path the engine writes for texPath.
func PDFPath(texPath string) string {
	return strings.TrimSuffix(texPath, filepath.Ext(texPath)) + ".pdf"
}

// CompileResult records the outcome of one engine invocation. It is
// observed and logged, never acted on.
type CompileResult struct {
	// TexPath is the source file passed to the engine.
	TexPath string `json:"tex_path" yaml:"tex_path"`

	// PDFPath is where the engine writes its output on success.
	PDFPath string `json:"pdf_path" yaml:"pdf_path"`

	// ExitCode is the engine exit status; -1 when the engine did not run.
	ExitCode int `json:"exit_code" yaml:"exit_code"`

	// Err holds the invocation error, if any.
	Err error `json:"-" yaml:"-"`
}

// OK reports whether the engine exited successfully.
func (r CompileResult) OK() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns dictation text into LaTeX documents through a
// text/template. The default template is embedded; a file on disk can
// replace it.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"
)

//go:embed templates/*
var templates embed.FS

const defaultTemplate = "templates/diktat.tex.tmpl"

// EmbeddedSource names the built-in template in Renderer.Source.
const EmbeddedSource = "embedded:" + defaultTemplate

// Document is the data passed to the template.
type Document struct {
	// Text is inserted verbatim; it is not escaped.
	Text string

	// Title is optional.
	Title string

	// Solution is true for the solution document.
	Solution bool
}

// Renderer executes a parsed document template.
type Renderer struct {
	tmpl   *template.Template
	source string
}

// New parses the template at path, or the embedded template when path is
// empty. A missing file is returned as an error wrapping fs.ErrNotExist.
func New(path string) (*Renderer, error) {
	if path == "" {
		content, err := templates.ReadFile(defaultTemplate)
		if err != nil {
			return nil, fmt.Errorf("reading embedded template: %w", err)
		}
		return parse(EmbeddedSource, string(content))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}
	return parse(path, string(content))
}

// NewFromString parses text as a document template.
func NewFromString(name, text string) (*Renderer, error) {
	return parse(name, text)
}

func parse(name, text string) (*Renderer, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return &Renderer{tmpl: tmpl, source: name}, nil
}

// Source returns the template path, or EmbeddedSource.
func (r *Renderer) Source() string { return r.source }

// Render executes the template for doc.
func (r *Renderer) Render(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("rendering %s: %w", r.source, err)
	}
	return buf.String(), nil
}

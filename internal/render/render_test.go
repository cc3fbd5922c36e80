// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Embedded(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)
	assert.Equal(t, EmbeddedSource, r.Source())

	text := `Mam$\overset{v}{\underset{f}{u}}$ \hspace{5mm}m$i \atop y$.` + "\n\n"
	out, err := r.Render(Document{Text: text})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `\documentclass`))
	assert.Contains(t, out, `\usepackage{amsmath}`)
	assert.Contains(t, out, text, "text must be inserted verbatim")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), `\end{document}`))
	assert.NotContains(t, out, `\textbf`, "no title block without a title")
}

func TestRender_Title(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)

	out, err := r.Render(Document{Text: "Ahoj.", Title: "Diktát 3"})
	require.NoError(t, err)
	assert.Contains(t, out, `\textbf{Diktát 3}`)
}

func TestRender_EmptyText(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)

	out, err := r.Render(Document{})
	require.NoError(t, err)
	assert.Contains(t, out, `\begin{document}`)
	assert.Contains(t, out, `\end{document}`)
}

func TestNew_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.tex.tmpl")
	tmpl := `{{if .Solution}}S{{else}}E{{end}}:{{.Text}}`
	require.NoError(t, os.WriteFile(path, []byte(tmpl), 0o644))

	r, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, path, r.Source())

	ex, err := r.Render(Document{Text: "a"})
	require.NoError(t, err)
	assert.Equal(t, "E:a", ex)

	sol, err := r.Render(Document{Text: "a", Solution: true})
	require.NoError(t, err)
	assert.Equal(t, "S:a", sol)
}

func TestNew_MissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.tmpl"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNewFromString_ParseError(t *testing.T) {
	_, err := NewFromString("bad", "{{.Text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing template bad")
}

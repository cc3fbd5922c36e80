// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatJSON, ParseFormat(" JSON "))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat(""))
	assert.Equal(t, FormatText, ParseFormat("xml"))
}

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, FormatText)
	log.Debug("hidden")
	log.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	log = New(&buf, true, FormatText)
	log.Debug("visible", "file", "diktat.tex")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "file=diktat.tex")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false, FormatJSON).Info("saved", "path", "diktat.txt")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "saved", rec["msg"])
	assert.Equal(t, "diktat.txt", rec["path"])
}

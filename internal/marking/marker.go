// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package marking replaces letters that pose an orthographic choice with
// LaTeX markup showing both options, so a student can resolve them by hand.
//
// Matching scans left to right without overlaps. At each position the
// longest key that matches case-insensitively wins; among keys of equal
// length the first one listed in the table wins.
package marking

import (
	"strings"
)

// Segment is one span of the input. Replacement is empty for spans no rule
// matched.
type Segment struct {
	Source      string
	Replacement string
	Matched     bool
}

// Marked is the marker output as a sequence of segments.
type Marked []Segment

// String returns the marked text.
func (m Marked) String() string {
	var b strings.Builder
	for _, s := range m {
		if s.Matched {
			b.WriteString(s.Replacement)
		} else {
			b.WriteString(s.Source)
		}
	}
	return b.String()
}

// Source returns the text the segments were cut from. It always equals the
// input passed to Mark.
func (m Marked) Source() string {
	var b strings.Builder
	for _, s := range m {
		b.WriteString(s.Source)
	}
	return b.String()
}

// Matches returns the number of replaced spans.
func (m Marked) Matches() int {
	n := 0
	for _, s := range m {
		if s.Matched {
			n++
		}
	}
	return n
}

// Mark splits text into matched and unmatched segments using t.
func Mark(text string, t *Table) Marked {
	var out Marked
	if text == "" {
		return out
	}
	if t == nil || t.Len() == 0 {
		return Marked{{Source: text}}
	}

	runes := []rune(text)
	var pending strings.Builder
	flush := func() {
		if pending.Len() > 0 {
			out = append(out, Segment{Source: pending.String()})
			pending.Reset()
		}
	}

	for i := 0; i < len(runes); {
		n, ok := t.longestMatch(runes[i:])
		if !ok {
			pending.WriteRune(runes[i])
			i++
			continue
		}
		src := string(runes[i : i+n])
		m, _ := t.Lookup(src)
		flush()
		out = append(out, Segment{Source: src, Replacement: m.Render(), Matched: true})
		i += n
	}
	flush()
	return out
}

// MarkString returns the marked text for text.
func MarkString(text string, t *Table) string {
	return Mark(text, t).String()
}

// longestMatch returns the rune length of the longest key matching at the
// start of rs.
func (t *Table) longestMatch(rs []rune) (int, bool) {
	maxLen := t.maxLen
	if len(rs) < maxLen {
		maxLen = len(rs)
	}
	for n := maxLen; n > 0; n-- {
		if _, ok := t.folded[strings.ToLower(string(rs[:n]))]; ok {
			return n, true
		}
	}
	return 0, false
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package marking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tichy-diktat/pkg/types"
)

const (
	hch  = `$h \atop ch$`
	dt   = `$d \atop t$`
	gk   = `$g \atop k$`
	iy   = `$i \atop y$`
	wide = ` \hspace{5mm}`
)

func fullTable() *Table {
	return NewTable(types.MarkingConfig{})
}

func TestMarkString(t *testing.T) {
	tests := []struct {
		name  string
		cfg   types.MarkingConfig
		input string
		want  string
	}{
		{
			name:  "voicing pairs in had",
			cfg:   types.MarkingConfig{NoYI: true, NarrowSpaces: true},
			input: "had",
			want:  hch + "a" + dt,
		},
		{
			name:  "pair members share a fragment",
			cfg:   types.MarkingConfig{NoYI: true, NarrowSpaces: true},
			input: "bp",
			want:  `$b \atop p$$b \atop p$`,
		},
		{
			name:  "digraph dz wins over d",
			cfg:   types.MarkingConfig{NoYI: true, NarrowSpaces: true},
			input: "medza",
			want:  "me" + `$dz \atop c$` + "a",
		},
		{
			name:  "digraph dž",
			cfg:   types.MarkingConfig{NoYI: true, NarrowSpaces: true},
			input: "džem",
			want:  `$dž \atop č$` + "em",
		},
		{
			name:  "ch is one span",
			cfg:   types.MarkingConfig{NoYI: true, NarrowSpaces: true},
			input: "mucha",
			want:  "m" + `$\overset{v}{\underset{f}{u}}$` + hch + "a",
		},
		{
			name:  "c and č alone are not marked",
			cfg:   types.MarkingConfig{NoYI: true, NarrowSpaces: true},
			input: "čo",
			want:  "čo",
		},
		{
			name:  "vowel pairs",
			cfg:   types.MarkingConfig{NoVoicing: true, NarrowSpaces: true},
			input: "mýlil",
			want:  "m" + `$í \atop ý$` + "l" + iy + "l",
		},
		{
			name:  "wide space",
			cfg:   types.MarkingConfig{NoVoicing: true, NoYI: true},
			input: " ",
			want:  wide,
		},
		{
			name:  "narrow space stays literal",
			cfg:   types.MarkingConfig{NoVoicing: true, NoYI: true, NarrowSpaces: true},
			input: " ",
			want:  " ",
		},
		{
			name:  "custom space width",
			cfg:   types.MarkingConfig{NoVoicing: true, NoYI: true, SpaceWidth: "8mm"},
			input: "a b",
			want:  `a \hspace{8mm}b`,
		},
		{
			name:  "blank lines and punctuation preserved",
			cfg:   types.MarkingConfig{},
			input: "Ano.\n\nNie!\n\n",
			want:  "Ano.\n\nN" + iy + "e!\n\n",
		},
		{
			name:  "all categories on",
			cfg:   types.MarkingConfig{},
			input: "Mama má macka.",
			want:  "Mama" + wide + "má" + wide + "mac" + gk + "a.",
		},
		{
			name:  "empty input",
			cfg:   types.MarkingConfig{},
			input: "",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MarkString(tt.input, NewTable(tt.cfg)))
		})
	}
}

func TestMarkString_UppercaseFallback(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "B", want: `$B \atop P$`},
		{input: "Dz", want: `$DZ \atop C$`},
		{input: "DŽ", want: `$DŽ \atop Č$`},
		{input: "CH", want: `$H \atop CH$`},
		{input: "Ý", want: `$Í \atop Ý$`},
		{input: "V", want: `$\overset{V}{\underset{F}{U}}$`},
		{input: "Dedko", want: `$D \atop T$` + "e" + dt + gk + "o"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := MarkString(tt.input, fullTable())
			assert.Equal(t, tt.want, got)
			assert.Contains(t, got, `\`)
			assert.NotContains(t, got, "ATOP")
			assert.NotContains(t, got, "OVERSET")
		})
	}
}

func TestMark_DisabledIsIdentity(t *testing.T) {
	tbl := NewTable(types.MarkingConfig{NoVoicing: true, NoYI: true, NarrowSpaces: true})
	assert.Equal(t, 0, tbl.Len())

	for _, in := range []string{"", " ", "Had by bol.\n\n", "Ďaleko, ďaleko!"} {
		assert.Equal(t, in, MarkString(in, tbl))
	}
	assert.Equal(t, "abc", MarkString("abc", nil))
}

func TestMark_SourceRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"Mama má macka.",
		"Dedko išiel do hory.\n\nBabka varila.\n\n",
		"  dvojité  medzery  ",
		"DŽÚS, dzíny a chlieb!",
		"koža",
	}
	tables := []*Table{
		fullTable(),
		NewTable(types.MarkingConfig{NoVoicing: true}),
		NewTable(types.MarkingConfig{NarrowSpaces: true}),
	}
	for _, tbl := range tables {
		for _, in := range inputs {
			m := Mark(in, tbl)
			assert.Equal(t, in, m.Source())
			assert.GreaterOrEqual(t, len(m.String()), len(in))
		}
	}
}

func TestMark_Segments(t *testing.T) {
	m := Mark("ahoj", NewTable(types.MarkingConfig{NoYI: true, NarrowSpaces: true}))
	require.Len(t, m, 3)
	assert.Equal(t, Segment{Source: "a"}, m[0])
	assert.Equal(t, Segment{Source: "h", Replacement: hch, Matched: true}, m[1])
	assert.Equal(t, Segment{Source: "oj"}, m[2])
	assert.Equal(t, 1, m.Matches())
}

func TestMark_LongestKeyWins(t *testing.T) {
	tbl := NewTableFromRules(
		Rule{Key: "a", Markup: Markup{Format: "<A>"}},
		Rule{Key: "ab", Markup: Markup{Format: "<AB>"}},
	)
	assert.Equal(t, "<AB><A>", MarkString("aba", tbl))
}

func TestMark_FirstListedWinsAmongEqualLength(t *testing.T) {
	tbl := NewTableFromRules(
		Rule{Key: "Xy", Markup: Markup{Format: "<first>"}},
		Rule{Key: "xY", Markup: Markup{Format: "<second>"}},
	)
	assert.Equal(t, "<first>", MarkString("XY", tbl))
	assert.Equal(t, "<second>", MarkString("xY", tbl))
}

func TestMarkup(t *testing.T) {
	m := Atop("dž", "č")
	assert.Equal(t, `$dž \atop č$`, m.Render())
	assert.Equal(t, `$DŽ \atop Č$`, m.Upper().Render())
	assert.Equal(t, `$dž \atop č$`, m.Render(), "Upper must not modify the receiver")

	o := Overset("v", "f", "u")
	assert.Equal(t, `$\overset{V}{\underset{F}{U}}$`, o.Upper().Render())

	assert.Equal(t, ` \hspace{5mm}`, Space("").Render())
}

func TestNewTable_Categories(t *testing.T) {
	count := func(tbl *Table, c Category) int {
		n := 0
		for _, r := range tbl.Rules() {
			if r.Category == c {
				n++
			}
		}
		return n
	}

	full := fullTable()
	assert.Equal(t, 22, count(full, CategoryVoicing))
	assert.Equal(t, 4, count(full, CategoryVowel))
	assert.Equal(t, 1, count(full, CategorySpacing))

	rules := full.Rules()
	assert.Equal(t, "dz", rules[0].Key)
	assert.Equal(t, " ", rules[len(rules)-1].Key)

	noVoicing := NewTable(types.MarkingConfig{NoVoicing: true})
	assert.Equal(t, 0, count(noVoicing, CategoryVoicing))
	assert.Equal(t, 5, noVoicing.Len())
}

func TestTable_Lookup(t *testing.T) {
	tbl := fullTable()

	m, ok := tbl.Lookup("t")
	require.True(t, ok)
	assert.Equal(t, dt, m.Render())

	m, ok = tbl.Lookup("T")
	require.True(t, ok)
	assert.Equal(t, `$D \atop T$`, m.Render())

	_, ok = tbl.Lookup("m")
	assert.False(t, ok)

	for _, r := range tbl.Rules() {
		got, ok := tbl.Lookup(r.Key)
		require.True(t, ok, r.Key)
		assert.False(t, strings.Contains(got.Render(), "ATOP"), r.Key)
	}
}

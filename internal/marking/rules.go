// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package marking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/tichy-diktat/pkg/types"
)

// Category groups rules that are enabled or disabled together.
type Category string

const (
	CategoryVoicing Category = "voicing"
	CategoryVowel   Category = "vowel"
	CategorySpacing Category = "spacing"
)

const (
	atopFormat    = `$%s \atop %s$`
	oversetFormat = `$\overset{%s}{\underset{%s}{%s}}$`

	// DefaultSpaceWidth is the horizontal gap that replaces a space.
	DefaultSpaceWidth = "5mm"
)

// Markup is a replacement fragment: a LaTeX format with one %s slot per
// option letter. Keeping the letters apart from the format lets Upper
// change the letters without touching LaTeX commands such as \atop.
type Markup struct {
	Format  string
	Options []string
}

// Atop stacks first over second.
func Atop(first, second string) Markup {
	return Markup{Format: atopFormat, Options: []string{first, second}}
}

// Overset shows top above base and bottom below it.
func Overset(top, bottom, base string) Markup {
	return Markup{Format: oversetFormat, Options: []string{top, bottom, base}}
}

// Space is a fixed-width gap that keeps a leading literal space.
func Space(width string) Markup {
	if width == "" {
		width = DefaultSpaceWidth
	}
	return Markup{Format: ` \hspace{` + width + `}`}
}

// Render produces the LaTeX fragment.
func (m Markup) Render() string {
	if len(m.Options) == 0 {
		return m.Format
	}
	args := make([]any, len(m.Options))
	for i, o := range m.Options {
		args[i] = o
	}
	return fmt.Sprintf(m.Format, args...)
}

// Upper returns a copy with every option letter uppercased. The format is
// not changed.
func (m Markup) Upper() Markup {
	opts := make([]string, len(m.Options))
	for i, o := range m.Options {
		opts[i] = strings.ToUpper(o)
	}
	return Markup{Format: m.Format, Options: opts}
}

// Rule maps a key, matched case-insensitively, to its markup.
type Rule struct {
	Key      string
	Markup   Markup
	Category Category
}

// VoicingRules returns the voiced/voiceless consonant pairs. Both members of
// a pair map to the same fragment. "c" and "č" are not keys: they only
// appear as the partners of "dz" and "dž".
func VoicingRules() []Rule {
	dz := Atop("dz", "c")
	dzh := Atop("dž", "č")
	bp := Atop("b", "p")
	dt := Atop("d", "t")
	dtSoft := Atop("ď", "ť")
	gk := Atop("g", "k")
	hch := Atop("h", "ch")
	zs := Atop("z", "s")
	zsSoft := Atop("ž", "š")
	vfu := Overset("v", "f", "u")
	vfuUpper := Overset("V", "F", "U")

	rules := []Rule{
		{Key: "dz", Markup: dz},
		{Key: "dž", Markup: dzh},
		{Key: "b", Markup: bp},
		{Key: "p", Markup: bp},
		{Key: "d", Markup: dt},
		{Key: "t", Markup: dt},
		{Key: "ď", Markup: dtSoft},
		{Key: "ť", Markup: dtSoft},
		{Key: "g", Markup: gk},
		{Key: "k", Markup: gk},
		{Key: "h", Markup: hch},
		{Key: "ch", Markup: hch},
		{Key: "z", Markup: zs},
		{Key: "s", Markup: zs},
		{Key: "ž", Markup: zsSoft},
		{Key: "š", Markup: zsSoft},
		{Key: "v", Markup: vfu},
		{Key: "f", Markup: vfu},
		{Key: "u", Markup: vfu},
		{Key: "V", Markup: vfuUpper},
		{Key: "F", Markup: vfuUpper},
		{Key: "U", Markup: vfuUpper},
	}
	for i := range rules {
		rules[i].Category = CategoryVoicing
	}
	return rules
}

// VowelRules returns the i/y and í/ý pairs.
func VowelRules() []Rule {
	short := Atop("i", "y")
	long := Atop("í", "ý")
	return []Rule{
		{Key: "i", Markup: short, Category: CategoryVowel},
		{Key: "y", Markup: short, Category: CategoryVowel},
		{Key: "í", Markup: long, Category: CategoryVowel},
		{Key: "ý", Markup: long, Category: CategoryVowel},
	}
}

// SpacingRules returns the rule that widens plain spaces.
func SpacingRules(width string) []Rule {
	return []Rule{{Key: " ", Markup: Space(width), Category: CategorySpacing}}
}

// Table is an ordered rule set. It is built once per run and passed to Mark.
type Table struct {
	rules  []Rule
	exact  map[string]int
	folded map[string]int
	maxLen int
}

// NewTable assembles the table for the enabled categories in the order
// voicing, vowel, spacing.
func NewTable(cfg types.MarkingConfig) *Table {
	var rules []Rule
	if !cfg.NoVoicing {
		rules = append(rules, VoicingRules()...)
	}
	if !cfg.NoYI {
		rules = append(rules, VowelRules()...)
	}
	if !cfg.NarrowSpaces {
		rules = append(rules, SpacingRules(cfg.SpaceWidth)...)
	}
	return NewTableFromRules(rules...)
}

// NewTableFromRules builds a table from rules in the given order. When two
// rules share a key, the first one wins.
func NewTableFromRules(rules ...Rule) *Table {
	t := &Table{
		rules:  make([]Rule, 0, len(rules)),
		exact:  make(map[string]int, len(rules)),
		folded: make(map[string]int, len(rules)),
	}
	for _, r := range rules {
		if r.Key == "" {
			continue
		}
		i := len(t.rules)
		t.rules = append(t.rules, r)
		if _, ok := t.exact[r.Key]; !ok {
			t.exact[r.Key] = i
		}
		f := strings.ToLower(r.Key)
		if _, ok := t.folded[f]; !ok {
			t.folded[f] = i
		}
		if n := utf8.RuneCountInString(r.Key); n > t.maxLen {
			t.maxLen = n
		}
	}
	return t
}

// Rules returns the rules in table order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Len returns the number of rules.
func (t *Table) Len() int { return len(t.rules) }

// Lookup resolves the markup for matched text. An exact-case key wins;
// otherwise the lowercase key's markup is used with its letters
// uppercased; otherwise the first rule whose key matches case-insensitively.
func (t *Table) Lookup(match string) (Markup, bool) {
	if i, ok := t.exact[match]; ok {
		return t.rules[i].Markup, true
	}
	lower := strings.ToLower(match)
	if i, ok := t.exact[lower]; ok {
		return t.rules[i].Markup.Upper(), true
	}
	if i, ok := t.folded[lower]; ok {
		return t.rules[i].Markup, true
	}
	return Markup{}, false
}

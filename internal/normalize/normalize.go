// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize rewrites dictation text into canonical case: letters
// inside a sentence are lowercased and every line starts with a capital.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// upperTargets lists the uppercase letters the lowercasing pass touches
// besides A-Z. Other uppercase letters (Ä, Ô, Ĺ, Ŕ, Ý) are left as they are.
const upperTargets = "ÁÉÍÓÚĎŤŇĽŠČŽ"

// lineStartPattern matches the first character of every non-empty line.
var lineStartPattern = regexp.MustCompile(`(?m)^.`)

// Canonical converts text to NFC and applies Capitalize.
func Canonical(text string) string {
	return Capitalize(norm.NFC.String(text))
}

// Capitalize runs LowercaseInner followed by UppercaseLineStarts. The order
// matters: the second pass restores line-initial capitals the first pass
// lowercased.
func Capitalize(text string) string {
	return UppercaseLineStarts(LowercaseInner(text))
}

// LowercaseInner lowercases every target uppercase letter preceded, after
// zero or more spaces, by a character other than '.' or ' '. A letter at the
// very start of the text, or following ". ", keeps its case.
func LowercaseInner(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	// prev is the last rune that was not a plain space.
	var prev rune
	seen := false
	for _, r := range text {
		if isTarget(r) && seen && prev != '.' {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
		if r != ' ' {
			prev, seen = r, true
		}
	}
	return b.String()
}

// UppercaseLineStarts uppercases the first character of every line.
func UppercaseLineStarts(text string) string {
	return lineStartPattern.ReplaceAllStringFunc(text, strings.ToUpper)
}

func isTarget(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		return true
	}
	return strings.ContainsRune(upperTargets, r)
}

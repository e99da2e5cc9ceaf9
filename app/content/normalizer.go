package content

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// asciiReplacer maps common typographic runes to their ASCII equivalents.
var asciiReplacer = strings.NewReplacer(
	// quotes and primes
	"\u2018", "'", "\u2019", "'", "\u201a", "'", "\u201b", "'",
	"\u2032", "'", "\u2039", "'", "\u203a", "'",
	"\u201c", `"`, "\u201d", `"`, "\u201e", `"`, "\u201f", `"`,
	"\u2033", `"`, "\u00ab", `"`, "\u00bb", `"`,
	// dashes
	"\u2010", "-", "\u2011", "-", "\u2012", "-", "\u2013", "-",
	"\u2014", "-", "\u2015", "-", "\u2212", "-",
	// bullets
	"\u2022", "*", "\u2023", "*", "\u2043", "*", "\u2219", "*", "\u00b7", "*",
	// ellipsis
	"\u2026", "...",
	// spaces
	"\u00a0", " ", "\u202f", " ", "\u2009", " ", "\u2007", " ",
	"\u2002", " ", "\u2003", " ", "\u2008", " ", "\u200a", " ",
	// math
	"\u00d7", "x", "\u00f7", "/",
	// marks
	"\u2122", "(TM)", "\u00ae", "(R)", "\u00a9", "(C)",
)

// ToASCII is a lossy best-effort transliteration: after the substitution
// table, any rune outside ASCII is deleted rather than approximated.
func ToASCII(s string) string {
	if s == "" {
		return s
	}

	s = norm.NFC.String(s)
	s = asciiReplacer.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r > unicode.MaxASCII {
			continue
		}
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// Package symptom turns raw intake selections into normalized matching keys.
package symptom

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Severity glyphs a previous render may have prefixed to a label.
const (
	GlyphCritical = "🔴"
	GlyphModerate = "🟡"
	GlyphMild     = "🟢"
)

var glyphs = []string{GlyphCritical, GlyphModerate, GlyphMild}

// Normalize strips any leading severity glyph prefix and lower-cases the rest.
func Normalize(raw string) string {
	_, name := stripGlyph(raw)
	return lower(name)
}

// stripGlyph removes "<glyph><...> " prefixes. A label qualifies when it starts
// with a glyph and contains a space; everything up to the first space goes.
// Stacked prefixes are all removed so Normalize stays idempotent.
func stripGlyph(raw string) (glyph, name string) {
	name = raw
	for {
		g := leadingGlyph(name)
		if g == "" || !strings.Contains(name, " ") {
			return glyph, name
		}
		if glyph == "" {
			glyph = g
		}
		_, name, _ = strings.Cut(name, " ")
	}
}

func leadingGlyph(s string) string {
	for _, g := range glyphs {
		if strings.HasPrefix(s, g) {
			return g
		}
	}
	return ""
}

// lower builds a fresh Caser per call; Casers are stateful and not safe to
// share across goroutines.
func lower(s string) string {
	if s == "" {
		return ""
	}
	return cases.Lower(language.Und).String(s)
}

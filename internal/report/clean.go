package report

import (
	"regexp"
	"strings"
)

var (
	nonASCII   = regexp.MustCompile(`[^\x00-\x7F]+`)
	bracketed  = regexp.MustCompile(`\[.*?\]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// CleanText makes free text safe for plain ASCII output: non-ASCII runs become
// a space, bracketed asides are removed and whitespace is collapsed.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = nonASCII.ReplaceAllString(s, " ")
	s = bracketed.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

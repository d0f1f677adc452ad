// Package line holds the text utilities shared by the Indental and Tablatal
// parsers: wrapper stripping, numbered line splitting, comment filtering,
// whitespace collapsing, and symbol keys.
package line

import (
	"strings"
	"unicode"
)

// Line is a single surviving source line. Num is 1-based and refers to the
// position in the unwrapped source, so diagnostics point at the line the
// author actually wrote.
type Line struct {
	Text string
	Num  int
}

// StripWrapper removes the template-literal wrapper used when a document is
// embedded in a host script, e.g.
//
//	database.home = `
//	HOME
//	  PATH : ~
//	`
//
// The opener is the first line when it ends with a backtick; the closer is
// the last backtick in the source, followed only by whitespace or a
// semicolon. Input without a wrapper is returned unchanged.
func StripWrapper(src string) string {
	open := strings.IndexByte(src, '`')
	if open < 0 {
		return src
	}
	if nl := strings.IndexByte(src, '\n'); nl >= 0 && nl < open {
		return src
	}
	end := strings.LastIndexByte(src, '`')
	if end == open {
		return src
	}
	if tail := strings.TrimSpace(src[end+1:]); tail != "" && tail != ";" {
		return src
	}
	return src[open+1 : end]
}

// Split breaks src on line boundaries, pairing each line with its 1-based
// number. CR/LF endings are accepted. Empty input yields no lines.
func Split(src string) []Line {
	if src == "" {
		return nil
	}
	raw := strings.Split(src, "\n")
	lines := make([]Line, len(raw))
	for i, text := range raw {
		lines[i] = Line{Text: strings.TrimSuffix(text, "\r"), Num: i + 1}
	}
	return lines
}

// A comment line is one whose first non-space character is a semicolon.
func isComment(text string) bool {
	return strings.HasPrefix(strings.TrimLeft(text, " \t"), ";")
}

// Filter drops blank and comment lines, keeping the original numbering of
// the survivors.
func Filter(lines []Line) []Line {
	kept := lines[:0:0]
	for _, ln := range lines {
		if strings.TrimSpace(ln.Text) == "" || isComment(ln.Text) {
			continue
		}
		kept = append(kept, ln)
	}
	return kept
}

// Normalize trims s and collapses every interior run of whitespace,
// including tabs, to a single space. Every token value in both formats
// passes through here, so misaligned tabs and padding never leak into
// parsed output.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SymbolKey derives the symbolized form of a category, key, or column
// name: lower-cased, with runs of whitespace, underscores, and hyphens
// joined into single underscores. "Full Name" becomes "full_name".
func SymbolKey(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return unicode.IsSpace(r) || r == '_' || r == '-'
	})
	return strings.Join(words, "_")
}

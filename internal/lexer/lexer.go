// Package lexer classifies Indental source lines by their indentation.
//
// The indent contract is fixed: zero spaces open a category, two spaces hold
// either a "KEY : VALUE" pair or a list name, four spaces hold a list item.
// Any other indent, and any tab used as indentation, is an error token.
package lexer

import (
	"strings"

	"github.com/KimNorgaard/go-nodaire/internal/line"
	"github.com/KimNorgaard/go-nodaire/internal/token"
)

// The key/value separator. Only its first occurrence on a line splits.
const separator = " : "

// Lexer turns a sequence of surviving (non-blank, non-comment) lines into
// a stream of classified tokens.
type Lexer struct {
	lines []line.Line
	pos   int
}

// New creates a Lexer over the given lines.
func New(lines []line.Line) *Lexer {
	return &Lexer{lines: lines}
}

// Next returns the next token, or false once the input is exhausted.
func (l *Lexer) Next() (token.Token, bool) {
	if l.pos >= len(l.lines) {
		return nil, false
	}
	ln := l.lines[l.pos]
	l.pos++
	return classify(ln), true
}

func classify(ln line.Line) token.Token {
	indent := 0
	for indent < len(ln.Text) && ln.Text[indent] == ' ' {
		indent++
	}
	rest := ln.Text[indent:]

	// Tabs are not permitted as indentation.
	if strings.HasPrefix(rest, "\t") {
		return token.Error{Message: "Unexpected indent", Num: ln.Num}
	}

	switch indent {
	case 0:
		return token.Category{Name: line.Normalize(rest), Num: ln.Num}
	case 2:
		if i := strings.Index(rest, separator); i >= 0 {
			return token.KeyValue{
				Key:   line.Normalize(rest[:i]),
				Value: line.Normalize(rest[i+len(separator):]),
				Num:   ln.Num,
			}
		}
		return token.ListName{Name: line.Normalize(rest), Num: ln.Num}
	case 4:
		return token.ListItem{Value: line.Normalize(rest), Num: ln.Num}
	default:
		return token.Error{Message: "Unexpected indent", Num: ln.Num}
	}
}

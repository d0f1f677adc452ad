package tablatal

import (
	nodaire "github.com/KimNorgaard/go-nodaire"
	"github.com/KimNorgaard/go-nodaire/internal/line"
)

// column is one inferred column: its projected key, the rune offset of its
// header word, and the exclusive end offset (the next column's start, or -1
// for to-end-of-line). retain is false for a later duplicate of an earlier
// header; its range is still sliced, but the value is not kept.
type column struct {
	key    string
	start  int
	end    int
	retain bool
}

type parser struct {
	keyFn  func(string) string
	strict bool

	cols   []column
	keys   []string
	rows   []Record
	errors nodaire.ParseErrors
}

// The first surviving line is the header; everything after it is data.
func (p *parser) run(lines []line.Line) {
	if len(lines) == 0 {
		return
	}
	p.header(lines[0])
	if p.strict && len(p.errors) > 0 {
		return
	}
	for _, ln := range lines[1:] {
		p.row(ln)
	}
}

// header locates each header word and its starting rune offset. The sorted
// offsets form the column start boundaries; each column ends where the next
// one starts.
func (p *parser) header(ln line.Line) {
	runes := []rune(ln.Text)
	seen := make(map[string]bool)

	i := 0
	for i < len(runes) {
		if isSpace(runes[i]) {
			i++
			continue
		}
		start := i
		for i < len(runes) && !isSpace(runes[i]) {
			i++
		}
		key := p.keyFn(line.Normalize(string(runes[start:i])))
		col := column{key: key, start: start, end: -1, retain: true}
		if seen[key] {
			// Keep the first column; the repeat is sliced but dropped.
			p.report(ln.Num, "Duplicate column")
			col.retain = false
			if p.strict {
				return
			}
		}
		seen[key] = true
		p.cols = append(p.cols, col)
		p.keys = append(p.keys, key)
	}

	for j := range p.cols {
		if j+1 < len(p.cols) {
			p.cols[j].end = p.cols[j+1].start
		}
	}
}

// row slices one data line into a record. A line shorter than a column's
// start yields an empty field. Content overflowing past the next column's
// start is truncated there.
func (p *parser) row(ln line.Line) {
	runes := []rune(ln.Text)
	rec := make(Record, len(p.cols))
	for _, col := range p.cols {
		if !col.retain {
			continue
		}
		rec[col.key] = slice(runes, col)
	}
	p.rows = append(p.rows, rec)
}

func slice(runes []rune, col column) string {
	if col.start >= len(runes) {
		return ""
	}
	end := col.end
	if end < 0 || end > len(runes) {
		end = len(runes)
	}
	return line.Normalize(string(runes[col.start:end]))
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

func (p *parser) report(num int, msg string) {
	p.errors = append(p.errors, nodaire.ParseError{Line: num, Message: msg})
}

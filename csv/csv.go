// Package csv parses the comma-separated variant of the tabular format.
// Tokenization is delegated to encoding/csv; this package only applies the
// shared line filtering, header normalization, and duplicate detection, and
// exposes the same record shape as the tablatal package.
package csv

import (
	stdcsv "encoding/csv"
	"errors"
	"io"
	"strings"

	nodaire "github.com/KimNorgaard/go-nodaire"
	"github.com/KimNorgaard/go-nodaire/internal/line"
	"github.com/KimNorgaard/go-nodaire/tablatal"
)

// Result and Record are the tablatal shapes: Keys in declared header order
// and one Record per data row.
type (
	Result = tablatal.Result
	Record = tablatal.Record
)

// Option configures parsing.
type Option func(*options) error

type options struct {
	preserveKeys bool
}

// PreserveKeys keeps column headers as normalized strings instead of
// symbolizing them.
func PreserveKeys() Option {
	return func(o *options) error {
		o.preserveKeys = true
		return nil
	}
}

// Parse parses a CSV document whose first row is the header. It is
// tolerant: problems in the input are recorded in the result's Errors and
// never returned as an error. The returned error is non-nil only when an
// option fails.
func Parse(data []byte, opts ...Option) (*Result, error) {
	return parse(data, false, opts)
}

// ParseStrict parses a CSV document, stopping at the first problem and
// returning it as a nodaire.ParseErrors. The partial result built up to
// that point is returned alongside the error.
func ParseStrict(data []byte, opts ...Option) (*Result, error) {
	res, err := parse(data, true, opts)
	if err != nil {
		return nil, err
	}
	if !res.Valid() {
		return res, res.Errors
	}
	return res, nil
}

func parse(data []byte, strict bool, opts []Option) (*Result, error) {
	o := options{}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	keyFn := line.SymbolKey
	if o.preserveKeys {
		keyFn = func(s string) string { return s }
	}

	// Comment and blank lines are dropped before the CSV reader sees them;
	// nums maps the reader's line numbers back to the source.
	lines := line.Filter(line.Split(line.StripWrapper(string(data))))
	texts := make([]string, len(lines))
	nums := make([]int, len(lines))
	for i, ln := range lines {
		texts[i] = ln.Text
		nums[i] = ln.Num
	}

	r := stdcsv.NewReader(strings.NewReader(strings.Join(texts, "\n")))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	res := &Result{}
	var cols []col
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			res.Errors = append(res.Errors, nodaire.ParseError{
				Line:    sourceLine(err, nums),
				Message: "Malformed row",
			})
			if strict {
				break
			}
			continue
		}
		if cols == nil {
			cols = header(rec, keyFn, nums, res, strict)
			if strict && !res.Valid() {
				break
			}
			continue
		}
		res.Rows = append(res.Rows, row(rec, cols))
	}
	return res, nil
}

// col is one header column: its projected key and whether its values are
// kept (false for a later duplicate of an earlier header).
type col struct {
	key    string
	retain bool
}

func header(rec []string, keyFn func(string) string, nums []int, res *Result, strict bool) []col {
	seen := make(map[string]bool, len(rec))
	cols := make([]col, 0, len(rec))
	for _, cell := range rec {
		key := keyFn(line.Normalize(cell))
		c := col{key: key, retain: true}
		if seen[key] {
			res.Errors = append(res.Errors, nodaire.ParseError{
				Line:    headerLine(nums),
				Message: "Duplicate column",
			})
			c.retain = false
			if strict {
				return cols
			}
		}
		seen[key] = true
		cols = append(cols, c)
		res.Keys = append(res.Keys, key)
	}
	return cols
}

// row maps the record's fields onto the header columns. A short row yields
// empty strings for its missing trailing columns; fields past the last
// column are dropped.
func row(rec []string, cols []col) Record {
	out := make(Record, len(cols))
	for i, c := range cols {
		if !c.retain {
			continue
		}
		if i < len(rec) {
			out[c.key] = line.Normalize(rec[i])
		} else {
			out[c.key] = ""
		}
	}
	return out
}

func headerLine(nums []int) int {
	if len(nums) > 0 {
		return nums[0]
	}
	return 1
}

func sourceLine(err error, nums []int) int {
	var perr *stdcsv.ParseError
	if errors.As(err, &perr) && perr.Line >= 1 && perr.Line <= len(nums) {
		return nums[perr.Line-1]
	}
	return 0
}

// Package tablatal parses the Tablatal format: column-aligned records under
// a header line.
//
//	NAME    AGE   COLOR
//	Erica   12    Opal
//	Alex    23    Cyan
//
// The character positions of the header words define fixed column
// boundaries; every following line is sliced into a record at those
// boundaries. Parse is tolerant and records problems instead of failing;
// ParseStrict returns the first problem as an error.
package tablatal

import (
	"bytes"
	"encoding/json"

	nodaire "github.com/KimNorgaard/go-nodaire"
	"github.com/KimNorgaard/go-nodaire/internal/line"
)

// Option configures parsing.
type Option func(*options) error

type options struct {
	preserveKeys bool
}

// PreserveKeys keeps column headers as normalized strings instead of
// symbolizing them ("Full Name" stays "Full Name" rather than becoming
// "full_name").
func PreserveKeys() Option {
	return func(o *options) error {
		o.preserveKeys = true
		return nil
	}
}

// Record is one data line, mapping each column header to the trimmed field
// occupying that column's character range.
type Record map[string]string

// Result is the outcome of one parse. Keys holds the column headers in
// declared order, including any later duplicates; Rows holds one record per
// data line. A header-only document has Keys but no Rows.
type Result struct {
	Keys   []string
	Rows   []Record
	Errors nodaire.ParseErrors
}

// Valid reports whether the document parsed without any diagnostics.
func (r *Result) Valid() bool { return len(r.Errors) == 0 }

// Len returns the number of records.
func (r *Result) Len() int { return len(r.Rows) }

// MarshalJSON emits the records as an array of objects with fields in
// column order. A duplicated header appears once, under its first column.
func (r *Result) MarshalJSON() ([]byte, error) {
	keys := uniqueKeys(r.Keys)
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, rec := range r.Rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for j, key := range keys {
			if j > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(key)
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			v, err := json.Marshal(rec[key])
			if err != nil {
				return nil, err
			}
			buf.Write(v)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func uniqueKeys(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}

// Parse parses a Tablatal document. It is tolerant: problems in the input
// are recorded in the result's Errors and never returned as an error. The
// returned error is non-nil only when an option fails.
func Parse(data []byte, opts ...Option) (*Result, error) {
	return parse(data, false, opts)
}

// ParseStrict parses a Tablatal document, stopping at the first problem and
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

	lines := line.Filter(line.Split(line.StripWrapper(string(data))))
	p := &parser{keyFn: keyFunc(o.preserveKeys), strict: strict}
	p.run(lines)

	return &Result{Keys: p.keys, Rows: p.rows, Errors: p.errors}, nil
}

func keyFunc(preserve bool) func(string) string {
	if preserve {
		return func(s string) string { return s }
	}
	return line.SymbolKey
}

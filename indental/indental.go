// Package indental parses the Indental format: an indentation-based
// hierarchy of categories holding either key/value pairs or named lists.
//
//	NAME
//	  KEY : VALUE
//	  LIST
//	    ITEM1
//	    ITEM2
//
// Parse is tolerant and records problems instead of failing; ParseStrict
// returns the first problem as an error.
package indental

import (
	"bytes"
	"encoding/json"

	"cogentcore.org/core/base/ordmap"

	nodaire "github.com/KimNorgaard/go-nodaire"
	"github.com/KimNorgaard/go-nodaire/internal/lexer"
	"github.com/KimNorgaard/go-nodaire/internal/line"
)

// Option configures parsing.
type Option func(*options) error

type options struct {
	preserveKeys bool
}

// PreserveKeys keeps category, key, and list names as normalized strings
// instead of symbolizing them ("Full Name" stays "Full Name" rather than
// becoming "full_name").
func PreserveKeys() Option {
	return func(o *options) error {
		o.preserveKeys = true
		return nil
	}
}

// Kind is the body kind of a category. It is fixed by the first
// non-list-item line after the category header.
type Kind int

const (
	// KindNone means the category has no body lines yet.
	KindNone Kind = iota
	// KindPairs means the category holds key/value pairs.
	KindPairs
	// KindLists means the category holds named lists.
	KindLists
)

// Category is one parsed category. Exactly one of Pairs and Lists is
// populated, according to Kind; both iterate in source order.
type Category struct {
	Name  string
	Kind  Kind
	Pairs ordmap.Map[string, string]
	Lists ordmap.Map[string, []string]
}

// Get returns the value for a key in a pair category.
func (c *Category) Get(key string) (string, bool) {
	return c.Pairs.ValueByKeyTry(key)
}

// List returns the items of a named list in a list category.
func (c *Category) List(name string) []string {
	return c.Lists.ValueByKey(name)
}

// Data projects the category body onto plain maps: map[string]string for a
// pair category, map[string][]string for a list category.
func (c *Category) Data() any {
	if c.Kind == KindLists {
		m := make(map[string][]string, c.Lists.Len())
		for _, kv := range c.Lists.Order {
			m[kv.Key] = kv.Value
		}
		return m
	}
	m := make(map[string]string, c.Pairs.Len())
	for _, kv := range c.Pairs.Order {
		m[kv.Key] = kv.Value
	}
	return m
}

// MarshalJSON emits the category body as an object with members in source
// order. Lists are emitted as arrays.
func (c *Category) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if c.Kind == KindLists {
		for i, kv := range c.Lists.Order {
			if err := writeMember(&buf, i, kv.Key, orEmpty(kv.Value)); err != nil {
				return nil, err
			}
		}
	} else {
		for i, kv := range c.Pairs.Order {
			if err := writeMember(&buf, i, kv.Key, kv.Value); err != nil {
				return nil, err
			}
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Result is the outcome of one parse. Categories iterate in source order;
// Errors holds every recorded diagnostic, also in source order.
type Result struct {
	Errors nodaire.ParseErrors

	cats ordmap.Map[string, *Category]
}

// Valid reports whether the document parsed without any diagnostics.
func (r *Result) Valid() bool { return len(r.Errors) == 0 }

// Len returns the number of categories.
func (r *Result) Len() int { return r.cats.Len() }

// Keys returns the category names in source order.
func (r *Result) Keys() []string { return r.cats.Keys() }

// Category returns the named category, or nil if it does not exist.
func (r *Result) Category(name string) *Category {
	c, _ := r.cats.ValueByKeyTry(name)
	return c
}

// Categories returns every category in source order.
func (r *Result) Categories() []*Category {
	cats := make([]*Category, r.cats.Len())
	for i, kv := range r.cats.Order {
		cats[i] = kv.Value
	}
	return cats
}

// Data projects the whole document onto plain maps: category name to
// either map[string]string or map[string][]string.
func (r *Result) Data() map[string]any {
	out := make(map[string]any, r.cats.Len())
	for _, kv := range r.cats.Order {
		out[kv.Key] = kv.Value.Data()
	}
	return out
}

// MarshalJSON emits the document as an object with categories in source
// order.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range r.cats.Order {
		if err := writeMember(&buf, i, kv.Key, kv.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, i int, key string, value any) error {
	if i > 0 {
		buf.WriteByte(',')
	}
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(v)
	return nil
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

// Parse parses an Indental document. It is tolerant: problems in the input
// are recorded in the result's Errors and never returned as an error. The
// returned error is non-nil only when an option fails.
func Parse(data []byte, opts ...Option) (*Result, error) {
	return parse(data, false, opts)
}

// ParseStrict parses an Indental document, stopping at the first problem
// and returning it as a nodaire.ParseErrors. The partial result built up to
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
	p.run(lexer.New(lines))

	return &Result{cats: p.cats, Errors: p.errors}, nil
}

// Token names are already normalized by the lexer, so key projection is
// the identity unless symbolizing.
func keyFunc(preserve bool) func(string) string {
	if preserve {
		return func(s string) string { return s }
	}
	return line.SymbolKey
}

// Package token defines the classified line tokens produced by the Indental
// lexer. Each classification is its own type carrying only the fields that
// kind of line has; Token is the interface they share.
package token

// Token is a single classified Indental source line.
type Token interface {
	// Line returns the 1-based source line the token came from.
	Line() int
	tokenNode()
}

// Category is a zero-indented category header.
type Category struct {
	Name string
	Num  int
}

// KeyValue is a two-space-indented "KEY : VALUE" line.
type KeyValue struct {
	Key   string
	Value string
	Num   int
}

// ListName is a two-space-indented line with no key/value separator,
// naming a list inside the active category.
type ListName struct {
	Name string
	Num  int
}

// ListItem is a four-space-indented item belonging to the active list.
type ListItem struct {
	Value string
	Num   int
}

// Error is a line the lexer could not classify.
type Error struct {
	Message string
	Num     int
}

func (t Category) Line() int { return t.Num }
func (t KeyValue) Line() int { return t.Num }
func (t ListName) Line() int { return t.Num }
func (t ListItem) Line() int { return t.Num }
func (t Error) Line() int    { return t.Num }

func (Category) tokenNode() {}
func (KeyValue) tokenNode() {}
func (ListName) tokenNode() {}
func (ListItem) tokenNode() {}
func (Error) tokenNode()    {}

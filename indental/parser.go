package indental

import (
	"cogentcore.org/core/base/ordmap"

	nodaire "github.com/KimNorgaard/go-nodaire"
	"github.com/KimNorgaard/go-nodaire/internal/lexer"
	"github.com/KimNorgaard/go-nodaire/internal/token"
)

// parser consumes the token stream and builds the category structure. It
// carries two pieces of state between tokens: the active category and, when
// the category holds lists, the active list name. In strict mode the first
// recorded diagnostic stops the scan.
type parser struct {
	keyFn  func(string) string
	strict bool

	cats   ordmap.Map[string, *Category]
	errors nodaire.ParseErrors

	cat  *Category
	list string // active list key; empty when no list is open
}

func (p *parser) run(lx *lexer.Lexer) {
	for {
		tok, ok := lx.Next()
		if !ok {
			return
		}
		p.consume(tok)
		if p.strict && len(p.errors) > 0 {
			return
		}
	}
}

func (p *parser) consume(tok token.Token) {
	switch t := tok.(type) {
	case token.Category:
		p.openCategory(t)
	case token.KeyValue:
		p.addPair(t)
	case token.ListName:
		p.openList(t)
	case token.ListItem:
		p.addItem(t)
	case token.Error:
		p.report(t.Num, t.Message)
	}
}

func (p *parser) openCategory(t token.Category) {
	p.list = ""
	key := p.keyFn(t.Name)
	if existing, ok := p.cats.ValueByKeyTry(key); ok {
		// A repeated header keeps writing into the original category.
		p.report(t.Num, "Duplicate category")
		p.cat = existing
		return
	}
	c := &Category{Name: key}
	p.cats.Add(key, c)
	p.cat = c
}

func (p *parser) addPair(t token.KeyValue) {
	if p.cat == nil {
		p.report(t.Num, "Key/value pair outside category")
		return
	}
	if p.cat.Kind == KindLists {
		p.report(t.Num, "Expected list item")
		return
	}
	p.cat.Kind = KindPairs
	key := p.keyFn(t.Key)
	if _, ok := p.cat.Pairs.ValueByKeyTry(key); ok {
		// Keep the first value.
		p.report(t.Num, "Duplicate key")
		return
	}
	p.cat.Pairs.Add(key, t.Value)
}

func (p *parser) openList(t token.ListName) {
	if p.cat == nil {
		p.report(t.Num, "List outside category")
		return
	}
	if p.cat.Kind == KindPairs {
		p.report(t.Num, "Expected key/value pair")
		p.list = ""
		return
	}
	p.cat.Kind = KindLists
	key := p.keyFn(t.Name)
	if _, ok := p.cat.Lists.ValueByKeyTry(key); ok {
		// Re-declaring a list is an error, but its items still append
		// to the existing list.
		p.report(t.Num, "Duplicate list name")
		p.list = key
		return
	}
	p.cat.Lists.Add(key, nil)
	p.list = key
}

func (p *parser) addItem(t token.ListItem) {
	if p.cat == nil || p.list == "" || p.cat.Kind != KindLists {
		p.report(t.Num, "List item outside list")
		return
	}
	items := p.cat.Lists.ValueByKey(p.list)
	p.cat.Lists.Add(p.list, append(items, t.Value))
}

func (p *parser) report(num int, msg string) {
	p.errors = append(p.errors, nodaire.ParseError{Line: num, Message: msg})
}

package nodaire

import "fmt"

// ParseError represents a single problem found while parsing.
// Line is the 1-based line number in the source document.
type ParseError struct {
	Line    int
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// ParseErrors is a slice of ParseError that implements the error interface.
// Tolerant parsing collects every problem into one of these; strict parsing
// returns one holding the first problem found.
type ParseErrors []ParseError

func (p ParseErrors) Error() string {
	if len(p) == 0 {
		return ""
	}
	// The default error message for the collection reports the first entry.
	return fmt.Sprintf("nodaire: parsing error at line %d: %s", p[0].Line, p[0].Message)
}

// Messages returns every diagnostic as a formatted string, in source order.
func (p ParseErrors) Messages() []string {
	msgs := make([]string, len(p))
	for i, e := range p {
		msgs[i] = e.Error()
	}
	return msgs
}

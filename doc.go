/*
Package nodaire provides parsers for two small plain-text data formats:
Indental, an indentation-based hierarchical format, and Tablatal, a
column-aligned tabular format. Both favor human readability over strict
syntax, and both parsers recover from common authoring mistakes instead of
failing outright.

The format parsers live in the indental and tablatal subpackages. A csv
subpackage parses a comma-separated variant into the same record shape as
Tablatal. Each package offers two entry points:

	result, _ := indental.Parse(data)         // tolerant: never fails on input
	result, err := indental.ParseStrict(data) // fails on the first problem

Tolerant parsing always returns a best-effort result; every problem in the
input becomes a ParseError in the result's Errors list, and Valid reports
whether that list is empty. Strict parsing stops at the first problem and
returns it as a ParseErrors value.

An Indental document groups key/value pairs and named lists under
zero-indented category headers:

	NAME
	  KEY : VALUE
	  LIST
	    ITEM1
	    ITEM2

A Tablatal document infers fixed column boundaries from the character
positions of the words in its first line:

	NAME    AGE   COLOR
	Erica   12    Opal
	Alex    23    Cyan

Lines starting with a semicolon are comments in both formats. By default
category, key, and column names are symbolized (lower-cased, words joined
with underscores); the PreserveKeys option keeps the original normalized
strings instead.
*/
package nodaire

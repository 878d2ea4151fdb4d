// Package parser reads the textual predicate, sort and assignment expressions
// accepted on the command line into query domain values.
//
//	where: ticker = 'ibm' AND price >= 10
//	order: industry ASC, price desc
//	set:   industry = 'finance', beta = 3.0
package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// exprLexer defines the token types of all three expression forms.
var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Keywords
	{Name: "Keyword", Pattern: `(?i)\b(AND|NULL|TRUE|FALSE)\b`},

	// Literals
	{Name: "String", Pattern: `'(?:''|[^'])*'|"(?:\\.|[^"\\])*"`},
	{Name: "Number", Pattern: `[-+]?\d+(?:\.\d+)?(?:[eE][-+]?\d+)?`},

	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},

	// Any run of comparison characters. Whitelisting happens when the
	// statement is compiled.
	{Name: "Operator", Pattern: `[!<>=]+`},

	// Punctuation
	{Name: "Comma", Pattern: `,`},

	{Name: "Whitespace", Pattern: `\s+`},
})

// whereExpr is a conjunction of comparisons.
type whereExpr struct {
	Conditions []*condition `parser:"@@ ( 'AND' @@ )*"`
}

type condition struct {
	Column string `parser:"@Ident"`
	Op     string `parser:"@Operator"`
	Value  *value `parser:"@@"`
}

// orderExpr is a comma separated list of sort keys.
type orderExpr struct {
	Items []*orderItem `parser:"@@ ( ',' @@ )*"`
}

type orderItem struct {
	Column string `parser:"@Ident"`
	// Direction is optional and validated by the compiler.
	Direction string `parser:"@Ident?"`
}

// setExpr is a comma separated list of assignments.
type setExpr struct {
	Assignments []*assignment `parser:"@@ ( ',' @@ )*"`
}

type assignment struct {
	Column string `parser:"@Ident"`
	Op     string `parser:"@Operator"`
	Value  *value `parser:"@@"`
}

type value struct {
	Null   bool    `parser:"  @'NULL'"`
	Bool   *string `parser:"| @('TRUE' | 'FALSE')"`
	Number *string `parser:"| @Number"`
	String *string `parser:"| @String"`
}

var (
	options = []participle.Option{
		participle.Lexer(exprLexer),
		participle.Elide("Whitespace"),
		participle.CaseInsensitive("Keyword"),
	}

	whereParser = participle.MustBuild[whereExpr](options...)
	orderParser = participle.MustBuild[orderExpr](options...)
	setParser   = participle.MustBuild[setExpr](options...)
)

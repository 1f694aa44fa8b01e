package layout

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

/*
Grammar for field type descriptors of the form <identifier>[<count>]. The count
is captured verbatim, whatever tokens appear between the brackets, so that a
malformed count can be reported as an invalid array spec rather than a parse
failure. Descriptors that do not match the grammar at all are treated as plain
primitive names by the caller.
*/

////////////////////////////////////////////////////////////////////////////////

// nolint:gochecknoglobals
var (
	descriptorLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Integer", Pattern: `[0-9]+`},
		{Name: "LBracket", Pattern: `\[`},
		{Name: "RBracket", Pattern: `\]`},
		{Name: "Other", Pattern: `(?s).`},
	})

	descriptorParser = participle.MustBuild[arrayDescriptor](
		participle.Lexer(descriptorLexer),
	)
)

type arrayDescriptor struct {
	Element string       `parser:"@Ident"`
	Bounds  *arrayBounds `parser:"@@"`
}

type arrayBounds struct {
	Count string `parser:"LBracket @(~RBracket)* RBracket"`
}

// parseArrayDescriptor returns the element name and the raw count text of an
// array descriptor. ok is false if the descriptor is not array-shaped.
func parseArrayDescriptor(typ string) (element string, count string, ok bool) {
	ast, err := descriptorParser.ParseString("", typ)
	if err != nil {
		return "", "", false
	}
	return ast.Element, ast.Bounds.Count, true
}

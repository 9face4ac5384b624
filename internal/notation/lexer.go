package notation

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer maps the raw string tokens out for our AST definitions.
// Dice terms must be matched before bare integers.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Dice", Pattern: `\d*[dD]\d+`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Operator", Pattern: `[+-]`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// Build creates our parser based on the struct tags in `ast.go`
func Build() *participle.Parser[Expr] {
	return participle.MustBuild[Expr](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
	)
}

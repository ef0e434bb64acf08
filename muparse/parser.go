package muparse

import (
	"github.com/alecthomas/participle/v2"

	"github.com/foo-jin/mucalc/formula"
)

var muParser = participle.MustBuild[parseTree](
	participle.Lexer(muLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// Parse reads src (named filename for error messages) as a μ-calculus
// formula. It rejects, in addition to grammar violations: a binder
// shadowing a variable already bound by an enclosing binder, and a
// reference to a variable not bound by any enclosing binder.
func Parse(filename, src string) (formula.Formula, error) {
	tree, err := muParser.ParseString(filename, src)
	if err != nil {
		return nil, &ParseError{Detail: "syntax error", Cause: err}
	}

	f, err := lower(tree, newScope())
	if err != nil {
		return nil, &ParseError{Detail: "invalid formula", Cause: err}
	}
	return f, nil
}

package muparse

import "github.com/alecthomas/participle/v2/lexer"

// muLexer tokenizes the formula grammar. Rule order matters: rules are
// tried in sequence and the first match wins, so more specific rules
// must precede more general ones.
//
// Invalid must precede Keyword and Action: "mu"/"nu" directly followed
// by an upper-case letter, with no separating whitespace, is neither a
// legal binder (a binder keyword must be separated from its variable
// by whitespace) nor a legal action name (action names are all
// lower-case). Tagging that sequence as its own token, which no
// grammar rule ever accepts, turns it into a parse error instead of
// silently letting Action swallow just "mu"/"nu" and leaving the
// upper-case letter to be re-lexed as the binder's variable.
var muLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `%[^\n]*`, nil},
		{"Invalid", `(mu|nu)[A-Z]`, nil},
		{"Keyword", `(true|false|mu|nu)\b`, nil},
		{"Upper", `[A-Z]`, nil},
		{"Action", `[a-z][a-z0-9_]*`, nil},
		{"Punct", `&&|\|\||[()<>\[\].]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})

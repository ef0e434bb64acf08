package muparse

// parseTree encodes the formula grammar in participle's struct-tag
// style, one struct per production and one field per alternative. Each
// alternative is distinguishable by its first token, so the grammar is
// LL(1).

type parseTree struct {
	True    *trueLit        `  @@`
	False   *falseLit       `| @@`
	Var     *varRef         `| @@`
	Paren   *parenFormula   `| @@`
	Diamond *diamondFormula `| @@`
	Box     *boxFormula     `| @@`
	Binder  *binderFormula  `| @@`
}

type trueLit struct {
	Tok string `@"true"`
}

type falseLit struct {
	Tok string `@"false"`
}

type varRef struct {
	Name string `@Upper`
}

type parenFormula struct {
	Left  *parseTree `"(" @@`
	Op    string     `@("&&" | "||")`
	Right *parseTree `@@ ")"`
}

type diamondFormula struct {
	Action string     `"<" @Action ">"`
	F      *parseTree `@@`
}

type boxFormula struct {
	Action string     `"[" @Action "]"`
	F      *parseTree `@@`
}

type binderFormula struct {
	Kind string     `@("mu" | "nu")`
	Var  string     `@Upper "."`
	F    *parseTree `@@`
}

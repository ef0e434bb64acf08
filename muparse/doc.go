// Package muparse reads the textual μ-calculus formula grammar into a
// formula.Formula, using github.com/alecthomas/participle/v2 for
// lexing and recursive-descent parsing. The participle-generated parse
// tree is not itself a formula.Formula; a lowering pass (lower.go)
// converts one to the other and rejects variable shadowing, which the
// grammar alone cannot.
package muparse

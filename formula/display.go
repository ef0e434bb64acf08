package formula

import (
	"fmt"
	"strings"
)

// String renders f in the canonical grammar form of a μ-calculus formula:
// "true", "false", a single variable letter, "(f1 && f2)"/"(f1 || f2)",
// "<a>f", "[a]f", "mu X.f", "nu X.f". Each concrete Formula type
// implements it directly, so any Formula satisfies fmt.Stringer and
// prints in this form under %v/%s or fmt.Println.
func (False) String() string { return "false" }

func (True) String() string { return "true" }

func (v Var) String() string { return string(v.Name) }

func (a And) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(a.F1.String())
	b.WriteString(" && ")
	b.WriteString(a.F2.String())
	b.WriteByte(')')
	return b.String()
}

func (o Or) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(o.F1.String())
	b.WriteString(" || ")
	b.WriteString(o.F2.String())
	b.WriteByte(')')
	return b.String()
}

func (d Diamond) String() string {
	return fmt.Sprintf("<%s>%s", d.Action, d.F.String())
}

func (x Box) String() string {
	return fmt.Sprintf("[%s]%s", x.Action, x.F.String())
}

func (m Mu) String() string {
	return fmt.Sprintf("mu %c.%s", m.Var, m.F.String())
}

func (n Nu) String() string {
	return fmt.Sprintf("nu %c.%s", n.Var, n.F.String())
}

// Package codegen turns extracted lambda terms into standalone Go
// source. Everything is interface{}-typed; a small runtime prelude
// supplies pairs, sums, and thunks.
package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ibrahimcesar/lolli/pkg/lam"
	"github.com/ibrahimcesar/lolli/pkg/logic"
)

// GoCodegen generates Go source from terms. Zero value is ready to
// use.
type GoCodegen struct{}

func NewGoCodegen() *GoCodegen {
	return &GoCodegen{}
}

const prelude = `type pair struct {
	fst interface{}
	snd interface{}
}

type sum struct {
	left  bool
	value interface{}
}

type thunk func() interface{}

func apply(f, x interface{}) interface{} {
	return f.(func(interface{}) interface{})(x)
}
`

// GenerateFunction emits one function whose body evaluates the term.
// Free variables of the term become parameters; the sequent appears in
// the doc comment.
func (g *GoCodegen) GenerateFunction(name string, seq logic.Sequent, term lam.Term) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "// %s realizes %s\n", name, seq.PrettyASCII())

	params := freeVars(term)
	var paramList []string
	for _, p := range params {
		paramList = append(paramList, p+" interface{}")
	}
	fmt.Fprintf(&sb, "func %s(%s) interface{} {\n", name, strings.Join(paramList, ", "))
	fmt.Fprintf(&sb, "\treturn %s\n", g.expr(term))
	sb.WriteString("}\n")
	return sb.String()
}

// GenerateModule emits a complete file: package clause, prelude, and
// the function.
func (g *GoCodegen) GenerateModule(pkgName, funcName string, seq logic.Sequent, term lam.Term) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "package %s\n\n", pkgName)
	sb.WriteString(prelude)
	sb.WriteString("\n")
	sb.WriteString(g.GenerateFunction(funcName, seq, term))
	return sb.String()
}

func (g *GoCodegen) expr(term lam.Term) string {
	switch t := term.(type) {
	case *lam.Var:
		return t.Name

	case *lam.Abs:
		return fmt.Sprintf("func(%s interface{}) interface{} { return %s }",
			t.Param, g.expr(t.Body))

	case *lam.App:
		return fmt.Sprintf("apply(%s, %s)", g.expr(t.Fn), g.expr(t.Arg))

	case *lam.Pair:
		return fmt.Sprintf("pair{fst: %s, snd: %s}", g.expr(t.A), g.expr(t.B))

	case *lam.LetPair:
		return fmt.Sprintf(
			"func() interface{} { p := (%s).(pair); %s, %s := p.fst, p.snd; return %s }()",
			g.expr(t.Pair), t.X, t.Y, g.expr(t.Body))

	case *lam.Inl:
		return fmt.Sprintf("sum{left: true, value: %s}", g.expr(t.Value))

	case *lam.Inr:
		return fmt.Sprintf("sum{left: false, value: %s}", g.expr(t.Value))

	case *lam.Case:
		return fmt.Sprintf(
			"func() interface{} { s := (%s).(sum); if s.left { %s := s.value; return %s }; %s := s.value; return %s }()",
			g.expr(t.Scrutinee), t.X, g.expr(t.Left), t.Y, g.expr(t.Right))

	case *lam.Fst:
		return fmt.Sprintf("(%s).(pair).fst", g.expr(t.Pair))

	case *lam.Snd:
		return fmt.Sprintf("(%s).(pair).snd", g.expr(t.Pair))

	case *lam.Promote:
		return fmt.Sprintf("thunk(func() interface{} { return %s })", g.expr(t.Value))

	case *lam.Derelict:
		return fmt.Sprintf("(%s).(thunk)()", g.expr(t.Value))

	case *lam.Copy:
		return fmt.Sprintf(
			"func() interface{} { %s := %s; %s := %s; return %s }()",
			t.X, g.expr(t.Src), t.Y, t.X, g.expr(t.Body))

	case *lam.Discard:
		return fmt.Sprintf("func() interface{} { _ = %s; return %s }()",
			g.expr(t.Value), g.expr(t.Body))

	case *lam.Abort:
		return fmt.Sprintf("func() interface{} { panic(%s) }()", g.expr(t.Value))
	}

	// Unit and Trivial.
	return "struct{}{}"
}

// freeVars returns the term's free variables sorted by name.
func freeVars(term lam.Term) []string {
	set := map[string]bool{}
	collectFree(term, map[string]bool{}, set)
	var names []string
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectFree(term lam.Term, bound map[string]bool, out map[string]bool) {
	switch t := term.(type) {
	case *lam.Var:
		if !bound[t.Name] {
			out[t.Name] = true
		}
	case *lam.Abs:
		collectFree(t.Body, with(bound, t.Param), out)
	case *lam.App:
		collectFree(t.Fn, bound, out)
		collectFree(t.Arg, bound, out)
	case *lam.Pair:
		collectFree(t.A, bound, out)
		collectFree(t.B, bound, out)
	case *lam.LetPair:
		collectFree(t.Pair, bound, out)
		collectFree(t.Body, with(bound, t.X, t.Y), out)
	case *lam.Inl:
		collectFree(t.Value, bound, out)
	case *lam.Inr:
		collectFree(t.Value, bound, out)
	case *lam.Case:
		collectFree(t.Scrutinee, bound, out)
		collectFree(t.Left, with(bound, t.X), out)
		collectFree(t.Right, with(bound, t.Y), out)
	case *lam.Fst:
		collectFree(t.Pair, bound, out)
	case *lam.Snd:
		collectFree(t.Pair, bound, out)
	case *lam.Promote:
		collectFree(t.Value, bound, out)
	case *lam.Derelict:
		collectFree(t.Value, bound, out)
	case *lam.Copy:
		collectFree(t.Src, bound, out)
		collectFree(t.Body, with(bound, t.X, t.Y), out)
	case *lam.Discard:
		collectFree(t.Value, bound, out)
		collectFree(t.Body, bound, out)
	case *lam.Abort:
		collectFree(t.Value, bound, out)
	}
}

func with(bound map[string]bool, names ...string) map[string]bool {
	next := make(map[string]bool, len(bound)+len(names))
	for k := range bound {
		next[k] = true
	}
	for _, n := range names {
		next[n] = true
	}
	return next
}

package codegen

import (
	"strings"
	"testing"

	"github.com/ibrahimcesar/lolli/pkg/extract"
	"github.com/ibrahimcesar/lolli/pkg/lam"
	"github.com/ibrahimcesar/lolli/pkg/logic"
	"github.com/ibrahimcesar/lolli/pkg/prove"
	"github.com/stretchr/testify/require"
)

func TestGenerateFunctionFreeVars(t *testing.T) {
	// A pair of two free variables; both become parameters, sorted.
	term := lam.NewPair(lam.NewVar("b"), lam.NewVar("a"))
	seq := logic.NewSequent(logic.NewAtom("A"))

	out := NewGoCodegen().GenerateFunction("realize", seq, term)
	require.Contains(t, out, "func realize(a interface{}, b interface{}) interface{} {")
	require.Contains(t, out, "pair{fst: b, snd: a}")
	require.Contains(t, out, "// realize realizes |- A")
}

func TestGenerateFunctionClosedTerm(t *testing.T) {
	term := lam.NewAbs("x", lam.NewVar("x"))
	seq := logic.NewSequent(logic.NewLolli(logic.NewAtom("A"), logic.NewAtom("A")))

	out := NewGoCodegen().GenerateFunction("identity", seq, term)
	require.Contains(t, out, "func identity() interface{} {")
	require.Contains(t, out, "func(x interface{}) interface{} { return x }")
}

func TestGenerateModule(t *testing.T) {
	term := lam.NewPromote(lam.Unit)
	seq := logic.NewSequent(logic.NewOfCourse(logic.One))

	out := NewGoCodegen().GenerateModule("theorem", "Realize", seq, term)
	require.True(t, strings.HasPrefix(out, "package theorem\n"))
	require.Contains(t, out, "type pair struct {")
	require.Contains(t, out, "type thunk func() interface{}")
	require.Contains(t, out, "func apply(f, x interface{}) interface{} {")
	require.Contains(t, out, "thunk(func() interface{} { return struct{}{} })")
}

func TestGenerateFromExtractedProof(t *testing.T) {
	seq := logic.NewSequent(
		logic.NewNegAtom("A"),
		logic.NewNegAtom("B"),
		logic.NewTensor(logic.NewAtom("A"), logic.NewAtom("B")),
	)
	proof := prove.NewProver(0).Prove(seq)
	require.NotNil(t, proof)
	term := lam.Normalize(extract.ExtractTerm(proof))

	out := NewGoCodegen().GenerateFunction("realize", seq, term)
	require.Contains(t, out, "a interface{}")
	require.Contains(t, out, "b interface{}")
	require.Contains(t, out, "pair{fst: a, snd: b}")
}

func TestCaseAndLetPairExpressions(t *testing.T) {
	g := NewGoCodegen()

	letPair := lam.NewLetPair("x", "y",
		lam.NewVar("p"),
		lam.NewPair(lam.NewVar("y"), lam.NewVar("x")))
	out := g.GenerateFunction("swap", logic.NewSequent(logic.One), letPair)
	require.Contains(t, out, "x, y := p.fst, p.snd")

	caseTerm := lam.NewCase(lam.NewVar("s"),
		"x", lam.NewVar("x"),
		"y", lam.NewVar("y"))
	out = g.GenerateFunction("either", logic.NewSequent(logic.One), caseTerm)
	require.Contains(t, out, ".(sum)")
	require.Contains(t, out, "if s.left")
}

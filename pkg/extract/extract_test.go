package extract

import (
	"testing"

	"github.com/ibrahimcesar/lolli/pkg/lam"
	"github.com/ibrahimcesar/lolli/pkg/logic"
	"github.com/ibrahimcesar/lolli/pkg/prove"
	"github.com/stretchr/testify/require"
)

func proveSeq(t *testing.T, seq logic.Sequent) *logic.Proof {
	t.Helper()
	proof := prove.NewProver(0).Prove(seq)
	require.NotNil(t, proof, "no proof of %s", seq.Pretty())
	return proof
}

func TestAxiomExtractsVariable(t *testing.T) {
	proof := proveSeq(t, logic.NewSequent(logic.NewNegAtom("A"), logic.NewAtom("A")))
	term := ExtractTerm(proof)
	require.True(t, term.Equal(lam.NewVar("a")))
}

func TestOneExtractsUnit(t *testing.T) {
	proof := proveSeq(t, logic.NewSequent(logic.One))
	require.True(t, ExtractTerm(proof).Equal(lam.Unit))
}

func TestTopExtractsTrivial(t *testing.T) {
	proof := proveSeq(t, logic.NewSequent(logic.Top, logic.NewAtom("B")))
	require.True(t, ExtractTerm(proof).Equal(lam.Trivial))
}

func TestIdentityLolli(t *testing.T) {
	proof := proveSeq(t, logic.NewSequent(
		logic.NewLolli(logic.NewAtom("A"), logic.NewAtom("A")),
	))
	// A -o A desugars to A^ | A; the par contributes nothing and the
	// axiom resolves to a variable.
	require.True(t, ExtractTerm(proof).Equal(lam.NewVar("a")))
}

func TestTensorExtractsPair(t *testing.T) {
	proof := proveSeq(t, logic.NewSequent(
		logic.NewNegAtom("A"),
		logic.NewNegAtom("B"),
		logic.NewTensor(logic.NewAtom("A"), logic.NewAtom("B")),
	))
	term := ExtractTerm(proof)
	pair, ok := term.(*lam.Pair)
	require.True(t, ok, "expected pair, got %s", lam.Pretty(term))
	require.True(t, pair.A.Equal(lam.NewVar("a")))
	require.True(t, pair.B.Equal(lam.NewVar("b")))
}

func TestWithExtractsPair(t *testing.T) {
	proof := proveSeq(t, logic.NewSequent(
		logic.NewNegAtom("A"),
		logic.NewWith(logic.NewAtom("A"), logic.NewAtom("A")),
	))
	term := ExtractTerm(proof)
	_, ok := term.(*lam.Pair)
	require.True(t, ok, "expected pair, got %s", lam.Pretty(term))
}

func TestPlusExtractsInjection(t *testing.T) {
	left := proveSeq(t, logic.NewSequent(
		logic.NewNegAtom("A"),
		logic.NewPlus(logic.NewAtom("A"), logic.NewAtom("B")),
	))
	_, ok := ExtractTerm(left).(*lam.Inl)
	require.True(t, ok)

	right := proveSeq(t, logic.NewSequent(
		logic.NewNegAtom("A"),
		logic.NewPlus(logic.NewAtom("B"), logic.NewAtom("A")),
	))
	_, ok = ExtractTerm(right).(*lam.Inr)
	require.True(t, ok)
}

func TestPromotionExtractsPromote(t *testing.T) {
	proof := proveSeq(t, logic.NewSequent(
		logic.NewOfCourse(logic.NewAtom("A")),
		logic.NewWhyNot(logic.NewNegAtom("A")),
	))
	_, ok := ExtractTerm(proof).(*lam.Promote)
	require.True(t, ok)
}

func TestWeakeningExtractsDiscard(t *testing.T) {
	proof := proveSeq(t, logic.NewSequent(
		logic.NewWhyNot(logic.NewAtom("A")),
		logic.One,
	))
	_, ok := ExtractTerm(proof).(*lam.Discard)
	require.True(t, ok)
}

func TestCutExtractsApplication(t *testing.T) {
	// Build ⊢ A⊥, A by cutting in B: both premises are padded axioms.
	// Structurally loose but enough to drive the cut translation.
	cutFormula := logic.NewAtom("B")
	producer := logic.NewProof(
		logic.NewSequent(logic.NewNegAtom("B"), logic.NewAtom("B")),
		logic.NewRule(logic.Axiom),
	)
	consumer := logic.NewProof(
		logic.NewSequent(logic.NewNegAtom("A"), logic.NewAtom("A")),
		logic.NewRule(logic.Axiom),
	)
	proof := logic.NewProof(
		logic.NewSequent(logic.NewNegAtom("A"), logic.NewAtom("A")),
		logic.NewCut(cutFormula),
		producer, consumer,
	)

	term := ExtractTerm(proof)
	app, ok := term.(*lam.App)
	require.True(t, ok, "expected application, got %s", lam.Pretty(term))
	require.True(t, app.Arg.Equal(lam.NewVar("b")))
}

func TestExtractedTermsAreNormalizable(t *testing.T) {
	sequents := []logic.Sequent{
		logic.NewSequent(logic.NewLolli(logic.NewAtom("A"), logic.NewAtom("A"))),
		logic.NewSequent(
			logic.NewNegAtom("A"),
			logic.NewNegAtom("B"),
			logic.NewTensor(logic.NewAtom("A"), logic.NewAtom("B")),
		),
		logic.NewSequent(logic.NewWhyNot(logic.NewAtom("A")), logic.One),
	}
	for _, seq := range sequents {
		proof := proveSeq(t, seq)
		term := lam.Normalize(ExtractTerm(proof))
		require.True(t, lam.IsNormal(term), seq.Pretty())
	}
}

func TestFreshVarsAreDistinct(t *testing.T) {
	e := NewExtractor()
	require.NotEqual(t, e.FreshVar(), e.FreshVar())

	v1 := e.VarForFormula(logic.NewAtom("X"))
	v2 := e.VarForFormula(logic.NewAtom("X"))
	require.NotEqual(t, v1, v2)
}

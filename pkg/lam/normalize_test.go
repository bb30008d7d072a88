package lam

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBeta(t *testing.T) {
	// (λx. x) () → ()
	term := NewApp(NewAbs("x", NewVar("x")), Unit)
	require.True(t, Normalize(term).Equal(Unit))
}

func TestLetPair(t *testing.T) {
	// let (x, y) = (a, b) in (y, x) → (b, a)
	term := NewLetPair("x", "y",
		NewPair(NewVar("a"), NewVar("b")),
		NewPair(NewVar("y"), NewVar("x")))
	require.True(t, Normalize(term).Equal(NewPair(NewVar("b"), NewVar("a"))))
}

func TestCase(t *testing.T) {
	branchy := func(scrutinee Term) Term {
		return NewCase(scrutinee,
			"x", NewPair(NewVar("x"), Unit),
			"y", NewVar("y"))
	}

	left := Normalize(branchy(NewInl(NewVar("v"))))
	require.True(t, left.Equal(NewPair(NewVar("v"), Unit)))

	right := Normalize(branchy(NewInr(NewVar("v"))))
	require.True(t, right.Equal(NewVar("v")))
}

func TestProjections(t *testing.T) {
	pair := NewPair(NewVar("a"), NewVar("b"))
	require.True(t, Normalize(NewFst(pair)).Equal(NewVar("a")))
	require.True(t, Normalize(NewSnd(pair)).Equal(NewVar("b")))
}

func TestDerelictPromote(t *testing.T) {
	term := NewDerelict(NewPromote(NewVar("a")))
	require.True(t, Normalize(term).Equal(NewVar("a")))
}

func TestCopyDuplicates(t *testing.T) {
	// copy !a as (x, y) in (derelict x, derelict y) → (a, a)
	term := NewCopy(NewPromote(NewVar("a")), "x", "y",
		NewPair(NewDerelict(NewVar("x")), NewDerelict(NewVar("y"))))
	require.True(t, Normalize(term).Equal(NewPair(NewVar("a"), NewVar("a"))))
}

func TestCopySharesPromotedValue(t *testing.T) {
	// copy !() as (x, y) in (x, y) → (!(), !())
	term := NewCopy(NewPromote(Unit), "x", "y",
		NewPair(NewVar("x"), NewVar("y")))
	require.True(t, Normalize(term).Equal(
		NewPair(NewPromote(Unit), NewPromote(Unit))))
}

func TestDiscard(t *testing.T) {
	term := NewDiscard(NewPromote(NewVar("a")), NewVar("b"))
	require.True(t, Normalize(term).Equal(NewVar("b")))
}

func TestNestedRedexes(t *testing.T) {
	// ((λx. x) (λy. y)) () → ()
	term := NewApp(NewApp(NewAbs("x", NewVar("x")), NewAbs("y", NewVar("y"))), Unit)
	require.True(t, Normalize(term).Equal(Unit))
}

func TestStepReturnsNilOnNormal(t *testing.T) {
	normals := []Term{
		NewVar("x"),
		Unit,
		Trivial,
		NewAbs("x", NewVar("x")),
		NewPair(NewVar("a"), NewVar("b")),
		NewInl(Unit),
		NewPromote(NewVar("a")),
		NewAbort(NewVar("a")),
	}
	for _, term := range normals {
		require.Nil(t, Step(term), Pretty(term))
		require.True(t, IsNormal(term), Pretty(term))
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	term := NewApp(NewAbs("x", NewPair(NewVar("x"), Unit)), Trivial)
	once := Normalize(term)
	require.True(t, Normalize(once).Equal(once))
}

func TestNormalizeBounded(t *testing.T) {
	term := NewApp(NewAbs("x", NewVar("x")), Unit)

	// Zero steps leaves the term alone.
	require.True(t, NormalizeBounded(term, 0).Equal(term))
	require.True(t, NormalizeBounded(term, 10).Equal(Unit))
}

func TestSubstitutionSkipsShadowedBinders(t *testing.T) {
	// (λx. λx. x) v → λx. x
	term := NewApp(NewAbs("x", NewAbs("x", NewVar("x"))), NewVar("v"))
	require.True(t, Normalize(term).Equal(NewAbs("x", NewVar("x"))))
}

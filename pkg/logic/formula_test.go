package logic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNegateInvolution(t *testing.T) {
	formulas := []Formula{
		NewAtom("A"),
		NewNegAtom("B"),
		One,
		Bottom,
		Top,
		Zero,
		NewTensor(NewAtom("A"), NewAtom("B")),
		NewPar(NewAtom("A"), NewNegAtom("B")),
		NewWith(One, NewAtom("A")),
		NewPlus(NewAtom("A"), Zero),
		NewOfCourse(NewAtom("A")),
		NewWhyNot(NewNegAtom("A")),
	}
	for _, f := range formulas {
		require.True(t, f.Negate().Negate().Equal(f), "¬¬%s", f.Pretty())
	}
}

func TestNegateDeMorgan(t *testing.T) {
	a := NewAtom("A")
	b := NewAtom("B")

	cases := []struct {
		in   Formula
		want Formula
	}{
		{NewTensor(a, b), NewPar(NewNegAtom("A"), NewNegAtom("B"))},
		{NewPar(a, b), NewTensor(NewNegAtom("A"), NewNegAtom("B"))},
		{NewWith(a, b), NewPlus(NewNegAtom("A"), NewNegAtom("B"))},
		{NewPlus(a, b), NewWith(NewNegAtom("A"), NewNegAtom("B"))},
		{NewOfCourse(a), NewWhyNot(NewNegAtom("A"))},
		{NewWhyNot(a), NewOfCourse(NewNegAtom("A"))},
		{One, Bottom},
		{Bottom, One},
		{Top, Zero},
		{Zero, Top},
	}
	for _, c := range cases {
		require.True(t, c.in.Negate().Equal(c.want), "¬%s", c.in.Pretty())
	}
}

func TestLolliDesugarAndNegate(t *testing.T) {
	a := NewAtom("A")
	b := NewAtom("B")
	lolli := NewLolli(a, b)

	// A -o B desugars to A^ | B.
	require.True(t, lolli.Desugar().Equal(NewPar(NewNegAtom("A"), NewAtom("B"))))

	// (A -o B)^ is A * B^.
	require.True(t, lolli.Negate().Equal(NewTensor(a, NewNegAtom("B"))))
}

func TestPolarity(t *testing.T) {
	positive := []Formula{
		NewAtom("A"), NewTensor(NewAtom("A"), NewAtom("B")),
		One, NewPlus(NewAtom("A"), NewAtom("B")), Zero,
		NewOfCourse(NewAtom("A")),
	}
	negative := []Formula{
		NewNegAtom("A"), NewPar(NewAtom("A"), NewAtom("B")),
		Bottom, NewWith(NewAtom("A"), NewAtom("B")), Top,
		NewWhyNot(NewAtom("A")),
		NewLolli(NewAtom("A"), NewAtom("B")),
	}
	for _, f := range positive {
		require.True(t, f.Positive(), f.Pretty())
		require.False(t, Negative(f), f.Pretty())
	}
	for _, f := range negative {
		require.False(t, f.Positive(), f.Pretty())
		require.True(t, Negative(f), f.Pretty())
	}
}

func TestPrettyForms(t *testing.T) {
	f := NewLolli(NewTensor(NewAtom("A"), One), NewNegAtom("B"))
	require.NotEmpty(t, f.Pretty())
	require.NotEmpty(t, f.PrettyASCII())
	require.NotEmpty(t, f.PrettyLatex())
	require.Equal(t, 5, f.Size())
}

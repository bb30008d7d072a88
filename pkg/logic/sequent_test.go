package logic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequentReplaceWithout(t *testing.T) {
	seq := NewSequent(NewAtom("A"), NewAtom("B"), NewAtom("C"))

	require.True(t, seq.Without(1).Equal(NewSequent(NewAtom("A"), NewAtom("C"))))
	require.True(t,
		seq.Replace(1, NewAtom("X"), NewAtom("Y")).Equal(
			NewSequent(NewAtom("A"), NewAtom("X"), NewAtom("Y"), NewAtom("C"))))

	// The receiver is untouched.
	require.True(t, seq.Equal(NewSequent(NewAtom("A"), NewAtom("B"), NewAtom("C"))))
}

func TestTwoSidedConversion(t *testing.T) {
	// A, B |- C becomes |- A^, B^, C.
	two := NewTwoSidedSequent(
		[]Formula{NewAtom("A"), NewAtom("B")},
		[]Formula{NewAtom("C")},
	)
	want := NewSequent(NewNegAtom("A"), NewNegAtom("B"), NewAtom("C"))
	require.True(t, two.OneSided().Equal(want))
}

func TestSequentDesugar(t *testing.T) {
	seq := NewSequent(NewLolli(NewAtom("A"), NewAtom("A")))
	want := NewSequent(NewPar(NewNegAtom("A"), NewAtom("A")))
	require.True(t, seq.Desugar().Equal(want))
}

func TestSequentPretty(t *testing.T) {
	seq := NewSequent(NewAtom("A"), NewNegAtom("B"))
	require.Equal(t, "⊢ A, B⊥", seq.Pretty())
	require.Equal(t, "|- A, B^", seq.PrettyASCII())
}

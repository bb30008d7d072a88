package parse

import (
	"testing"

	"github.com/ibrahimcesar/lolli/pkg/logic"
	"github.com/stretchr/testify/require"
)

func mustFormula(t *testing.T, input string) logic.Formula {
	t.Helper()
	parsed, err := ParseFormula(input)
	require.NoError(t, err, input)
	return parsed.ToLogic()
}

func TestParseFormulas(t *testing.T) {
	a := logic.NewAtom("A")
	b := logic.NewAtom("B")
	c := logic.NewAtom("C")

	cases := []struct {
		input string
		want  logic.Formula
	}{
		{"A", a},
		{"A^", logic.NewNegAtom("A")},
		{"1", logic.One},
		{"0", logic.Zero},
		{"top", logic.Top},
		{"bot", logic.Bottom},
		{"!A", logic.NewOfCourse(a)},
		{"?A^", logic.NewWhyNot(logic.NewNegAtom("A"))},
		{"!!A", logic.NewOfCourse(logic.NewOfCourse(a))},
		{"A * B", logic.NewTensor(a, b)},
		{"A | B", logic.NewPar(a, b)},
		{"A + B", logic.NewPlus(a, b)},
		{"A & B", logic.NewWith(a, b)},
		{"A -o B", logic.NewLolli(a, b)},
		{"(A)", a},

		// precedence: -o < | < * < + < &
		{"A | B * C", logic.NewPar(a, logic.NewTensor(b, c))},
		{"A * B + C", logic.NewTensor(a, logic.NewPlus(b, c))},
		{"A + B & C", logic.NewPlus(a, logic.NewWith(b, c))},
		{"A -o B | C", logic.NewLolli(a, logic.NewPar(b, c))},
		{"!A * B", logic.NewTensor(logic.NewOfCourse(a), b)},

		// lolli is right-associative, the rest left-associative
		{"A -o B -o C", logic.NewLolli(a, logic.NewLolli(b, c))},
		{"A * B * C", logic.NewTensor(logic.NewTensor(a, b), c)},

		// parens override
		{"(A | B) * C", logic.NewTensor(logic.NewPar(a, b), c)},
		{"A * (B + C) -o A", logic.NewLolli(logic.NewTensor(a, logic.NewPlus(b, c)), a)},
	}

	for _, tc := range cases {
		got := mustFormula(t, tc.input)
		require.True(t, got.Equal(tc.want),
			"%s: got %s, want %s", tc.input, got.Pretty(), tc.want.Pretty())
	}
}

func TestParseSequents(t *testing.T) {
	a := logic.NewAtom("A")
	b := logic.NewAtom("B")

	oneSided, err := ParseSequent("|- A | A^")
	require.NoError(t, err)
	require.True(t, oneSided.ToLogic().Equal(
		logic.NewSequent(logic.NewPar(a, logic.NewNegAtom("A")))))

	twoSided, err := ParseSequent("A, B |- A * B")
	require.NoError(t, err)
	require.True(t, twoSided.ToLogic().Equal(logic.NewSequent(
		logic.NewNegAtom("A"),
		logic.NewNegAtom("B"),
		logic.NewTensor(a, b),
	)))
}

func TestParseStatements(t *testing.T) {
	stmt, err := ParseStatement("prove |- A | A^ depth 20")
	require.NoError(t, err)
	require.NotNil(t, stmt.Prove)
	require.NotNil(t, stmt.Prove.Depth)
	require.Equal(t, 20, *stmt.Prove.Depth)

	stmt, err = ParseStatement("PROVE |- 1")
	require.NoError(t, err)
	require.NotNil(t, stmt.Prove)
	require.Nil(t, stmt.Prove.Depth)

	stmt, err = ParseStatement("extract |- A -o A normalize")
	require.NoError(t, err)
	require.NotNil(t, stmt.Extract)
	require.True(t, stmt.Extract.Normalize)

	stmt, err = ParseStatement("extract |- A -o A normalize depth 5")
	require.NoError(t, err)
	require.NotNil(t, stmt.Extract)
	require.NotNil(t, stmt.Extract.Depth)
	require.Equal(t, 5, *stmt.Extract.Depth)

	stmt, err = ParseStatement("viz latex |- 1")
	require.NoError(t, err)
	require.NotNil(t, stmt.Viz)
	require.True(t, stmt.Viz.Latex)

	stmt, err = ParseStatement("viz dot |- 1 depth 7")
	require.NoError(t, err)
	require.NotNil(t, stmt.Viz)
	require.NotNil(t, stmt.Viz.Depth)
	require.Equal(t, 7, *stmt.Viz.Depth)

	stmt, err = ParseStatement("codegen |- A -o A")
	require.NoError(t, err)
	require.NotNil(t, stmt.Codegen)
	require.Nil(t, stmt.Codegen.Depth)

	stmt, err = ParseStatement("save identity |- A -o A depth 12")
	require.NoError(t, err)
	require.NotNil(t, stmt.Save)
	require.Equal(t, "identity", stmt.Save.Name)
	require.NotNil(t, stmt.Save.Depth)
	require.Equal(t, 12, *stmt.Save.Depth)

	stmt, err = ParseStatement("load identity")
	require.NoError(t, err)
	require.NotNil(t, stmt.Load)
	require.Equal(t, "identity", stmt.Load.Name)

	stmt, err = ParseStatement("list")
	require.NoError(t, err)
	require.NotNil(t, stmt.List)

	stmt, err = ParseStatement("parse !A -o ?B")
	require.NoError(t, err)
	require.NotNil(t, stmt.Parse)
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"prove",
		"prove A",      // missing turnstile
		"A * |- B",     // dangling operator
		"frobnicate A", // unknown statement
	}
	for _, input := range inputs {
		_, err := ParseStatement(input)
		require.Error(t, err, input)
	}
}

package viz

import (
	"strings"
	"testing"

	"github.com/ibrahimcesar/lolli/pkg/logic"
	"github.com/ibrahimcesar/lolli/pkg/prove"
	"github.com/stretchr/testify/require"
)

func tensorProof(t *testing.T) *logic.Proof {
	t.Helper()
	seq := logic.NewSequent(
		logic.NewNegAtom("A"),
		logic.NewNegAtom("B"),
		logic.NewTensor(logic.NewAtom("A"), logic.NewAtom("B")),
	)
	proof := prove.NewProver(0).Prove(seq)
	require.NotNil(t, proof)
	return proof
}

func TestTreeRendererASCII(t *testing.T) {
	proof := tensorProof(t)
	out := NewTreeRenderer(false).Render(proof)

	require.Contains(t, out, "|- A^, B^, (A * B)")
	require.Contains(t, out, "---")
	require.Contains(t, out, " *") // rule label next to the bar
	require.NotContains(t, out, "⊢")

	// Conclusion is the last line.
	lines := strings.Split(out, "\n")
	require.Contains(t, lines[len(lines)-1], "|- A^, B^, (A * B)")
}

func TestTreeRendererUnicode(t *testing.T) {
	proof := tensorProof(t)
	out := NewTreeRenderer(true).Render(proof)

	require.Contains(t, out, "⊢")
	require.Contains(t, out, "───")
}

func TestTreeRendererLeaf(t *testing.T) {
	proof := prove.NewProver(0).Prove(logic.NewSequent(logic.One))
	require.NotNil(t, proof)

	out := NewTreeRenderer(false).Render(proof)
	require.Equal(t, 2, len(strings.Split(out, "\n")))
}

func TestLatexRenderer(t *testing.T) {
	proof := tensorProof(t)
	out := NewLatexRenderer().Render(proof)

	require.True(t, strings.HasPrefix(out, "\\begin{prooftree}"))
	require.True(t, strings.HasSuffix(out, "\\end{prooftree}"))
	require.Contains(t, out, "\\BinaryInfC")
	require.Contains(t, out, "\\AxiomC{}")
	require.Contains(t, out, "\\otimes")
}

func TestLatexRendererDocument(t *testing.T) {
	proof := tensorProof(t)
	out := NewLatexRenderer().RenderDocument(proof)

	require.Contains(t, out, "\\documentclass{article}")
	require.Contains(t, out, "\\usepackage{bussproofs}")
	require.Contains(t, out, "\\begin{document}")
}

func TestLatexRendererLongLabels(t *testing.T) {
	proof := tensorProof(t)
	r := NewLatexRenderer()
	r.ShortLabels = false
	out := r.Render(proof)
	require.Contains(t, out, "\\text{TensorIntro}")
}

func TestDotRenderer(t *testing.T) {
	proof := tensorProof(t)
	out := NewDotRenderer().Render(proof)

	require.True(t, strings.HasPrefix(out, "digraph proof {"))
	require.Contains(t, out, "rankdir=BT")
	require.Contains(t, out, `"|- A^, B^, (A * B)"`)
	require.Contains(t, out, "->")
}

func TestDotRendererProofNet(t *testing.T) {
	proof := prove.NewProver(0).Prove(logic.NewSequent(
		logic.NewPar(logic.NewNegAtom("A"), logic.NewAtom("A")),
	))
	require.NotNil(t, proof)

	out := NewDotRenderer().RenderProofNet(proof)
	require.True(t, strings.HasPrefix(out, "graph proofnet {"))
	require.Contains(t, out, "style=dashed") // the axiom link
	require.Contains(t, out, `"|"`)
}

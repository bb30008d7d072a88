package viz

import (
	"fmt"
	"strings"

	"github.com/ibrahimcesar/lolli/pkg/logic"
)

// LatexRenderer emits bussproofs markup for a proof tree.
type LatexRenderer struct {
	// IncludePreamble makes RenderDocument wrap the tree in a complete
	// standalone document.
	IncludePreamble bool
	// ShortLabels uses connective symbols as rule labels instead of
	// rule names.
	ShortLabels bool
}

func NewLatexRenderer() *LatexRenderer {
	return &LatexRenderer{ShortLabels: true}
}

// Render produces a prooftree environment.
func (r *LatexRenderer) Render(proof *logic.Proof) string {
	var sb strings.Builder
	sb.WriteString("\\begin{prooftree}\n")
	r.render(&sb, proof)
	sb.WriteString("\\end{prooftree}")
	return sb.String()
}

// RenderDocument produces a compilable document around the tree.
func (r *LatexRenderer) RenderDocument(proof *logic.Proof) string {
	var sb strings.Builder
	sb.WriteString("\\documentclass{article}\n")
	sb.WriteString("\\usepackage{bussproofs}\n")
	sb.WriteString("\\usepackage{amssymb}\n")
	sb.WriteString("\\begin{document}\n\n")
	sb.WriteString(r.Render(proof))
	sb.WriteString("\n\n\\end{document}\n")
	return sb.String()
}

// render walks bottom-up: bussproofs consumes premises off a stack, so
// premises are emitted before their conclusion.
func (r *LatexRenderer) render(sb *strings.Builder, proof *logic.Proof) {
	for _, premise := range proof.Premises {
		r.render(sb, premise)
	}

	fmt.Fprintf(sb, "\\RightLabel{\\scriptsize %s}\n", r.label(proof.Rule))

	conclusion := fmt.Sprintf("$%s$", proof.Conclusion.PrettyLatex())
	switch len(proof.Premises) {
	case 0:
		fmt.Fprintf(sb, "\\AxiomC{}\n\\UnaryInfC{%s}\n", conclusion)
	case 1:
		fmt.Fprintf(sb, "\\UnaryInfC{%s}\n", conclusion)
	case 2:
		fmt.Fprintf(sb, "\\BinaryInfC{%s}\n", conclusion)
	default:
		fmt.Fprintf(sb, "\\TrinaryInfC{%s}\n", conclusion)
	}
}

func (r *LatexRenderer) label(rule logic.Rule) string {
	if !r.ShortLabels {
		return fmt.Sprintf("\\text{%s}", rule.Kind)
	}
	switch rule.Kind {
	case logic.Axiom:
		return "\\text{ax}"
	case logic.OneIntro:
		return "\\mathbf{1}"
	case logic.TopIntro:
		return "\\top"
	case logic.BottomIntro:
		return "\\bot"
	case logic.TensorIntro:
		return "\\otimes"
	case logic.ParIntro:
		return "\\parr"
	case logic.WithIntro:
		return "\\&"
	case logic.PlusIntroLeft:
		return "\\oplus_1"
	case logic.PlusIntroRight:
		return "\\oplus_2"
	case logic.OfCourseIntro:
		return "!"
	case logic.WhyNotIntro:
		return "?"
	case logic.Weakening:
		return "?w"
	case logic.Contraction:
		return "?c"
	case logic.Dereliction:
		return "?d"
	case logic.Cut:
		return "\\text{cut}"
	}
	return fmt.Sprintf("\\text{%s}", rule.Kind)
}

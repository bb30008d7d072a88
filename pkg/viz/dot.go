package viz

import (
	"fmt"
	"strings"

	"github.com/ibrahimcesar/lolli/pkg/logic"
)

// DotRenderer emits Graphviz DOT. Render draws the proof tree itself;
// RenderProofNet draws the formula forest of the root sequent with
// axiom links between dual atoms.
type DotRenderer struct {
	// Direction is the rankdir attribute; "BT" puts the conclusion at
	// the bottom like an inference tree.
	Direction string
	NodeShape string
	Font      string
	// ShowRules labels each edge with the rule applied at its target.
	ShowRules bool
}

func NewDotRenderer() *DotRenderer {
	return &DotRenderer{
		Direction: "BT",
		NodeShape: "box",
		Font:      "Courier",
		ShowRules: true,
	}
}

func (r *DotRenderer) Render(proof *logic.Proof) string {
	var sb strings.Builder
	sb.WriteString("digraph proof {\n")
	r.header(&sb)
	counter := 0
	r.renderNode(&sb, proof, &counter)
	sb.WriteString("}\n")
	return sb.String()
}

func (r *DotRenderer) header(sb *strings.Builder) {
	fmt.Fprintf(sb, "  rankdir=%s;\n", r.Direction)
	fmt.Fprintf(sb, "  node [shape=%s, fontname=%q];\n", r.NodeShape, r.Font)
	fmt.Fprintf(sb, "  edge [fontname=%q];\n", r.Font)
}

func (r *DotRenderer) renderNode(sb *strings.Builder, proof *logic.Proof, counter *int) int {
	id := *counter
	*counter++
	fmt.Fprintf(sb, "  n%d [label=%s];\n", id, dotQuote(proof.Conclusion.PrettyASCII()))
	for _, premise := range proof.Premises {
		childID := r.renderNode(sb, premise, counter)
		if r.ShowRules {
			fmt.Fprintf(sb, "  n%d -> n%d [label=%s];\n",
				childID, id, dotQuote(ruleLabel(proof.Rule, false)))
		} else {
			fmt.Fprintf(sb, "  n%d -> n%d;\n", childID, id)
		}
	}
	if len(proof.Premises) == 0 && r.ShowRules {
		fmt.Fprintf(sb, "  n%d_rule [label=%s, shape=plaintext];\n",
			id, dotQuote(ruleLabel(proof.Rule, false)))
		fmt.Fprintf(sb, "  n%d_rule -> n%d [style=dotted, arrowhead=none];\n", id, id)
	}
	return id
}

// RenderProofNet draws each formula of the conclusion as a syntax
// tree, then connects dual atom leaves pairwise with dashed axiom
// links. Links are matched greedily left to right, which coincides
// with the axiom choices of the search engine on cut-free proofs.
func (r *DotRenderer) RenderProofNet(proof *logic.Proof) string {
	var sb strings.Builder
	sb.WriteString("graph proofnet {\n")
	r.header(&sb)

	counter := 0
	var atoms []netAtom
	for _, f := range proof.Conclusion.Formulas {
		r.renderFormula(&sb, f, &counter, &atoms)
	}

	for i, a := range atoms {
		if a.linked {
			continue
		}
		for j := i + 1; j < len(atoms); j++ {
			b := atoms[j]
			if b.linked || a.name != b.name || a.negated == b.negated {
				continue
			}
			fmt.Fprintf(&sb, "  n%d -- n%d [style=dashed, constraint=false];\n", a.id, b.id)
			atoms[i].linked = true
			atoms[j].linked = true
			break
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

type netAtom struct {
	id      int
	name    string
	negated bool
	linked  bool
}

func (r *DotRenderer) renderFormula(sb *strings.Builder, f logic.Formula, counter *int, atoms *[]netAtom) int {
	id := *counter
	*counter++

	label := connectiveLabel(f)
	fmt.Fprintf(sb, "  n%d [label=%s];\n", id, dotQuote(label))

	switch f := f.(type) {
	case *logic.Atom:
		*atoms = append(*atoms, netAtom{id: id, name: f.Name})
	case *logic.NegAtom:
		*atoms = append(*atoms, netAtom{id: id, name: f.Name, negated: true})
	case *logic.Tensor:
		r.netEdge(sb, id, r.renderFormula(sb, f.A, counter, atoms))
		r.netEdge(sb, id, r.renderFormula(sb, f.B, counter, atoms))
	case *logic.Par:
		r.netEdge(sb, id, r.renderFormula(sb, f.A, counter, atoms))
		r.netEdge(sb, id, r.renderFormula(sb, f.B, counter, atoms))
	case *logic.With:
		r.netEdge(sb, id, r.renderFormula(sb, f.A, counter, atoms))
		r.netEdge(sb, id, r.renderFormula(sb, f.B, counter, atoms))
	case *logic.Plus:
		r.netEdge(sb, id, r.renderFormula(sb, f.A, counter, atoms))
		r.netEdge(sb, id, r.renderFormula(sb, f.B, counter, atoms))
	case *logic.OfCourse:
		r.netEdge(sb, id, r.renderFormula(sb, f.A, counter, atoms))
	case *logic.WhyNot:
		r.netEdge(sb, id, r.renderFormula(sb, f.A, counter, atoms))
	case *logic.Lolli:
		r.netEdge(sb, id, r.renderFormula(sb, f.A, counter, atoms))
		r.netEdge(sb, id, r.renderFormula(sb, f.B, counter, atoms))
	}
	return id
}

func (r *DotRenderer) netEdge(sb *strings.Builder, parent, child int) {
	fmt.Fprintf(sb, "  n%d -- n%d;\n", parent, child)
}

func connectiveLabel(f logic.Formula) string {
	switch f := f.(type) {
	case *logic.Atom:
		return f.Name
	case *logic.NegAtom:
		return f.Name + "^"
	case *logic.Tensor:
		return "*"
	case *logic.Par:
		return "|"
	case *logic.With:
		return "&"
	case *logic.Plus:
		return "+"
	case *logic.OfCourse:
		return "!"
	case *logic.WhyNot:
		return "?"
	case *logic.Lolli:
		return "-o"
	}
	return f.PrettyASCII()
}

func dotQuote(s string) string {
	return fmt.Sprintf("%q", s)
}

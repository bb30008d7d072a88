package logic

// Proof is a finite derivation tree. It is built once, by the prover
// or by hand, and never mutated; the verifier, extractor, and
// renderers all share it read-only.
type Proof struct {
	Conclusion Sequent
	Rule       Rule
	Premises   []*Proof
}

func NewProof(conclusion Sequent, rule Rule, premises ...*Proof) *Proof {
	return &Proof{
		Conclusion: conclusion,
		Rule:       rule,
		Premises:   premises,
	}
}

// Depth is the length of the longest branch, counting rule
// applications.
func (p *Proof) Depth() int {
	max := 0
	for _, premise := range p.Premises {
		if d := premise.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// Size is the total number of rule applications in the tree.
func (p *Proof) Size() int {
	n := 1
	for _, premise := range p.Premises {
		n += premise.Size()
	}
	return n
}

// CutCount counts the Cut rules in the tree. A cut-free proof
// extracts to a term with no extra plumbing redexes.
func (p *Proof) CutCount() int {
	n := 0
	if p.Rule.Kind == Cut {
		n = 1
	}
	for _, premise := range p.Premises {
		n += premise.CutCount()
	}
	return n
}

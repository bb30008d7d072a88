package prove

import (
	"github.com/ibrahimcesar/lolli/pkg/logic"
)

// DefaultMaxDepth bounds the number of rule applications along any
// single branch of the search.
const DefaultMaxDepth = 100

// Prover performs bounded focused proof search (Andreoli 1992) over
// one-sided linear logic sequents.
//
// A Prover is cheap to construct and holds no state shared between
// calls; concurrent searches should each use their own instance.
type Prover struct {
	maxDepth int
}

func NewProver(maxDepth int) *Prover {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Prover{maxDepth: maxDepth}
}

// Prove searches for a proof of the sequent. It returns nil if every
// branch exhausts the depth bound; retrying with a larger bound is
// always safe. Lolli is desugared up front, so the search only ever
// sees primitive connectives.
//
// The bound is applied by iterative deepening: a proof of depth d is
// found after searching depths 1..d, so shallow proofs never pay the
// cost of a large bound.
func (p *Prover) Prove(seq logic.Sequent) *logic.Proof {
	desugared := seq.Desugar()
	for depth := 1; depth <= p.maxDepth; depth++ {
		if proof := p.search(desugared, depth); proof != nil {
			return proof
		}
	}
	return nil
}

// ProveTwoSided proves a two-sided sequent by converting it to its
// one-sided form.
func (p *Prover) ProveTwoSided(seq logic.TwoSidedSequent) *logic.Proof {
	return p.Prove(seq.OneSided())
}

func (p *Prover) search(seq logic.Sequent, depth int) *logic.Proof {
	if depth <= 0 {
		return nil
	}

	// Immediate axiom: exactly two formulas forming a dual atom pair.
	if axiomMatch(seq) {
		return logic.NewProof(seq, logic.NewRule(logic.Axiom))
	}

	// Invertible phase: decompose the leftmost negative formula with a
	// unique decomposition. NegAtom and WhyNot have none; they wait
	// for the axiom, focus, or exponential phases.
	for i, f := range seq.Formulas {
		switch f := f.(type) {
		case *logic.Par:
			premise := p.search(seq.Replace(i, f.A, f.B), depth-1)
			if premise == nil {
				return nil
			}
			return logic.NewProof(seq, logic.NewRule(logic.ParIntro), premise)

		case *logic.With:
			// Both branches must succeed over the same remaining
			// context.
			left := p.search(seq.Replace(i, f.A), depth-1)
			if left == nil {
				return nil
			}
			right := p.search(seq.Replace(i, f.B), depth-1)
			if right == nil {
				return nil
			}
			return logic.NewProof(seq, logic.NewRule(logic.WithIntro), left, right)
		}

		if f.Equal(logic.Top) {
			return logic.NewProof(seq, logic.NewRule(logic.TopIntro))
		}
		if f.Equal(logic.Bottom) {
			premise := p.search(seq.Without(i), depth-1)
			if premise == nil {
				return nil
			}
			return logic.NewProof(seq, logic.NewRule(logic.BottomIntro), premise)
		}
	}

	// Focus phase: pick a positive formula and decompose it fully,
	// backtracking over the choices.
	for i, f := range seq.Formulas {
		switch f := f.(type) {
		case *logic.Tensor:
			if proof := p.focusTensor(seq, i, f, depth); proof != nil {
				return proof
			}

		case *logic.Plus:
			if premise := p.search(seq.Replace(i, f.A), depth-1); premise != nil {
				return logic.NewProof(seq, logic.NewRule(logic.PlusIntroLeft), premise)
			}
			if premise := p.search(seq.Replace(i, f.B), depth-1); premise != nil {
				return logic.NewProof(seq, logic.NewRule(logic.PlusIntroRight), premise)
			}

		case *logic.OfCourse:
			// Promotion requires every other formula to be ?-headed.
			if allWhyNotExcept(seq, i) {
				if premise := p.search(seq.Replace(i, f.A), depth-1); premise != nil {
					return logic.NewProof(seq, logic.NewRule(logic.OfCourseIntro), premise)
				}
			}
		}

		if f.Equal(logic.One) && len(seq.Formulas) == 1 {
			return logic.NewProof(seq, logic.NewRule(logic.OneIntro))
		}
	}

	// Exponential structural moves, tried when nothing above applied:
	// use a ?A (dereliction into it, discard it, or duplicate it) or
	// use a !A as a plain A. Each consumes one unit of depth. An
	// occurrence equal to an earlier one is skipped: the moves on
	// either occurrence produce the same premise multiset.
	for i, f := range seq.Formulas {
		if duplicateBefore(seq, i) {
			continue
		}
		switch f := f.(type) {
		case *logic.WhyNot:
			if premise := p.search(seq.Replace(i, f.A), depth-1); premise != nil {
				return logic.NewProof(seq, logic.NewRule(logic.WhyNotIntro), premise)
			}
			if premise := p.search(seq.Without(i), depth-1); premise != nil {
				return logic.NewProof(seq, logic.NewRule(logic.Weakening), premise)
			}
			if premise := p.search(seq.Replace(i, f, f), depth-1); premise != nil {
				return logic.NewProof(seq, logic.NewRule(logic.Contraction), premise)
			}

		case *logic.OfCourse:
			if premise := p.search(seq.Replace(i, f.A), depth-1); premise != nil {
				return logic.NewProof(seq, logic.NewRule(logic.Dereliction), premise)
			}
		}
	}

	return nil
}

// focusTensor decomposes a focused A ⊗ B by trying every partition of
// the non-focused context between the two premises.
func (p *Prover) focusTensor(seq logic.Sequent, idx int, f *logic.Tensor, depth int) *logic.Proof {
	rest := seq.Without(idx)
	n := len(rest.Formulas)

	for mask := 0; mask < 1<<uint(n); mask++ {
		var leftCtx, rightCtx []logic.Formula
		for j, g := range rest.Formulas {
			if mask&(1<<uint(j)) != 0 {
				leftCtx = append(leftCtx, g)
			} else {
				rightCtx = append(rightCtx, g)
			}
		}

		left := p.search(logic.NewSequent(append(leftCtx, f.A)...), depth-1)
		if left == nil {
			continue
		}
		right := p.search(logic.NewSequent(append(rightCtx, f.B)...), depth-1)
		if right == nil {
			continue
		}
		return logic.NewProof(seq, logic.NewRule(logic.TensorIntro), left, right)
	}
	return nil
}

// duplicateBefore reports whether the formula at idx already occurs
// earlier in the sequent.
func duplicateBefore(seq logic.Sequent, idx int) bool {
	for j := 0; j < idx; j++ {
		if seq.Formulas[j].Equal(seq.Formulas[idx]) {
			return true
		}
	}
	return false
}

// axiomMatch recognizes ⊢ A, A⊥ (in either order).
func axiomMatch(seq logic.Sequent) bool {
	if len(seq.Formulas) != 2 {
		return false
	}
	a, b := seq.Formulas[0], seq.Formulas[1]
	if atom, ok := a.(*logic.Atom); ok {
		if neg, ok := b.(*logic.NegAtom); ok {
			return atom.Name == neg.Name
		}
	}
	if neg, ok := a.(*logic.NegAtom); ok {
		if atom, ok := b.(*logic.Atom); ok {
			return atom.Name == neg.Name
		}
	}
	return false
}

func allWhyNotExcept(seq logic.Sequent, idx int) bool {
	for j, g := range seq.Formulas {
		if j == idx {
			continue
		}
		if _, ok := g.(*logic.WhyNot); !ok {
			return false
		}
	}
	return true
}

// Package extract turns proofs into linear lambda terms via the
// Curry–Howard correspondence:
//
//	A ⊗ B   pair            A & B   lazy pair (projections)
//	A ⊕ B   inl / inr       1       unit
//	⊤       trivial         !A      promote
//	cut     let / case / application
//
// Extraction is total over structurally valid proofs; it never fails.
// Cut-free proofs extract to terms whose only redexes are their own.
package extract

import (
	"fmt"
	"strings"

	"github.com/ibrahimcesar/lolli/pkg/lam"
	"github.com/ibrahimcesar/lolli/pkg/logic"
)

// Extractor walks a proof bottom-up and produces its computational
// content. The fresh-variable counter and the hypothesis environment
// are per-instance state; do not share one instance across concurrent
// extractions.
type Extractor struct {
	varCounter int
}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// FreshVar returns a variable name unused in this extraction.
func (e *Extractor) FreshVar() string {
	v := fmt.Sprintf("x%d", e.varCounter)
	e.varCounter++
	return v
}

// VarForFormula returns a fresh name derived from the formula where
// that reads better than a plain counter name.
func (e *Extractor) VarForFormula(f logic.Formula) string {
	switch f := f.(type) {
	case *logic.Atom:
		return e.namedVar(f.Name)
	case *logic.NegAtom:
		return e.namedVar(f.Name)
	}
	return e.FreshVar()
}

func (e *Extractor) namedVar(base string) string {
	v := fmt.Sprintf("%s%d", strings.ToLower(base), e.varCounter)
	e.varCounter++
	return v
}

// binding maps a cut hypothesis to the variable standing for it.
type binding struct {
	formula logic.Formula
	name    string
}

// Extract produces the term for a proof.
func (e *Extractor) Extract(proof *logic.Proof) lam.Term {
	return e.extract(proof, nil)
}

func (e *Extractor) extract(proof *logic.Proof, env []binding) lam.Term {
	switch proof.Rule.Kind {
	case logic.Axiom:
		return e.extractAxiom(proof, env)

	case logic.OneIntro:
		return lam.Unit

	case logic.TopIntro:
		return lam.Trivial

	case logic.BottomIntro:
		// ⊥ is the unit for ⅋; it contributes nothing.
		if len(proof.Premises) > 0 {
			return e.extract(proof.Premises[0], env)
		}
		return lam.Unit

	case logic.TensorIntro:
		if len(proof.Premises) == 2 {
			left := e.extract(proof.Premises[0], env)
			right := e.extract(proof.Premises[1], env)
			return lam.NewPair(left, right)
		}
		if len(proof.Premises) == 1 {
			return e.extract(proof.Premises[0], env)
		}
		return lam.Unit

	case logic.ParIntro:
		if len(proof.Premises) > 0 {
			return e.extract(proof.Premises[0], env)
		}
		return lam.Unit

	case logic.WithIntro:
		// A lazy pair; consumers project with fst/snd.
		if len(proof.Premises) == 2 {
			left := e.extract(proof.Premises[0], env)
			right := e.extract(proof.Premises[1], env)
			return lam.NewPair(left, right)
		}
		if len(proof.Premises) == 1 {
			return e.extract(proof.Premises[0], env)
		}
		return lam.Trivial

	case logic.PlusIntroLeft:
		if len(proof.Premises) > 0 {
			return lam.NewInl(e.extract(proof.Premises[0], env))
		}
		return lam.NewInl(lam.Unit)

	case logic.PlusIntroRight:
		if len(proof.Premises) > 0 {
			return lam.NewInr(e.extract(proof.Premises[0], env))
		}
		return lam.NewInr(lam.Unit)

	case logic.OfCourseIntro:
		if len(proof.Premises) > 0 {
			return lam.NewPromote(e.extract(proof.Premises[0], env))
		}
		return lam.NewPromote(lam.Unit)

	case logic.WhyNotIntro:
		if len(proof.Premises) > 0 {
			return e.extract(proof.Premises[0], env)
		}
		return lam.Unit

	case logic.Weakening:
		if len(proof.Premises) > 0 {
			body := e.extract(proof.Premises[0], env)
			return lam.NewDiscard(lam.Unit, body)
		}
		return lam.Unit

	case logic.Contraction:
		if len(proof.Premises) > 0 {
			x := e.FreshVar()
			y := e.FreshVar()
			src := lam.NewVar(e.FreshVar())
			body := e.extract(proof.Premises[0], env)
			return lam.NewCopy(src, x, y, body)
		}
		return lam.Unit

	case logic.Dereliction:
		if len(proof.Premises) > 0 {
			return lam.NewDerelict(e.extract(proof.Premises[0], env))
		}
		return lam.NewDerelict(lam.Unit)

	case logic.Cut:
		return e.extractCut(proof, env)

	case logic.FocusPositive, logic.FocusNegative, logic.Blur:
		// Focusing markers carry no computational content.
		if len(proof.Premises) > 0 {
			return e.extract(proof.Premises[0], env)
		}
		return lam.Unit
	}

	return lam.Unit
}

// extractAxiom resolves ⊢ A⊥, A against the hypothesis environment:
// the dual of a bound cut formula becomes a use of its variable. With
// no matching binding it falls back to an identity abstraction — a
// deliberate default, not an error.
func (e *Extractor) extractAxiom(proof *logic.Proof, env []binding) lam.Term {
	for _, f := range proof.Conclusion.Formulas {
		switch f := f.(type) {
		case *logic.Atom:
			for _, b := range env {
				if neg, ok := b.formula.(*logic.NegAtom); ok && neg.Name == f.Name {
					return lam.NewVar(b.name)
				}
			}
			return lam.NewVar(strings.ToLower(f.Name))

		case *logic.NegAtom:
			for _, b := range env {
				if atom, ok := b.formula.(*logic.Atom); ok && atom.Name == f.Name {
					return lam.NewVar(b.name)
				}
			}
		}
	}

	v := e.FreshVar()
	return lam.NewAbs(v, lam.NewVar(v))
}

// extractCut binds the cut formula for the consumer premise. The term
// shape depends on the head of the cut formula: a ⊗ cut becomes a
// let-pair, a ⊕ cut becomes a case, anything else an application.
func (e *Extractor) extractCut(proof *logic.Proof, env []binding) lam.Term {
	if len(proof.Premises) != 2 {
		return lam.Unit
	}
	cutFormula := proof.Rule.Formula

	cutVar := e.VarForFormula(cutFormula)
	producer := e.extract(proof.Premises[0], env)

	env = append(env, binding{formula: cutFormula, name: cutVar})
	consumer := e.extract(proof.Premises[1], env)

	switch cutFormula.(type) {
	case *logic.Tensor:
		x := e.FreshVar()
		y := e.FreshVar()
		return lam.NewLetPair(x, y, producer, consumer)

	case *logic.Plus:
		// TODO: extract branch-specific continuations here; reusing
		// the consumer for both arms mirrors the historical behavior
		// but loses the distinction between the two branches.
		x := e.FreshVar()
		y := e.FreshVar()
		return lam.NewCase(producer, x, consumer, y, consumer)
	}

	return lam.NewApp(consumer, producer)
}

// ExtractTerm is a convenience wrapper around a one-shot Extractor.
func ExtractTerm(proof *logic.Proof) lam.Term {
	return NewExtractor().Extract(proof)
}

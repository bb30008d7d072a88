package prove

import (
	"github.com/ibrahimcesar/lolli/pkg/logic"
)

// Verify re-checks a proof tree from scratch. It trusts nothing about
// how the proof was built, so it is the required gate for any proof
// that did not come directly out of this package's Prover.
//
// Each node's rule must be structurally consistent with its conclusion
// and carry the rule's fixed number of premises; failures in a premise
// are wrapped so the whole path to the offending node is reported.
func Verify(proof *logic.Proof) error {
	if err := verifyRuleApplication(proof); err != nil {
		return err
	}
	for i, premise := range proof.Premises {
		if err := Verify(premise); err != nil {
			return NewPremiseFailed(i, err)
		}
	}
	return nil
}

func verifyRuleApplication(proof *logic.Proof) error {
	seq := proof.Conclusion

	switch proof.Rule.Kind {
	case logic.Axiom:
		// ⊢ A, A⊥: exactly two formulas forming a dual atom pair.
		if !axiomMatch(seq) {
			return NewInvalidRule(proof.Rule, seq)
		}
		return checkPremiseCount(proof, 0)

	case logic.OneIntro:
		// ⊢ 1: the unit alone.
		if len(seq.Formulas) != 1 || !seq.Formulas[0].Equal(logic.One) {
			return NewInvalidRule(proof.Rule, seq)
		}
		return checkPremiseCount(proof, 0)

	case logic.TopIntro:
		if !contains(seq, logic.Top) {
			return NewInvalidRule(proof.Rule, seq)
		}
		return checkPremiseCount(proof, 0)

	case logic.BottomIntro:
		// ⊢ Γ, ⊥ from ⊢ Γ.
		if !contains(seq, logic.Bottom) {
			return NewInvalidRule(proof.Rule, seq)
		}
		if err := checkPremiseCount(proof, 1); err != nil {
			return err
		}
		for i, f := range seq.Formulas {
			if f.Equal(logic.Bottom) && proof.Premises[0].Conclusion.Equal(seq.Without(i)) {
				return nil
			}
		}
		return NewContextMismatch(
			"premise of BottomIntro must be the conclusion minus one ⊥; got %s",
			proof.Premises[0].Conclusion.Pretty())

	case logic.ParIntro:
		// ⊢ Γ, A ⅋ B from ⊢ Γ, A, B.
		if err := checkPremiseCount(proof, 1); err != nil {
			return err
		}
		found := false
		for i, f := range seq.Formulas {
			par, ok := f.(*logic.Par)
			if !ok {
				continue
			}
			found = true
			if proof.Premises[0].Conclusion.Equal(seq.Replace(i, par.A, par.B)) {
				return nil
			}
		}
		if !found {
			return NewInvalidRule(proof.Rule, seq)
		}
		return NewContextMismatch(
			"premise of ParIntro must split a ⅋ of the conclusion in place; got %s",
			proof.Premises[0].Conclusion.Pretty())

	case logic.WithIntro:
		// ⊢ Γ, A & B from ⊢ Γ, A and ⊢ Γ, B over the same Γ.
		if err := checkPremiseCount(proof, 2); err != nil {
			return err
		}
		found := false
		for i, f := range seq.Formulas {
			with, ok := f.(*logic.With)
			if !ok {
				continue
			}
			found = true
			leftOK := proof.Premises[0].Conclusion.Equal(seq.Replace(i, with.A))
			rightOK := proof.Premises[1].Conclusion.Equal(seq.Replace(i, with.B))
			if leftOK && rightOK {
				return nil
			}
		}
		if !found {
			return NewInvalidRule(proof.Rule, seq)
		}
		return NewContextMismatch(
			"premises of WithIntro must conclude each component over the identical context")

	case logic.TensorIntro:
		// The context partition is not re-derived here; presence and
		// arity checks only.
		if err := checkPremiseCount(proof, 2); err != nil {
			return err
		}
		if !containsKind(seq, isTensor) {
			return NewInvalidRule(proof.Rule, seq)
		}
		return nil

	case logic.PlusIntroLeft, logic.PlusIntroRight:
		if err := checkPremiseCount(proof, 1); err != nil {
			return err
		}
		if !containsKind(seq, isPlus) {
			return NewInvalidRule(proof.Rule, seq)
		}
		return nil

	case logic.OfCourseIntro:
		if err := checkPremiseCount(proof, 1); err != nil {
			return err
		}
		if !containsKind(seq, isOfCourse) {
			return NewInvalidRule(proof.Rule, seq)
		}
		return nil

	case logic.WhyNotIntro, logic.Weakening, logic.Contraction, logic.Dereliction:
		return checkPremiseCount(proof, 1)

	case logic.Cut:
		return checkPremiseCount(proof, 2)

	case logic.FocusPositive, logic.FocusNegative, logic.Blur:
		// Bookkeeping markers from the focusing discipline; nothing to
		// check beyond their premises.
		return nil
	}

	return NewInvalidRule(proof.Rule, seq)
}

func checkPremiseCount(proof *logic.Proof, expected int) error {
	if len(proof.Premises) != expected {
		return NewWrongPremiseCount(expected, len(proof.Premises))
	}
	return nil
}

func contains(seq logic.Sequent, f logic.Formula) bool {
	for _, g := range seq.Formulas {
		if g.Equal(f) {
			return true
		}
	}
	return false
}

func containsKind(seq logic.Sequent, pred func(logic.Formula) bool) bool {
	for _, g := range seq.Formulas {
		if pred(g) {
			return true
		}
	}
	return false
}

func isTensor(f logic.Formula) bool {
	_, ok := f.(*logic.Tensor)
	return ok
}

func isPlus(f logic.Formula) bool {
	_, ok := f.(*logic.Plus)
	return ok
}

func isOfCourse(f logic.Formula) bool {
	_, ok := f.(*logic.OfCourse)
	return ok
}

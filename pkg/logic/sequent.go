package logic

import "strings"

// Sequent is a one-sided sequent: an ordered linear context in which
// every formula must be consumed exactly once, unless duplicated or
// discarded through the exponential rules.
type Sequent struct {
	Formulas []Formula
}

func NewSequent(formulas ...Formula) Sequent {
	return Sequent{Formulas: formulas}
}

// Desugar desugars every formula in the sequent.
func (s Sequent) Desugar() Sequent {
	out := make([]Formula, len(s.Formulas))
	for i, f := range s.Formulas {
		out[i] = f.Desugar()
	}
	return Sequent{Formulas: out}
}

func (s Sequent) Equal(other Sequent) bool {
	if len(s.Formulas) != len(other.Formulas) {
		return false
	}
	for i, f := range s.Formulas {
		if !f.Equal(other.Formulas[i]) {
			return false
		}
	}
	return true
}

// Without returns a copy of the sequent with the formula at idx removed.
func (s Sequent) Without(idx int) Sequent {
	out := make([]Formula, 0, len(s.Formulas)-1)
	out = append(out, s.Formulas[:idx]...)
	out = append(out, s.Formulas[idx+1:]...)
	return Sequent{Formulas: out}
}

// Replace returns a copy of the sequent with the formula at idx
// replaced by the given formulas, in place.
func (s Sequent) Replace(idx int, with ...Formula) Sequent {
	out := make([]Formula, 0, len(s.Formulas)-1+len(with))
	out = append(out, s.Formulas[:idx]...)
	out = append(out, with...)
	out = append(out, s.Formulas[idx+1:]...)
	return Sequent{Formulas: out}
}

func (s Sequent) Pretty() string {
	return "⊢ " + joinFormulas(s.Formulas, func(f Formula) string { return f.Pretty() })
}

func (s Sequent) PrettyASCII() string {
	return "|- " + joinFormulas(s.Formulas, func(f Formula) string { return f.PrettyASCII() })
}

func (s Sequent) PrettyLatex() string {
	return joinFormulas(s.Formulas, func(f Formula) string { return f.PrettyLatex() })
}

// TwoSidedSequent is a sequent with explicit antecedent and succedent.
type TwoSidedSequent struct {
	Antecedent []Formula
	Succedent  []Formula
}

func NewTwoSidedSequent(antecedent, succedent []Formula) TwoSidedSequent {
	return TwoSidedSequent{Antecedent: antecedent, Succedent: succedent}
}

// OneSided converts to the one-sided form by negating every antecedent
// formula: the negated antecedent comes first, then the succedent.
func (t TwoSidedSequent) OneSided() Sequent {
	out := make([]Formula, 0, len(t.Antecedent)+len(t.Succedent))
	for _, f := range t.Antecedent {
		out = append(out, f.Negate())
	}
	out = append(out, t.Succedent...)
	return Sequent{Formulas: out}
}

func (t TwoSidedSequent) Pretty() string {
	left := joinFormulas(t.Antecedent, func(f Formula) string { return f.Pretty() })
	right := joinFormulas(t.Succedent, func(f Formula) string { return f.Pretty() })
	return strings.TrimSpace(left + " ⊢ " + right)
}

func joinFormulas(formulas []Formula, pretty func(Formula) string) string {
	strs := make([]string, len(formulas))
	for i, f := range formulas {
		strs[i] = pretty(f)
	}
	return strings.Join(strs, ", ")
}

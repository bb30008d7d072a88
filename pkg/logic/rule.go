package logic

import "fmt"

// RuleKind identifies a sequent calculus rule.
type RuleKind int

const (
	Axiom RuleKind = iota
	OneIntro
	TopIntro
	BottomIntro
	TensorIntro
	ParIntro
	WithIntro
	PlusIntroLeft
	PlusIntroRight
	OfCourseIntro
	WhyNotIntro
	Weakening
	Contraction
	Dereliction
	Cut

	// Bookkeeping rules used by the focusing discipline. Never chosen
	// by a human; the verifier and extractor pass through them.
	FocusPositive
	FocusNegative
	Blur
)

func (k RuleKind) String() string {
	switch k {
	case Axiom:
		return "Axiom"
	case OneIntro:
		return "OneIntro"
	case TopIntro:
		return "TopIntro"
	case BottomIntro:
		return "BottomIntro"
	case TensorIntro:
		return "TensorIntro"
	case ParIntro:
		return "ParIntro"
	case WithIntro:
		return "WithIntro"
	case PlusIntroLeft:
		return "PlusIntroLeft"
	case PlusIntroRight:
		return "PlusIntroRight"
	case OfCourseIntro:
		return "OfCourseIntro"
	case WhyNotIntro:
		return "WhyNotIntro"
	case Weakening:
		return "Weakening"
	case Contraction:
		return "Contraction"
	case Dereliction:
		return "Dereliction"
	case Cut:
		return "Cut"
	case FocusPositive:
		return "FocusPositive"
	case FocusNegative:
		return "FocusNegative"
	case Blur:
		return "Blur"
	}
	panic(fmt.Sprintf("unknown rule kind %d", int(k)))
}

// Rule is one rule application. Formula is set only for Cut (the cut
// formula) and the focus markers (the formula under focus).
type Rule struct {
	Kind    RuleKind
	Formula Formula
}

func NewRule(kind RuleKind) Rule {
	return Rule{Kind: kind}
}

func NewCut(formula Formula) Rule {
	return Rule{Kind: Cut, Formula: formula}
}

func NewFocusPositive(formula Formula) Rule {
	return Rule{Kind: FocusPositive, Formula: formula}
}

func NewFocusNegative(formula Formula) Rule {
	return Rule{Kind: FocusNegative, Formula: formula}
}

// Arity is the number of premises the rule requires, or -1 if it is
// not fixed (the internal bookkeeping rules).
func (r Rule) Arity() int {
	switch r.Kind {
	case Axiom, OneIntro, TopIntro:
		return 0
	case BottomIntro, ParIntro, PlusIntroLeft, PlusIntroRight,
		OfCourseIntro, WhyNotIntro, Weakening, Contraction, Dereliction:
		return 1
	case TensorIntro, WithIntro, Cut:
		return 2
	}
	return -1
}

// Internal reports whether the rule is a focusing bookkeeping marker.
func (r Rule) Internal() bool {
	switch r.Kind {
	case FocusPositive, FocusNegative, Blur:
		return true
	}
	return false
}

func (r Rule) String() string {
	if r.Formula != nil {
		return fmt.Sprintf("%s(%s)", r.Kind, r.Formula.Pretty())
	}
	return r.Kind.String()
}

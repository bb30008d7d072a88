package parse

import (
	"github.com/ibrahimcesar/lolli/pkg/logic"
)

// ToLogic lowers the syntax tree to a one-sided sequent; a non-empty
// antecedent is negated over to the right-hand side first.
func (s *Sequent) ToLogic() logic.Sequent {
	if len(s.Antecedent) == 0 {
		return logic.NewSequent(formulas(s.Succedent)...)
	}
	return s.ToTwoSided().OneSided()
}

func (s *Sequent) ToTwoSided() logic.TwoSidedSequent {
	return logic.NewTwoSidedSequent(formulas(s.Antecedent), formulas(s.Succedent))
}

func formulas(fs []*Formula) []logic.Formula {
	out := make([]logic.Formula, len(fs))
	for i, f := range fs {
		out[i] = f.ToLogic()
	}
	return out
}

func (f *Formula) ToLogic() logic.Formula {
	left := f.Left.ToLogic()
	if f.Right != nil {
		return logic.NewLolli(left, f.Right.ToLogic())
	}
	return left
}

func (p *ParExpr) ToLogic() logic.Formula {
	out := p.Left.ToLogic()
	for _, r := range p.Rest {
		out = logic.NewPar(out, r.ToLogic())
	}
	return out
}

func (t *TensorExpr) ToLogic() logic.Formula {
	out := t.Left.ToLogic()
	for _, r := range t.Rest {
		out = logic.NewTensor(out, r.ToLogic())
	}
	return out
}

func (p *PlusExpr) ToLogic() logic.Formula {
	out := p.Left.ToLogic()
	for _, r := range p.Rest {
		out = logic.NewPlus(out, r.ToLogic())
	}
	return out
}

func (w *WithExpr) ToLogic() logic.Formula {
	out := w.Left.ToLogic()
	for _, r := range w.Rest {
		out = logic.NewWith(out, r.ToLogic())
	}
	return out
}

func (u *UnaryExpr) ToLogic() logic.Formula {
	switch {
	case u.OfCourse != nil:
		return logic.NewOfCourse(u.OfCourse.ToLogic())
	case u.WhyNot != nil:
		return logic.NewWhyNot(u.WhyNot.ToLogic())
	}
	return u.Base.ToLogic()
}

func (b *BaseExpr) ToLogic() logic.Formula {
	switch {
	case b.One:
		return logic.One
	case b.Zero:
		return logic.Zero
	case b.Top:
		return logic.Top
	case b.Bottom:
		return logic.Bottom
	case b.Atom != nil:
		if b.Atom.Negated {
			return logic.NewNegAtom(b.Atom.Name)
		}
		return logic.NewAtom(b.Atom.Name)
	}
	return b.Paren.ToLogic()
}

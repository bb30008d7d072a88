package lam

// Step performs at most one reduction, at the first reducible position
// found by a fixed traversal: the head redex is tried first, then
// subterms left to right. Returns nil iff the term is normal.
//
// Terms are linear, so no redex is ever duplicated except by Copy,
// which fires only on an already-normal Promote; reduction is strongly
// normalizing.
func Step(term Term) Term {
	switch t := term.(type) {
	// Beta: (λx. e) v → e[v/x]
	case *App:
		if abs, ok := t.Fn.(*Abs); ok {
			return abs.Body.substitute(abs.Param, t.Arg)
		}
		if fn := Step(t.Fn); fn != nil {
			return &App{Fn: fn, Arg: t.Arg}
		}
		if arg := Step(t.Arg); arg != nil {
			return &App{Fn: t.Fn, Arg: arg}
		}
		return nil

	// let (x, y) = (a, b) in e → e[a/x][b/y]
	case *LetPair:
		if pair, ok := t.Pair.(*Pair); ok {
			return t.Body.substitute(t.X, pair.A).substitute(t.Y, pair.B)
		}
		if pair := Step(t.Pair); pair != nil {
			return &LetPair{X: t.X, Y: t.Y, Pair: pair, Body: t.Body}
		}
		if body := Step(t.Body); body != nil {
			return &LetPair{X: t.X, Y: t.Y, Pair: t.Pair, Body: body}
		}
		return nil

	// case inl v of { inl x => l | inr y => r } → l[v/x], dually for inr
	case *Case:
		switch scrut := t.Scrutinee.(type) {
		case *Inl:
			return t.Left.substitute(t.X, scrut.Value)
		case *Inr:
			return t.Right.substitute(t.Y, scrut.Value)
		}
		if scrut := Step(t.Scrutinee); scrut != nil {
			return &Case{Scrutinee: scrut, X: t.X, Left: t.Left, Y: t.Y, Right: t.Right}
		}
		return nil

	// fst (a, b) → a
	case *Fst:
		if pair, ok := t.Pair.(*Pair); ok {
			return pair.A
		}
		if pair := Step(t.Pair); pair != nil {
			return &Fst{Pair: pair}
		}
		return nil

	// snd (a, b) → b
	case *Snd:
		if pair, ok := t.Pair.(*Pair); ok {
			return pair.B
		}
		if pair := Step(t.Pair); pair != nil {
			return &Snd{Pair: pair}
		}
		return nil

	// derelict !v → v
	case *Derelict:
		if promote, ok := t.Value.(*Promote); ok {
			return promote.Value
		}
		if value := Step(t.Value); value != nil {
			return &Derelict{Value: value}
		}
		return nil

	// copy !v as (x, y) in e → e[!v/x][!v/y]
	case *Copy:
		if promote, ok := t.Src.(*Promote); ok {
			return t.Body.substitute(t.X, promote).substitute(t.Y, promote)
		}
		if src := Step(t.Src); src != nil {
			return &Copy{Src: src, X: t.X, Y: t.Y, Body: t.Body}
		}
		return nil

	// discard !v in e → e
	case *Discard:
		if _, ok := t.Value.(*Promote); ok {
			return t.Body
		}
		if value := Step(t.Value); value != nil {
			return &Discard{Value: value, Body: t.Body}
		}
		if body := Step(t.Body); body != nil {
			return &Discard{Value: t.Value, Body: body}
		}
		return nil

	// Congruence cases: reduce inside the first reducible subterm.
	case *Abs:
		if body := Step(t.Body); body != nil {
			return &Abs{Param: t.Param, Body: body}
		}
		return nil

	case *Pair:
		if a := Step(t.A); a != nil {
			return &Pair{A: a, B: t.B}
		}
		if b := Step(t.B); b != nil {
			return &Pair{A: t.A, B: b}
		}
		return nil

	case *Inl:
		if value := Step(t.Value); value != nil {
			return &Inl{Value: value}
		}
		return nil

	case *Inr:
		if value := Step(t.Value); value != nil {
			return &Inr{Value: value}
		}
		return nil

	case *Promote:
		if value := Step(t.Value); value != nil {
			return &Promote{Value: value}
		}
		return nil
	}

	// Var, Unit, Trivial, and Abort are normal.
	return nil
}

// Normalize reduces a term to its normal form.
func Normalize(term Term) Term {
	current := term
	for {
		next := Step(current)
		if next == nil {
			return current
		}
		current = next
	}
}

// NormalizeBounded reduces for at most maxSteps steps. Use this for
// terms that did not come out of this package's extractor.
func NormalizeBounded(term Term, maxSteps int) Term {
	current := term
	for i := 0; i < maxSteps; i++ {
		next := Step(current)
		if next == nil {
			break
		}
		current = next
	}
	return current
}

// IsNormal reports whether no reduction applies.
func IsNormal(term Term) bool {
	return Step(term) == nil
}

package lam

import (
	pp "github.com/ibrahimcesar/lolli/pkg/prettyprint"
)

// Term is a linear lambda calculus term, the computational content of
// a linear logic proof. Terms form a closed union: the substitute
// method is unexported so all variants live in this package.
type Term interface {
	// substitute replaces free occurrences of name with val. Bound
	// names are globally fresh by construction, so no capture
	// avoidance is needed.
	substitute(name string, val Term) Term
	Equal(Term) bool
	Format() pp.Doc
}

// Pretty renders a term on one line.
func Pretty(t Term) string {
	return t.Format().String()
}

// Var

type Var struct {
	Name string
}

var _ Term = &Var{}

func NewVar(name string) *Var {
	return &Var{Name: name}
}

func (v *Var) substitute(name string, val Term) Term {
	if v.Name == name {
		return val
	}
	return v
}

func (v *Var) Equal(other Term) bool {
	o, ok := other.(*Var)
	return ok && o.Name == v.Name
}

func (v *Var) Format() pp.Doc {
	return pp.Text(v.Name)
}

// Abs (λx. body)

type Abs struct {
	Param string
	Body  Term
}

var _ Term = &Abs{}

func NewAbs(param string, body Term) *Abs {
	return &Abs{Param: param, Body: body}
}

func (a *Abs) substitute(name string, val Term) Term {
	if a.Param == name {
		return a
	}
	return &Abs{Param: a.Param, Body: a.Body.substitute(name, val)}
}

func (a *Abs) Equal(other Term) bool {
	o, ok := other.(*Abs)
	return ok && o.Param == a.Param && a.Body.Equal(o.Body)
}

func (a *Abs) Format() pp.Doc {
	return pp.Seq([]pp.Doc{
		pp.Textf("λ%s. ", a.Param),
		a.Body.Format(),
	})
}

// App (f arg)

type App struct {
	Fn  Term
	Arg Term
}

var _ Term = &App{}

func NewApp(fn, arg Term) *App {
	return &App{Fn: fn, Arg: arg}
}

func (a *App) substitute(name string, val Term) Term {
	return &App{
		Fn:  a.Fn.substitute(name, val),
		Arg: a.Arg.substitute(name, val),
	}
}

func (a *App) Equal(other Term) bool {
	o, ok := other.(*App)
	return ok && a.Fn.Equal(o.Fn) && a.Arg.Equal(o.Arg)
}

func (a *App) Format() pp.Doc {
	return pp.Seq([]pp.Doc{
		pp.Text("("),
		a.Fn.Format(),
		pp.Text(" "),
		a.Arg.Format(),
		pp.Text(")"),
	})
}

// Units

type unitTerm struct{}
type trivialTerm struct{}

// Unit is (), the inhabitant of 1.
var Unit Term = &unitTerm{}

// Trivial is ⟨⟩, the inhabitant of ⊤.
var Trivial Term = &trivialTerm{}

func (u *unitTerm) substitute(string, Term) Term { return u }
func (*unitTerm) Equal(other Term) bool {
	_, ok := other.(*unitTerm)
	return ok
}
func (*unitTerm) Format() pp.Doc { return pp.Text("()") }

func (t *trivialTerm) substitute(string, Term) Term { return t }
func (*trivialTerm) Equal(other Term) bool {
	_, ok := other.(*trivialTerm)
	return ok
}
func (*trivialTerm) Format() pp.Doc { return pp.Text("⟨⟩") }

// Pair (a, b) — eager tensor pair, also used as the lazy with-pair
// projected by Fst/Snd.

type Pair struct {
	A, B Term
}

var _ Term = &Pair{}

func NewPair(a, b Term) *Pair {
	return &Pair{A: a, B: b}
}

func (p *Pair) substitute(name string, val Term) Term {
	return &Pair{
		A: p.A.substitute(name, val),
		B: p.B.substitute(name, val),
	}
}

func (p *Pair) Equal(other Term) bool {
	o, ok := other.(*Pair)
	return ok && p.A.Equal(o.A) && p.B.Equal(o.B)
}

func (p *Pair) Format() pp.Doc {
	return pp.Seq([]pp.Doc{
		pp.Text("("),
		p.A.Format(),
		pp.Text(", "),
		p.B.Format(),
		pp.Text(")"),
	})
}

// LetPair (let (x, y) = pair in body)

type LetPair struct {
	X, Y string
	Pair Term
	Body Term
}

var _ Term = &LetPair{}

func NewLetPair(x, y string, pair, body Term) *LetPair {
	return &LetPair{X: x, Y: y, Pair: pair, Body: body}
}

func (l *LetPair) substitute(name string, val Term) Term {
	body := l.Body
	if name != l.X && name != l.Y {
		body = body.substitute(name, val)
	}
	return &LetPair{
		X:    l.X,
		Y:    l.Y,
		Pair: l.Pair.substitute(name, val),
		Body: body,
	}
}

func (l *LetPair) Equal(other Term) bool {
	o, ok := other.(*LetPair)
	return ok && l.X == o.X && l.Y == o.Y &&
		l.Pair.Equal(o.Pair) && l.Body.Equal(o.Body)
}

func (l *LetPair) Format() pp.Doc {
	return pp.Seq([]pp.Doc{
		pp.Textf("let (%s, %s) = ", l.X, l.Y),
		l.Pair.Format(),
		pp.Text(" in "),
		l.Body.Format(),
	})
}

// Inl / Inr

type Inl struct {
	Value Term
}

var _ Term = &Inl{}

func NewInl(value Term) *Inl {
	return &Inl{Value: value}
}

func (i *Inl) substitute(name string, val Term) Term {
	return &Inl{Value: i.Value.substitute(name, val)}
}

func (i *Inl) Equal(other Term) bool {
	o, ok := other.(*Inl)
	return ok && i.Value.Equal(o.Value)
}

func (i *Inl) Format() pp.Doc {
	return pp.Seq([]pp.Doc{pp.Text("inl "), i.Value.Format()})
}

type Inr struct {
	Value Term
}

var _ Term = &Inr{}

func NewInr(value Term) *Inr {
	return &Inr{Value: value}
}

func (i *Inr) substitute(name string, val Term) Term {
	return &Inr{Value: i.Value.substitute(name, val)}
}

func (i *Inr) Equal(other Term) bool {
	o, ok := other.(*Inr)
	return ok && i.Value.Equal(o.Value)
}

func (i *Inr) Format() pp.Doc {
	return pp.Seq([]pp.Doc{pp.Text("inr "), i.Value.Format()})
}

// Case (case s of { inl x => left | inr y => right })

type Case struct {
	Scrutinee Term
	X         string
	Left      Term
	Y         string
	Right     Term
}

var _ Term = &Case{}

func NewCase(scrutinee Term, x string, left Term, y string, right Term) *Case {
	return &Case{Scrutinee: scrutinee, X: x, Left: left, Y: y, Right: right}
}

func (c *Case) substitute(name string, val Term) Term {
	left := c.Left
	if name != c.X {
		left = left.substitute(name, val)
	}
	right := c.Right
	if name != c.Y {
		right = right.substitute(name, val)
	}
	return &Case{
		Scrutinee: c.Scrutinee.substitute(name, val),
		X:         c.X,
		Left:      left,
		Y:         c.Y,
		Right:     right,
	}
}

func (c *Case) Equal(other Term) bool {
	o, ok := other.(*Case)
	return ok && c.X == o.X && c.Y == o.Y &&
		c.Scrutinee.Equal(o.Scrutinee) &&
		c.Left.Equal(o.Left) && c.Right.Equal(o.Right)
}

func (c *Case) Format() pp.Doc {
	return pp.Seq([]pp.Doc{
		pp.Text("case "),
		c.Scrutinee.Format(),
		pp.Textf(" of { inl %s => ", c.X),
		c.Left.Format(),
		pp.Textf(" | inr %s => ", c.Y),
		c.Right.Format(),
		pp.Text(" }"),
	})
}

// Promote (!e)

type Promote struct {
	Value Term
}

var _ Term = &Promote{}

func NewPromote(value Term) *Promote {
	return &Promote{Value: value}
}

func (p *Promote) substitute(name string, val Term) Term {
	return &Promote{Value: p.Value.substitute(name, val)}
}

func (p *Promote) Equal(other Term) bool {
	o, ok := other.(*Promote)
	return ok && p.Value.Equal(o.Value)
}

func (p *Promote) Format() pp.Doc {
	return pp.Seq([]pp.Doc{pp.Text("!"), p.Value.Format()})
}

// Derelict

type Derelict struct {
	Value Term
}

var _ Term = &Derelict{}

func NewDerelict(value Term) *Derelict {
	return &Derelict{Value: value}
}

func (d *Derelict) substitute(name string, val Term) Term {
	return &Derelict{Value: d.Value.substitute(name, val)}
}

func (d *Derelict) Equal(other Term) bool {
	o, ok := other.(*Derelict)
	return ok && d.Value.Equal(o.Value)
}

func (d *Derelict) Format() pp.Doc {
	return pp.Seq([]pp.Doc{pp.Text("derelict "), d.Value.Format()})
}

// Copy (copy src as (x, y) in body)

type Copy struct {
	Src  Term
	X, Y string
	Body Term
}

var _ Term = &Copy{}

func NewCopy(src Term, x, y string, body Term) *Copy {
	return &Copy{Src: src, X: x, Y: y, Body: body}
}

func (c *Copy) substitute(name string, val Term) Term {
	body := c.Body
	if name != c.X && name != c.Y {
		body = body.substitute(name, val)
	}
	return &Copy{
		Src:  c.Src.substitute(name, val),
		X:    c.X,
		Y:    c.Y,
		Body: body,
	}
}

func (c *Copy) Equal(other Term) bool {
	o, ok := other.(*Copy)
	return ok && c.X == o.X && c.Y == o.Y &&
		c.Src.Equal(o.Src) && c.Body.Equal(o.Body)
}

func (c *Copy) Format() pp.Doc {
	return pp.Seq([]pp.Doc{
		pp.Text("copy "),
		c.Src.Format(),
		pp.Textf(" as (%s, %s) in ", c.X, c.Y),
		c.Body.Format(),
	})
}

// Discard (discard e in body)

type Discard struct {
	Value Term
	Body  Term
}

var _ Term = &Discard{}

func NewDiscard(value, body Term) *Discard {
	return &Discard{Value: value, Body: body}
}

func (d *Discard) substitute(name string, val Term) Term {
	return &Discard{
		Value: d.Value.substitute(name, val),
		Body:  d.Body.substitute(name, val),
	}
}

func (d *Discard) Equal(other Term) bool {
	o, ok := other.(*Discard)
	return ok && d.Value.Equal(o.Value) && d.Body.Equal(o.Body)
}

func (d *Discard) Format() pp.Doc {
	return pp.Seq([]pp.Doc{
		pp.Text("discard "),
		d.Value.Format(),
		pp.Text(" in "),
		d.Body.Format(),
	})
}

// Abort (ex falso, from 0)

type Abort struct {
	Value Term
}

var _ Term = &Abort{}

func NewAbort(value Term) *Abort {
	return &Abort{Value: value}
}

func (a *Abort) substitute(name string, val Term) Term {
	return &Abort{Value: a.Value.substitute(name, val)}
}

func (a *Abort) Equal(other Term) bool {
	o, ok := other.(*Abort)
	return ok && a.Value.Equal(o.Value)
}

func (a *Abort) Format() pp.Doc {
	return pp.Seq([]pp.Doc{pp.Text("abort "), a.Value.Format()})
}

// Fst / Snd — projections for the lazy with-pair.

type Fst struct {
	Pair Term
}

var _ Term = &Fst{}

func NewFst(pair Term) *Fst {
	return &Fst{Pair: pair}
}

func (f *Fst) substitute(name string, val Term) Term {
	return &Fst{Pair: f.Pair.substitute(name, val)}
}

func (f *Fst) Equal(other Term) bool {
	o, ok := other.(*Fst)
	return ok && f.Pair.Equal(o.Pair)
}

func (f *Fst) Format() pp.Doc {
	return pp.Seq([]pp.Doc{pp.Text("fst "), f.Pair.Format()})
}

type Snd struct {
	Pair Term
}

var _ Term = &Snd{}

func NewSnd(pair Term) *Snd {
	return &Snd{Pair: pair}
}

func (s *Snd) substitute(name string, val Term) Term {
	return &Snd{Pair: s.Pair.substitute(name, val)}
}

func (s *Snd) Equal(other Term) bool {
	o, ok := other.(*Snd)
	return ok && s.Pair.Equal(o.Pair)
}

func (s *Snd) Format() pp.Doc {
	return pp.Seq([]pp.Doc{pp.Text("snd "), s.Pair.Format()})
}

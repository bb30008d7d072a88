package logic

import "fmt"

// Formula is a linear logic formula. Formulas are immutable trees;
// all operations return new formulas.
type Formula interface {
	// Negate returns the linear negation. Negation is involutive and
	// follows the De Morgan table: ⊗↔⅋, &↔⊕, 1↔⊥, ⊤↔0, !↔?.
	Negate() Formula
	// Desugar expands derived connectives (A ⊸ B becomes A⊥ ⅋ B).
	Desugar() Formula
	// Positive reports the polarity: ⊗, 1, ⊕, 0, !, and atoms are
	// positive; everything else is negative.
	Positive() bool
	// Equal is structural equality.
	Equal(Formula) bool
	// Size is the number of connectives and atoms in the formula.
	Size() int

	Pretty() string
	PrettyASCII() string
	PrettyLatex() string
}

// Negative reports whether f decomposes invertibly.
func Negative(f Formula) bool {
	return !f.Positive()
}

// Atom

type Atom struct {
	Name string
}

var _ Formula = &Atom{}

func NewAtom(name string) *Atom {
	return &Atom{Name: name}
}

func (a *Atom) Negate() Formula  { return &NegAtom{Name: a.Name} }
func (a *Atom) Desugar() Formula { return a }
func (a *Atom) Positive() bool   { return true }
func (a *Atom) Size() int        { return 1 }

func (a *Atom) Equal(other Formula) bool {
	o, ok := other.(*Atom)
	return ok && o.Name == a.Name
}

func (a *Atom) Pretty() string      { return a.Name }
func (a *Atom) PrettyASCII() string { return a.Name }
func (a *Atom) PrettyLatex() string { return a.Name }

// NegAtom

type NegAtom struct {
	Name string
}

var _ Formula = &NegAtom{}

func NewNegAtom(name string) *NegAtom {
	return &NegAtom{Name: name}
}

func (a *NegAtom) Negate() Formula  { return &Atom{Name: a.Name} }
func (a *NegAtom) Desugar() Formula { return a }
func (a *NegAtom) Positive() bool   { return false }
func (a *NegAtom) Size() int        { return 1 }

func (a *NegAtom) Equal(other Formula) bool {
	o, ok := other.(*NegAtom)
	return ok && o.Name == a.Name
}

func (a *NegAtom) Pretty() string      { return a.Name + "⊥" }
func (a *NegAtom) PrettyASCII() string { return a.Name + "^" }
func (a *NegAtom) PrettyLatex() string { return fmt.Sprintf("%s^{\\bot}", a.Name) }

// Tensor (A ⊗ B)

type Tensor struct {
	A, B Formula
}

var _ Formula = &Tensor{}

func NewTensor(a, b Formula) *Tensor {
	return &Tensor{A: a, B: b}
}

func (t *Tensor) Negate() Formula  { return &Par{A: t.A.Negate(), B: t.B.Negate()} }
func (t *Tensor) Desugar() Formula { return &Tensor{A: t.A.Desugar(), B: t.B.Desugar()} }
func (t *Tensor) Positive() bool   { return true }
func (t *Tensor) Size() int        { return 1 + t.A.Size() + t.B.Size() }

func (t *Tensor) Equal(other Formula) bool {
	o, ok := other.(*Tensor)
	return ok && t.A.Equal(o.A) && t.B.Equal(o.B)
}

func (t *Tensor) Pretty() string {
	return fmt.Sprintf("(%s ⊗ %s)", t.A.Pretty(), t.B.Pretty())
}

func (t *Tensor) PrettyASCII() string {
	return fmt.Sprintf("(%s * %s)", t.A.PrettyASCII(), t.B.PrettyASCII())
}

func (t *Tensor) PrettyLatex() string {
	return fmt.Sprintf("(%s \\otimes %s)", t.A.PrettyLatex(), t.B.PrettyLatex())
}

// Par (A ⅋ B)

type Par struct {
	A, B Formula
}

var _ Formula = &Par{}

func NewPar(a, b Formula) *Par {
	return &Par{A: a, B: b}
}

func (p *Par) Negate() Formula  { return &Tensor{A: p.A.Negate(), B: p.B.Negate()} }
func (p *Par) Desugar() Formula { return &Par{A: p.A.Desugar(), B: p.B.Desugar()} }
func (p *Par) Positive() bool   { return false }
func (p *Par) Size() int        { return 1 + p.A.Size() + p.B.Size() }

func (p *Par) Equal(other Formula) bool {
	o, ok := other.(*Par)
	return ok && p.A.Equal(o.A) && p.B.Equal(o.B)
}

func (p *Par) Pretty() string {
	return fmt.Sprintf("(%s ⅋ %s)", p.A.Pretty(), p.B.Pretty())
}

func (p *Par) PrettyASCII() string {
	return fmt.Sprintf("(%s | %s)", p.A.PrettyASCII(), p.B.PrettyASCII())
}

func (p *Par) PrettyLatex() string {
	return fmt.Sprintf("(%s \\parr %s)", p.A.PrettyLatex(), p.B.PrettyLatex())
}

// With (A & B)

type With struct {
	A, B Formula
}

var _ Formula = &With{}

func NewWith(a, b Formula) *With {
	return &With{A: a, B: b}
}

func (w *With) Negate() Formula  { return &Plus{A: w.A.Negate(), B: w.B.Negate()} }
func (w *With) Desugar() Formula { return &With{A: w.A.Desugar(), B: w.B.Desugar()} }
func (w *With) Positive() bool   { return false }
func (w *With) Size() int        { return 1 + w.A.Size() + w.B.Size() }

func (w *With) Equal(other Formula) bool {
	o, ok := other.(*With)
	return ok && w.A.Equal(o.A) && w.B.Equal(o.B)
}

func (w *With) Pretty() string {
	return fmt.Sprintf("(%s & %s)", w.A.Pretty(), w.B.Pretty())
}

func (w *With) PrettyASCII() string {
	return fmt.Sprintf("(%s & %s)", w.A.PrettyASCII(), w.B.PrettyASCII())
}

func (w *With) PrettyLatex() string {
	return fmt.Sprintf("(%s \\with %s)", w.A.PrettyLatex(), w.B.PrettyLatex())
}

// Plus (A ⊕ B)

type Plus struct {
	A, B Formula
}

var _ Formula = &Plus{}

func NewPlus(a, b Formula) *Plus {
	return &Plus{A: a, B: b}
}

func (p *Plus) Negate() Formula  { return &With{A: p.A.Negate(), B: p.B.Negate()} }
func (p *Plus) Desugar() Formula { return &Plus{A: p.A.Desugar(), B: p.B.Desugar()} }
func (p *Plus) Positive() bool   { return true }
func (p *Plus) Size() int        { return 1 + p.A.Size() + p.B.Size() }

func (p *Plus) Equal(other Formula) bool {
	o, ok := other.(*Plus)
	return ok && p.A.Equal(o.A) && p.B.Equal(o.B)
}

func (p *Plus) Pretty() string {
	return fmt.Sprintf("(%s ⊕ %s)", p.A.Pretty(), p.B.Pretty())
}

func (p *Plus) PrettyASCII() string {
	return fmt.Sprintf("(%s + %s)", p.A.PrettyASCII(), p.B.PrettyASCII())
}

func (p *Plus) PrettyLatex() string {
	return fmt.Sprintf("(%s \\oplus %s)", p.A.PrettyLatex(), p.B.PrettyLatex())
}

// Units

type oneUnit struct{}
type bottomUnit struct{}
type topUnit struct{}
type zeroUnit struct{}

// One is the multiplicative unit (1).
var One Formula = &oneUnit{}

// Bottom is the multiplicative false (⊥).
var Bottom Formula = &bottomUnit{}

// Top is the additive truth (⊤).
var Top Formula = &topUnit{}

// Zero is the additive false (0).
var Zero Formula = &zeroUnit{}

func (*oneUnit) Negate() Formula  { return Bottom }
func (*oneUnit) Desugar() Formula { return One }
func (*oneUnit) Positive() bool   { return true }
func (*oneUnit) Size() int        { return 1 }
func (*oneUnit) Equal(other Formula) bool {
	_, ok := other.(*oneUnit)
	return ok
}
func (*oneUnit) Pretty() string      { return "1" }
func (*oneUnit) PrettyASCII() string { return "1" }
func (*oneUnit) PrettyLatex() string { return "\\mathbf{1}" }

func (*bottomUnit) Negate() Formula  { return One }
func (*bottomUnit) Desugar() Formula { return Bottom }
func (*bottomUnit) Positive() bool   { return false }
func (*bottomUnit) Size() int        { return 1 }
func (*bottomUnit) Equal(other Formula) bool {
	_, ok := other.(*bottomUnit)
	return ok
}
func (*bottomUnit) Pretty() string      { return "⊥" }
func (*bottomUnit) PrettyASCII() string { return "bot" }
func (*bottomUnit) PrettyLatex() string { return "\\bot" }

func (*topUnit) Negate() Formula  { return Zero }
func (*topUnit) Desugar() Formula { return Top }
func (*topUnit) Positive() bool   { return false }
func (*topUnit) Size() int        { return 1 }
func (*topUnit) Equal(other Formula) bool {
	_, ok := other.(*topUnit)
	return ok
}
func (*topUnit) Pretty() string      { return "⊤" }
func (*topUnit) PrettyASCII() string { return "top" }
func (*topUnit) PrettyLatex() string { return "\\top" }

func (*zeroUnit) Negate() Formula  { return Top }
func (*zeroUnit) Desugar() Formula { return Zero }
func (*zeroUnit) Positive() bool   { return true }
func (*zeroUnit) Size() int        { return 1 }
func (*zeroUnit) Equal(other Formula) bool {
	_, ok := other.(*zeroUnit)
	return ok
}
func (*zeroUnit) Pretty() string      { return "0" }
func (*zeroUnit) PrettyASCII() string { return "0" }
func (*zeroUnit) PrettyLatex() string { return "\\mathbf{0}" }

// OfCourse (!A)

type OfCourse struct {
	A Formula
}

var _ Formula = &OfCourse{}

func NewOfCourse(a Formula) *OfCourse {
	return &OfCourse{A: a}
}

func (o *OfCourse) Negate() Formula  { return &WhyNot{A: o.A.Negate()} }
func (o *OfCourse) Desugar() Formula { return &OfCourse{A: o.A.Desugar()} }
func (o *OfCourse) Positive() bool   { return true }
func (o *OfCourse) Size() int        { return 1 + o.A.Size() }

func (o *OfCourse) Equal(other Formula) bool {
	oc, ok := other.(*OfCourse)
	return ok && o.A.Equal(oc.A)
}

func (o *OfCourse) Pretty() string      { return "!" + o.A.Pretty() }
func (o *OfCourse) PrettyASCII() string { return "!" + o.A.PrettyASCII() }
func (o *OfCourse) PrettyLatex() string { return "{!}" + o.A.PrettyLatex() }

// WhyNot (?A)

type WhyNot struct {
	A Formula
}

var _ Formula = &WhyNot{}

func NewWhyNot(a Formula) *WhyNot {
	return &WhyNot{A: a}
}

func (w *WhyNot) Negate() Formula  { return &OfCourse{A: w.A.Negate()} }
func (w *WhyNot) Desugar() Formula { return &WhyNot{A: w.A.Desugar()} }
func (w *WhyNot) Positive() bool   { return false }
func (w *WhyNot) Size() int        { return 1 + w.A.Size() }

func (w *WhyNot) Equal(other Formula) bool {
	o, ok := other.(*WhyNot)
	return ok && w.A.Equal(o.A)
}

func (w *WhyNot) Pretty() string      { return "?" + w.A.Pretty() }
func (w *WhyNot) PrettyASCII() string { return "?" + w.A.PrettyASCII() }
func (w *WhyNot) PrettyLatex() string { return "{?}" + w.A.PrettyLatex() }

// Lolli (A ⊸ B), sugar for A⊥ ⅋ B. Always desugared before search.

type Lolli struct {
	A, B Formula
}

var _ Formula = &Lolli{}

func NewLolli(a, b Formula) *Lolli {
	return &Lolli{A: a, B: b}
}

// (A ⊸ B)⊥ = (A⊥ ⅋ B)⊥ = A ⊗ B⊥
func (l *Lolli) Negate() Formula { return &Tensor{A: l.A, B: l.B.Negate()} }

func (l *Lolli) Desugar() Formula {
	return &Par{A: l.A.Negate().Desugar(), B: l.B.Desugar()}
}

func (l *Lolli) Positive() bool { return false }
func (l *Lolli) Size() int      { return 1 + l.A.Size() + l.B.Size() }

func (l *Lolli) Equal(other Formula) bool {
	o, ok := other.(*Lolli)
	return ok && l.A.Equal(o.A) && l.B.Equal(o.B)
}

func (l *Lolli) Pretty() string {
	return fmt.Sprintf("(%s ⊸ %s)", l.A.Pretty(), l.B.Pretty())
}

func (l *Lolli) PrettyASCII() string {
	return fmt.Sprintf("(%s -o %s)", l.A.PrettyASCII(), l.B.PrettyASCII())
}

func (l *Lolli) PrettyLatex() string {
	return fmt.Sprintf("(%s \\multimap %s)", l.A.PrettyLatex(), l.B.PrettyLatex())
}

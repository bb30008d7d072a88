// Package viz renders proof trees for terminals (ASCII or Unicode),
// LaTeX (bussproofs), and Graphviz DOT.
package viz

import (
	"strings"

	"github.com/ibrahimcesar/lolli/pkg/logic"
)

// TreeRenderer draws a proof as stacked inference lines: premises
// above, a horizontal bar with the rule label, conclusion below.
type TreeRenderer struct {
	// Unicode selects ⊢/─ output; otherwise everything is ASCII.
	Unicode bool
}

func NewTreeRenderer(unicode bool) *TreeRenderer {
	return &TreeRenderer{Unicode: unicode}
}

func (r *TreeRenderer) Render(proof *logic.Proof) string {
	return strings.Join(r.block(proof).lines, "\n")
}

// block is a rectangle of text with every line padded to width.
type block struct {
	lines []string
	width int
}

func (r *TreeRenderer) block(proof *logic.Proof) block {
	conclusion := r.sequent(proof.Conclusion)
	label := ruleLabel(proof.Rule, r.Unicode)

	if len(proof.Premises) == 0 {
		bar := r.bar(len(conclusion)) + " " + label
		return newBlock(bar, conclusion)
	}

	premises := make([]block, len(proof.Premises))
	for i, p := range proof.Premises {
		premises[i] = r.block(p)
	}
	above := beside(premises)

	width := above.width
	if len(conclusion) > width {
		width = len(conclusion)
	}
	above = above.center(width)

	lines := append([]string{}, above.lines...)
	lines = append(lines, r.bar(width)+" "+label)
	lines = append(lines, centerLine(conclusion, width))
	return block{lines: lines, width: width}
}

func (r *TreeRenderer) sequent(seq logic.Sequent) string {
	if r.Unicode {
		return seq.Pretty()
	}
	return seq.PrettyASCII()
}

func (r *TreeRenderer) bar(width int) string {
	if r.Unicode {
		return strings.Repeat("─", width)
	}
	return strings.Repeat("-", width)
}

func newBlock(lines ...string) block {
	width := 0
	for _, l := range lines {
		if n := lineWidth(l); n > width {
			width = n
		}
	}
	padded := make([]string, len(lines))
	for i, l := range lines {
		padded[i] = l + strings.Repeat(" ", width-lineWidth(l))
	}
	return block{lines: padded, width: width}
}

// beside joins sibling premise blocks horizontally, aligned at the
// bottom and separated by a gutter.
func beside(blocks []block) block {
	const gutter = "   "

	height := 0
	for _, b := range blocks {
		if len(b.lines) > height {
			height = len(b.lines)
		}
	}

	var lines []string
	for row := 0; row < height; row++ {
		var parts []string
		for _, b := range blocks {
			offset := height - len(b.lines)
			if row < offset {
				parts = append(parts, strings.Repeat(" ", b.width))
			} else {
				parts = append(parts, b.lines[row-offset])
			}
		}
		lines = append(lines, strings.Join(parts, gutter))
	}

	width := -len(gutter)
	for _, b := range blocks {
		width += b.width + len(gutter)
	}
	return block{lines: lines, width: width}
}

func (b block) center(width int) block {
	if width <= b.width {
		return b
	}
	lines := make([]string, len(b.lines))
	for i, l := range b.lines {
		lines[i] = centerLine(l, width)
	}
	return block{lines: lines, width: width}
}

func centerLine(line string, width int) string {
	pad := width - lineWidth(line)
	if pad <= 0 {
		return line
	}
	left := pad / 2
	return strings.Repeat(" ", left) + line + strings.Repeat(" ", pad-left)
}

// lineWidth counts runes, not bytes; sequents routinely contain
// multi-byte connectives.
func lineWidth(line string) int {
	return len([]rune(line))
}

func ruleLabel(rule logic.Rule, unicode bool) string {
	if unicode {
		switch rule.Kind {
		case logic.Axiom:
			return "ax"
		case logic.OneIntro:
			return "1"
		case logic.TopIntro:
			return "⊤"
		case logic.BottomIntro:
			return "⊥"
		case logic.TensorIntro:
			return "⊗"
		case logic.ParIntro:
			return "⅋"
		case logic.WithIntro:
			return "&"
		case logic.PlusIntroLeft:
			return "⊕₁"
		case logic.PlusIntroRight:
			return "⊕₂"
		case logic.OfCourseIntro:
			return "!"
		case logic.WhyNotIntro:
			return "?"
		case logic.Weakening:
			return "?w"
		case logic.Contraction:
			return "?c"
		case logic.Dereliction:
			return "?d"
		case logic.Cut:
			return "cut"
		}
	}
	switch rule.Kind {
	case logic.Axiom:
		return "ax"
	case logic.OneIntro:
		return "1"
	case logic.TopIntro:
		return "top"
	case logic.BottomIntro:
		return "bot"
	case logic.TensorIntro:
		return "*"
	case logic.ParIntro:
		return "|"
	case logic.WithIntro:
		return "&"
	case logic.PlusIntroLeft:
		return "+L"
	case logic.PlusIntroRight:
		return "+R"
	case logic.OfCourseIntro:
		return "!"
	case logic.WhyNotIntro:
		return "?"
	case logic.Weakening:
		return "?w"
	case logic.Contraction:
		return "?c"
	case logic.Dereliction:
		return "?d"
	case logic.Cut:
		return "cut"
	}
	return rule.Kind.String()
}

package prettyprint

import (
	"fmt"
	"strings"
)

// Based on http://homepages.inf.ed.ac.uk/wadler/papers/prettier/prettier.pdf
// TODO: alternative layout combinators (best, group, etc)

// Doc is a pretty-printable document.
type Doc interface {
	// String returns the pretty-printed representation.
	String() string
}

// Text

type text struct {
	str string
}

var _ Doc = &text{}

func Text(s string) Doc {
	return &text{str: s}
}

func Textf(format string, args ...interface{}) Doc {
	return Text(fmt.Sprintf(format, args...))
}

func (t *text) String() string {
	return t.str
}

// Nest

type nest struct {
	doc    Doc
	nestBy int
}

func Nest(by int, d Doc) Doc {
	return &nest{doc: d, nestBy: by}
}

func (n *nest) String() string {
	indent := strings.Repeat(" ", n.nestBy)
	lines := strings.Split(n.doc.String(), "\n")
	var buf strings.Builder
	for idx, line := range lines {
		if idx > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(indent)
		buf.WriteString(line)
	}
	return buf.String()
}

// Empty

type empty struct{}

var Empty Doc = &empty{}

func (*empty) String() string {
	return ""
}

// Seq

type concat struct {
	docs []Doc
}

func Seq(docs []Doc) Doc {
	return &concat{docs: docs}
}

func (c *concat) String() string {
	var buf strings.Builder
	for _, doc := range c.docs {
		buf.WriteString(doc.String())
	}
	return buf.String()
}

// Newline

type newline struct{}

var Newline Doc = &newline{}

func (*newline) String() string {
	return "\n"
}

// Combinators

func Join(docs []Doc, sep Doc) Doc {
	var out []Doc
	for idx, doc := range docs {
		if idx > 0 {
			out = append(out, sep)
		}
		out = append(out, doc)
	}
	return Seq(out)
}

var Comma = Text(",")

var CommaNewline = Seq([]Doc{Comma, Newline})

package parse

import (
	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
)

var (
	lolliLexer = lexer.Upper(
		lexer.Must(
			lexer.Regexp(`(\s+)`+
				`|(?P<Keyword>(?i)(PARSE|PROVE|DEPTH|EXTRACT|NORMALIZE|VIZ|TREE|LATEX|DOT|CODEGEN|SAVE|LOAD|LIST|TOP|BOT)\b)`+
				`|(?P<Ident>[a-zA-Z_][a-zA-Z0-9_]*)`+
				`|(?P<Number>\d+)`+
				`|(?P<Operators>\|-|-o|[*|+&^,()!?])`, // |- must come before |
			),
		),
		"Keyword",
	)
	statementParser = participle.MustBuild(&Statement{}, lolliLexer)
	sequentParser   = participle.MustBuild(&Sequent{}, lolliLexer)
	formulaParser   = participle.MustBuild(&Formula{}, lolliLexer)
)

type Statement struct {
	Parse   *ParseStmt   `parser:"  @@"`
	Prove   *ProveStmt   `parser:"| @@"`
	Extract *ExtractStmt `parser:"| @@"`
	Viz     *VizStmt     `parser:"| @@"`
	Codegen *CodegenStmt `parser:"| @@"`
	Save    *SaveStmt    `parser:"| @@"`
	Load    *LoadStmt    `parser:"| @@"`
	List    *ListStmt    `parser:"| @@"`
}

type ParseStmt struct {
	Formula *Formula `parser:"\"PARSE\" @@"`
}

type ProveStmt struct {
	Sequent *Sequent `parser:"\"PROVE\" @@"`
	Depth   *int     `parser:"[ \"DEPTH\" @Number ]"`
}

type ExtractStmt struct {
	Sequent   *Sequent `parser:"\"EXTRACT\" @@"`
	Normalize bool     `parser:"[ @\"NORMALIZE\" ]"`
	Depth     *int     `parser:"[ \"DEPTH\" @Number ]"`
}

type VizStmt struct {
	Tree    bool     `parser:"\"VIZ\" ( @\"TREE\""`
	Latex   bool     `parser:"| @\"LATEX\""`
	Dot     bool     `parser:"| @\"DOT\" )"`
	Sequent *Sequent `parser:"@@"`
	Depth   *int     `parser:"[ \"DEPTH\" @Number ]"`
}

type CodegenStmt struct {
	Sequent *Sequent `parser:"\"CODEGEN\" @@"`
	Depth   *int     `parser:"[ \"DEPTH\" @Number ]"`
}

type SaveStmt struct {
	Name    string   `parser:"\"SAVE\" @Ident"` // parser can't distinguish idents and keywords
	Sequent *Sequent `parser:"@@"`
	Depth   *int     `parser:"[ \"DEPTH\" @Number ]"`
}

type LoadStmt struct {
	Name string `parser:"\"LOAD\" @Ident"`
}

type ListStmt struct {
	List bool `parser:"@\"LIST\""`
}

// Sequent is `parser:"A, B |- C"` or `|- C`; the antecedent may be empty.
type Sequent struct {
	Antecedent []*Formula `parser:"[ @@ { \",\" @@ } ] \"|-\""`
	Succedent  []*Formula `parser:"@@ { \",\" @@ }"`
}

// Binary connectives are layered by precedence, loosest first:
// -o < | < * < + < & < unary. Lolli is right-associative, the others
// left-associative.
type Formula struct {
	Left  *ParExpr `parser:"@@"`
	Right *Formula `parser:"[ \"-o\" @@ ]"`
}

type ParExpr struct {
	Left *TensorExpr   `parser:"@@"`
	Rest []*TensorExpr `parser:"{ \"|\" @@ }"`
}

type TensorExpr struct {
	Left *PlusExpr   `parser:"@@"`
	Rest []*PlusExpr `parser:"{ \"*\" @@ }"`
}

type PlusExpr struct {
	Left *WithExpr   `parser:"@@"`
	Rest []*WithExpr `parser:"{ \"+\" @@ }"`
}

type WithExpr struct {
	Left *UnaryExpr   `parser:"@@"`
	Rest []*UnaryExpr `parser:"{ \"&\" @@ }"`
}

type UnaryExpr struct {
	OfCourse *UnaryExpr `parser:"  \"!\" @@"`
	WhyNot   *UnaryExpr `parser:"| \"?\" @@"`
	Base     *BaseExpr  `parser:"| @@"`
}

type BaseExpr struct {
	One    bool      `parser:"  @\"1\""`
	Zero   bool      `parser:"| @\"0\""`
	Top    bool      `parser:"| @\"TOP\""`
	Bottom bool      `parser:"| @\"BOT\""`
	Atom   *AtomExpr `parser:"| @@"`
	Paren  *Formula  `parser:"| \"(\" @@ \")\""`
}

type AtomExpr struct {
	Name    string `parser:"@Ident"`
	Negated bool   `parser:"[ @\"^\" ]"`
}

// ParseStatement parses a workbench statement.
func ParseStatement(input string) (*Statement, error) {
	result := &Statement{}
	err := statementParser.ParseString(input, result)
	return result, err
}

// ParseSequent parses a sequent.
func ParseSequent(input string) (*Sequent, error) {
	result := &Sequent{}
	err := sequentParser.ParseString(input, result)
	return result, err
}

// ParseFormula parses a bare formula.
func ParseFormula(input string) (*Formula, error) {
	result := &Formula{}
	err := formulaParser.ParseString(input, result)
	return result, err
}

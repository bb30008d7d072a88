package workbench

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ibrahimcesar/lolli/pkg/codegen"
	"github.com/ibrahimcesar/lolli/pkg/extract"
	"github.com/ibrahimcesar/lolli/pkg/lam"
	"github.com/ibrahimcesar/lolli/pkg/logic"
	"github.com/ibrahimcesar/lolli/pkg/parse"
	"github.com/ibrahimcesar/lolli/pkg/prove"
	"github.com/ibrahimcesar/lolli/pkg/viz"
)

func (wb *Workbench) validateStatement(stmt *parse.Statement) error {
	var depth *int
	switch {
	case stmt.Prove != nil:
		depth = stmt.Prove.Depth
	case stmt.Extract != nil:
		depth = stmt.Extract.Depth
	case stmt.Viz != nil:
		depth = stmt.Viz.Depth
	case stmt.Codegen != nil:
		depth = stmt.Codegen.Depth
	case stmt.Save != nil:
		depth = stmt.Save.Depth
	case stmt.Parse != nil, stmt.Load != nil, stmt.List != nil:
	default:
		return errors.New("unknown statement type")
	}
	if depth != nil && *depth <= 0 {
		return fmt.Errorf("depth must be positive; got %d", *depth)
	}
	return nil
}

func (wb *Workbench) run(parsed *parse.Statement, stmt *statement) error {
	switch {
	case parsed.Parse != nil:
		return wb.runParse(parsed.Parse, stmt)
	case parsed.Prove != nil:
		return wb.runProve(parsed.Prove, stmt)
	case parsed.Extract != nil:
		return wb.runExtract(parsed.Extract, stmt)
	case parsed.Viz != nil:
		return wb.runViz(parsed.Viz, stmt)
	case parsed.Codegen != nil:
		return wb.runCodegen(parsed.Codegen, stmt)
	case parsed.Save != nil:
		return wb.runSave(parsed.Save, stmt)
	case parsed.Load != nil:
		return wb.runLoad(parsed.Load, stmt)
	case parsed.List != nil:
		return wb.runList(stmt)
	}
	panic(fmt.Sprintf("unknown statement type %v", parsed))
}

func (wb *Workbench) runParse(ps *parse.ParseStmt, stmt *statement) error {
	f := ps.Formula.ToLogic()

	var sb strings.Builder
	fmt.Fprintf(&sb, "formula:   %s\n", f.Pretty())
	fmt.Fprintf(&sb, "ascii:     %s\n", f.PrettyASCII())
	fmt.Fprintf(&sb, "latex:     %s\n", f.PrettyLatex())
	fmt.Fprintf(&sb, "desugared: %s\n", f.Desugar().Pretty())
	fmt.Fprintf(&sb, "negation:  %s\n", f.Negate().Pretty())
	fmt.Fprintf(&sb, "polarity:  %s\n", polarity(f))
	stmt.writeResult(&StatementResult{Output: sb.String()})
	return nil
}

func polarity(f logic.Formula) string {
	if f.Positive() {
		return "positive"
	}
	return "negative"
}

func (wb *Workbench) runProve(ps *parse.ProveStmt, stmt *statement) error {
	seq := ps.Sequent.ToLogic()
	proof := wb.prove(seq, depthOf(ps.Depth))

	provable := proof != nil
	result := &StatementResult{Provable: &provable}
	if provable {
		result.Output = viz.NewTreeRenderer(true).Render(proof)
	} else {
		result.Output = fmt.Sprintf("no proof of %s within depth %d",
			seq.PrettyASCII(), depthOf(ps.Depth))
	}
	stmt.writeResult(result)
	return nil
}

func (wb *Workbench) runExtract(es *parse.ExtractStmt, stmt *statement) error {
	seq := es.Sequent.ToLogic()
	depth := depthOf(es.Depth)
	proof := wb.prove(seq, depth)
	if proof == nil {
		return &notProvable{Sequent: seq.PrettyASCII(), Depth: depth}
	}

	start := time.Now()
	term := extract.ExtractTerm(proof)
	if es.Normalize {
		term = lam.Normalize(term)
	}
	wb.metrics.extractLatency.Observe(float64(time.Since(start)))

	stmt.writeResult(&StatementResult{Output: lam.Pretty(term)})
	return nil
}

func (wb *Workbench) runViz(vs *parse.VizStmt, stmt *statement) error {
	seq := vs.Sequent.ToLogic()
	depth := depthOf(vs.Depth)
	proof := wb.prove(seq, depth)
	if proof == nil {
		return &notProvable{Sequent: seq.PrettyASCII(), Depth: depth}
	}

	var output string
	switch {
	case vs.Latex:
		output = viz.NewLatexRenderer().Render(proof)
	case vs.Dot:
		output = viz.NewDotRenderer().Render(proof)
	default:
		output = viz.NewTreeRenderer(true).Render(proof)
	}
	stmt.writeResult(&StatementResult{Output: output})
	return nil
}

func (wb *Workbench) runCodegen(cs *parse.CodegenStmt, stmt *statement) error {
	seq := cs.Sequent.ToLogic()
	depth := depthOf(cs.Depth)
	proof := wb.prove(seq, depth)
	if proof == nil {
		return &notProvable{Sequent: seq.PrettyASCII(), Depth: depth}
	}

	term := lam.Normalize(extract.ExtractTerm(proof))
	source := codegen.NewGoCodegen().GenerateModule("theorem", "Realize", seq, term)
	stmt.writeResult(&StatementResult{Output: source})
	return nil
}

func (wb *Workbench) runSave(ss *parse.SaveStmt, stmt *statement) error {
	seq := ss.Sequent.ToLogic()
	depth := depthOf(ss.Depth)
	proof := wb.prove(seq, depth)
	if proof == nil {
		return &notProvable{Sequent: seq.PrettyASCII(), Depth: depth}
	}

	start := time.Now()
	rec, err := wb.store.Save(ss.Name, seq.PrettyASCII(), depth)
	wb.metrics.saveLatency.Observe(float64(time.Since(start)))
	if err != nil {
		return err
	}

	stmt.writeAckMessage(fmt.Sprintf("saved %s (%s)", rec.Name, rec.ID))
	return nil
}

// runLoad re-proves and re-verifies the stored sequent rather than
// trusting anything on disk beyond its text.
func (wb *Workbench) runLoad(ls *parse.LoadStmt, stmt *statement) error {
	start := time.Now()
	rec, err := wb.store.Load(ls.Name)
	wb.metrics.loadLatency.Observe(float64(time.Since(start)))
	if err != nil {
		return err
	}

	parsedSeq, err := parse.ParseSequent(rec.Sequent)
	if err != nil {
		return &parseError{error: err}
	}
	seq := parsedSeq.ToLogic()

	proof := wb.prove(seq, rec.Depth)
	if proof == nil {
		return &notProvable{Sequent: rec.Sequent, Depth: rec.Depth}
	}
	if err := prove.Verify(proof); err != nil {
		return &verificationFailed{Name: rec.Name, Err: err}
	}

	stmt.writeResult(&StatementResult{
		Output: fmt.Sprintf("%s: %s\n%s",
			rec.Name, rec.Sequent, viz.NewTreeRenderer(true).Render(proof)),
	})
	return nil
}

func (wb *Workbench) runList(stmt *statement) error {
	records, err := wb.store.List()
	if err != nil {
		return err
	}

	var sb strings.Builder
	for _, rec := range records {
		fmt.Fprintf(&sb, "%s\t%s\t%s\n",
			rec.Name, rec.Sequent, rec.CreatedAt.Format(time.RFC3339))
	}
	stmt.writeResult(&StatementResult{Output: sb.String()})
	return nil
}

// prove runs a fresh Prover; search state is never shared between
// statements.
func (wb *Workbench) prove(seq logic.Sequent, depth int) *logic.Proof {
	start := time.Now()
	proof := prove.NewProver(depth).Prove(seq)
	wb.metrics.proveLatency.Observe(float64(time.Since(start)))
	return proof
}

func depthOf(depth *int) int {
	if depth == nil {
		return prove.DefaultMaxDepth
	}
	return *depth
}

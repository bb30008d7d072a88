package workbench

import (
	"testing"
)

func TestStatements(t *testing.T) {
	ref := runSimpleTestScript(t, []simpleTestStmt{
		{
			run:      "parse A -o B",
			contains: "desugared:",
		},
		{
			run:      "prove |- A | A^",
			contains: "⊢",
		},
		{
			run:      "prove |- A",
			contains: "no proof",
		},
		{
			run:      "extract |- A -o A normalize",
			contains: "a",
		},
		{
			run:      "viz latex |- 1",
			contains: "\\begin{prooftree}",
		},
		{
			run:      "viz dot |- 1",
			contains: "digraph proof",
		},
		{
			run:      "codegen |- A -o A",
			contains: "package theorem",
		},
	})
	defer ref.Close()
}

func TestSaveLoadList(t *testing.T) {
	ref := runSimpleTestScript(t, []simpleTestStmt{
		{
			exec: "save identity |- A -o A",
			ack:  "saved identity",
		},
		{
			exec:  "save identity |- A -o A",
			error: "theorem already exists: identity",
		},
		{
			exec:  "save bogus |- A",
			error: "not provable within depth 100: |- A",
		},
		{
			run:      "load identity",
			contains: "identity",
		},
		{
			exec:  "load nope",
			error: "no such theorem: nope",
		},
		{
			run:      "list",
			contains: "identity",
		},
	})
	defer ref.Close()
}

func TestProveDepthStatement(t *testing.T) {
	ref := runSimpleTestScript(t, []simpleTestStmt{
		{
			run:      "prove |- (A^ | A) | bot depth 2",
			contains: "no proof",
		},
		{
			run:      "prove |- (A^ | A) | bot depth 10",
			contains: "⊢",
		},
		{
			run:   "prove |- 1 depth 0",
			error: "validation error: depth must be positive; got 0",
		},
		{
			run:      "extract |- A -o A normalize depth 5",
			contains: "a",
		},
		{
			run:   "extract |- A depth 3",
			error: "not provable within depth 3: |- A",
		},
		{
			run:   "viz tree |- 1 depth 0",
			error: "validation error: depth must be positive; got 0",
		},
	})
	defer ref.Close()
}

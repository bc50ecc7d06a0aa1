package gocell

import (
	"testing"

	"github.com/reactivedocs/gocell/internal/testutil"
	"github.com/reactivedocs/gocell/topology"
)

func TestCyclicVariables(t *testing.T) {
	g := NewGraph()
	g.AddCell("a", Node{Definitions: NewSymbolSet("x"), References: NewSymbolSet("y")})
	g.AddCell("b", Node{Definitions: NewSymbolSet("y"), References: NewSymbolSet("x")})
	// Read inside the cycle but produced outside it: not cyclic.
	g.AddCell("outside", Node{Definitions: NewSymbolSet("z")})
	g.Node("a").References.Add("z")

	vars := cyclicVariables(g, []topology.Cell{"a", "b"})
	testutil.SliceEqual(t, []Symbol{"x", "y"}, vars.Sorted())
}

func TestCyclicVariablesCountSoftWrites(t *testing.T) {
	g := NewGraph()
	g.AddCell("a", Node{SoftDefinitions: NewSymbolSet("x"), References: NewSymbolSet("y")})
	g.AddCell("b", Node{Definitions: NewSymbolSet("y"), References: NewSymbolSet("x")})

	vars := cyclicVariables(g, []topology.Cell{"a", "b"})
	testutil.True(t, vars.Contains("x"), "soft writes participate in cyclic variables")
	testutil.True(t, vars.Contains("y"))
}

func TestCycleIsBenign(t *testing.T) {
	tests := []struct {
		name   string
		f, g   Node
		benign bool
	}{
		{
			name: "mutual unsignatured functions",
			f: Node{
				FuncDefsWithoutSignatures: NewSymbolSet("f"),
				References:                NewSymbolSet("g"),
			},
			g: Node{
				FuncDefsWithoutSignatures: NewSymbolSet("g"),
				References:                NewSymbolSet("f"),
			},
			benign: true,
		},
		{
			name:   "plain value cycle",
			f:      Node{Definitions: NewSymbolSet("f"), References: NewSymbolSet("g")},
			g:      Node{Definitions: NewSymbolSet("g"), References: NewSymbolSet("f")},
			benign: false,
		},
		{
			name: "signatured functions are never benign",
			f: Node{
				FuncDefsWithSignatures:    NewSymbolSet("f"),
				FuncDefsWithoutSignatures: NewSymbolSet(),
				References:                NewSymbolSet("g"),
				Definitions:               NewSymbolSet("f"),
			},
			g: Node{
				FuncDefsWithoutSignatures: NewSymbolSet("g"),
				References:                NewSymbolSet("f"),
			},
			benign: false,
		},
		{
			name: "one plain variable poisons a function cycle",
			f: Node{
				FuncDefsWithoutSignatures: NewSymbolSet("f"),
				Definitions:               NewSymbolSet("shared"),
				References:                NewSymbolSet("g"),
			},
			g: Node{
				FuncDefsWithoutSignatures: NewSymbolSet("g"),
				References:                NewSymbolSet("f", "shared"),
			},
			benign: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGraph()
			g.AddCell("f", tt.f)
			g.AddCell("g", tt.g)
			testutil.Equal(t, tt.benign, cycleIsBenign(g, []topology.Cell{"f", "g"}))
		})
	}
}

func TestCycleWithNoSharedVariablesIsBenign(t *testing.T) {
	// Degenerate candidate: no symbol is both read and written inside the
	// cycle, so there is nothing to forbid.
	g := NewGraph()
	g.AddCell("a", Node{References: NewSymbolSet("elsewhere")})
	g.AddCell("b", Node{References: NewSymbolSet("elsewhere")})

	testutil.True(t, cycleIsBenign(g, []topology.Cell{"a", "b"}))
}

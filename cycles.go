package gocell

import "github.com/reactivedocs/gocell/topology"

// cyclicVariables returns the symbols that hold a candidate cycle together:
// symbols referenced by some cell of the cycle and written (as a plain
// definition, a soft definition, or an unsignatured function definition) by
// some cell of the cycle.
func cyclicVariables(g *topology.Graph, cycle []topology.Cell) topology.SymbolSet {
	vars := topology.NewSymbolSet()
	for _, cell := range cycle {
		for sym := range g.Node(cell).References {
			if vars.Contains(sym) {
				continue
			}
			if writtenInCycle(g, cycle, sym) {
				vars.Add(sym)
			}
		}
	}
	return vars
}

func writtenInCycle(g *topology.Graph, cycle []topology.Cell, sym topology.Symbol) bool {
	for _, cell := range cycle {
		node := g.Node(cell)
		if node.Definitions.Contains(sym) ||
			node.SoftDefinitions.Contains(sym) ||
			node.FuncDefsWithoutSignatures.Contains(sym) {
			return true
		}
	}
	return false
}

// cycleIsBenign reports whether the cycle exists only because of mutually
// recursive function definitions without explicit signatures, the one legal
// cyclic pattern. A single cyclic variable defined as a plain value or a
// signatured function makes the whole cycle illegal.
func cycleIsBenign(g *topology.Graph, cycle []topology.Cell) bool {
	for sym := range cyclicVariables(g, cycle) {
		if !definedAsPlainFunctionInCycle(g, cycle, sym) {
			return false
		}
	}
	return true
}

func definedAsPlainFunctionInCycle(g *topology.Graph, cycle []topology.Cell, sym topology.Symbol) bool {
	for _, cell := range cycle {
		if g.Node(cell).FuncDefsWithoutSignatures.Contains(sym) {
			return true
		}
	}
	return false
}

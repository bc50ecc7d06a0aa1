package gocell

import "github.com/reactivedocs/gocell/topology"

// Type aliases for the public API - all types come from the topology
// subpackage.

// Cell is the stable identity of one unit of reactive code.
type Cell = topology.Cell

// Symbol is an interned name read or written by a cell.
type Symbol = topology.Symbol

// SymbolSet is a set of symbols keyed by name.
type SymbolSet = topology.SymbolSet

// Node holds the symbol sets of one cell.
type Node = topology.Node

// Graph maps cells to nodes and fixes the stable cell enumeration order.
type Graph = topology.Graph

// Order is the result of one topological ordering computation.
type Order = topology.Order

// ReactivityError is the reason a cell was excluded from the runnable order.
type ReactivityError = topology.ReactivityError

// CyclicReferenceError reports an illegal dependency cycle.
type CyclicReferenceError = topology.CyclicReferenceError

// MultipleDefinitionsError reports conflicting assignments of a symbol.
type MultipleDefinitionsError = topology.MultipleDefinitionsError

// Constructors.
var (
	NewGraph     = topology.NewGraph
	NewSymbolSet = topology.NewSymbolSet
)

// Package topology defines the dependency model for reactive documents:
// cells, the symbols they read and write, and the graph the ordering engine
// explores. A Graph is a snapshot: callers rebuild it when source text
// changes and treat it as read-only while an ordering runs.
package topology

import "slices"

// Cell is the stable identity of one unit of reactive code. The ordering
// engine never looks inside a cell; it only compares identities and consults
// the cell's Node.
type Cell string

// Symbol is an interned name read or written by a cell. Equality is by name.
type Symbol string

// SymbolSet is a set of symbols keyed by name.
type SymbolSet map[Symbol]struct{}

// NewSymbolSet returns a set containing the given symbols.
func NewSymbolSet(syms ...Symbol) SymbolSet {
	s := make(SymbolSet, len(syms))
	for _, sym := range syms {
		s[sym] = struct{}{}
	}
	return s
}

// Add inserts sym into the set.
func (s SymbolSet) Add(sym Symbol) {
	s[sym] = struct{}{}
}

// Contains reports whether sym is in the set.
func (s SymbolSet) Contains(sym Symbol) bool {
	_, ok := s[sym]
	return ok
}

// Len returns the number of symbols in the set.
func (s SymbolSet) Len() int {
	return len(s)
}

// Intersects reports whether the two sets share at least one symbol.
func (s SymbolSet) Intersects(other SymbolSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for sym := range small {
		if _, ok := large[sym]; ok {
			return true
		}
	}
	return false
}

// Disjoint reports whether the two sets share no symbol.
func (s SymbolSet) Disjoint(other SymbolSet) bool {
	return !s.Intersects(other)
}

// Sorted returns the symbols in lexical order, for deterministic rendering.
func (s SymbolSet) Sorted() []Symbol {
	out := make([]Symbol, 0, len(s))
	for sym := range s {
		out = append(out, sym)
	}
	slices.Sort(out)
	return out
}

// Node holds the symbol sets of one cell, as produced by an external
// symbol-extraction pass. The sets are not required to be pairwise disjoint;
// the ordering engine tolerates overlap.
type Node struct {
	// Definitions are symbols unconditionally assigned at the cell's top
	// level (hard writes).
	Definitions SymbolSet

	// SoftDefinitions are symbols assigned only inside nested scopes or
	// closures. A dependency that exists only through a soft definition can
	// be discarded to break a cycle.
	SoftDefinitions SymbolSet

	// FuncDefsWithoutSignatures are symbols defined as functions without an
	// explicit type signature. These are the only writes allowed to
	// participate in a legal mutual-recursion cycle.
	FuncDefsWithoutSignatures SymbolSet

	// FuncDefsWithSignatures are symbols defined as functions with an
	// explicit signature. Collisions here are always a hard
	// multiple-definition conflict.
	FuncDefsWithSignatures SymbolSet

	// References are symbols read by the cell.
	References SymbolSet

	// UsesImports marks a cell containing a module-level blanket-import
	// statement. Consumed only by the precedence heuristic.
	UsesImports bool
}

// assignsSameAs reports whether the two nodes write a shared symbol in a way
// that makes their cells co-assigners: a shared hard write (plain definition
// or unsignatured function definition), or a shared signatured function
// definition.
func (n *Node) assignsSameAs(m *Node) bool {
	return n.Definitions.Intersects(m.Definitions) ||
		n.Definitions.Intersects(m.FuncDefsWithoutSignatures) ||
		n.FuncDefsWithoutSignatures.Intersects(m.Definitions) ||
		n.FuncDefsWithoutSignatures.Intersects(m.FuncDefsWithoutSignatures) ||
		n.FuncDefsWithSignatures.Intersects(m.FuncDefsWithSignatures)
}

package topology

import "strings"

// ReactivityError is the reason a cell was excluded from the runnable order.
// It is data, not control flow: the ordering computation attaches it to the
// affected cells and keeps going for unrelated cells.
//
// The two implementations are *CyclicReferenceError and
// *MultipleDefinitionsError.
type ReactivityError interface {
	error
	reactivityError()
}

// CyclicReferenceError reports an illegal dependency cycle. Every cell in the
// cycle carries the same error.
type CyclicReferenceError struct {
	// Cycle is the ordered list of cells forming the loop: each cell depends
	// on the next, and the last depends on the first.
	Cycle []Cell

	// CyclicSymbols are the symbols that hold the cycle together: referenced
	// by some cell of the cycle and written by some cell of the cycle.
	CyclicSymbols []Symbol
}

func (e *CyclicReferenceError) reactivityError() {}

// Error renders the cycle as "a -> b -> a" with the offending symbols.
func (e *CyclicReferenceError) Error() string {
	var b strings.Builder
	b.WriteString("cyclic references among cells: ")
	for i, cell := range e.Cycle {
		if i > 0 {
			b.WriteString(" -> ")
		}
		b.WriteString(string(cell))
	}
	if len(e.Cycle) > 0 {
		b.WriteString(" -> ")
		b.WriteString(string(e.Cycle[0]))
	}
	if len(e.CyclicSymbols) > 0 {
		b.WriteString(" (via ")
		for i, sym := range e.CyclicSymbols {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(string(sym))
		}
		b.WriteString(")")
	}
	return b.String()
}

// MultipleDefinitionsError reports that a cell assigns symbols another cell
// also assigns. Every conflicting cell carries its own instance naming the
// full conflicting set.
type MultipleDefinitionsError struct {
	// Cell is the cell this error is attached to.
	Cell Cell

	// Conflicting is the full set of assigners, including Cell itself, in
	// graph enumeration order.
	Conflicting []Cell

	// Symbols are the symbols Cell shares with the other assigners, in
	// lexical order.
	Symbols []Symbol
}

func (e *MultipleDefinitionsError) reactivityError() {}

// Error renders the conflicting symbols and the other definers.
func (e *MultipleDefinitionsError) Error() string {
	var b strings.Builder
	b.WriteString("multiple definitions for ")
	for i, sym := range e.Symbols {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(sym))
	}
	if len(e.Symbols) == 0 {
		b.WriteString("symbols")
	}
	b.WriteString(": also defined by ")
	first := true
	for _, cell := range e.Conflicting {
		if cell == e.Cell {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		b.WriteString(string(cell))
		first = false
	}
	return b.String()
}

package gocell

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/reactivedocs/gocell/internal/types"
	"github.com/reactivedocs/gocell/topology"
)

// ComputeOrder computes the execution order for the given root cells and
// their transitive dependents.
//
// Roots are first ordered by the precedence heuristic (stable sort: ties keep
// the input order, since the heuristic only prioritizes otherwise-independent
// roots). The explorer then visits each root depth-first, pulling in every
// cell that reads a symbol a visited cell writes. Cells on an illegal cycle
// or competing to define a symbol are excluded from the runnable order and
// reported in Errable instead; exploration continues for unrelated cells.
//
// The graph is borrowed read-only for the duration of the call and must not
// be mutated concurrently. Each call uses fresh traversal state, so distinct
// calls may run in parallel on the same graph.
//
// ComputeOrder fails fast with ErrNoGraph or ErrUnknownCell on contract
// violations; every other outcome is data in the returned Order.
func ComputeOrder(g *topology.Graph, roots []topology.Cell, opts ...Option) (*topology.Order, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNoGraph
	}
	for _, root := range roots {
		if !g.Contains(root) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCell, root)
		}
	}

	e := &explorer{
		graph:             g,
		errable:           make(map[topology.Cell]topology.ReactivityError),
		allowMultipleDefs: cfg.allowMultipleDefs,
		log:               types.Logger{L: cfg.logger},
	}

	// Visit in reverse precedence order: exits accumulate last-resolved-first,
	// so the final reversal puts higher-precedence roots back in front.
	sorted := slices.Clone(roots)
	slices.SortStableFunc(sorted, func(a, b topology.Cell) int {
		return cmp.Compare(precedence(g.Node(a)), precedence(g.Node(b)))
	})
	slices.Reverse(sorted)
	for _, root := range sorted {
		e.visit(root)
	}

	runnable := slices.Clone(e.exits)
	slices.Reverse(runnable)
	runnable = slices.DeleteFunc(runnable, func(c topology.Cell) bool {
		_, bad := e.errable[c]
		return bad
	})

	e.log.Debug("computed topological order",
		slog.Int("roots", len(roots)),
		slog.Int("runnable", len(runnable)),
		slog.Int("errable", len(e.errable)))

	return &topology.Order{Runnable: runnable, Errable: e.errable}, nil
}

// explorer holds the traversal state of one ComputeOrder run. The state is
// confined to the call stack performing the depth-first search; it is never
// shared across runs.
type explorer struct {
	graph *topology.Graph

	// entries logs cells in visitation order. Cells are never popped on a
	// normal exit; a cell is "on the stack" when it is in entries but not
	// yet in exits. Both slices are truncated together when a hard cycle
	// rolls a subtree back.
	entries []topology.Cell
	exits   []topology.Cell

	errable map[topology.Cell]topology.ReactivityError

	allowMultipleDefs bool
	log               types.Logger
}

// visit explores cell and its dependents depth-first. It returns nil when the
// cell resolved, or the cells of an unresolved cycle when a hard dependency
// closed a loop. The caller inspects the cycle and either breaks it over a
// soft edge or propagates it further up.
func (e *explorer) visit(cell topology.Cell) []topology.Cell {
	if slices.Contains(e.exits, cell) {
		return nil
	}
	if _, bad := e.errable[cell]; bad {
		return nil
	}
	if n := len(e.entries); n > 0 && e.entries[n-1] == cell {
		// A cell referencing a symbol it defines itself is legal.
		return nil
	}
	if slices.Contains(e.entries, cell) {
		return e.foundCycle(cell)
	}

	if e.log.TraceEnabled() {
		e.log.Trace("visiting cell",
			slog.String("cell", string(cell)),
			slog.Int("depth", len(e.entries)-len(e.exits)))
	}

	entriesBefore := len(e.entries)
	exitsBefore := len(e.exits)
	e.entries = append(e.entries, cell)

	node := e.graph.Node(cell)

	// AssignersOf includes cell itself whenever it has a conflictable
	// write, so a conflict is a count above one, not above zero.
	assigners := e.graph.AssignersOf(cell)
	if !e.allowMultipleDefs && len(assigners) > 1 {
		for _, c := range assigners {
			e.errable[c] = &topology.MultipleDefinitionsError{
				Cell:        c,
				Conflicting: assigners,
				Symbols:     conflictingSymbols(e.graph, c, assigners),
			}
		}
		if e.log.TraceEnabled() {
			e.log.Trace("multiple definitions",
				slog.String("cell", string(cell)),
				slog.Int("assigners", len(assigners)))
		}
	}

	referencers := e.graph.ReferencersOf(
		node.Definitions, node.SoftDefinitions, node.FuncDefsWithoutSignatures)
	slices.Reverse(referencers)

	// Children are the cells that must re-run after this one: its
	// referencers (reversed, to approximate document order in the output),
	// plus, when conflicts are not tolerated, its co-assigners, so a
	// conflicting group is explored as a unit.
	children := referencers
	if !e.allowMultipleDefs {
		for _, a := range assigners {
			if !slices.Contains(children, a) {
				children = append(children, a)
			}
		}
	}

	for _, child := range children {
		if child == cell {
			continue
		}
		cycle := e.visit(child)
		if cycle == nil || !slices.Contains(cycle, cell) {
			// Resolved, or a cycle that does not involve us.
			continue
		}

		if !e.graph.IsSoftEdge(cell, child) {
			// A hard dependency closes the cycle. Roll back everything
			// explored since this cell was entered and let an ancestor
			// decide whether it can break the cycle.
			e.entries = e.entries[:entriesBefore]
			e.exits = e.exits[:exitsBefore]
			if e.log.TraceEnabled() {
				e.log.Trace("hard cycle, rolling back",
					slog.String("cell", string(cell)),
					slog.Int("cycle_len", len(cycle)))
			}
			return cycle
		}

		// The edge to this child exists only through soft definitions, so it
		// can be discarded to break the cycle: undo the tentative error
		// marking and keep exploring the remaining children.
		for _, c := range cycle {
			delete(e.errable, c)
		}
		if n := len(e.entries); e.entries[n-1] == child {
			e.entries = e.entries[:n-1]
		}
		if e.log.TraceEnabled() {
			e.log.Trace("soft edge discarded",
				slog.String("cell", string(cell)),
				slog.String("child", string(child)))
		}
	}

	e.exits = append(e.exits, cell)
	return nil
}

// foundCycle handles a revisit of a cell that is still on the stack. The
// candidate cycle is the contiguous suffix of the open entries starting at
// the revisited cell. Benign cycles (mutual recursion among unsignatured
// functions) resolve silently; anything else marks every member errable.
func (e *explorer) foundCycle(cell topology.Cell) []topology.Cell {
	open := make([]topology.Cell, 0, len(e.entries)-len(e.exits))
	for _, c := range e.entries {
		if !slices.Contains(e.exits, c) {
			open = append(open, c)
		}
	}
	cycle := slices.Clone(open[slices.Index(open, cell):])

	if cycleIsBenign(e.graph, cycle) {
		if e.log.TraceEnabled() {
			e.log.Trace("benign function cycle",
				slog.String("cell", string(cell)),
				slog.Int("cycle_len", len(cycle)))
		}
		return nil
	}

	symbols := cyclicVariables(e.graph, cycle).Sorted()
	for _, c := range cycle {
		e.errable[c] = &topology.CyclicReferenceError{
			Cycle:         cycle,
			CyclicSymbols: symbols,
		}
	}
	return cycle
}

// conflictingSymbols returns the symbols cell shares with the other
// assigners, in lexical order: a hard write (definition or unsignatured
// funcdef) another assigner also hard-writes, or a signatured funcdef another
// assigner also declares.
func conflictingSymbols(g *topology.Graph, cell topology.Cell, assigners []topology.Cell) []topology.Symbol {
	node := g.Node(cell)
	shared := topology.NewSymbolSet()
	for _, other := range assigners {
		if other == cell {
			continue
		}
		o := g.Node(other)
		for sym := range node.Definitions {
			if o.Definitions.Contains(sym) || o.FuncDefsWithoutSignatures.Contains(sym) {
				shared.Add(sym)
			}
		}
		for sym := range node.FuncDefsWithoutSignatures {
			if o.Definitions.Contains(sym) || o.FuncDefsWithoutSignatures.Contains(sym) {
				shared.Add(sym)
			}
		}
		for sym := range node.FuncDefsWithSignatures {
			if o.FuncDefsWithSignatures.Contains(sym) {
				shared.Add(sym)
			}
		}
	}
	return shared.Sorted()
}

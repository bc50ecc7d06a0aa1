package topology

// Graph maps cells to their dependency nodes and fixes the stable, total
// cell enumeration order every query is reported in. The enumeration order
// is insertion order, which for a reactive document is the cell order of the
// document itself.
//
// A Graph is owned by the caller and borrowed read-only by the ordering
// engine; rebuild a new Graph rather than mutating one a computation may
// still reference.
type Graph struct {
	order []Cell
	nodes map[Cell]*Node
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[Cell]*Node)}
}

// AddCell registers a cell with its node. Re-adding a cell replaces its node
// but keeps its original enumeration position.
func (g *Graph) AddCell(cell Cell, node Node) {
	if _, exists := g.nodes[cell]; !exists {
		g.order = append(g.order, cell)
	}
	g.nodes[cell] = &node
}

// Node returns the node for cell, or nil if the cell is not in the graph.
func (g *Graph) Node(cell Cell) *Node {
	return g.nodes[cell]
}

// Contains reports whether the cell is in the graph.
func (g *Graph) Contains(cell Cell) bool {
	_, ok := g.nodes[cell]
	return ok
}

// Cells returns all cells in enumeration order. The returned slice is shared;
// callers must not modify it.
func (g *Graph) Cells() []Cell {
	return g.order
}

// Len returns the number of cells in the graph.
func (g *Graph) Len() int {
	return len(g.order)
}

// ReferencersOf returns the cells whose References intersect any of the given
// symbol sets, in enumeration order.
func (g *Graph) ReferencersOf(syms ...SymbolSet) []Cell {
	var out []Cell
	for _, cell := range g.order {
		node := g.nodes[cell]
		for _, set := range syms {
			if node.References.Intersects(set) {
				out = append(out, cell)
				break
			}
		}
	}
	return out
}

// AssignersOf returns the cells that assign a symbol the given cell also
// assigns: a shared hard write (Definitions or FuncDefsWithoutSignatures), or
// a shared signatured function definition. The relation is symmetric, and
// reflexive for any cell with at least one such write: the result includes
// the queried cell itself, so a conflict means more than one entry, not more
// than zero. Cells are returned in enumeration order.
func (g *Graph) AssignersOf(cell Cell) []Cell {
	node := g.nodes[cell]
	if node == nil {
		return nil
	}
	var out []Cell
	for _, other := range g.order {
		if g.nodes[other].assignsSameAs(node) {
			out = append(out, other)
		}
	}
	return out
}

// IsSoftEdge reports whether the dependency of child on parent exists only
// through parent's soft definitions: child reads none of parent's hard
// writes, but reads at least one of parent's SoftDefinitions. Such an edge
// may be discarded to break a cycle.
func (g *Graph) IsSoftEdge(parent, child Cell) bool {
	p, c := g.nodes[parent], g.nodes[child]
	if p == nil || c == nil {
		return false
	}
	return c.References.Disjoint(p.Definitions) &&
		c.References.Disjoint(p.FuncDefsWithoutSignatures) &&
		c.References.Intersects(p.SoftDefinitions)
}

// IsReferencedAnywhere reports whether any cell in the graph reads sym.
func (g *Graph) IsReferencedAnywhere(sym Symbol) bool {
	for _, node := range g.nodes {
		if node.References.Contains(sym) {
			return true
		}
	}
	return false
}

// IsAssignedAnywhere reports whether any cell in the graph writes sym, in any
// category (hard, soft, or function definition).
func (g *Graph) IsAssignedAnywhere(sym Symbol) bool {
	for _, node := range g.nodes {
		if node.Definitions.Contains(sym) ||
			node.SoftDefinitions.Contains(sym) ||
			node.FuncDefsWithoutSignatures.Contains(sym) ||
			node.FuncDefsWithSignatures.Contains(sym) {
			return true
		}
	}
	return false
}

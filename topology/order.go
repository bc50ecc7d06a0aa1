package topology

// Order is the result of one topological ordering computation. It is
// immutable once returned; a new computation produces a new Order.
type Order struct {
	// Runnable lists the cells an execution engine should run, in dependency
	// order: every hard producer of a symbol a cell reads appears before that
	// cell. Deduplicated across roots; contains no errable cell.
	Runnable []Cell

	// Errable maps each unorderable cell to the reason it was excluded.
	Errable map[Cell]ReactivityError
}

// IsRunnable reports whether cell made it into the runnable order.
func (o *Order) IsRunnable(cell Cell) bool {
	for _, c := range o.Runnable {
		if c == cell {
			return true
		}
	}
	return false
}

// ErrorFor returns the error recorded for cell, or nil if the cell is not
// errable.
func (o *Order) ErrorFor(cell Cell) ReactivityError {
	return o.Errable[cell]
}

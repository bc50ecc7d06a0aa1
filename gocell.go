// Package gocell computes a valid execution order for the interdependent
// cells of a reactive document, given a pre-built symbol dependency graph.
//
// When a cell's code changes, every cell that reads a symbol the changed cell
// writes must re-run, after its producer. ComputeOrder takes a snapshot of
// the document's dependency graph (see the topology subpackage) and a set of
// root cells, and returns the cells to run in order, together with the cells
// that cannot be ordered: members of illegal dependency cycles, and cells
// competing to define the same symbol. One cyclic pattern is legal and passes
// through silently: mutually recursive function definitions without explicit
// signatures.
//
// Example:
//
//	g := gocell.NewGraph()
//	g.AddCell("producer", gocell.Node{
//	    Definitions: gocell.NewSymbolSet("x"),
//	})
//	g.AddCell("consumer", gocell.Node{
//	    References: gocell.NewSymbolSet("x"),
//	})
//
//	order, err := gocell.ComputeOrder(g, []gocell.Cell{"producer"})
//	// order.Runnable == [producer consumer]
package gocell

import (
	"errors"
	"log/slog"

	"github.com/reactivedocs/gocell/internal/types"
)

// ErrNoGraph is returned when ComputeOrder is called with a nil graph.
var ErrNoGraph = errors.New("no dependency graph provided")

// ErrUnknownCell is returned when a requested root cell is not present in the
// graph. Roots must come from the same snapshot the graph was built from.
var ErrUnknownCell = errors.New("cell not present in graph")

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-visit exploration logging (cell visits, cycles, rollbacks).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = types.LevelTrace

// Option configures ComputeOrder and OrderCache.
type Option func(*config)

type config struct {
	logger            *slog.Logger
	allowMultipleDefs bool
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithAllowMultipleDefinitions tolerates several cells assigning the same
// symbol. Conflicting cells are then ordered by their reference dependencies
// only, instead of being excluded with a MultipleDefinitionsError.
func WithAllowMultipleDefinitions() Option {
	return func(c *config) { c.allowMultipleDefs = true }
}

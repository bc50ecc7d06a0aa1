package gocell

import (
	"sync"

	"github.com/hashicorp/golang-lru/v2"

	"github.com/reactivedocs/gocell/topology"
)

// defaultCacheSize bounds how many graph snapshots keep a cached order.
// Callers typically juggle a handful of live snapshots (saved document,
// in-flight edit), so a small LRU is plenty.
const defaultCacheSize = 16

// OrderCache memoizes ComputeOrder results per graph snapshot, so a caller
// that recomputes on every document event only pays for orderings of graphs
// that actually changed.
//
// Identity is pointer identity: a Graph is an immutable snapshot, and callers
// rebuild a new Graph when source text changes. As long as the same *Graph is
// presented, the exact same *Order object is returned without recomputation.
type OrderCache struct {
	mu      sync.Mutex
	results *lru.Cache[*topology.Graph, *topology.Order]
	opts    []Option
}

// NewOrderCache returns a cache applying the given options to every
// computation it performs.
func NewOrderCache(opts ...Option) *OrderCache {
	results, err := lru.New[*topology.Graph, *topology.Order](defaultCacheSize)
	if err != nil {
		// lru.New only fails for a non-positive size.
		panic(err)
	}
	return &OrderCache{results: results, opts: opts}
}

// ComputeOrder returns the cached order for g when g is a snapshot a previous
// call computed from, and otherwise computes a fresh order over all of g's
// cells (the default root set). Safe for concurrent use.
func (c *OrderCache) ComputeOrder(g *topology.Graph) (*topology.Order, error) {
	if g == nil {
		return nil, ErrNoGraph
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if order, ok := c.results.Get(g); ok {
		return order, nil
	}
	order, err := ComputeOrder(g, g.Cells(), c.opts...)
	if err != nil {
		return nil, err
	}
	c.results.Add(g, order)
	return order, nil
}

package gocell

import (
	"testing"

	"github.com/reactivedocs/gocell/internal/testutil"
)

func TestOrderCacheReturnsSameResultForSameSnapshot(t *testing.T) {
	cache := NewOrderCache()
	g := chainGraph()

	first, err := cache.ComputeOrder(g)
	testutil.NoError(t, err)
	again, err := cache.ComputeOrder(g)
	testutil.NoError(t, err)

	testutil.True(t, first == again,
		"unchanged graph must return the exact cached result object")
}

func TestOrderCacheRecomputesForNewSnapshot(t *testing.T) {
	cache := NewOrderCache()

	g1 := chainGraph()
	first, err := cache.ComputeOrder(g1)
	testutil.NoError(t, err)

	// A rebuilt graph is a new snapshot, even with identical contents.
	g2 := chainGraph()
	second, err := cache.ComputeOrder(g2)
	testutil.NoError(t, err)

	testutil.True(t, first != second, "new snapshot must be recomputed")
	testutil.SliceEqual(t, first.Runnable, second.Runnable,
		"identical contents still order identically")
}

func TestOrderCacheUsesFullCellSetAsRoots(t *testing.T) {
	cache := NewOrderCache()
	g := NewGraph()
	g.AddCell("island", Node{Definitions: NewSymbolSet("i")})
	g.AddCell("setup", Node{Definitions: NewSymbolSet("a")})
	g.AddCell("reader", Node{References: NewSymbolSet("a")})

	order, err := cache.ComputeOrder(g)
	testutil.NoError(t, err)
	testutil.Len(t, order.Runnable, 3, "every cell of the graph is a root")
}

func TestOrderCacheAppliesOptions(t *testing.T) {
	cache := NewOrderCache(WithAllowMultipleDefinitions())
	g := NewGraph()
	g.AddCell("one", Node{Definitions: NewSymbolSet("x")})
	g.AddCell("two", Node{Definitions: NewSymbolSet("x")})

	order, err := cache.ComputeOrder(g)
	testutil.NoError(t, err)
	testutil.Len(t, order.Runnable, 2)
	testutil.Len(t, mapKeys(order.Errable), 0)
}

func TestOrderCacheNilGraph(t *testing.T) {
	cache := NewOrderCache()
	_, err := cache.ComputeOrder(nil)
	testutil.True(t, err != nil, "nil graph must fail fast")
}

func TestOrderCacheKeepsRecentSnapshots(t *testing.T) {
	cache := NewOrderCache()

	g1 := chainGraph()
	g2 := chainGraph()
	o1, err := cache.ComputeOrder(g1)
	testutil.NoError(t, err)
	o2, err := cache.ComputeOrder(g2)
	testutil.NoError(t, err)

	// Alternating between two live snapshots hits the cache for both.
	o1b, err := cache.ComputeOrder(g1)
	testutil.NoError(t, err)
	o2b, err := cache.ComputeOrder(g2)
	testutil.NoError(t, err)
	testutil.True(t, o1 == o1b && o2 == o2b,
		"both live snapshots should stay cached")
}

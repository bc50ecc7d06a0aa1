package main

import (
	"encoding/json"
	"fmt"

	"github.com/reactivedocs/gocell"
	"github.com/reactivedocs/gocell/cmd/internal/cliutil"
)

// orderOutput is the JSON shape of the order command.
type orderOutput struct {
	Runnable []string          `json:"runnable"`
	Errable  map[string]string `json:"errable,omitempty"`
}

func (c *cli) cmdOrder() int {
	if c.file == "" {
		cliutil.PrintError("order: no notebook file given")
		return exitError
	}

	g, err := loadNotebook(c.file)
	if err != nil {
		cliutil.PrintError("%v", err)
		return exitError
	}

	order, err := gocell.ComputeOrder(g, cellList(g, c.roots), c.options()...)
	if err != nil {
		cliutil.PrintError("%v", err)
		return exitError
	}

	out, closeOut, err := cliutil.GetOutput(c.flags.OutputFile)
	if err != nil {
		cliutil.PrintError("%v", err)
		return exitError
	}
	defer closeOut()

	if c.flags.JSONOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(formatOrder(order)); err != nil {
			cliutil.PrintError("%v", err)
			return exitError
		}
		return exitOK
	}

	for i, cell := range order.Runnable {
		fmt.Fprintf(out, "%3d. %s\n", i+1, cell)
	}
	for _, cell := range brokenCells(g, order) {
		fmt.Fprintf(out, "  !  %s: %v\n", cell, order.Errable[cell])
	}
	return exitOK
}

func formatOrder(order *gocell.Order) orderOutput {
	out := orderOutput{Runnable: make([]string, len(order.Runnable))}
	for i, cell := range order.Runnable {
		out.Runnable[i] = string(cell)
	}
	if len(order.Errable) > 0 {
		out.Errable = make(map[string]string, len(order.Errable))
		for cell, reason := range order.Errable {
			out.Errable[string(cell)] = reason.Error()
		}
	}
	return out
}

// brokenCells returns the errable cells in graph enumeration order, so output
// is deterministic.
func brokenCells(g *gocell.Graph, order *gocell.Order) []gocell.Cell {
	var out []gocell.Cell
	for _, cell := range g.Cells() {
		if order.ErrorFor(cell) != nil {
			out = append(out, cell)
		}
	}
	return out
}

package main

import (
	"encoding/json"
	"fmt"

	"github.com/reactivedocs/gocell"
	"github.com/reactivedocs/gocell/cmd/internal/cliutil"
)

// checkOutput is the JSON shape of the check command.
type checkOutput struct {
	Broken map[string]string `json:"broken"`
}

// cmdCheck reports only the unorderable cells, linter-style.
func (c *cli) cmdCheck() int {
	if c.file == "" {
		cliutil.PrintError("check: no notebook file given")
		return exitError
	}

	g, err := loadNotebook(c.file)
	if err != nil {
		cliutil.PrintError("%v", err)
		return exitError
	}

	order, err := gocell.ComputeOrder(g, g.Cells(), c.options()...)
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
		broken := checkOutput{Broken: make(map[string]string, len(order.Errable))}
		for cell, reason := range order.Errable {
			broken.Broken[string(cell)] = reason.Error()
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(broken); err != nil {
			cliutil.PrintError("%v", err)
			return exitError
		}
	} else {
		for _, cell := range brokenCells(g, order) {
			fmt.Fprintf(out, "%s: %v\n", cell, order.Errable[cell])
		}
	}

	if len(order.Errable) > 0 {
		return exitBroken
	}
	if !c.flags.JSONOutput {
		fmt.Fprintln(out, "all cells orderable")
	}
	return exitOK
}

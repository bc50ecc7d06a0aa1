package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/reactivedocs/gocell"
)

// notebookFile is the on-disk description of a document's cells with their
// extracted symbol sets.
type notebookFile struct {
	Cells []notebookCell `json:"cells"`
}

type notebookCell struct {
	ID                     string   `json:"id"`
	Definitions            []string `json:"definitions,omitempty"`
	SoftDefinitions        []string `json:"soft_definitions,omitempty"`
	FuncDefs               []string `json:"funcdefs,omitempty"`
	FuncDefsWithSignatures []string `json:"funcdefs_with_signatures,omitempty"`
	References             []string `json:"references,omitempty"`
	UsesImports            bool     `json:"uses_imports,omitempty"`
}

// loadNotebook reads a notebook file and builds the dependency graph, with
// cells enumerated in file order.
func loadNotebook(path string) (*gocell.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var nb notebookFile
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	g := gocell.NewGraph()
	for i, cell := range nb.Cells {
		if cell.ID == "" {
			return nil, fmt.Errorf("%s: cell %d has no id", path, i)
		}
		if g.Contains(gocell.Cell(cell.ID)) {
			return nil, fmt.Errorf("%s: duplicate cell id %q", path, cell.ID)
		}
		g.AddCell(gocell.Cell(cell.ID), gocell.Node{
			Definitions:               symbolSet(cell.Definitions),
			SoftDefinitions:           symbolSet(cell.SoftDefinitions),
			FuncDefsWithoutSignatures: symbolSet(cell.FuncDefs),
			FuncDefsWithSignatures:    symbolSet(cell.FuncDefsWithSignatures),
			References:                symbolSet(cell.References),
			UsesImports:               cell.UsesImports,
		})
	}
	return g, nil
}

func symbolSet(names []string) gocell.SymbolSet {
	set := gocell.NewSymbolSet()
	for _, name := range names {
		set.Add(gocell.Symbol(name))
	}
	return set
}

// cellList converts CLI root arguments, defaulting to every cell in the
// notebook.
func cellList(g *gocell.Graph, roots []string) []gocell.Cell {
	if len(roots) == 0 {
		return g.Cells()
	}
	out := make([]gocell.Cell, len(roots))
	for i, r := range roots {
		out[i] = gocell.Cell(r)
	}
	return out
}

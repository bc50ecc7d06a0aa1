package gocell

import "github.com/reactivedocs/gocell/topology"

// Precedence classes for root cells, smaller = earlier. Cells that establish
// environment or package state must run before ordinary cells even though no
// symbol dependency is statically visible. The heuristic only orders
// otherwise-independent roots relative to each other; it never overrides a
// real dependency edge.
const (
	precPackageManager = 1 // defines the package-manager root
	precProjectManager = 2 // defines the project-environment-manager root
	precActivateCall   = 3 // references a project-activation call
	precInstallCall    = 4 // references a package install/develop call
	precLoadPath       = 5 // references the load-path global
	precCodeReloader   = 6 // defines the live-code-reloading root
	precBlanketImport  = 7 // contains a module-level blanket import
	precDynamicInclude = 8 // references a dynamic-include call
	precDefault        = 9
)

// Aliased spellings of the activation and install calls, as they appear in
// cell reference sets after symbol extraction.
var (
	activationCalls = topology.NewSymbolSet(
		"Pkg.activate", "Pkg.API.activate", "quickactivate", "@quickactivate")
	installCalls = topology.NewSymbolSet(
		"Pkg.add", "Pkg.API.add", "Pkg.develop", "Pkg.API.develop")
)

// precedence assigns an ordering hint to a cell. First match wins.
func precedence(node *topology.Node) int {
	switch {
	case node.Definitions.Contains("Pkg"):
		return precPackageManager
	case node.Definitions.Contains("DrWatson"):
		return precProjectManager
	case node.References.Intersects(activationCalls):
		return precActivateCall
	case node.References.Intersects(installCalls):
		return precInstallCall
	case node.References.Contains("LOAD_PATH"):
		return precLoadPath
	case node.Definitions.Contains("Revise"):
		return precCodeReloader
	case node.UsesImports:
		return precBlanketImport
	case node.References.Contains("include"):
		return precDynamicInclude
	default:
		return precDefault
	}
}

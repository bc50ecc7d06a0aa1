// Command gocell computes execution orders for reactive notebook files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/reactivedocs/gocell"
	"github.com/reactivedocs/gocell/cmd/internal/cliutil"
)

// Exit codes.
const (
	exitOK     = 0 // success
	exitError  = 1 // user error or processing failure
	exitBroken = 2 // check found unorderable cells
)

const usage = `gocell - reactive cell ordering tool

Usage:
  gocell <command> [options] <notebook.json> [roots...]

Commands:
  order   Print the execution order for the given roots (default: all cells)
  check   Report unorderable cells; exit 2 if any
  version Show version

Common options:
  -json                 Output as JSON
  -o, --output FILE     Write output to FILE instead of stdout
  -allow-multiple-defs  Tolerate several cells defining the same symbol
  -v, --verbose         Enable debug logging
  -vv                   Enable trace logging (implies -v)
  -h, --help            Show help

Examples:
  gocell order notebook.json
  gocell order notebook.json config load
  gocell check -json notebook.json
`

type cli struct {
	flags             cliutil.Flags
	verbose           int
	allowMultipleDefs bool
	file              string
	roots             []string
}

func main() {
	os.Exit(run())
}

func run() int {
	flags, cmd, cmdArgs := cliutil.ParseArgs(os.Args[1:])

	c := cli{flags: flags}
	for _, arg := range cmdArgs {
		switch arg {
		case "-v", "--verbose":
			if c.verbose < 1 {
				c.verbose = 1
			}
		case "-vv":
			c.verbose = 2
		case "-allow-multiple-defs":
			c.allowMultipleDefs = true
		default:
			if len(arg) > 0 && arg[0] == '-' {
				cliutil.PrintError("unknown flag %q", arg)
				return exitError
			}
			if c.file == "" {
				c.file = arg
			} else {
				c.roots = append(c.roots, arg)
			}
		}
	}

	if flags.HelpFlag || cmd == "" {
		fmt.Fprint(os.Stderr, usage)
		if flags.HelpFlag {
			return exitOK
		}
		return exitError
	}

	switch cmd {
	case "order":
		return c.cmdOrder()
	case "check":
		return c.cmdCheck()
	case "version":
		return cmdVersion()
	default:
		cliutil.PrintError("unknown command %q", cmd)
		fmt.Fprint(os.Stderr, usage)
		return exitError
	}
}

// options builds the ComputeOrder options from the CLI flags.
func (c *cli) options() []gocell.Option {
	var opts []gocell.Option
	if c.verbose > 0 {
		level := slog.LevelDebug
		if c.verbose > 1 {
			level = gocell.LevelTrace
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		opts = append(opts, gocell.WithLogger(logger))
	}
	if c.allowMultipleDefs {
		opts = append(opts, gocell.WithAllowMultipleDefinitions())
	}
	return opts
}

func cmdVersion() int {
	version := "devel"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Println("gocell", version)
	return exitOK
}

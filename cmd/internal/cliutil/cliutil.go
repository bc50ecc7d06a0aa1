// Package cliutil provides shared CLI utilities for gocell command-line tools.
package cliutil

import (
	"fmt"
	"os"
	"strings"
)

// Flags holds the common flags shared by gocell subcommands.
type Flags struct {
	OutputFile string
	JSONOutput bool
	HelpFlag   bool
}

// ParseArgs parses global flags and extracts the subcommand from args.
// Flags handled: -o/--output, -json, -h/--help.
// Unrecognized flags are passed through to the subcommand.
func ParseArgs(args []string) (flags Flags, cmd string, cmdArgs []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			flags.HelpFlag = true
		case arg == "-json":
			flags.JSONOutput = true
		case arg == "-o" || arg == "--output":
			if i+1 < len(args) {
				i++
				flags.OutputFile = args[i]
			}
		case strings.HasPrefix(arg, "--output="):
			flags.OutputFile = arg[9:]
		case len(arg) > 0 && arg[0] == '-':
			cmdArgs = append(cmdArgs, arg)
		default:
			if cmd == "" {
				cmd = arg
			} else {
				cmdArgs = append(cmdArgs, arg)
			}
		}
	}
	return
}

// GetOutput opens the output file or returns stdout.
func GetOutput(outputFile string) (*os.File, func(), error) {
	if outputFile == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// PrintError writes a formatted error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}

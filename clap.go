package clap

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Run parses os.Args against cmd, dispatches the selected action handler,
// and exits. Help and version displays exit 0; parse and validation
// failures print to stderr and exit 1.
func Run(cmd *Command) {
	os.Exit(Execute(cmd, os.Args[1:], os.Stdout, os.Stderr))
}

// Execute is Run without the process exit: it parses argv, writes any output
// to the given writers, and returns the exit code. Useful for testing.
func Execute(cmd *Command, argv []string, stdout, stderr io.Writer) int {
	matches, err := cmd.GetMatches(argv)
	if err != nil {
		var parseErr *Error
		if errors.As(err, &parseErr) {
			switch parseErr.Kind {
			case ErrDisplayHelp, ErrDisplayVersion:
				fmt.Fprintln(stdout, parseErr.Text)
				return 0
			}
		}
		printError(cmd, stderr, err)
		return 1
	}
	if err := dispatch(cmd, matches); err != nil {
		printError(cmd, stderr, err)
		return 1
	}
	return 0
}

// dispatch walks down to the deepest selected subcommand and invokes its
// action handler with that command's matches.
func dispatch(cmd *Command, m *ArgMatches) error {
	if name, subMatches, ok := m.Subcommand(); ok {
		if sub := cmd.FindSubcommand(name); sub != nil {
			return dispatch(sub, subMatches)
		}
	}
	if cmd.action != nil {
		return cmd.action(m)
	}
	return nil
}

func printError(cmd *Command, stderr io.Writer, err error) {
	color.New(color.FgRed, color.Bold).Fprint(stderr, "error: ")
	fmt.Fprintln(stderr, err.Error())
	fmt.Fprintf(stderr, "\nUsage: %s\n\nFor more information, try '--help'.\n", usageLine(cmd))
}

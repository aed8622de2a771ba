// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chip8disasm/internal/options"
)

// ParseFlags parses the command line and returns the program options.
// The only accepted argument is the file to disassemble.
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args[0], os.Args[1:])
}

func parseArgs(name string, arguments []string) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard) // parse errors are reported through UsageError
	flags.Usage = func() {}
	var opts options.Program

	err := flags.Parse(arguments)
	flags.SetOutput(os.Stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return opts, &UsageError{flags: flags}
	case err != nil:
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	args := flags.Args()
	if len(args) == 0 {
		return opts, &UsageError{flags: flags, msg: "missing file to disassemble"}
	}

	if len(args) > 1 {
		return opts, &UsageError{
			flags: flags,
			msg:   fmt.Sprintf("unexpected argument %s, only a single file can be disassembled", args[1]),
		}
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information.
// A help request is a UsageError with an empty message.
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// IsHelp returns whether the usage was explicitly requested.
func (e *UsageError) IsHelp() bool {
	return e.msg == ""
}

// ShowUsage prints the error and the usage text to the output of the flag set.
func (e *UsageError) ShowUsage() {
	out := e.flags.Output()
	if e.msg != "" {
		_, _ = fmt.Fprintf(out, "%s\n\n", e.msg)
	}
	_, _ = fmt.Fprintf(out, "usage: chip8disasm <file to disassemble>\n\n")
}

// Package main implements the main entry point for a CHIP-8 disassembler
package main

import (
	"bufio"
	"context"
	"errors"
	"os"

	"github.com/retroenv/chip8disasm/internal/cli"
	"github.com/retroenv/chip8disasm/internal/config"
	"github.com/retroenv/chip8disasm/internal/fileprocessor"
	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"github.com/tebeka/atexit"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	flags := config.FromEnvironment(os.LookupEnv)
	logger := config.CreateLogger(flags.Debug, flags.Quiet)

	opts, err := cli.ParseFlags()
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			usageErr.ShowUsage()
			if usageErr.IsHelp() {
				atexit.Exit(0)
			}
		} else {
			logger.Error(err.Error())
		}
		atexit.Exit(1)
	}
	opts.Flags = flags

	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	output := bufio.NewWriter(os.Stdout)
	atexit.Register(func() {
		_ = output.Flush()
	})

	if err := fileprocessor.ProcessFile(ctx, logger, opts, options.NewDisassembler(), output); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
		} else {
			logger.Error("Disassembling failed", log.Err(err))
		}
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

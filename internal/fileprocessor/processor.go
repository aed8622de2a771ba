// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/chip8disasm/internal/detector"
	"github.com/retroenv/chip8disasm/internal/disasm"
	"github.com/retroenv/chip8disasm/internal/loader"
	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile disassembles the input file of the program options and writes
// the listing to output.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program,
	disasmOptions options.Disassembler, output io.Writer) error {

	input, err := loader.New().Load(opts)
	if err != nil {
		return fmt.Errorf("loading input: %w", err)
	}

	if !detector.New(logger).IsChip8(input.Name) {
		logger.Warn("Input file does not look like a CHIP-8 program, disassembling anyway",
			log.String("file", input.Name))
	}

	logger.Info("Processing Chip-8 ROM",
		log.String("file", input.Name),
		log.Int("size", int(input.Size)))

	dis := disasm.New(logger, disasmOptions)
	if err := dis.Process(ctx, input.Open, output); err != nil {
		return fmt.Errorf("processing file %s: %w", input.Name, err)
	}
	return nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("chip8disasm", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Debug("Build", log.String("date", date))
	}
}

// Package loader handles input file loading operations.
package loader

import (
	"fmt"
	"os"

	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/chip8disasm/internal/stream"
)

// Input describes a validated input file.
type Input struct {
	Name string
	Size int64
	Open stream.Opener // opens the file again for every walk over it
}

// Loader handles loading program files from disk.
type Loader struct{}

// New creates a new program loader.
func New() *Loader {
	return &Loader{}
}

// Load checks that the input file of the options can be read and returns an
// opener for it. The file is not read until the opener is called, so the
// stream can be walked lazily and more than once.
func (l *Loader) Load(opts options.Program) (Input, error) {
	info, err := os.Stat(opts.Input)
	if err != nil {
		return Input{}, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	if info.IsDir() {
		return Input{}, fmt.Errorf("opening file %s: is a directory", opts.Input)
	}

	// fail early on permission problems instead of on the first walk
	file, err := os.Open(opts.Input)
	if err != nil {
		return Input{}, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	_ = file.Close()

	return Input{
		Name: opts.Input,
		Size: info.Size(),
		Open: stream.FileOpener(opts.Input),
	}, nil
}

// Package detector handles system architecture detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Detector guesses the system an input file was built for from its name.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the system architecture from the input filename
// extension. Files without a known extension are assumed to be CHIP-8
// programs, as raw binaries carry no header to check.
func (d *Detector) Detect(filename string) arch.System {
	system := detectFromFile(filename)
	d.logger.Debug("Auto-detected system",
		log.Stringer("system", system),
		log.String("file", filename))
	return system
}

// IsChip8 returns whether the input file looks like a CHIP-8 program.
func (d *Detector) IsChip8(filename string) bool {
	return d.Detect(filename) == arch.CHIP8System
}

// detectFromFile determines the system type based on file extension.
func detectFromFile(filename string) arch.System {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".nes", ".unf", ".unif":
		return arch.NES
	default:
		// .ch8, .c8, .rom and raw binaries
		return arch.CHIP8System
	}
}

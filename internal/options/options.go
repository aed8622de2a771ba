// Package options contains the program options.
package options

// ProgramStart is the address the first word of a CHIP-8 program is loaded at.
const ProgramStart = 0x200

// WordStride is the address distance between two consecutive words.
const WordStride = 2

// Parameters contains file path options.
type Parameters struct {
	Input string // file to disassemble
}

// Flags contains behavior options.
type Flags struct {
	Debug bool // enable debug logging
	Quiet bool // only log errors
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	BaseAddress uint32 // address assigned to the first word of the stream
	Stride      uint32 // address increment per word
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		BaseAddress: ProgramStart,
		Stride:      WordStride,
	}
}

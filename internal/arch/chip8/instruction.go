package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// UnrecognizedName is the text rendered for words outside the supported
// instruction set.
const UnrecognizedName = "INVALID"

// Instruction is a decoded CHIP-8 instruction. The concrete types of this
// package form a closed set of variants, one per supported opcode plus
// Unrecognized.
type Instruction interface {
	fmt.Stringer

	// Name returns the mnemonic of the instruction without operands.
	Name() string
	// Reference returns the matching retrogolib instruction definition,
	// nil for Unrecognized.
	Reference() *chip8.Instruction
}

// Compile-time checks to ensure all variants implement Instruction.
var (
	_ Instruction = Return{}
	_ Instruction = Jump{}
	_ Instruction = Call{}
	_ Instruction = SkipEqualByte{}
	_ Instruction = SkipNotEqualByte{}
	_ Instruction = LoadByte{}
	_ Instruction = AddByte{}
	_ Instruction = LoadRegister{}
	_ Instruction = AndRegister{}
	_ Instruction = SubRegister{}
	_ Instruction = LoadIndex{}
	_ Instruction = Random{}
	_ Instruction = Draw{}
	_ Instruction = AddToIndex{}
	_ Instruction = Unrecognized{}
)

// Return returns from a subroutine (00EE).
type Return struct{}

func (Return) Name() string                  { return "ret" }
func (i Return) String() string              { return i.Name() }
func (Return) Reference() *chip8.Instruction { return chip8.RetInst }

// Jump jumps to a 12 bit address (1nnn).
type Jump struct {
	Address uint16
}

func (Jump) Name() string                  { return "jmp_addr" }
func (i Jump) String() string              { return formatAddress(i.Name(), i.Address) }
func (Jump) Reference() *chip8.Instruction { return chip8.JpInst }

// Call calls the subroutine at a 12 bit address (2nnn).
type Call struct {
	Address uint16
}

func (Call) Name() string                  { return "call_addr" }
func (i Call) String() string              { return formatAddress(i.Name(), i.Address) }
func (Call) Reference() *chip8.Instruction { return chip8.CallInst }

// SkipEqualByte skips the next instruction if Vx equals the byte (3xkk).
type SkipEqualByte struct {
	Register uint8
	Byte     uint8
}

func (SkipEqualByte) Name() string                  { return "se_vx_byte" }
func (i SkipEqualByte) String() string              { return formatRegisterByte(i.Name(), i.Register, i.Byte) }
func (SkipEqualByte) Reference() *chip8.Instruction { return chip8.SeInst }

// SkipNotEqualByte skips the next instruction if Vx differs from the byte (4xkk).
type SkipNotEqualByte struct {
	Register uint8
	Byte     uint8
}

func (SkipNotEqualByte) Name() string                  { return "sne_vx_byte" }
func (i SkipNotEqualByte) String() string              { return formatRegisterByte(i.Name(), i.Register, i.Byte) }
func (SkipNotEqualByte) Reference() *chip8.Instruction { return chip8.SneInst }

// LoadByte sets Vx to the byte (6xkk).
type LoadByte struct {
	Register uint8
	Byte     uint8
}

func (LoadByte) Name() string                  { return "ld_vx_byte" }
func (i LoadByte) String() string              { return formatRegisterByte(i.Name(), i.Register, i.Byte) }
func (LoadByte) Reference() *chip8.Instruction { return chip8.LdInst }

// AddByte adds the byte to Vx (7xkk).
type AddByte struct {
	Register uint8
	Byte     uint8
}

func (AddByte) Name() string                  { return "add_vx_byte" }
func (i AddByte) String() string              { return formatRegisterByte(i.Name(), i.Register, i.Byte) }
func (AddByte) Reference() *chip8.Instruction { return chip8.AddInst }

// LoadRegister sets Vx to Vy (8xy0).
type LoadRegister struct {
	Destination uint8
	Source      uint8
}

func (LoadRegister) Name() string                  { return "ld_vx_vy" }
func (i LoadRegister) String() string              { return formatRegisters(i.Name(), i.Destination, i.Source) }
func (LoadRegister) Reference() *chip8.Instruction { return chip8.LdInst }

// AndRegister sets Vx to Vx AND Vy (8xy2).
type AndRegister struct {
	Destination uint8
	Source      uint8
}

func (AndRegister) Name() string                  { return "and_vx_vy" }
func (i AndRegister) String() string              { return formatRegisters(i.Name(), i.Destination, i.Source) }
func (AndRegister) Reference() *chip8.Instruction { return chip8.AndInst }

// SubRegister subtracts Vy from Vx (8xy5).
type SubRegister struct {
	Destination uint8
	Source      uint8
}

func (SubRegister) Name() string                  { return "sub_vx_vy" }
func (i SubRegister) String() string              { return formatRegisters(i.Name(), i.Destination, i.Source) }
func (SubRegister) Reference() *chip8.Instruction { return chip8.SubInst }

// LoadIndex sets the index register I to a 12 bit address (Annn).
type LoadIndex struct {
	Address uint16
}

func (LoadIndex) Name() string                  { return "ld_i_addr" }
func (i LoadIndex) String() string              { return formatAddress(i.Name(), i.Address) }
func (LoadIndex) Reference() *chip8.Instruction { return chip8.LdInst }

// Random sets Vx to a random byte masked with the byte (Cxkk).
type Random struct {
	Register uint8
	Byte     uint8
}

func (Random) Name() string                  { return "rnd_vx_byte" }
func (i Random) String() string              { return formatRegisterByte(i.Name(), i.Register, i.Byte) }
func (Random) Reference() *chip8.Instruction { return chip8.RndInst }

// Draw draws a sprite of the given height at the coordinates held in Vx and Vy (Dxyn).
type Draw struct {
	RegisterX uint8
	RegisterY uint8
	Height    uint8
}

func (Draw) Name() string { return "drw_vx_vy_nibble" }

func (i Draw) String() string {
	return fmt.Sprintf("%s(%x, %x, %x)", i.Name(), i.RegisterX, i.RegisterY, i.Height)
}

func (Draw) Reference() *chip8.Instruction { return chip8.DrwInst }

// AddToIndex adds Vx to the index register I (Fx1E).
type AddToIndex struct {
	Register uint8
}

func (AddToIndex) Name() string                  { return "add_i_vx" }
func (i AddToIndex) String() string              { return fmt.Sprintf("%s(%x)", i.Name(), i.Register) }
func (AddToIndex) Reference() *chip8.Instruction { return chip8.AddInst }

// Unrecognized is any word whose class or sub-opcode is not supported.
// Word keeps the raw value for diagnostics, it is not rendered.
type Unrecognized struct {
	Word uint16
}

func (Unrecognized) Name() string                  { return UnrecognizedName }
func (i Unrecognized) String() string              { return i.Name() }
func (Unrecognized) Reference() *chip8.Instruction { return nil }

// IsRecognized returns whether the instruction is part of the supported set.
func IsRecognized(ins Instruction) bool {
	_, unrecognized := ins.(Unrecognized)
	return !unrecognized
}

// IsJump returns true if the instruction is an unconditional jump.
func IsJump(ins Instruction) bool {
	return ins.Reference() == chip8.JpInst
}

// IsCall returns true if the instruction is a subroutine call.
func IsCall(ins Instruction) bool {
	return ins.Reference() == chip8.CallInst
}

// IsReturn returns true if the instruction returns from a subroutine.
func IsReturn(ins Instruction) bool {
	return ins.Reference() == chip8.RetInst
}

// IsSkip returns true if the instruction conditionally skips the next one.
func IsSkip(ins Instruction) bool {
	ref := ins.Reference()
	if ref == nil {
		return false
	}
	return chip8.SkipInstructions.Contains(ref.Name)
}

// address operands are rendered as three hex digits, one per nibble.
func formatAddress(name string, address uint16) string {
	return fmt.Sprintf("%s(%03x)", name, address)
}

// byte operands are rendered as two hex digits, one per nibble.
func formatRegisterByte(name string, register, value uint8) string {
	return fmt.Sprintf("%s(%x, %02x)", name, register, value)
}

func formatRegisters(name string, x, y uint8) string {
	return fmt.Sprintf("%s(%x, %x)", name, x, y)
}

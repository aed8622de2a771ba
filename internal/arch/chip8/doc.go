// Package chip8 decodes CHIP-8 machine words into instructions.
//
// # Word Layout
//
// Every CHIP-8 instruction is a single big-endian 16 bit word. The word is
// split into four nibbles, most significant first:
//
//	n0: bits 15-12, instruction class
//	n1: bits 11-8,  register X or the high digit of an address
//	n2: bits 7-4,   register Y or the high digit of a byte
//	n3: bits 3-0,   sub-opcode, sprite height or the low digit of a byte
//
// # Decoding
//
// Decode dispatches on the class nibble first and, for the classes that
// overload the low nibble (0x0, 0x8 and 0xF), on the sub-opcode second. Any
// class or sub-opcode outside the supported set decodes to Unrecognized, so
// Decode is total over all 65536 words.
//
// # Supported Instructions
//
//   - Flow control: ret, jmp_addr, call_addr
//   - Conditional skips: se_vx_byte, sne_vx_byte
//   - Register loads and arithmetic: ld_vx_byte, add_vx_byte, ld_vx_vy,
//     and_vx_vy, sub_vx_vy, rnd_vx_byte
//   - Index register: ld_i_addr, add_i_vx
//   - Graphics: drw_vx_vy_nibble
//
// # Usage Example
//
//	ins := chip8.DecodeBytes(0x6A, 0x15)
//	fmt.Println(ins) // ld_vx_byte(a, 15)
package chip8

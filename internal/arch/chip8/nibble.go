package chip8

// Nibbles holds the four 4 bit fields of a word, most significant first.
// Each element is in the range 0-15.
type Nibbles [4]uint8

// Split returns the nibbles of the big-endian word formed by hi and lo.
func Split(hi, lo byte) Nibbles {
	return Nibbles{hi >> 4, hi & 0x0F, lo >> 4, lo & 0x0F}
}

// SplitWord returns the nibbles of a 16 bit word.
func SplitWord(word uint16) Nibbles {
	return Split(byte(word>>8), byte(word))
}

// Word reassembles the 16 bit word from its nibbles.
func (n Nibbles) Word() uint16 {
	return combine(n[:]...)
}

// Class returns the instruction class nibble.
func (n Nibbles) Class() uint8 {
	return n[0]
}

// X returns the nibble that holds the first register index.
func (n Nibbles) X() uint8 {
	return n[1]
}

// Y returns the nibble that holds the second register index.
func (n Nibbles) Y() uint8 {
	return n[2]
}

// Low returns the lowest nibble, used as sub-opcode or sprite height.
func (n Nibbles) Low() uint8 {
	return n[3]
}

// Byte returns the 8 bit immediate stored in the two lowest nibbles.
func (n Nibbles) Byte() uint8 {
	return uint8(combine(n[2:]...))
}

// Address returns the 12 bit address stored in the three lowest nibbles.
func (n Nibbles) Address() uint16 {
	return combine(n[1:]...)
}

// combine concatenates the given nibbles, the first one becoming the most
// significant digit.
func combine(nibbles ...uint8) uint16 {
	var value uint16
	for _, nibble := range nibbles {
		value = value<<4 | uint16(nibble&0x0F)
	}
	return value
}

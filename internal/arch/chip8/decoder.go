package chip8

// Decode classifies the nibbles of a word into exactly one instruction.
// Classes and sub-opcodes outside the supported set yield Unrecognized.
func Decode(n Nibbles) Instruction {
	switch n.Class() {
	case 0x0:
		if n.Low() == 0xE {
			return Return{}
		}

	case 0x1:
		return Jump{Address: n.Address()}

	case 0x2:
		return Call{Address: n.Address()}

	case 0x3:
		return SkipEqualByte{Register: n.X(), Byte: n.Byte()}

	case 0x4:
		return SkipNotEqualByte{Register: n.X(), Byte: n.Byte()}

	case 0x6:
		return LoadByte{Register: n.X(), Byte: n.Byte()}

	case 0x7:
		return AddByte{Register: n.X(), Byte: n.Byte()}

	case 0x8:
		return decodeRegisterOperation(n)

	case 0xA:
		return LoadIndex{Address: n.Address()}

	case 0xC:
		return Random{Register: n.X(), Byte: n.Byte()}

	case 0xD:
		return Draw{RegisterX: n.X(), RegisterY: n.Y(), Height: n.Low()}

	case 0xF:
		if n.Low() == 0xE {
			return AddToIndex{Register: n.X()}
		}
	}

	return Unrecognized{Word: n.Word()}
}

// DecodeBytes decodes the big-endian word formed by hi and lo.
func DecodeBytes(hi, lo byte) Instruction {
	return Decode(Split(hi, lo))
}

// decodeRegisterOperation decodes the 8xyN register to register class.
func decodeRegisterOperation(n Nibbles) Instruction {
	switch n.Low() {
	case 0x0:
		return LoadRegister{Destination: n.X(), Source: n.Y()}
	case 0x2:
		return AndRegister{Destination: n.X(), Source: n.Y()}
	case 0x5:
		return SubRegister{Destination: n.X(), Source: n.Y()}
	default:
		return Unrecognized{Word: n.Word()}
	}
}

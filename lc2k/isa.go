package lc2k

// Opcodes of the LC2K instruction set.
const (
	OpAdd  = 0
	OpNor  = 1
	OpLw   = 2
	OpSw   = 3
	OpBeq  = 4
	OpJalr = 5
	OpHalt = 6
	OpNoop = 7
)

// An Instruction is a decoded machine word. Not every field is meaningful
// for every opcode.
type Instruction struct {
	Opcode int
	RegA   int
	RegB   int
	Dest   int
	Offset int32
}

// Decode splits a machine word into its fields.
func Decode(word int32) Instruction {
	w := uint32(word)

	return Instruction{
		Opcode: int(w>>22) & 0x7,
		RegA:   int(w>>19) & 0x7,
		RegB:   int(w>>16) & 0x7,
		Dest:   int(w) & 0x7,
		Offset: signExtend16(w & 0xffff),
	}
}

func signExtend16(v uint32) int32 {
	return int32(int16(uint16(v)))
}

// EncodeR builds an add or nor instruction.
func EncodeR(opcode, regA, regB, dest int) int32 {
	return int32(opcode<<22 | regA<<19 | regB<<16 | dest)
}

// EncodeI builds an lw, sw, or beq instruction.
func EncodeI(opcode, regA, regB int, offset int32) int32 {
	return int32(opcode<<22 | regA<<19 | regB<<16 | int(uint16(offset)))
}

// EncodeJ builds a jalr instruction.
func EncodeJ(regA, regB int) int32 {
	return int32(OpJalr<<22 | regA<<19 | regB<<16)
}

// EncodeO builds a halt or noop instruction.
func EncodeO(opcode int) int32 {
	return int32(opcode << 22)
}

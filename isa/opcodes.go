package isa

// Opcode and function-code bit constants, taken from the reference
// implementation's instruction encoder. Field widths: R-shape op is 6 bits
// (always 0 for the register-to-register shape), func is 11 bits; J-shape
// op is 6 bits; B-shape op is 6 bits; I-shape op is 6 bits.
const (
	rTypeOp = 0b000000

	funcADD = 0b00000000001
	funcAND = 0b00000010000
	funcNOR = 0b00010000000
	funcNEG = 0b00100000000
	funcOR  = 0b00000100000
	funcRL  = 0b10001000000
	funcRLV = 0b10100000000
	funcRR  = 0b10010000000
	funcRRV = 0b11000000000
	funcSLL = 0b10000000001
	funcSLLV = 0b10000001000
	funcSLT = 0b10000000000
	funcSRA = 0b10000000100
	funcSRAV = 0b10000100000
	funcSRL = 0b10000000010
	funcSRLV = 0b10000010000
	funcSUB = 0b00000000100
	funcXOR = 0b00001000000
)

const (
	jOpCF = 0b001101
	jOpJ  = 0b000001
)

const (
	bOpBEQ      = 0b001001
	bOpBGEZ     = 0b000110
	bOpBGEZAL   = 0b001000
	bOpBGTZ     = 0b001100
	bOpBLEZ     = 0b001011
	bOpBLTZ     = 0b000101
	bOpBLTZAL   = 0b000111
	bOpBNE      = 0b001010
	bOpEXCHANGE = 0b101000
	bOpJAL      = 0b000011
	bOpJALR     = 0b000100
	bOpJR       = 0b000010
)

const (
	iOpADDI = 0b011000
	iOpANDI = 0b011100
	iOpORI  = 0b011101
	iOpSLTI = 0b011010
	iOpXORI = 0b011110
)

// cfWord is the literal come-from marker word: J shape, op=cf, target=0.
const cfWord Word = 0x34000000

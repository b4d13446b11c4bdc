package isa

// Mnemonic names one of the 37 recognized instructions.
type Mnemonic int

const (
	ADD Mnemonic = iota
	ADDI
	AND
	ANDI
	BEQ
	BGEZ
	BGEZAL
	BGTZ
	BLEZ
	BLTZ
	BLTZAL
	BNE
	CF
	EXCHANGE
	J
	JAL
	JALR
	JR
	NOR
	NEG
	OR
	ORI
	RL
	RLV
	RR
	RRV
	SLL
	SLLV
	SLT
	SLTI
	SRA
	SRAV
	SRL
	SRLV
	SUB
	XOR
	XORI
)

var mnemonicNames = map[Mnemonic]string{
	ADD: "add", ADDI: "addi", AND: "and", ANDI: "andi",
	BEQ: "beq", BGEZ: "bgez", BGEZAL: "bgezal", BGTZ: "bgtz",
	BLEZ: "blez", BLTZ: "bltz", BLTZAL: "bltzal", BNE: "bne",
	CF: "cf", EXCHANGE: "exchange", J: "j", JAL: "jal", JALR: "jalr", JR: "jr",
	NOR: "nor", NEG: "neg", OR: "or", ORI: "ori",
	RL: "rl", RLV: "rlv", RR: "rr", RRV: "rrv",
	SLL: "sll", SLLV: "sllv", SLT: "slt", SLTI: "slti",
	SRA: "sra", SRAV: "srav", SRL: "srl", SRLV: "srlv",
	SUB: "sub", XOR: "xor", XORI: "xori",
}

// String returns the lowercase mnemonic text, e.g. "addi".
func (m Mnemonic) String() string {
	if name, ok := mnemonicNames[m]; ok {
		return name
	}
	return "?"
}

// Decoded is a word alongside every shape reinterpretation of it and the
// mnemonic that word was classified as. Execution code reads whichever
// shape field it needs straight off R/J/B/I; there is no separate per-
// mnemonic operand struct.
type Decoded struct {
	Word     Word
	Mnemonic Mnemonic
	R        RForm
	J        JForm
	B        BForm
	I        IForm
}

// Classify decodes a word and determines which instruction it names. It
// returns ok=false if the word matches none of the 37 recognized
// instructions (the "not an instruction", nai, condition).
//
// Classification does not check rsd != rs for the instructions that
// document it as an extra constraint on construction (ADD, AND, NEG, OR,
// XOR, RLV, RRV, SLLV, SRAV, SRLV, SLT, SUB): the reference implementation's
// own classifiers never test it either, at decode time. SUB enforces it at
// execution instead, where it raises a non-trivial error.
func Classify(w Word) (Decoded, bool) {
	r, j, b, i := ToR(w), ToJ(w), ToB(w), ToI(w)
	d := Decoded{Word: w, R: r, J: j, B: b, I: i}

	switch {
	case IsADD(r):
		d.Mnemonic = ADD
	case IsADDI(i):
		d.Mnemonic = ADDI
	case IsAND(r):
		d.Mnemonic = AND
	case IsANDI(i):
		d.Mnemonic = ANDI
	case IsBEQ(b):
		d.Mnemonic = BEQ
	case IsBGEZ(b):
		d.Mnemonic = BGEZ
	case IsBGEZAL(b):
		d.Mnemonic = BGEZAL
	case IsBGTZ(b):
		d.Mnemonic = BGTZ
	case IsBLEZ(b):
		d.Mnemonic = BLEZ
	case IsBLTZ(b):
		d.Mnemonic = BLTZ
	case IsBLTZAL(b):
		d.Mnemonic = BLTZAL
	case IsBNE(b):
		d.Mnemonic = BNE
	case IsCF(j):
		d.Mnemonic = CF
	case IsEXCHANGE(b):
		d.Mnemonic = EXCHANGE
	case IsJ(j):
		d.Mnemonic = J
	case IsJAL(b):
		d.Mnemonic = JAL
	case IsJALR(b):
		d.Mnemonic = JALR
	case IsJR(b):
		d.Mnemonic = JR
	case IsNOR(r):
		d.Mnemonic = NOR
	case IsNEG(r):
		d.Mnemonic = NEG
	case IsOR(r):
		d.Mnemonic = OR
	case IsORI(i):
		d.Mnemonic = ORI
	case IsRL(r):
		d.Mnemonic = RL
	case IsRLV(r):
		d.Mnemonic = RLV
	case IsRR(r):
		d.Mnemonic = RR
	case IsRRV(r):
		d.Mnemonic = RRV
	case IsSLL(r):
		d.Mnemonic = SLL
	case IsSLLV(r):
		d.Mnemonic = SLLV
	case IsSLT(r):
		d.Mnemonic = SLT
	case IsSLTI(i):
		d.Mnemonic = SLTI
	case IsSRA(r):
		d.Mnemonic = SRA
	case IsSRAV(r):
		d.Mnemonic = SRAV
	case IsSRL(r):
		d.Mnemonic = SRL
	case IsSRLV(r):
		d.Mnemonic = SRLV
	case IsSUB(r):
		d.Mnemonic = SUB
	case IsXOR(r):
		d.Mnemonic = XOR
	case IsXORI(i):
		d.Mnemonic = XORI
	default:
		return Decoded{}, false
	}
	return d, true
}

func IsADD(r RForm) bool { return r.Op == rTypeOp && r.Shrot == 0 && r.Func == funcADD }
func IsAND(r RForm) bool { return r.Op == rTypeOp && r.Shrot == 0 && r.Func == funcAND }
func IsNOR(r RForm) bool { return r.Op == rTypeOp && r.Shrot == 0 && r.Func == funcNOR }
func IsNEG(r RForm) bool { return r.Op == rTypeOp && r.Shrot == 0 && r.Func == funcNEG }
func IsOR(r RForm) bool  { return r.Op == rTypeOp && r.Shrot == 0 && r.Func == funcOR }
func IsRL(r RForm) bool  { return r.Op == rTypeOp && r.Rs == 0 && r.Func == funcRL }
func IsRLV(r RForm) bool { return r.Op == rTypeOp && r.Shrot == 0 && r.Func == funcRLV }
func IsRR(r RForm) bool  { return r.Op == rTypeOp && r.Rs == 0 && r.Func == funcRR }
func IsRRV(r RForm) bool { return r.Op == rTypeOp && r.Shrot == 0 && r.Func == funcRRV }
func IsSLL(r RForm) bool { return r.Op == rTypeOp && r.Rs == 0 && r.Func == funcSLL }
func IsSLLV(r RForm) bool { return r.Op == rTypeOp && r.Shrot == 0 && r.Func == funcSLLV }
func IsSLT(r RForm) bool { return r.Op == rTypeOp && r.Shrot == 0 && r.Func == funcSLT }
func IsSRA(r RForm) bool { return r.Op == rTypeOp && r.Rs == 0 && r.Func == funcSRA }
func IsSRAV(r RForm) bool { return r.Op == rTypeOp && r.Shrot == 0 && r.Func == funcSRAV }
func IsSRL(r RForm) bool { return r.Op == rTypeOp && r.Rs == 0 && r.Func == funcSRL }
func IsSRLV(r RForm) bool { return r.Op == rTypeOp && r.Shrot == 0 && r.Func == funcSRLV }
func IsSUB(r RForm) bool { return r.Op == rTypeOp && r.Shrot == 0 && r.Func == funcSUB }
func IsXOR(r RForm) bool { return r.Op == rTypeOp && r.Shrot == 0 && r.Func == funcXOR }

func IsADDI(i IForm) bool { return i.Op == iOpADDI }
func IsANDI(i IForm) bool { return i.Op == iOpANDI }
func IsORI(i IForm) bool  { return i.Op == iOpORI }
func IsSLTI(i IForm) bool { return i.Op == iOpSLTI }
func IsXORI(i IForm) bool { return i.Op == iOpXORI }

// IsCF reports whether j is a come-from marker: op=cf and a zero target.
// A j-shape word with op=cf but a nonzero target is not a valid CF.
func IsCF(j JForm) bool { return j.Op == jOpCF && j.Target == 0 }
func IsJ(j JForm) bool  { return j.Op == jOpJ }

func IsBEQ(b BForm) bool      { return b.Op == bOpBEQ }
func IsBGEZ(b BForm) bool     { return b.Op == bOpBGEZ && b.Ra == 0 }
func IsBGEZAL(b BForm) bool   { return b.Op == bOpBGEZAL }
func IsBGTZ(b BForm) bool     { return b.Op == bOpBGTZ && b.Ra == 0 }
func IsBLEZ(b BForm) bool     { return b.Op == bOpBLEZ && b.Ra == 0 }
func IsBLTZ(b BForm) bool     { return b.Op == bOpBLTZ && b.Ra == 0 }
func IsBLTZAL(b BForm) bool   { return b.Op == bOpBLTZAL }
func IsBNE(b BForm) bool      { return b.Op == bOpBNE }
func IsEXCHANGE(b BForm) bool { return b.Op == bOpEXCHANGE && b.Offset == 0 }
func IsJAL(b BForm) bool      { return b.Op == bOpJAL && b.Rb == 0 }
func IsJALR(b BForm) bool     { return b.Op == bOpJALR && b.Offset == 0 }
func IsJR(b BForm) bool       { return b.Op == bOpJR && b.Ra == 0 && b.Offset == 0 }

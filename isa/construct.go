package isa

import "fmt"

// ErrSameRegister is returned by the constructors whose instructions
// require rsd != rs as a precondition of well-formed construction. It
// mirrors the reference implementation's debug assertion, made into a real
// error since Go has no compiled-out assert.
var ErrSameRegister = fmt.Errorf("isa: rsd and rs must not name the same register")

// NewCF returns the come-from marker word. It takes no operands: a CF's
// target field is always zero.
func NewCF() Word { return cfWord }

func NewADD(rsd, rs uint32) (Word, error) {
	if rsd == rs {
		return 0, ErrSameRegister
	}
	return RForm{Op: rTypeOp, Rsd: rsd, Rs: rs, Func: funcADD}.Encode(), nil
}

func NewAND(rsd, rs uint32) (Word, error) {
	if rsd == rs {
		return 0, ErrSameRegister
	}
	return RForm{Op: rTypeOp, Rsd: rsd, Rs: rs, Func: funcAND}.Encode(), nil
}

func NewNOR(rsd, rs uint32) Word {
	return RForm{Op: rTypeOp, Rsd: rsd, Rs: rs, Func: funcNOR}.Encode()
}

func NewNEG(rsd, rs uint32) (Word, error) {
	if rsd == rs {
		return 0, ErrSameRegister
	}
	return RForm{Op: rTypeOp, Rsd: rsd, Rs: rs, Func: funcNEG}.Encode(), nil
}

func NewOR(rsd, rs uint32) (Word, error) {
	if rsd == rs {
		return 0, ErrSameRegister
	}
	return RForm{Op: rTypeOp, Rsd: rsd, Rs: rs, Func: funcOR}.Encode(), nil
}

// NewRL rotates rsd left by the immediate amount amt (an immediate shift,
// not a register-named one: rs is fixed at zero).
func NewRL(rsd, amt uint32) Word {
	return RForm{Op: rTypeOp, Rsd: rsd, Shrot: amt, Func: funcRL}.Encode()
}

func NewRLV(rsd, rs uint32) (Word, error) {
	if rsd == rs {
		return 0, ErrSameRegister
	}
	return RForm{Op: rTypeOp, Rsd: rsd, Rs: rs, Func: funcRLV}.Encode(), nil
}

func NewRR(rsd, amt uint32) Word {
	return RForm{Op: rTypeOp, Rsd: rsd, Shrot: amt, Func: funcRR}.Encode()
}

func NewRRV(rsd, rs uint32) (Word, error) {
	if rsd == rs {
		return 0, ErrSameRegister
	}
	return RForm{Op: rTypeOp, Rsd: rsd, Rs: rs, Func: funcRRV}.Encode(), nil
}

func NewSLL(rsd, amt uint32) Word {
	return RForm{Op: rTypeOp, Rsd: rsd, Shrot: amt, Func: funcSLL}.Encode()
}

func NewSLLV(rsd, rs uint32) (Word, error) {
	if rsd == rs {
		return 0, ErrSameRegister
	}
	return RForm{Op: rTypeOp, Rsd: rsd, Rs: rs, Func: funcSLLV}.Encode(), nil
}

func NewSLT(rsd, rs uint32) (Word, error) {
	if rsd == rs {
		return 0, ErrSameRegister
	}
	return RForm{Op: rTypeOp, Rsd: rsd, Rs: rs, Func: funcSLT}.Encode(), nil
}

func NewSRA(rsd, amt uint32) Word {
	return RForm{Op: rTypeOp, Rsd: rsd, Shrot: amt, Func: funcSRA}.Encode()
}

func NewSRAV(rsd, rs uint32) (Word, error) {
	if rsd == rs {
		return 0, ErrSameRegister
	}
	return RForm{Op: rTypeOp, Rsd: rsd, Rs: rs, Func: funcSRAV}.Encode(), nil
}

func NewSRL(rsd, amt uint32) Word {
	return RForm{Op: rTypeOp, Rsd: rsd, Shrot: amt, Func: funcSRL}.Encode()
}

func NewSRLV(rsd, rs uint32) (Word, error) {
	if rsd == rs {
		return 0, ErrSameRegister
	}
	return RForm{Op: rTypeOp, Rsd: rsd, Rs: rs, Func: funcSRLV}.Encode(), nil
}

func NewSUB(rsd, rs uint32) (Word, error) {
	if rsd == rs {
		return 0, ErrSameRegister
	}
	return RForm{Op: rTypeOp, Rsd: rsd, Rs: rs, Func: funcSUB}.Encode(), nil
}

func NewXOR(rsd, rs uint32) (Word, error) {
	if rsd == rs {
		return 0, ErrSameRegister
	}
	return RForm{Op: rTypeOp, Rsd: rsd, Rs: rs, Func: funcXOR}.Encode(), nil
}

func NewADDI(rsd uint32, imm int32) Word {
	return IForm{Op: iOpADDI, Rsd: rsd, Immediate: uint32(imm) & 0x1FFFFF}.Encode()
}

func NewANDI(rsd uint32, imm int32) Word {
	return IForm{Op: iOpANDI, Rsd: rsd, Immediate: uint32(imm) & 0x1FFFFF}.Encode()
}

func NewORI(rsd uint32, imm int32) Word {
	return IForm{Op: iOpORI, Rsd: rsd, Immediate: uint32(imm) & 0x1FFFFF}.Encode()
}

func NewSLTI(rsd uint32, imm int32) Word {
	return IForm{Op: iOpSLTI, Rsd: rsd, Immediate: uint32(imm) & 0x1FFFFF}.Encode()
}

func NewXORI(rsd uint32, imm int32) Word {
	return IForm{Op: iOpXORI, Rsd: rsd, Immediate: uint32(imm) & 0x1FFFFF}.Encode()
}

// NewJ assembles an unconditional jump. target is the signed 26-bit field
// combined with the current PC's top six bits at execution time; callers
// pass the raw (already relative-to-nothing) 26-bit value to encode.
func NewJ(target int32) Word {
	return JForm{Op: jOpJ, Target: uint32(target) & 0x3FFFFFF}.Encode()
}

func NewBEQ(ra, rb uint32, offset int32) Word {
	return BForm{Op: bOpBEQ, Ra: ra, Rb: rb, Offset: uint32(offset) & 0xFFFF}.Encode()
}

func NewBNE(ra, rb uint32, offset int32) Word {
	return BForm{Op: bOpBNE, Ra: ra, Rb: rb, Offset: uint32(offset) & 0xFFFF}.Encode()
}

// NewBGEZ, NewBGTZ, NewBLEZ, NewBLTZ test rb against zero; ra is unused and
// fixed at zero by the shape's own constraint.
func NewBGEZ(rb uint32, offset int32) Word {
	return BForm{Op: bOpBGEZ, Rb: rb, Offset: uint32(offset) & 0xFFFF}.Encode()
}

func NewBGTZ(rb uint32, offset int32) Word {
	return BForm{Op: bOpBGTZ, Rb: rb, Offset: uint32(offset) & 0xFFFF}.Encode()
}

func NewBLEZ(rb uint32, offset int32) Word {
	return BForm{Op: bOpBLEZ, Rb: rb, Offset: uint32(offset) & 0xFFFF}.Encode()
}

func NewBLTZ(rb uint32, offset int32) Word {
	return BForm{Op: bOpBLTZ, Rb: rb, Offset: uint32(offset) & 0xFFFF}.Encode()
}

// NewBGEZAL and NewBLTZAL additionally name a link register (ra's field is
// reused as the link register); rb is still the tested register.
func NewBGEZAL(link, rb uint32, offset int32) Word {
	return BForm{Op: bOpBGEZAL, Ra: link, Rb: rb, Offset: uint32(offset) & 0xFFFF}.Encode()
}

func NewBLTZAL(link, rb uint32, offset int32) Word {
	return BForm{Op: bOpBLTZAL, Ra: link, Rb: rb, Offset: uint32(offset) & 0xFFFF}.Encode()
}

// NewJAL assembles a call: link is the return-address register (encoded in
// the ra field), offset is the signed branch-style offset.
func NewJAL(link uint32, offset int32) Word {
	return BForm{Op: bOpJAL, Ra: link, Offset: uint32(offset) & 0xFFFF}.Encode()
}

// NewJALR assembles a register-indirect call: link is the return-address
// register, jreg names the register holding the target address.
func NewJALR(link, jreg uint32) Word {
	return BForm{Op: bOpJALR, Ra: link, Rb: jreg}.Encode()
}

// NewJR assembles a register-indirect jump to the address in jreg.
func NewJR(jreg uint32) Word {
	return BForm{Op: bOpJR, Rb: jreg}.Encode()
}

// NewEXCHANGE assembles a register/memory swap: ra names the register
// whose value is swapped with memory, rb holds the address to swap at.
func NewEXCHANGE(ra, rb uint32) Word {
	return BForm{Op: bOpEXCHANGE, Ra: ra, Rb: rb}.Encode()
}

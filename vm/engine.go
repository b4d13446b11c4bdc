package vm

import "github.com/ocornoc/metronome32/isa"

// opFunc is one mnemonic's execution in one direction. It mutates ctx in
// place and returns whether the step succeeded without raising a
// non-trivial error (the reference's "success", which naidefault does
// *not* set: naidefault leaves success false without halting).
type opFunc func(d isa.Decoded, ctx *Context, v *VM) bool

func pushDP(v uint32, ctx *Context) { ctx.DP = append(ctx.DP, v) }

func popFromDP(rsd uint32, ctx *Context) bool {
	if len(ctx.DP) == 0 {
		ctx.Error = ErrDPStackEmpty
		ctx.Halted = true
		return false
	}
	top := ctx.DP[len(ctx.DP)-1]
	ctx.DP = ctx.DP[:len(ctx.DP)-1]
	ctx.Regs[rsd] = top
	ctx.PC--
	return true
}

func pushPCS(v uint32, ctx *Context) { ctx.PCS = append(ctx.PCS, v) }

func popFromPCS(ctx *Context) (uint32, bool) {
	if len(ctx.PCS) == 0 {
		return 0, false
	}
	top := ctx.PCS[len(ctx.PCS)-1]
	ctx.PCS = ctx.PCS[:len(ctx.PCS)-1]
	return top, true
}

func rotateLeft(v, amt uint32) uint32 {
	amt &= 0x1F
	return (v << amt) | (v >> ((32 - amt) & 0x1F))
}

func rotateRight(v, amt uint32) uint32 {
	amt &= 0x1F
	return (v >> amt) | (v << ((32 - amt) & 0x1F))
}

// slt computes the MIPS-style signed "set less than" result for a and b.
func slt(a, b uint32) uint32 {
	switch {
	case a>>31 == 0 && b>>31 == 1:
		return 0
	case a>>31 == 1 && b>>31 == 0:
		return 1
	case a < b:
		return 1
	default:
		return 0
	}
}

// requireCF loads the word at addr and reports whether it is a come-from
// marker, setting missing_cf on ctx if not.
func requireCF(addr uint32, ctx *Context) bool {
	word := isa.ToJ(isa.Word(ctx.Mem.Read(addr)))
	if !isa.IsCF(word) {
		ctx.Error = ErrMissingCF
		ctx.Halted = true
		return false
	}
	return true
}

func fexADD(d isa.Decoded, ctx *Context, v *VM) bool {
	ctx.Regs[d.R.Rsd] += ctx.Regs[d.R.Rs]
	ctx.PC++
	return true
}

func bexADD(d isa.Decoded, ctx *Context, v *VM) bool {
	if d.R.Rsd == d.R.Rs {
		ctx.Regs[d.R.Rsd] >>= 1
	} else {
		ctx.Regs[d.R.Rsd] -= ctx.Regs[d.R.Rs]
	}
	ctx.PC--
	return true
}

func fexADDI(d isa.Decoded, ctx *Context, v *VM) bool {
	ctx.Regs[d.I.Rsd] += uint32(isa.SignExtend(d.I.Immediate, 21))
	ctx.PC++
	return true
}

func bexADDI(d isa.Decoded, ctx *Context, v *VM) bool {
	ctx.Regs[d.I.Rsd] -= uint32(isa.SignExtend(d.I.Immediate, 21))
	ctx.PC--
	return true
}

func fexAND(d isa.Decoded, ctx *Context, v *VM) bool {
	pushDP(ctx.Regs[d.R.Rsd], ctx)
	ctx.Regs[d.R.Rsd] &= ctx.Regs[d.R.Rs]
	ctx.PC++
	return true
}

func bexAND(d isa.Decoded, ctx *Context, v *VM) bool { return popFromDP(d.R.Rsd, ctx) }

func fexANDI(d isa.Decoded, ctx *Context, v *VM) bool {
	pushDP(ctx.Regs[d.I.Rsd], ctx)
	ctx.Regs[d.I.Rsd] &= uint32(isa.SignExtend(d.I.Immediate, 21))
	ctx.PC++
	return true
}

func bexANDI(d isa.Decoded, ctx *Context, v *VM) bool { return popFromDP(d.I.Rsd, ctx) }

func fexBEQ(d isa.Decoded, ctx *Context, v *VM) bool {
	offset := uint32(isa.SignExtend(d.B.Offset, 16))
	if ctx.Regs[d.B.Ra] == ctx.Regs[d.B.Rb] {
		target := ctx.PC + offset
		if !requireCF(target, ctx) {
			return false
		}
		pushPCS(ctx.PC, ctx)
		v.emit(Event{Kind: EventBranch, PC: ctx.PC})
		ctx.PC += offset
	}
	ctx.PC++
	return true
}

func bexBEQ(d isa.Decoded, ctx *Context, v *VM) bool { ctx.PC--; return true }

func fexBNE(d isa.Decoded, ctx *Context, v *VM) bool {
	offset := uint32(isa.SignExtend(d.B.Offset, 16))
	if ctx.Regs[d.B.Ra] != ctx.Regs[d.B.Rb] {
		target := ctx.PC + offset
		if !requireCF(target, ctx) {
			return false
		}
		pushPCS(ctx.PC, ctx)
		v.emit(Event{Kind: EventBranch, PC: ctx.PC})
		ctx.PC += offset
	}
	ctx.PC++
	return true
}

func bexBNE(d isa.Decoded, ctx *Context, v *VM) bool { ctx.PC--; return true }

func fexBGEZ(d isa.Decoded, ctx *Context, v *VM) bool {
	offset := uint32(isa.SignExtend(d.B.Offset, 16))
	if ctx.Regs[d.B.Rb]>>31 == 0 {
		target := ctx.PC + offset
		if !requireCF(target, ctx) {
			return false
		}
		pushPCS(ctx.PC, ctx)
		v.emit(Event{Kind: EventBranch, PC: ctx.PC})
		ctx.PC += offset
	}
	ctx.PC++
	return true
}

func bexBGEZ(d isa.Decoded, ctx *Context, v *VM) bool { ctx.PC--; return true }

func fexBGTZ(d isa.Decoded, ctx *Context, v *VM) bool {
	offset := uint32(isa.SignExtend(d.B.Offset, 16))
	if ctx.Regs[d.B.Rb]>>31 == 0 && ctx.Regs[d.B.Rb] != 0 {
		target := ctx.PC + offset
		if !requireCF(target, ctx) {
			return false
		}
		pushPCS(ctx.PC, ctx)
		v.emit(Event{Kind: EventBranch, PC: ctx.PC})
		ctx.PC += offset
	}
	ctx.PC++
	return true
}

func bexBGTZ(d isa.Decoded, ctx *Context, v *VM) bool { ctx.PC--; return true }

func fexBLEZ(d isa.Decoded, ctx *Context, v *VM) bool {
	offset := uint32(isa.SignExtend(d.B.Offset, 16))
	if ctx.Regs[d.B.Rb]>>31 == 1 || ctx.Regs[d.B.Rb] == 0 {
		target := ctx.PC + offset
		if !requireCF(target, ctx) {
			return false
		}
		pushPCS(ctx.PC, ctx)
		v.emit(Event{Kind: EventBranch, PC: ctx.PC})
		ctx.PC += offset
	}
	ctx.PC++
	return true
}

func bexBLEZ(d isa.Decoded, ctx *Context, v *VM) bool { ctx.PC--; return true }

func fexBLTZ(d isa.Decoded, ctx *Context, v *VM) bool {
	offset := uint32(isa.SignExtend(d.B.Offset, 16))
	if ctx.Regs[d.B.Rb]>>31 == 1 {
		target := ctx.PC + offset
		if !requireCF(target, ctx) {
			return false
		}
		pushPCS(ctx.PC, ctx)
		v.emit(Event{Kind: EventBranch, PC: ctx.PC})
		ctx.PC += offset
	}
	ctx.PC++
	return true
}

func bexBLTZ(d isa.Decoded, ctx *Context, v *VM) bool { ctx.PC--; return true }

func fexBGEZAL(d isa.Decoded, ctx *Context, v *VM) bool {
	link := d.B.Ra
	offset := uint32(isa.SignExtend(d.B.Offset, 16))
	if ctx.Regs[d.B.Rb]>>31 == 0 {
		target := ctx.PC + offset
		if !requireCF(target, ctx) {
			return false
		}
		if ctx.Regs[link] != 0 {
			ctx.Error = ErrUnclearLink
			ctx.Halted = true
			return false
		}
		ctx.Regs[link] = ctx.PC + 1
		pushPCS(ctx.PC, ctx)
		v.emit(Event{Kind: EventBranch, PC: ctx.PC})
		ctx.PC += offset
	}
	ctx.PC++
	return true
}

func bexBGEZAL(d isa.Decoded, ctx *Context, v *VM) bool {
	ctx.Regs[d.B.Ra] = 0
	ctx.PC--
	return true
}

func fexBLTZAL(d isa.Decoded, ctx *Context, v *VM) bool {
	link := d.B.Ra
	offset := uint32(isa.SignExtend(d.B.Offset, 16))
	if ctx.Regs[d.B.Rb]>>31 == 1 {
		target := ctx.PC + offset
		if !requireCF(target, ctx) {
			return false
		}
		if ctx.Regs[link] != 0 {
			ctx.Error = ErrUnclearLink
			ctx.Halted = true
			return false
		}
		ctx.Regs[link] = ctx.PC + 1
		pushPCS(ctx.PC, ctx)
		v.emit(Event{Kind: EventBranch, PC: ctx.PC})
		ctx.PC += offset
	}
	ctx.PC++
	return true
}

func bexBLTZAL(d isa.Decoded, ctx *Context, v *VM) bool {
	ctx.Regs[d.B.Ra] = 0
	ctx.PC--
	return true
}

func fexCF(_ isa.Decoded, ctx *Context, v *VM) bool {
	pushPCS(ctx.PC, ctx)
	v.emit(Event{Kind: EventCF, PC: ctx.PC})
	ctx.PC++
	return true
}

func bexCF(_ isa.Decoded, ctx *Context, v *VM) bool {
	top, ok := popFromPCS(ctx)
	if !ok {
		ctx.Error = ErrPCStackEmpty
		ctx.Halted = true
		return false
	}
	v.emit(Event{Kind: EventCF, PC: ctx.PC})
	ctx.PC = top
	return true
}

func fexEXCHANGE(d isa.Decoded, ctx *Context, v *VM) bool {
	temp := ctx.Regs[d.B.Ra]
	address := ctx.Regs[d.B.Rb]
	ctx.Regs[d.B.Ra] = ctx.Mem.Read(address)
	ctx.Mem.Write(address, temp)
	ctx.PC++
	return true
}

func bexEXCHANGE(d isa.Decoded, ctx *Context, v *VM) bool {
	temp := ctx.Regs[d.B.Ra]
	address := ctx.Regs[d.B.Rb]
	ctx.Regs[d.B.Ra] = ctx.Mem.Read(address)
	ctx.Mem.Write(address, temp)
	ctx.PC--
	return true
}

func fexJ(d isa.Decoded, ctx *Context, v *VM) bool {
	newPC := (ctx.PC & 0xFC000000) + uint32(isa.SignExtend(d.J.Target, 26))
	if !requireCF(newPC, ctx) {
		return false
	}
	pushPCS(ctx.PC, ctx)
	v.emit(Event{Kind: EventBranch, PC: ctx.PC})
	ctx.PC = newPC + 1
	return true
}

func bexJ(_ isa.Decoded, ctx *Context, v *VM) bool { ctx.PC--; return true }

func fexJAL(d isa.Decoded, ctx *Context, v *VM) bool {
	link := d.B.Ra
	offset := uint32(isa.SignExtend(d.B.Offset, 16))
	if !requireCF(ctx.PC+offset, ctx) {
		return false
	}
	if ctx.Regs[link] != 0 {
		ctx.Error = ErrUnclearLink
		ctx.Halted = true
		return false
	}
	ctx.PC++
	pushPCS(ctx.PC, ctx)
	v.emit(Event{Kind: EventBranch, PC: ctx.PC})
	ctx.Regs[link] = ctx.PC
	ctx.PC += offset
	return true
}

func bexJAL(d isa.Decoded, ctx *Context, v *VM) bool {
	ctx.Regs[d.B.Ra] = 0
	ctx.PC--
	return true
}

func fexJALR(d isa.Decoded, ctx *Context, v *VM) bool {
	link, jreg := d.B.Ra, d.B.Rb
	newPC := ctx.Regs[jreg]
	if !requireCF(newPC, ctx) {
		return false
	}
	if ctx.Regs[link] != 0 {
		ctx.Error = ErrUnclearLink
		ctx.Halted = true
		return false
	}
	pushPCS(ctx.PC, ctx)
	v.emit(Event{Kind: EventBranch, PC: ctx.PC})
	ctx.Regs[link] = ctx.PC + 1
	ctx.PC = newPC + 1
	return true
}

func bexJALR(d isa.Decoded, ctx *Context, v *VM) bool {
	ctx.Regs[d.B.Ra] = 0
	ctx.PC--
	return true
}

func fexJR(d isa.Decoded, ctx *Context, v *VM) bool {
	newPC := ctx.Regs[d.B.Rb]
	if !requireCF(newPC, ctx) {
		return false
	}
	pushPCS(ctx.PC, ctx)
	v.emit(Event{Kind: EventBranch, PC: ctx.PC})
	ctx.PC = newPC + 1
	return true
}

func bexJR(_ isa.Decoded, ctx *Context, v *VM) bool { ctx.PC--; return true }

func fexNOR(d isa.Decoded, ctx *Context, v *VM) bool {
	pushDP(ctx.Regs[d.R.Rsd], ctx)
	ctx.Regs[d.R.Rsd] = ^(ctx.Regs[d.R.Rsd] | ctx.Regs[d.R.Rs])
	ctx.PC++
	return true
}

func bexNOR(d isa.Decoded, ctx *Context, v *VM) bool { return popFromDP(d.R.Rsd, ctx) }

func fexNEG(d isa.Decoded, ctx *Context, v *VM) bool {
	ctx.Regs[d.R.Rsd] = uint32(-int32(ctx.Regs[d.R.Rsd]))
	ctx.PC++
	return true
}

func bexNEG(d isa.Decoded, ctx *Context, v *VM) bool {
	ctx.Regs[d.R.Rsd] = uint32(-int32(ctx.Regs[d.R.Rsd]))
	ctx.PC--
	return true
}

func fexOR(d isa.Decoded, ctx *Context, v *VM) bool {
	pushDP(ctx.Regs[d.R.Rsd], ctx)
	ctx.Regs[d.R.Rsd] |= ctx.Regs[d.R.Rs]
	ctx.PC++
	return true
}

func bexOR(d isa.Decoded, ctx *Context, v *VM) bool { return popFromDP(d.R.Rsd, ctx) }

func fexORI(d isa.Decoded, ctx *Context, v *VM) bool {
	pushDP(ctx.Regs[d.I.Rsd], ctx)
	ctx.Regs[d.I.Rsd] |= uint32(isa.SignExtend(d.I.Immediate, 21))
	ctx.PC++
	return true
}

func bexORI(d isa.Decoded, ctx *Context, v *VM) bool { return popFromDP(d.I.Rsd, ctx) }

func fexRL(d isa.Decoded, ctx *Context, v *VM) bool {
	ctx.Regs[d.R.Rsd] = rotateLeft(ctx.Regs[d.R.Rsd], d.R.Shrot)
	ctx.PC++
	return true
}

func bexRL(d isa.Decoded, ctx *Context, v *VM) bool {
	ctx.Regs[d.R.Rsd] = rotateRight(ctx.Regs[d.R.Rsd], d.R.Shrot)
	ctx.PC--
	return true
}

func fexRLV(d isa.Decoded, ctx *Context, v *VM) bool {
	amt := ctx.Regs[d.R.Rs] & 0x1F
	ctx.Regs[d.R.Rsd] = rotateLeft(ctx.Regs[d.R.Rsd], amt)
	ctx.PC++
	return true
}

func bexRLV(d isa.Decoded, ctx *Context, v *VM) bool {
	amt := ctx.Regs[d.R.Rs] & 0x1F
	ctx.Regs[d.R.Rsd] = rotateRight(ctx.Regs[d.R.Rsd], amt)
	ctx.PC--
	return true
}

func fexRR(d isa.Decoded, ctx *Context, v *VM) bool {
	ctx.Regs[d.R.Rsd] = rotateRight(ctx.Regs[d.R.Rsd], d.R.Shrot)
	ctx.PC++
	return true
}

func bexRR(d isa.Decoded, ctx *Context, v *VM) bool {
	ctx.Regs[d.R.Rsd] = rotateLeft(ctx.Regs[d.R.Rsd], d.R.Shrot)
	ctx.PC--
	return true
}

func fexRRV(d isa.Decoded, ctx *Context, v *VM) bool {
	amt := ctx.Regs[d.R.Rs] & 0x1F
	ctx.Regs[d.R.Rsd] = rotateRight(ctx.Regs[d.R.Rsd], amt)
	ctx.PC++
	return true
}

func bexRRV(d isa.Decoded, ctx *Context, v *VM) bool {
	amt := ctx.Regs[d.R.Rs] & 0x1F
	ctx.Regs[d.R.Rsd] = rotateLeft(ctx.Regs[d.R.Rsd], amt)
	ctx.PC--
	return true
}

func fexSLL(d isa.Decoded, ctx *Context, v *VM) bool {
	pushDP(ctx.Regs[d.R.Rsd], ctx)
	ctx.Regs[d.R.Rsd] <<= d.R.Shrot
	ctx.PC++
	return true
}

func bexSLL(d isa.Decoded, ctx *Context, v *VM) bool { return popFromDP(d.R.Rsd, ctx) }

func fexSLLV(d isa.Decoded, ctx *Context, v *VM) bool {
	amt := ctx.Regs[d.R.Rs] & 0x1F
	pushDP(ctx.Regs[d.R.Rsd], ctx)
	ctx.Regs[d.R.Rsd] <<= amt
	ctx.PC++
	return true
}

func bexSLLV(d isa.Decoded, ctx *Context, v *VM) bool { return popFromDP(d.R.Rsd, ctx) }

func fexSLT(d isa.Decoded, ctx *Context, v *VM) bool {
	rsdval, rsval := ctx.Regs[d.R.Rsd], ctx.Regs[d.R.Rs]
	pushDP(rsdval, ctx)
	ctx.PC++
	ctx.Regs[d.R.Rsd] = slt(rsdval, rsval)
	return true
}

func bexSLT(d isa.Decoded, ctx *Context, v *VM) bool { return popFromDP(d.R.Rsd, ctx) }

func fexSLTI(d isa.Decoded, ctx *Context, v *VM) bool {
	rsdval := ctx.Regs[d.I.Rsd]
	imm := uint32(isa.SignExtend(d.I.Immediate, 21))
	pushDP(rsdval, ctx)
	ctx.PC++
	ctx.Regs[d.I.Rsd] = slt(rsdval, imm)
	return true
}

func bexSLTI(d isa.Decoded, ctx *Context, v *VM) bool { return popFromDP(d.I.Rsd, ctx) }

func fexSRA(d isa.Decoded, ctx *Context, v *VM) bool {
	amt := d.R.Shrot
	pushDP(ctx.Regs[d.R.Rsd], ctx)
	ctx.Regs[d.R.Rsd] = uint32(isa.SignExtend(ctx.Regs[d.R.Rsd]>>amt, uint(32-amt)))
	ctx.PC++
	return true
}

func bexSRA(d isa.Decoded, ctx *Context, v *VM) bool { return popFromDP(d.R.Rsd, ctx) }

func fexSRAV(d isa.Decoded, ctx *Context, v *VM) bool {
	amt := ctx.Regs[d.R.Rs] & 0x1F
	pushDP(ctx.Regs[d.R.Rsd], ctx)
	ctx.Regs[d.R.Rsd] = uint32(isa.SignExtend(ctx.Regs[d.R.Rsd]>>amt, uint(32-amt)))
	ctx.PC++
	return true
}

func bexSRAV(d isa.Decoded, ctx *Context, v *VM) bool { return popFromDP(d.R.Rsd, ctx) }

func fexSRL(d isa.Decoded, ctx *Context, v *VM) bool {
	pushDP(ctx.Regs[d.R.Rsd], ctx)
	ctx.Regs[d.R.Rsd] >>= d.R.Shrot
	ctx.PC++
	return true
}

func bexSRL(d isa.Decoded, ctx *Context, v *VM) bool { return popFromDP(d.R.Rsd, ctx) }

func fexSRLV(d isa.Decoded, ctx *Context, v *VM) bool {
	amt := ctx.Regs[d.R.Rs] & 0x1F
	pushDP(ctx.Regs[d.R.Rsd], ctx)
	ctx.Regs[d.R.Rsd] >>= amt
	ctx.PC++
	return true
}

func bexSRLV(d isa.Decoded, ctx *Context, v *VM) bool { return popFromDP(d.R.Rsd, ctx) }

func fexSUB(d isa.Decoded, ctx *Context, v *VM) bool {
	if d.R.Rsd == d.R.Rs {
		ctx.Error = ErrSubSameRegisters
		ctx.Halted = true
		return false
	}
	ctx.Regs[d.R.Rsd] -= ctx.Regs[d.R.Rs]
	ctx.PC++
	return true
}

func bexSUB(d isa.Decoded, ctx *Context, v *VM) bool {
	if d.R.Rsd == d.R.Rs {
		ctx.Error = ErrSubSameRegisters
		ctx.Halted = true
		return false
	}
	ctx.Regs[d.R.Rsd] += ctx.Regs[d.R.Rs]
	ctx.PC--
	return true
}

func fexXOR(d isa.Decoded, ctx *Context, v *VM) bool {
	ctx.Regs[d.R.Rsd] ^= ctx.Regs[d.R.Rs]
	ctx.PC++
	return true
}

func bexXOR(d isa.Decoded, ctx *Context, v *VM) bool {
	ctx.Regs[d.R.Rsd] ^= ctx.Regs[d.R.Rs]
	ctx.PC--
	return true
}

func fexXORI(d isa.Decoded, ctx *Context, v *VM) bool {
	ctx.Regs[d.I.Rsd] ^= uint32(isa.SignExtend(d.I.Immediate, 21))
	ctx.PC++
	return true
}

func bexXORI(d isa.Decoded, ctx *Context, v *VM) bool {
	ctx.Regs[d.I.Rsd] ^= uint32(isa.SignExtend(d.I.Immediate, 21))
	ctx.PC--
	return true
}

var forwardOps = map[isa.Mnemonic]opFunc{
	isa.ADD: fexADD, isa.ADDI: fexADDI, isa.AND: fexAND, isa.ANDI: fexANDI,
	isa.BEQ: fexBEQ, isa.BGEZ: fexBGEZ, isa.BGEZAL: fexBGEZAL, isa.BGTZ: fexBGTZ,
	isa.BLEZ: fexBLEZ, isa.BLTZ: fexBLTZ, isa.BLTZAL: fexBLTZAL, isa.BNE: fexBNE,
	isa.CF: fexCF, isa.EXCHANGE: fexEXCHANGE, isa.J: fexJ, isa.JAL: fexJAL,
	isa.JALR: fexJALR, isa.JR: fexJR, isa.NOR: fexNOR, isa.NEG: fexNEG,
	isa.OR: fexOR, isa.ORI: fexORI, isa.RL: fexRL, isa.RLV: fexRLV,
	isa.RR: fexRR, isa.RRV: fexRRV, isa.SLL: fexSLL, isa.SLLV: fexSLLV,
	isa.SLT: fexSLT, isa.SLTI: fexSLTI, isa.SRA: fexSRA, isa.SRAV: fexSRAV,
	isa.SRL: fexSRL, isa.SRLV: fexSRLV, isa.SUB: fexSUB, isa.XOR: fexXOR,
	isa.XORI: fexXORI,
}

var backwardOps = map[isa.Mnemonic]opFunc{
	isa.ADD: bexADD, isa.ADDI: bexADDI, isa.AND: bexAND, isa.ANDI: bexANDI,
	isa.BEQ: bexBEQ, isa.BGEZ: bexBGEZ, isa.BGEZAL: bexBGEZAL, isa.BGTZ: bexBGTZ,
	isa.BLEZ: bexBLEZ, isa.BLTZ: bexBLTZ, isa.BLTZAL: bexBLTZAL, isa.BNE: bexBNE,
	isa.CF: bexCF, isa.EXCHANGE: bexEXCHANGE, isa.J: bexJ, isa.JAL: bexJAL,
	isa.JALR: bexJALR, isa.JR: bexJR, isa.NOR: bexNOR, isa.NEG: bexNEG,
	isa.OR: bexOR, isa.ORI: bexORI, isa.RL: bexRL, isa.RLV: bexRLV,
	isa.RR: bexRR, isa.RRV: bexRRV, isa.SLL: bexSLL, isa.SLLV: bexSLLV,
	isa.SLT: bexSLT, isa.SLTI: bexSLTI, isa.SRA: bexSRA, isa.SRAV: bexSRAV,
	isa.SRL: bexSRL, isa.SRLV: bexSRLV, isa.SUB: bexSUB, isa.XOR: bexXOR,
	isa.XORI: bexXORI,
}

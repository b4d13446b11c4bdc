package vm

import (
	"testing"

	"github.com/ocornoc/metronome32/isa"
)

func w(word isa.Word, err error) uint32 {
	if err != nil {
		panic(err)
	}
	return uint32(word)
}

// multiplyProgram is the textbook call/loop/return program: it computes
// R0 *= R1 via repeated addition, exercising JAL/CF/branch/loop reversal
// end to end.
func multiplyProgram() []uint32 {
	return []uint32{
		uint32(isa.NewADDI(0, 300)),
		uint32(isa.NewADDI(1, 300)),
		uint32(isa.NewJAL(31, 2)),
		uint32(isa.NewCF()),
		uint32(isa.NewCF()),
		uint32(isa.NewANDI(2, 0)),
		w(isa.NewADD(2, 0)),
		uint32(isa.NewANDI(0, 0)),
		uint32(isa.NewBEQ(0, 1, 6)),
		uint32(isa.NewBLEZ(2, 5)),
		uint32(isa.NewCF()),
		w(isa.NewADD(0, 1)),
		uint32(isa.NewADDI(2, -1)),
		uint32(isa.NewBGTZ(2, -3)),
		uint32(isa.NewCF()),
		uint32(isa.NewJR(31)),
	}
}

func TestMultiplyProgramForwardAndBackward(t *testing.T) {
	v := New(multiplyProgram(), 0, 0)

	for v.GetContext().PC != 4 {
		if !v.Step() {
			t.Fatalf("forward step failed at pc=%d: %s", v.GetContext().PC, v.GetErrorName())
		}
	}
	if got := v.GetContext().Regs[0]; got != 90000 {
		t.Fatalf("R0 = %d, want 90000", got)
	}

	v.Reverse()
	for v.GetContext().PC != 0 {
		if !v.Step() {
			t.Fatalf("backward step failed at pc=%d: %s", v.GetContext().PC, v.GetErrorName())
		}
	}

	final := v.GetContext()
	for i, r := range final.Regs {
		if r != 0 {
			t.Errorf("R%d = %d after full reversal, want 0", i, r)
		}
	}
	if len(final.DP) != 0 {
		t.Errorf("DP stack not empty after full reversal: %v", final.DP)
	}
	if len(final.PCS) != 0 {
		t.Errorf("PC stack not empty after full reversal: %v", final.PCS)
	}
}

func TestBackwardIsExactInverseOfForward(t *testing.T) {
	v := New(multiplyProgram(), 0, 0)
	before := v.GetContext()

	if !v.Step() {
		t.Fatalf("forward step failed: %s", v.GetErrorName())
	}
	v.Reverse(true)
	if !v.Step() {
		t.Fatalf("backward step failed: %s", v.GetErrorName())
	}

	after := v.GetContext()
	if after.PC != before.PC || after.Regs != before.Regs ||
		len(after.DP) != len(before.DP) || len(after.PCS) != len(before.PCS) {
		t.Fatalf("round trip mismatch: before=%+v after=%+v", before, after)
	}
}

func TestMissingCFHalts(t *testing.T) {
	// BEQ r0,r0 is always taken; the branch target (pc+2) is never
	// written, so it reads back as the memory default, not a CF.
	image := []uint32{uint32(isa.NewBEQ(0, 0, 2))}
	v := New(image, 0, 0)
	if v.Step() {
		t.Fatal("expected step to fail on missing CF")
	}
	if v.GetErrorCode() != ErrMissingCF {
		t.Fatalf("error = %v, want ErrMissingCF", v.GetErrorCode())
	}
	if !v.Halted() {
		t.Fatal("expected machine to be halted")
	}
	if v.GetContext().PC != 0 {
		t.Fatalf("PC advanced on missing_cf: got %d, want 0", v.GetContext().PC)
	}
}

func TestUnclearLinkHalts(t *testing.T) {
	image := []uint32{
		uint32(isa.NewJAL(1, 1)), // link register r1 nonzero below
		uint32(isa.NewCF()),
	}
	v := New(image, 0, 0)
	ctx := v.GetContext()
	ctx.Regs[1] = 42
	v.SetContext(ctx)

	if v.Step() {
		t.Fatal("expected step to fail on unclear link")
	}
	if v.GetErrorCode() != ErrUnclearLink {
		t.Fatalf("error = %v, want ErrUnclearLink", v.GetErrorCode())
	}
}

func TestSubSameRegistersHalts(t *testing.T) {
	image := []uint32{uint32(isa.RForm{Op: 0, Rsd: 3, Rs: 3, Func: 0b00000000100}.Encode())}
	v := New(image, 0, 0)
	if v.Step() {
		t.Fatal("expected step to fail on sub_same_registers")
	}
	if v.GetErrorCode() != ErrSubSameRegisters {
		t.Fatalf("error = %v, want ErrSubSameRegisters", v.GetErrorCode())
	}
}

func TestDPStackEmptyHalts(t *testing.T) {
	// Stepping backward over an AND with nothing on the DP stack (as if
	// the stack had never recorded this instruction's forward step).
	v := New(nil, 1, 0)
	ctx := v.GetContext()
	ctx.Mem.Write(0, w(isa.NewAND(1, 2)))
	v.SetContext(ctx)
	v.Reverse(true)

	if v.Step() {
		t.Fatal("expected backward AND with empty DP stack to fail")
	}
	if v.GetErrorCode() != ErrDPStackEmpty {
		t.Fatalf("error = %v, want ErrDPStackEmpty", v.GetErrorCode())
	}
}

func TestPCStackEmptyHalts(t *testing.T) {
	v := New([]uint32{uint32(isa.NewCF())}, 1, 0)
	v.Reverse(true)
	if v.Step() {
		t.Fatal("expected backward CF with empty PC stack to fail")
	}
	if v.GetErrorCode() != ErrPCStackEmpty {
		t.Fatalf("error = %v, want ErrPCStackEmpty", v.GetErrorCode())
	}
}

func TestTrivialMemoryDefault(t *testing.T) {
	v := New(nil, 0, 0)
	if v.Step() {
		t.Fatal("naidefault must report failure")
	}
	if v.GetErrorCode() != ErrNAIDefault {
		t.Fatalf("error = %v, want ErrNAIDefault", v.GetErrorCode())
	}
	if v.Halted() {
		t.Fatal("naidefault must not halt the machine")
	}
	if !v.IsErrorTrivial() {
		t.Fatal("naidefault must be trivial")
	}
}

func TestNAIHaltsAndAdvancesPCOnlyForward(t *testing.T) {
	v := New([]uint32{0xFFFFFFFF}, 0, 0)
	if v.Step() {
		t.Fatal("expected nai to report failure")
	}
	if v.GetErrorCode() != ErrNAI || !v.Halted() {
		t.Fatalf("expected halted nai, got error=%v halted=%v", v.GetErrorCode(), v.Halted())
	}
	if v.GetContext().PC != 1 {
		t.Fatalf("forward nai should advance PC by one: got %d", v.GetContext().PC)
	}

	v2 := New([]uint32{0xFFFFFFFF}, 1, 0)
	v2.Reverse(true)
	if v2.Step() {
		t.Fatal("expected nai to report failure")
	}
	if v2.GetContext().PC != 1 {
		t.Fatalf("backward nai must not change PC: got %d", v2.GetContext().PC)
	}
}

func TestSLTSignCases(t *testing.T) {
	cases := []struct {
		rsd, rs uint32
		want    uint32
	}{
		{0, 0x80000000, 0}, // rsd non-negative, rs negative -> false
		{0x80000000, 0, 1}, // rsd negative, rs non-negative -> true
		{3, 5, 1},          // same sign, unsigned compare
		{5, 3, 0},
	}
	for _, c := range cases {
		image := []uint32{w(isa.NewSLT(1, 2))}
		v := New(image, 0, 0)
		ctx := v.GetContext()
		ctx.Regs[1] = c.rsd
		ctx.Regs[2] = c.rs
		v.SetContext(ctx)
		if !v.Step() {
			t.Fatalf("slt step failed: %s", v.GetErrorName())
		}
		if got := v.GetContext().Regs[1]; got != c.want {
			t.Errorf("slt(%#x, %#x) = %d, want %d", c.rsd, c.rs, got, c.want)
		}
	}
}

func TestHaltRefusesToClearUnderNonTrivialError(t *testing.T) {
	v := New([]uint32{uint32(isa.NewJR(2))}, 0, 0) // missing CF at r2's (zero) address
	v.Step()
	if !v.Halted() {
		t.Fatal("expected machine halted")
	}
	if v.Halt(false) {
		t.Fatal("expected Halt(false) to refuse clearing under a non-trivial error")
	}
	if !v.Halted() {
		t.Fatal("machine should remain halted")
	}
}

package isa

import "testing"

func TestShapeRoundTrip(t *testing.T) {
	r := RForm{Op: 0, Rsd: 17, Rs: 3, Shrot: 9, Func: 0x7FF}
	if got := ToR(r.Encode()); got != r {
		t.Fatalf("R round-trip: got %+v, want %+v", got, r)
	}

	j := JForm{Op: 0x3F, Target: 0x3FFFFFF}
	if got := ToJ(j.Encode()); got != j {
		t.Fatalf("J round-trip: got %+v, want %+v", got, j)
	}

	b := BForm{Op: 0x2A, Ra: 31, Rb: 0, Offset: 0xFFFF}
	if got := ToB(b.Encode()); got != b {
		t.Fatalf("B round-trip: got %+v, want %+v", got, b)
	}

	i := IForm{Op: 0x18, Rsd: 1, Immediate: 0x1FFFFF}
	if got := ToI(i.Encode()); got != i {
		t.Fatalf("I round-trip: got %+v, want %+v", got, i)
	}
}

func TestSignExtend(t *testing.T) {
	cases := []struct {
		v    uint32
		bits uint
		want int32
	}{
		{0x1FFFFF, 21, -1},
		{0x100000, 21, -1048576},
		{0x000001, 21, 1},
		{0xFFFF, 16, -1},
		{0x8000, 16, -32768},
		{0x3FFFFFF, 26, -1},
	}
	for _, c := range cases {
		if got := SignExtend(c.v, c.bits); got != c.want {
			t.Errorf("SignExtend(0x%x, %d) = %d, want %d", c.v, c.bits, got, c.want)
		}
	}
}

func TestCFWordLiteral(t *testing.T) {
	if NewCF() != 0x34000000 {
		t.Fatalf("NewCF() = 0x%08x, want 0x34000000", uint32(NewCF()))
	}
	j := ToJ(NewCF())
	if !IsCF(j) {
		t.Fatalf("NewCF() does not classify as CF: %+v", j)
	}
}

package isa

import (
	"fmt"
	"testing"
)

func TestClassifyRoundTripsConstructors(t *testing.T) {
	cases := []struct {
		name string
		word Word
		want Mnemonic
	}{
		{"add", mustW(NewADD(1, 2)), ADD},
		{"and", mustW(NewAND(1, 2)), AND},
		{"nor", NewNOR(1, 2), NOR},
		{"neg", mustW(NewNEG(1, 2)), NEG},
		{"or", mustW(NewOR(1, 2)), OR},
		{"rl", NewRL(1, 5), RL},
		{"rlv", mustW(NewRLV(1, 2)), RLV},
		{"rr", NewRR(1, 5), RR},
		{"rrv", mustW(NewRRV(1, 2)), RRV},
		{"sll", NewSLL(1, 5), SLL},
		{"sllv", mustW(NewSLLV(1, 2)), SLLV},
		{"slt", mustW(NewSLT(1, 2)), SLT},
		{"sra", NewSRA(1, 5), SRA},
		{"srav", mustW(NewSRAV(1, 2)), SRAV},
		{"srl", NewSRL(1, 5), SRL},
		{"srlv", mustW(NewSRLV(1, 2)), SRLV},
		{"sub", mustW(NewSUB(1, 2)), SUB},
		{"xor", mustW(NewXOR(1, 2)), XOR},
		{"addi", NewADDI(1, -5), ADDI},
		{"andi", NewANDI(1, -5), ANDI},
		{"ori", NewORI(1, -5), ORI},
		{"slti", NewSLTI(1, -5), SLTI},
		{"xori", NewXORI(1, -5), XORI},
		{"cf", NewCF(), CF},
		{"j", NewJ(-12), J},
		{"beq", NewBEQ(1, 2, 4), BEQ},
		{"bne", NewBNE(1, 2, 4), BNE},
		{"bgez", NewBGEZ(1, 4), BGEZ},
		{"bgtz", NewBGTZ(1, 4), BGTZ},
		{"blez", NewBLEZ(1, 4), BLEZ},
		{"bltz", NewBLTZ(1, 4), BLTZ},
		{"bgezal", NewBGEZAL(31, 1, 4), BGEZAL},
		{"bltzal", NewBLTZAL(31, 1, 4), BLTZAL},
		{"jal", NewJAL(31, 4), JAL},
		{"jalr", NewJALR(31, 2), JALR},
		{"jr", NewJR(2), JR},
		{"exchange", NewEXCHANGE(1, 2), EXCHANGE},
	}
	for _, c := range cases {
		d, ok := Classify(c.word)
		if !ok {
			t.Errorf("%s: Classify(0x%08x) failed to classify", c.name, uint32(c.word))
			continue
		}
		if d.Mnemonic != c.want {
			t.Errorf("%s: Classify(0x%08x) = %s, want %s", c.name, uint32(c.word), d.Mnemonic, c.want)
		}
	}
}

func TestClassifyRejectsGarbage(t *testing.T) {
	if _, ok := Classify(0xFFFFFFFF); ok {
		t.Fatal("expected 0xFFFFFFFF to not classify as any instruction")
	}
}

func TestConstructorsRejectSameRegister(t *testing.T) {
	ctors := []func(uint32, uint32) (Word, error){
		NewADD, NewAND, NewNEG, NewOR, NewRLV, NewRRV, NewSLLV, NewSLT, NewSRAV, NewSRLV, NewSUB, NewXOR,
	}
	for i, ctor := range ctors {
		if _, err := ctor(5, 5); err != ErrSameRegister {
			t.Errorf("ctor %d: expected ErrSameRegister, got %v", i, err)
		}
	}
}

func mustW(w Word, err error) Word {
	if err != nil {
		panic(fmt.Sprintf("unexpected error: %v", err))
	}
	return w
}

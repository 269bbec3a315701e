package riscv

import (
	"github.com/Manu343726/tdesc/pkg/isa"
	"github.com/Manu343726/tdesc/pkg/isa/regs"
)

// Builds the register description of the RISC-V target: two 32 register banks
// (integer and floating point), the full-bank GPR and FPR classes, and the
// GPR8/FPR8 subsets covering the registers addressable by the compressed
// instruction encodings.
func Describe() (*isa.TargetDescription, error) {
	b := isa.NewTargetBuilder("riscv")

	// x0, a.k.a. zero, is part of the bank. Allocation treats it as reserved
	intRegs, err := b.AddBank("IntRegs", "General purpose registers", 32, "x")

	if err != nil {
		return nil, err
	}

	floatRegs, err := b.AddBank("FloatRegs", "Floating point registers", 32, "f")

	if err != nil {
		return nil, err
	}

	gpr, err := b.AddClass("GPR", regs.FromBank(intRegs))

	if err != nil {
		return nil, err
	}

	// The popular registers used by the compressed instructions; x8-x15
	gpr8, err := gpr.Slice(8, 16)

	if err != nil {
		return nil, err
	}

	if _, err := b.AddClass("GPR8", gpr8); err != nil {
		return nil, err
	}

	fpr, err := b.AddClass("FPR", regs.FromBank(floatRegs))

	if err != nil {
		return nil, err
	}

	fpr8, err := fpr.Slice(8, 16)

	if err != nil {
		return nil, err
	}

	if _, err := b.AddClass("FPR8", fpr8); err != nil {
		return nil, err
	}

	if err := b.BindAlias("SP", gpr, 2); err != nil {
		return nil, err
	}

	return b.Build()
}

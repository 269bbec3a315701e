package cucaracha

import (
	"github.com/Manu343726/tdesc/pkg/isa"
	"github.com/Manu343726/tdesc/pkg/isa/regs"
)

// Builds the register description of the Cucaracha architecture: the CPU state
// bank with its well known pc/sp/cpsr/lr aliases and the general purpose
// word-sized integer bank.
func Describe() (*isa.TargetDescription, error) {
	b := isa.NewTargetBuilder("cucaracha")

	stateRegs, err := b.AddBank("StateRegs", "CPU state registers", 4, "st")

	if err != nil {
		return nil, err
	}

	intRegs, err := b.AddBank("IntRegs", "General purpose word-sized 32 bit integer registers", 10, "r")

	if err != nil {
		return nil, err
	}

	state, err := b.AddClass("State", regs.FromBank(stateRegs))

	if err != nil {
		return nil, err
	}

	gpr, err := b.AddClass("GPR", regs.FromBank(intRegs))

	if err != nil {
		return nil, err
	}

	// r0-r3 carry call arguments and return values
	gpr4, err := gpr.Slice(0, 4)

	if err != nil {
		return nil, err
	}

	if _, err := b.AddClass("GPR4", gpr4); err != nil {
		return nil, err
	}

	for offset, identifier := range []string{"pc", "sp", "cpsr", "lr"} {
		if err := b.BindAlias(identifier, state, offset); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

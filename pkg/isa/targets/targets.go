package targets

import (
	"github.com/Manu343726/tdesc/pkg/isa"
	"github.com/Manu343726/tdesc/pkg/isa/regs"
	"github.com/Manu343726/tdesc/pkg/isa/targets/cucaracha"
	"github.com/Manu343726/tdesc/pkg/isa/targets/riscv"
	"github.com/Manu343726/tdesc/pkg/utils"
)

// All the targets shipped with tdesc, indexed by target name
var All = map[string]func() (*isa.TargetDescription, error){
	"cucaracha": cucaracha.Describe,
	"riscv":     riscv.Describe,
}

// Returns the names of all shipped targets, in ascending order
func Names() []string {
	return utils.SortedKeys(All)
}

// Builds the register description of a shipped target given its name
func Describe(name string) (*isa.TargetDescription, error) {
	describe, exists := All[name]

	if !exists {
		return nil, utils.MakeError(regs.ErrConfiguration, "unknown target '%v', supported targets: %v", name, utils.FormatSlice(Names(), ", "))
	}

	return describe()
}

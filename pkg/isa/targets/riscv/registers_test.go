package riscv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiscvRegisterDescription(t *testing.T) {
	description, err := Describe()

	assert.Nil(t, err)
	assert.NotNil(t, description)
	assert.Equal(t, "riscv", description.Isa())

	intRegs, err := description.Bank("IntRegs")
	assert.Nil(t, err)
	assert.Equal(t, 32, intRegs.RegisterCount())
	assert.Equal(t, "x", intRegs.Prefix())

	gpr, err := description.Class("GPR")
	assert.Nil(t, err)
	assert.Equal(t, 32, gpr.TotalRegisters())

	index, err := gpr.At(2)
	assert.Nil(t, err)
	assert.Equal(t, 2, index)

	name, err := intRegs.NameOf(index)
	assert.Nil(t, err)
	assert.Equal(t, "x2", name)

	gpr8, err := description.Class("GPR8")
	assert.Nil(t, err)
	assert.Equal(t, []int{8, 9, 10, 11, 12, 13, 14, 15}, gpr8.Members())

	index, err = gpr8.At(0)
	assert.Nil(t, err)
	assert.Equal(t, 8, index)

	sp, err := description.Alias("SP")
	assert.Nil(t, err)
	assert.Equal(t, intRegs, sp.Bank)
	assert.Equal(t, 2, sp.Index)

	fpr8, err := description.Class("FPR8")
	assert.Nil(t, err)
	assert.Equal(t, "FloatRegs", fpr8.Bank().Name())
	assert.Equal(t, []int{8, 9, 10, 11, 12, 13, 14, 15}, fpr8.Members())
}

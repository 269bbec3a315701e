package cucaracha

import (
	"testing"

	"github.com/Manu343726/tdesc/pkg/isa/regs"
	"github.com/stretchr/testify/assert"
)

func TestCucarachaRegisterDescription(t *testing.T) {
	description, err := Describe()

	assert.Nil(t, err)
	assert.Equal(t, "cucaracha", description.Isa())

	stateRegs, err := description.Bank("StateRegs")
	assert.Nil(t, err)

	for index, identifier := range []string{"pc", "sp", "cpsr", "lr"} {
		handle, err := description.Alias(identifier)
		assert.Nil(t, err)
		assert.Equal(t, stateRegs, handle.Bank)
		assert.Equal(t, index, handle.Index)
	}

	// Explicit aliases win over the synthesized st0..st3 names
	assert.Equal(t, "pc", description.DisplayName(regs.Handle{Bank: stateRegs, Index: 0}))

	gpr4, err := description.Class("GPR4")
	assert.Nil(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, gpr4.Members())
	assert.Equal(t, "IntRegs", gpr4.Bank().Name())
}

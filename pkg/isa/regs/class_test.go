package regs

import (
	"math"
	"testing"

	"github.com/Manu343726/tdesc/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func makeIntRegs(t *testing.T) *Bank {
	bank, err := NewBank("IntRegs", "riscv", "General purpose registers", 32, "x")

	assert.Nil(t, err)
	assert.NotNil(t, bank)

	return bank
}

func TestNewBankValidatesParameters(t *testing.T) {
	_, err := NewBank("IntRegs", "riscv", "", 0, "x")
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewBank("IntRegs", "riscv", "", -1, "x")
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewBank("IntRegs", "riscv", "", 32, "")
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewBank("", "riscv", "", 32, "x")
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestBankDefaultNames(t *testing.T) {
	bank := makeIntRegs(t)

	name, err := bank.NameOf(2)
	assert.Nil(t, err)
	assert.Equal(t, "x2", name)

	_, err = bank.NameOf(32)
	assert.ErrorIs(t, err, ErrRange)

	_, err = bank.NameOf(-1)
	assert.ErrorIs(t, err, ErrRange)

	// Default names are unique within the bank
	names := map[string]bool{}

	for _, index := range utils.Indices(bank.RegisterCount()) {
		name, err := bank.NameOf(index)
		assert.Nil(t, err)
		assert.False(t, names[name])
		names[name] = true
	}
}

func TestFromBankSelectsEveryRegisterInOrder(t *testing.T) {
	bank := makeIntRegs(t)
	class := FromBank(bank)

	assert.Equal(t, bank, class.Bank())
	assert.Equal(t, 32, class.TotalRegisters())
	assert.Equal(t, utils.Indices(32), class.Members())
}

func TestAtReturnsBankIndices(t *testing.T) {
	gpr := FromBank(makeIntRegs(t))

	index, err := gpr.At(2)
	assert.Nil(t, err)
	assert.Equal(t, 2, index)

	gpr8, err := gpr.Slice(8, 16)
	assert.Nil(t, err)

	// Offsets are relative to the class, results are bank indices
	index, err = gpr8.At(0)
	assert.Nil(t, err)
	assert.Equal(t, 8, index)

	_, err = gpr8.At(8)
	assert.ErrorIs(t, err, ErrRange)

	_, err = gpr8.At(-1)
	assert.ErrorIs(t, err, ErrRange)
}

func TestSlicingComposesWithTheParentSelection(t *testing.T) {
	gpr := FromBank(makeIntRegs(t))

	gpr8, err := gpr.Slice(8, 16)
	assert.Nil(t, err)
	assert.Equal(t, []int{8, 9, 10, 11, 12, 13, 14, 15}, gpr8.Members())

	// Slicing a class slices its view, not the raw bank indices
	low, err := gpr8.Slice(0, 4)
	assert.Nil(t, err)
	assert.Equal(t, []int{8, 9, 10, 11}, low.Members())

	odd, err := gpr8.SliceStep(1, End, 2)
	assert.Nil(t, err)
	assert.Equal(t, []int{9, 11, 13, 15}, odd.Members())
}

func TestSlicingWithOversizedStepsSelectsTheStartMember(t *testing.T) {
	gpr := FromBank(makeIntRegs(t))

	single, err := gpr.SliceStep(1, End, math.MaxInt)

	assert.Nil(t, err)
	assert.Equal(t, []int{1}, single.Members())
}

func TestSlicingOutsideTheBankFails(t *testing.T) {
	gpr := FromBank(makeIntRegs(t))

	_, err := gpr.Slice(40, 41)
	assert.ErrorIs(t, err, ErrRange)

	_, err = gpr.Slice(16, 8)
	assert.ErrorIs(t, err, ErrRange)
}

func TestBankSliceIsEquivalentToSlicingTheFullClass(t *testing.T) {
	bank := makeIntRegs(t)

	fromBank, err := bank.Slice(8, 16)
	assert.Nil(t, err)

	fromClass, err := FromBank(bank).Slice(8, 16)
	assert.Nil(t, err)

	assert.Equal(t, fromClass.Members(), fromBank.Members())
}

func TestClassPrefixDefaultsToTheBankPrefix(t *testing.T) {
	gpr := FromBank(makeIntRegs(t))

	assert.Equal(t, "x", gpr.Prefix())
	assert.Equal(t, "w", gpr.WithPrefix("w").Prefix())

	// WithPrefix returns a copy
	assert.Equal(t, "x", gpr.Prefix())
}

func TestHandleNamesItsRegister(t *testing.T) {
	gpr := FromBank(makeIntRegs(t))

	handle, err := gpr.Handle(2)
	assert.Nil(t, err)
	assert.Equal(t, "x2", handle.Name())
	assert.Equal(t, 2, handle.Index)

	_, err = gpr.Handle(32)
	assert.ErrorIs(t, err, ErrRange)

	// Hand-constructed handles bypass validation, Name panics on them
	assert.Panics(t, func() {
		Handle{Bank: gpr.Bank(), Index: 99}.Name()
	})
}

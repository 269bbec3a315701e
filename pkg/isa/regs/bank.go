package regs

import (
	"fmt"

	"github.com/Manu343726/tdesc/pkg/utils"
)

// Describes a register bank: a fixed size array of uniformly named registers
// belonging to one instruction set target. Banks are immutable once created,
// register classes select subsets of a bank without owning or mutating it.
type Bank struct {
	name        string
	isa         string
	description string
	units       int
	prefix      string
}

// Creates a new register bank descriptor. Name and prefix uniqueness within the
// target is enforced by the TargetBuilder that registers the bank, not here.
func NewBank(name, isa, description string, units int, prefix string) (*Bank, error) {
	if len(name) == 0 {
		return nil, utils.MakeError(ErrConfiguration, "register banks must have a non-empty name")
	}

	if units <= 0 {
		return nil, utils.MakeError(ErrConfiguration, "register bank '%v' must have a positive number of units, got %v", name, units)
	}

	if len(prefix) == 0 {
		return nil, utils.MakeError(ErrConfiguration, "register bank '%v' must have a non-empty register name prefix", name)
	}

	return &Bank{
		name:        name,
		isa:         isa,
		description: description,
		units:       units,
		prefix:      prefix,
	}, nil
}

// Returns the bank name
func (b *Bank) Name() string {
	return b.name
}

// Returns the name of the instruction set target that owns the bank
func (b *Bank) Isa() string {
	return b.isa
}

// Returns the bank description (for documentation/debugging)
func (b *Bank) Description() string {
	return b.description
}

// Returns the total number of registers in the bank
func (b *Bank) RegisterCount() int {
	return b.units
}

// Returns the prefix used to synthesize default register names
func (b *Bank) Prefix() string {
	return b.prefix
}

// Returns the name used to refer to a register of the bank when no explicit alias exists
func (b *Bank) NameOf(index int) (string, error) {
	if index < 0 || index >= b.units {
		return "", utils.MakeError(ErrRange, "register index '%v' not found in bank, '%v' has only %v registers", index, b.name, b.units)
	}

	return b.prefix + fmt.Sprint(index), nil
}

// Derives a register class by slicing the bank's register array. Equivalent to FromBank(b).Slice(start, stop)
func (b *Bank) Slice(start, stop int) (*Class, error) {
	return FromBank(b).Slice(start, stop)
}

func (b *Bank) String() string {
	return b.name
}

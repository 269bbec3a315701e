package regs

import (
	"fmt"
	"slices"

	"github.com/Manu343726/tdesc/pkg/utils"
)

// A named, ordered subset of a register bank, used to constrain which registers
// a value may be assigned to. Classes are immutable: slicing derives new
// classes, it never changes the source. Many classes may select overlapping
// subsets of the same bank.
type Class struct {
	bank    *Bank
	members []int
	name    string
	prefix  string
}

// Creates a register class covering every register of a bank, in bank order
func FromBank(bank *Bank) *Class {
	return &Class{
		bank:    bank,
		members: utils.Indices(bank.RegisterCount()),
	}
}

// Returns the bank this class selects registers from
func (c *Class) Bank() *Bank {
	return c.bank
}

// Returns the class name. Empty until the class is registered with a TargetBuilder
func (c *Class) Name() string {
	return c.name
}

// Returns the prefix used to synthesize names for the class members. Defaults
// to the bank prefix unless overridden with WithPrefix
func (c *Class) Prefix() string {
	if len(c.prefix) > 0 {
		return c.prefix
	}

	return c.bank.Prefix()
}

// Returns the number of registers in the class
func (c *Class) TotalRegisters() int {
	return len(c.members)
}

// Returns the bank indices of all class members, in strictly increasing order
func (c *Class) Members() []int {
	return slices.Clone(c.members)
}

// Returns the bank index of the class member at the given class-relative offset
func (c *Class) At(offset int) (int, error) {
	if offset < 0 || offset >= len(c.members) {
		return 0, utils.MakeError(ErrRange, "offset '%v' not found in register class, '%v' has only %v registers", offset, c, len(c.members))
	}

	return c.members[offset], nil
}

// Returns a handle to the class member at the given class-relative offset
func (c *Class) Handle(offset int) (Handle, error) {
	index, err := c.At(offset)

	if err != nil {
		return Handle{}, err
	}

	return Handle{Bank: c.bank, Index: index}, nil
}

// Derives a new class selecting the [start, stop) members of this class.
// Slicing composes with the parent selection: positions are relative to this
// class's view of the bank, not to raw bank indices, so slicing GPR[8:16]
// with [0:4] yields bank indices 8 to 11.
func (c *Class) Slice(start, stop int) (*Class, error) {
	return c.SliceStep(start, stop, 1)
}

// Derives a new class selecting every step-th member of this class in [start, stop)
func (c *Class) SliceStep(start, stop, step int) (*Class, error) {
	positions, err := ResolveSlice(len(c.members), start, stop, step)

	if err != nil {
		return nil, err
	}

	return &Class{
		bank:    c.bank,
		prefix:  c.prefix,
		members: utils.Map(positions, func(position int) int { return c.members[position] }),
	}, nil
}

// Returns a copy of the class whose synthesized member names use the given
// prefix instead of the bank prefix
func (c *Class) WithPrefix(prefix string) *Class {
	renamed := *c
	renamed.prefix = prefix
	return &renamed
}

// Returns a copy of the class with the given name. The TargetBuilder uses this
// when registering a class, classes are never renamed in place
func (c *Class) Named(name string) *Class {
	renamed := *c
	renamed.name = name
	return &renamed
}

func (c *Class) String() string {
	if len(c.name) > 0 {
		return c.name
	}

	return fmt.Sprintf("%v[%v]", c.bank, utils.FormatSlice(c.members, ","))
}

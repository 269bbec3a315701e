package isa

import (
	"fmt"
	"strings"

	"github.com/Manu343726/tdesc/pkg/isa/regs"
	"github.com/Manu343726/tdesc/pkg/utils"
)

// The full register description of one instruction set target: its register
// banks, its register classes and the alias table mapping identifiers to
// concrete registers. Published by TargetBuilder.Build and immutable, code
// generation stages treat all three tables as read-only.
type TargetDescription struct {
	isa        string
	banks      map[string]*regs.Bank
	classes    map[string]*regs.Class
	aliases    map[string]regs.Handle
	bankOrder  []string
	classOrder []string
	explicit   []AliasBinding
}

// Returns the name of the described target
func (d *TargetDescription) Isa() string {
	return d.isa
}

// Returns a register bank given its name
func (d *TargetDescription) Bank(name string) (*regs.Bank, error) {
	if bank, exists := d.banks[name]; exists {
		return bank, nil
	}

	return nil, utils.MakeError(regs.ErrConfiguration, "no register bank '%v' in target '%v'", name, d.isa)
}

// Returns a register class given its name
func (d *TargetDescription) Class(name string) (*regs.Class, error) {
	if class, exists := d.classes[name]; exists {
		return class, nil
	}

	return nil, utils.MakeError(regs.ErrConfiguration, "no register class '%v' in target '%v'", name, d.isa)
}

// Returns the register a given alias identifier is bound to
func (d *TargetDescription) Alias(identifier string) (regs.Handle, error) {
	if handle, exists := d.aliases[identifier]; exists {
		return handle, nil
	}

	return regs.Handle{}, utils.MakeError(regs.ErrConfiguration, "no register alias '%v' in target '%v'", identifier, d.isa)
}

// Returns all register banks, in declaration order
func (d *TargetDescription) AllBanks() []*regs.Bank {
	return utils.Map(d.bankOrder, func(name string) *regs.Bank { return d.banks[name] })
}

// Returns all register classes, in declaration order
func (d *TargetDescription) AllClasses() []*regs.Class {
	return utils.Map(d.classOrder, func(name string) *regs.Class { return d.classes[name] })
}

// Returns the full alias table as (identifier, register) pairs sorted by identifier
func (d *TargetDescription) AllAliases() []AliasBinding {
	return utils.Map(utils.SortedKeys(d.aliases), func(identifier string) AliasBinding {
		return AliasBinding{
			Identifier: identifier,
			Handle:     d.aliases[identifier],
		}
	})
}

// Returns the explicitly declared single-register aliases, in declaration order
func (d *TargetDescription) ExplicitAliases() []AliasBinding {
	return d.explicit
}

// Returns all registers of a bank as handles, in index order
func (d *TargetDescription) Handles(bank *regs.Bank) []regs.Handle {
	return utils.Iota(bank.RegisterCount(), func(index int) regs.Handle {
		return regs.Handle{Bank: bank, Index: index}
	})
}

// Returns the display name of a register: its explicitly declared alias if one
// exists, the synthesized prefix+index name otherwise
func (d *TargetDescription) DisplayName(handle regs.Handle) string {
	for _, alias := range d.explicit {
		if alias.Handle == handle {
			return alias.Identifier
		}
	}

	return handle.Name()
}

// Returns the display names of all members of a class, in member order
func (d *TargetDescription) MemberNames(class *regs.Class) []string {
	return utils.Map(class.Members(), func(index int) string {
		return d.DisplayName(regs.Handle{Bank: class.Bank(), Index: index})
	})
}

// Dumps the whole register description as one big multiline string
func (d *TargetDescription) Documentation(leftpad int) string {
	leftpad_str := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("target: %v\n", d.isa))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total register banks: %v\n", len(d.banks)))

	for _, bank := range d.AllBanks() {
		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf("  %v (%v registers, prefix '%v'): %v\n", bank.Name(), bank.RegisterCount(), bank.Prefix(), bank.Description()))
	}

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total register classes: %v\n", len(d.classes)))

	for _, class := range d.AllClasses() {
		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf("  %v (bank %v): %v\n", class.Name(), class.Bank(), utils.FormatSlice(d.MemberNames(class), " ")))
	}

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total register aliases: %v\n", len(d.aliases)))

	for _, alias := range d.AllAliases() {
		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf("  %v -> %v\n", alias.Identifier, alias.Handle))
	}

	return builder.String()
}

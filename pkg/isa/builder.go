package isa

import (
	"fmt"

	"github.com/Manu343726/tdesc/pkg/isa/regs"
	"github.com/Manu343726/tdesc/pkg/utils"
)

// Collects the register banks, register classes and register aliases of one
// instruction set target and publishes them as an immutable TargetDescription.
//
// Construction is strictly ordered: banks are added first, classes reference
// registered banks, and Build runs the name binding pass exactly once over
// everything declared so far. The builder is the single writer, nothing is
// visible to consumers until Build succeeds and nothing is published if any
// declaration is invalid.
type TargetBuilder struct {
	isa     string
	banks   []*regs.Bank
	classes []*regs.Class
	aliases []AliasBinding
	built   bool
}

// An explicit single-register alias: one identifier bound to one concrete register
type AliasBinding struct {
	Identifier string
	Handle     regs.Handle
}

// Creates a builder for the register description of the given target
func NewTargetBuilder(isa string) *TargetBuilder {
	return &TargetBuilder{
		isa: isa,
	}
}

// Returns the name of the target being described
func (b *TargetBuilder) Isa() string {
	return b.isa
}

// Creates a register bank and registers it with the target. Bank names and
// register name prefixes must be unique within the target
func (b *TargetBuilder) AddBank(name, description string, units int, prefix string) (*regs.Bank, error) {
	if b.built {
		return nil, b.sealedError()
	}

	bank, err := regs.NewBank(name, b.isa, description, units, prefix)

	if err != nil {
		return nil, err
	}

	for _, registered := range b.banks {
		if registered.Name() == name {
			return nil, utils.MakeError(regs.ErrConfiguration, "register bank '%v' already registered with target '%v'", name, b.isa)
		}

		if registered.Prefix() == prefix {
			return nil, utils.MakeError(regs.ErrConfiguration, "register name prefix '%v' of bank '%v' already used by bank '%v' of target '%v'", prefix, name, registered.Name(), b.isa)
		}
	}

	b.banks = append(b.banks, bank)

	return bank, nil
}

// Registers a register class with the target under the given name, returning
// the named class. The class must select registers from a bank registered with
// this builder
func (b *TargetBuilder) AddClass(name string, class *regs.Class) (*regs.Class, error) {
	if b.built {
		return nil, b.sealedError()
	}

	if len(name) == 0 {
		return nil, utils.MakeError(regs.ErrConfiguration, "register classes must be registered with a non-empty name")
	}

	for _, registered := range b.classes {
		if registered.Name() == name {
			return nil, utils.MakeError(regs.ErrConfiguration, "register class '%v' already registered with target '%v'", name, b.isa)
		}
	}

	owned := false

	for _, bank := range b.banks {
		if class.Bank() == bank {
			owned = true
			break
		}
	}

	if !owned {
		return nil, utils.MakeError(regs.ErrConfiguration, "register class '%v' references bank '%v', which is not registered with target '%v'", name, class.Bank(), b.isa)
	}

	named := class.Named(name)
	b.classes = append(b.classes, named)

	return named, nil
}

// Binds an identifier to the single register at the given class-relative
// offset, e.g. binding "SP" to offset 2 of a full-bank class names the third
// register of the bank. Conflicts are reported by Build, which runs the whole
// name binding pass
func (b *TargetBuilder) BindAlias(identifier string, class *regs.Class, offset int) error {
	if b.built {
		return b.sealedError()
	}

	if len(identifier) == 0 {
		return utils.MakeError(regs.ErrConfiguration, "register aliases must have a non-empty identifier")
	}

	handle, err := class.Handle(offset)

	if err != nil {
		return err
	}

	b.aliases = append(b.aliases, AliasBinding{
		Identifier: identifier,
		Handle:     handle,
	})

	return nil
}

// Runs the name binding pass and publishes the target description. For every
// registered class each member gets a synthesized prefix+index alias, then the
// explicit aliases are bound on top. Binding the same identifier twice to the
// same register is a no-op, binding it to a different register is an error and
// the first binding is never overwritten. Build seals the builder: it runs at
// most once, and on failure no description is published at all
func (b *TargetBuilder) Build() (*TargetDescription, error) {
	if b.built {
		return nil, b.sealedError()
	}

	b.built = true

	aliases := make(map[string]regs.Handle)

	bind := func(identifier string, handle regs.Handle) error {
		if bound, exists := aliases[identifier]; exists {
			if bound == handle {
				return nil
			}

			return utils.MakeError(regs.ErrConfiguration, "alias '%v' of target '%v' already bound to %v, cannot rebind it to %v", identifier, b.isa, bound, handle)
		}

		aliases[identifier] = handle
		return nil
	}

	for _, class := range b.classes {
		for _, index := range class.Members() {
			identifier := class.Prefix() + fmt.Sprint(index)

			if err := bind(identifier, regs.Handle{Bank: class.Bank(), Index: index}); err != nil {
				return nil, err
			}
		}
	}

	for _, alias := range b.aliases {
		if err := bind(alias.Identifier, alias.Handle); err != nil {
			return nil, err
		}
	}

	return &TargetDescription{
		isa:        b.isa,
		banks:      utils.GenMap(b.banks, func(bank *regs.Bank) string { return bank.Name() }),
		classes:    utils.GenMap(b.classes, func(class *regs.Class) string { return class.Name() }),
		aliases:    aliases,
		bankOrder:  utils.Map(b.banks, func(bank *regs.Bank) string { return bank.Name() }),
		classOrder: utils.Map(b.classes, func(class *regs.Class) string { return class.Name() }),
		explicit:   b.aliases,
	}, nil
}

func (b *TargetBuilder) sealedError() error {
	return utils.MakeError(regs.ErrConfiguration, "description of target '%v' has already been built, builders are sealed after Build", b.isa)
}

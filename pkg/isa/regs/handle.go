package regs

import "fmt"

// A single concrete register: one bank plus an absolute index within it.
// Aliases resolve to handles, never to classes, a handle names exactly one
// register while a class constrains allocation over one or more.
type Handle struct {
	Bank  *Bank
	Index int
}

// Returns the default name of the register the handle points to. Handles
// built through Class.Handle or published in a TargetDescription always carry
// a validated index; Name panics on a hand-constructed handle pointing
// outside its bank.
func (h Handle) Name() string {
	name, err := h.Bank.NameOf(h.Index)

	if err != nil {
		panic(err)
	}

	return name
}

func (h Handle) String() string {
	return fmt.Sprintf("%v[%v]", h.Bank, h.Index)
}

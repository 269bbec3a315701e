package regs

import "errors"

// Raised when a bank, class or alias is declared with invalid or conflicting parameters
var ErrConfiguration = errors.New("invalid register description")

// Raised when a slice or register offset falls outside the bounds of its container
var ErrRange = errors.New("register range out of bounds")

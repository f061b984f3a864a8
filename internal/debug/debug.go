// Package debug holds the contract checks shared by the atomic engine.
package debug

import "fmt"

// ContractError is the panic value raised when a caller breaks the contract
// of an operation, such as passing an ordering outside the legal set.
type ContractError struct {
	Op   string
	Info string
}

func (e *ContractError) Error() string {
	return "contract violation: " + e.Op + ": " + e.Info
}

// Assert panics with a *ContractError if ok is false.
func Assert(op, info string, ok bool) {
	if !ok {
		panic(&ContractError{Op: op, Info: info})
	}
}

// Failf panics with a *ContractError built from the format.
func Failf(op, format string, args ...interface{}) {
	panic(&ContractError{Op: op, Info: fmt.Sprintf(format, args...)})
}

package atom

import (
	"github.com/qRoC/Loobee-OldRepository/internal/risky"
)

// The fetch operations come in pairs: FetchAndX returns the value before the
// update and XAndFetch the value after it. Arithmetic wraps around at the
// width of T.

// FetchAndAdd atomically adds operand to cell and returns the prior value.
func FetchAndAdd[T Integer](cell *T, operand T, order Order) T {
	orderOf("FetchAndAdd", order)
	return risky.FromBits[T](refOf(cell).rmw(opAdd, risky.Bits(operand)))
}

// AddAndFetch atomically adds operand to cell and returns the new value.
func AddAndFetch[T Integer](cell *T, operand T, order Order) T {
	orderOf("AddAndFetch", order)
	return risky.FromBits[T](refOf(cell).rmw(opAdd, risky.Bits(operand))) + operand
}

// FetchAndSub atomically subtracts operand from cell and returns the prior
// value.
func FetchAndSub[T Integer](cell *T, operand T, order Order) T {
	orderOf("FetchAndSub", order)
	return risky.FromBits[T](refOf(cell).rmw(opAdd, -risky.Bits(operand)))
}

// SubAndFetch atomically subtracts operand from cell and returns the new
// value.
func SubAndFetch[T Integer](cell *T, operand T, order Order) T {
	orderOf("SubAndFetch", order)
	return risky.FromBits[T](refOf(cell).rmw(opAdd, -risky.Bits(operand))) - operand
}

// FetchAndBitAnd atomically ANDs operand into cell and returns the prior
// value.
func FetchAndBitAnd[T Integer](cell *T, operand T, order Order) T {
	orderOf("FetchAndBitAnd", order)
	return risky.FromBits[T](refOf(cell).rmw(opAnd, risky.Bits(operand)))
}

// BitAndAndFetch atomically ANDs operand into cell and returns the new value.
func BitAndAndFetch[T Integer](cell *T, operand T, order Order) T {
	orderOf("BitAndAndFetch", order)
	return risky.FromBits[T](refOf(cell).rmw(opAnd, risky.Bits(operand))) & operand
}

// FetchAndBitOr atomically ORs operand into cell and returns the prior value.
func FetchAndBitOr[T Integer](cell *T, operand T, order Order) T {
	orderOf("FetchAndBitOr", order)
	return risky.FromBits[T](refOf(cell).rmw(opOr, risky.Bits(operand)))
}

// BitOrAndFetch atomically ORs operand into cell and returns the new value.
func BitOrAndFetch[T Integer](cell *T, operand T, order Order) T {
	orderOf("BitOrAndFetch", order)
	return risky.FromBits[T](refOf(cell).rmw(opOr, risky.Bits(operand))) | operand
}

// FetchAndBitXor atomically XORs operand into cell and returns the prior
// value.
func FetchAndBitXor[T Integer](cell *T, operand T, order Order) T {
	orderOf("FetchAndBitXor", order)
	return risky.FromBits[T](refOf(cell).rmw(opXor, risky.Bits(operand)))
}

// BitXorAndFetch atomically XORs operand into cell and returns the new value.
func BitXorAndFetch[T Integer](cell *T, operand T, order Order) T {
	orderOf("BitXorAndFetch", order)
	return risky.FromBits[T](refOf(cell).rmw(opXor, risky.Bits(operand))) ^ operand
}

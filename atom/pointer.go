package atom

import (
	"sync/atomic"
	"unsafe"

	"github.com/qRoC/Loobee-OldRepository/internal/debug"
)

// Pointer cells follow the same ordering contract as scalar cells. They go
// through sync/atomic's pointer functions so the garbage collector sees every
// write.

func pointerCell[T any](cell **T) *unsafe.Pointer {
	return (*unsafe.Pointer)(unsafe.Pointer(cell))
}

// LoadPointer atomically reads the pointer held by cell.
func LoadPointer[T any](cell **T, order LoadOrder) *T {
	checkLoad("LoadPointer", order)
	return (*T)(atomic.LoadPointer(pointerCell(cell)))
}

// StorePointer atomically writes v into cell.
func StorePointer[T any](cell **T, v *T, order StoreOrder) {
	checkStore("StorePointer", order)
	atomic.StorePointer(pointerCell(cell), unsafe.Pointer(v))
}

// ExchangePointer atomically replaces the pointer held by cell with v and
// returns the pointer it replaced.
func ExchangePointer[T any](cell **T, v *T, order Order) *T {
	orderOf("ExchangePointer", order)
	return (*T)(atomic.SwapPointer(pointerCell(cell), unsafe.Pointer(v)))
}

// CompareExchangePointer replaces the pointer held by cell with desired if it
// equals *expected. On failure the observed pointer is written to *expected.
// It never fails spuriously.
func CompareExchangePointer[T any](cell, expected **T, desired *T, success Order, failure LoadOrder) bool {
	checkCompareExchange("CompareExchangePointer", success, failure)
	debug.Assert("CompareExchangePointer", "nil expected", expected != nil)

	p, old := pointerCell(cell), unsafe.Pointer(*expected)
	for {
		if atomic.CompareAndSwapPointer(p, old, unsafe.Pointer(desired)) {
			return true
		}
		if cur := atomic.LoadPointer(p); cur != old {
			*expected = (*T)(cur)
			return false
		}
	}
}

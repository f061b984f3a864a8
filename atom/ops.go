package atom

import (
	"github.com/qRoC/Loobee-OldRepository/internal/debug"
	"github.com/qRoC/Loobee-OldRepository/internal/risky"
)

// Store atomically writes v into cell.
func Store[T Scalar](cell *T, v T, order StoreOrder) {
	checkStore("Store", order)
	refOf(cell).store(risky.Bits(v))
}

// Load atomically reads the value of cell.
func Load[T Scalar](cell *T, order LoadOrder) T {
	checkLoad("Load", order)
	return risky.FromBits[T](refOf(cell).load())
}

// Exchange atomically replaces the value of cell with v and returns the
// value it replaced.
func Exchange[T Scalar](cell *T, v T, order Order) T {
	orderOf("Exchange", order)
	return risky.FromBits[T](refOf(cell).rmw(opSwap, risky.Bits(v)))
}

// CompareExchangeWeak replaces the value of cell with desired if it equals
// *expected and reports whether it did. Otherwise it stores the value it
// observed into *expected. It may fail even when the values are equal, so it
// belongs in a retry loop.
//
// failure must not be stronger than success.
func CompareExchangeWeak[T Scalar](cell, expected *T, desired T, success Order, failure LoadOrder) bool {
	checkCompareExchange("CompareExchangeWeak", success, failure)
	return compareExchange(cell, expected, desired, true)
}

// CompareExchangeStrong is like CompareExchangeWeak but only fails when the
// value of cell differs from *expected.
func CompareExchangeStrong[T Scalar](cell, expected *T, desired T, success Order, failure LoadOrder) bool {
	checkCompareExchange("CompareExchangeStrong", success, failure)
	return compareExchange(cell, expected, desired, false)
}

// CompareExchangeWeakOrder is CompareExchangeWeak with the failure ordering
// derived from order by FailureOrder.
func CompareExchangeWeakOrder[T Scalar](cell, expected *T, desired T, order Order) bool {
	return CompareExchangeWeak(cell, expected, desired, order, FailureOrder(order))
}

// CompareExchangeStrongOrder is CompareExchangeStrong with the failure
// ordering derived from order by FailureOrder.
func CompareExchangeStrongOrder[T Scalar](cell, expected *T, desired T, order Order) bool {
	return CompareExchangeStrong(cell, expected, desired, order, FailureOrder(order))
}

func compareExchange[T Scalar](cell, expected *T, desired T, weak bool) bool {
	debug.Assert("CompareExchange", "nil expected", expected != nil)
	actual, ok := refOf(cell).cas(risky.Bits(*expected), risky.Bits(desired), weak)
	if !ok {
		*expected = risky.FromBits[T](actual)
	}
	return ok
}

// Package atom provides atomic operations on caller owned scalar cells with
// an explicit memory ordering on every call.
//
// The orderings legal for an operation are encoded in its parameter types:
// Load takes a LoadOrder, Store takes a StoreOrder, and the read-modify-write
// operations take any Order. Orderings only known at run time are converted
// with Ordering.ForLoad and Ordering.ForStore, which panic on misuse. Every
// contract violation panics with a *debug.ContractError rather than
// returning an error.
//
// Cells of 1 and 2 bytes are supported on every platform. On 386 and amd64
// they use the processor's byte and halfword instructions. Elsewhere they are
// updated with a 32 bit compare-and-swap on the enclosing word: the values of
// neighbouring bytes are preserved, but the race detector sees those bytes
// written, so plain accesses to a neighbour from another goroutine are
// reported as races there. Give such cells a 32 bit word of their own on
// those platforms when running with -race.
//
// IsLockFree reports, per type, whether a platform needs locks for some cells
// of that width.
package atom

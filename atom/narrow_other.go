//go:build !(386 || amd64) || !gc

package atom

// Without byte sized atomic instructions a narrow cell is updated through
// the 32 bit word that holds it. See lane.go.

const narrowNative = false

func narrowLoad(r ref) uint64 { return laneLoad(r) }

func narrowStore(r ref, v uint64) { laneUpdate(r, opSwap, v) }

func narrowUpdate(r ref, op rmwOp, v uint64) uint64 { return laneUpdate(r, op, v) }

func narrowCompareAndSwap(r ref, old, new uint64, weak bool) (uint64, bool) {
	return laneCompareAndSwap(r, old, new, weak)
}

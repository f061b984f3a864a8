package atom

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/qRoC/Loobee-OldRepository/internal/risky"
)

// On platforms without byte sized atomic instructions, cells narrower than
// 32 bits are updated through the aligned 32 bit word that holds them, the
// way the runtime builds its 8 bit atomics there. Bytes outside the cell's
// lane are only ever written back with the value they were read with.

func laneOf(r ref) (word *uint32, shift uint, mask uint32) {
	word, shift = risky.Word(r.p, r.size, cpu.IsBigEndian)
	mask = (uint32(1)<<(r.size*8) - 1) << shift
	return word, shift, mask
}

func laneLoad(r ref) uint64 {
	word, shift, mask := laneOf(r)
	return uint64(atomic.LoadUint32(word)&mask) >> shift
}

// laneUpdate applies op to the lane and returns its prior bits.
func laneUpdate(r ref, op rmwOp, v uint64) uint64 {
	word, shift, mask := laneOf(r)
	for {
		w := atomic.LoadUint32(word)
		old := uint64(w&mask) >> shift
		next := w&^mask | uint32(apply(op, old, v))<<shift&mask
		if atomic.CompareAndSwapUint32(word, w, next) {
			return old
		}
	}
}

// laneCompareAndSwap retries when a neighbouring lane changed under it unless
// weak is set, in which case that interference is reported as a failure.
func laneCompareAndSwap(r ref, old, new uint64, weak bool) (uint64, bool) {
	word, shift, mask := laneOf(r)
	for {
		w := atomic.LoadUint32(word)
		cur := uint64(w&mask) >> shift
		if cur != old {
			return cur, false
		}
		next := w&^mask | uint32(new)<<shift&mask
		if atomic.CompareAndSwapUint32(word, w, next) {
			return old, true
		}
		if weak {
			return laneLoad(r), false
		}
	}
}

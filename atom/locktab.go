package atom

import (
	"encoding/binary"
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/cespare/xxhash"

	"github.com/qRoC/Loobee-OldRepository/internal/machine"
)

// 32 bit platforms only give atomic access to 8 byte aligned 64 bit words.
// Other 8 byte cells are guarded by one stripe of this spinlock table, picked
// by hashing the cell address, so every access to a given cell uses the same
// stripe.

const lockSpinsPerYield = 64

var lockTable [machine.LockStripes]struct {
	state uint32
	_     machine.LinePad4
}

// stripeOf maps a cell address to one of the machine.LockStripes stripes.
func stripeOf(p unsafe.Pointer) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(uintptr(p)))
	return xxhash.Sum64(buf[:]) & (machine.LockStripes - 1)
}

func lockFor(p unsafe.Pointer) *uint32 {
	return &lockTable[stripeOf(p)].state
}

func lock(l *uint32) {
	for spins := 1; !atomic.CompareAndSwapUint32(l, 0, 1); spins++ {
		if spins%lockSpinsPerYield == 0 {
			runtime.Gosched()
		}
	}
}

func unlock(l *uint32) {
	atomic.StoreUint32(l, 0)
}

func lockedLoad(p unsafe.Pointer) uint64 {
	l := lockFor(p)
	lock(l)
	v := *(*uint64)(p)
	unlock(l)
	return v
}

func lockedUpdate(p unsafe.Pointer, op rmwOp, v uint64) uint64 {
	l := lockFor(p)
	lock(l)
	old := *(*uint64)(p)
	*(*uint64)(p) = apply(op, old, v)
	unlock(l)
	return old
}

func lockedCompareAndSwap(p unsafe.Pointer, old, new uint64) (uint64, bool) {
	l := lockFor(p)
	lock(l)
	cur := *(*uint64)(p)
	if cur == old {
		*(*uint64)(p) = new
	}
	unlock(l)
	return cur, cur == old
}

package atom

import (
	"sync/atomic"
	"unsafe"

	"github.com/qRoC/Loobee-OldRepository/internal/machine"
)

// ref is the untyped view of a caller owned cell: its address and width.
// Values travel through it as zero extended bit patterns.
type ref struct {
	p    unsafe.Pointer
	size uintptr
}

func refOf[T Scalar](cell *T) ref {
	return ref{p: unsafe.Pointer(cell), size: unsafe.Sizeof(*cell)}
}

// rmwOp is a read-modify-write step applied to the bits of a cell.
type rmwOp uint8

const (
	opSwap rmwOp = iota
	opAdd
	opAnd
	opOr
	opXor
)

func apply(op rmwOp, x, v uint64) uint64 {
	switch op {
	case opSwap:
		return v
	case opAdd:
		return x + v
	case opAnd:
		return x & v
	case opOr:
		return x | v
	case opXor:
		return x ^ v
	}
	panic("atom: unknown read-modify-write operation")
}

// locked reports whether r is an 8 byte cell that sync/atomic cannot address
// on this platform and must go through the lock table.
func (r ref) locked() bool {
	return !machine.Is64Bit && uintptr(r.p)&7 != 0
}

func (r ref) load() uint64 {
	switch r.size {
	case 1, 2:
		return narrowLoad(r)
	case 4:
		return uint64(atomic.LoadUint32((*uint32)(r.p)))
	}
	if r.locked() {
		return lockedLoad(r.p)
	}
	return atomic.LoadUint64((*uint64)(r.p))
}

func (r ref) store(v uint64) {
	switch r.size {
	case 1, 2:
		narrowStore(r, v)
		return
	case 4:
		atomic.StoreUint32((*uint32)(r.p), uint32(v))
		return
	}
	if r.locked() {
		lockedUpdate(r.p, opSwap, v)
		return
	}
	atomic.StoreUint64((*uint64)(r.p), v)
}

// rmw applies op with operand v and returns the prior bits.
func (r ref) rmw(op rmwOp, v uint64) uint64 {
	switch r.size {
	case 1, 2:
		return narrowUpdate(r, op, v)
	case 4:
		return rmw32((*uint32)(r.p), op, uint32(v))
	}
	if r.locked() {
		return lockedUpdate(r.p, op, v)
	}
	return rmw64((*uint64)(r.p), op, v)
}

// cas replaces old with new. On failure it returns the bits it observed. A
// weak cas may fail even though the cell held old.
func (r ref) cas(old, new uint64, weak bool) (uint64, bool) {
	switch r.size {
	case 1, 2:
		return narrowCompareAndSwap(r, old, new, weak)
	case 4:
		p := (*uint32)(r.p)
		for {
			if atomic.CompareAndSwapUint32(p, uint32(old), uint32(new)) {
				return old, true
			}
			// the value may have returned to old between the attempt and this
			// load; only the strong form has to try again.
			cur := uint64(atomic.LoadUint32(p))
			if weak || cur != old {
				return cur, false
			}
		}
	}
	if r.locked() {
		return lockedCompareAndSwap(r.p, old, new)
	}
	p := (*uint64)(r.p)
	for {
		if atomic.CompareAndSwapUint64(p, old, new) {
			return old, true
		}
		cur := atomic.LoadUint64(p)
		if weak || cur != old {
			return cur, false
		}
	}
}

func rmw32(p *uint32, op rmwOp, v uint32) uint64 {
	switch op {
	case opSwap:
		return uint64(atomic.SwapUint32(p, v))
	case opAdd:
		return uint64(atomic.AddUint32(p, v) - v)
	case opAnd:
		return uint64(atomic.AndUint32(p, v))
	case opOr:
		return uint64(atomic.OrUint32(p, v))
	}
	for {
		x := atomic.LoadUint32(p)
		if atomic.CompareAndSwapUint32(p, x, uint32(apply(op, uint64(x), uint64(v)))) {
			return uint64(x)
		}
	}
}

func rmw64(p *uint64, op rmwOp, v uint64) uint64 {
	switch op {
	case opSwap:
		return atomic.SwapUint64(p, v)
	case opAdd:
		return atomic.AddUint64(p, v) - v
	case opAnd:
		return atomic.AndUint64(p, v)
	case opOr:
		return atomic.OrUint64(p, v)
	}
	for {
		x := atomic.LoadUint64(p)
		if atomic.CompareAndSwapUint64(p, x, apply(op, x, v)) {
			return x
		}
	}
}

package atom

import (
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/qRoC/Loobee-OldRepository/internal/machine"
)

// Scalar is the set of types a cell may hold: bool and every integer type,
// including the word sized int, uint and uintptr.
type Scalar interface {
	~bool | constraints.Integer
}

// Integer is the set of scalars that support arithmetic and bitwise
// operations. bool is deliberately absent.
type Integer interface {
	constraints.Integer
}

// lockFree is indexed by cell width in bytes. Narrow cells use native
// instructions or a 32 bit compare-and-swap and are lock free everywhere; 8
// byte cells may fall back to the lock table on 32 bit platforms.
var lockFree = [9]bool{
	1: true,
	2: true,
	4: true,
	8: machine.Is64Bit,
}

// IsLockFree reports whether every operation on a cell of type T is lock
// free on this platform. The answer depends only on the width of T.
func IsLockFree[T Scalar]() bool {
	var v T
	return lockFree[unsafe.Sizeof(v)]
}

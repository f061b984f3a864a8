//go:build race && (386 || amd64) && gc

package atom

import (
	"sync/atomic"
	"unsafe"

	"github.com/qRoC/Loobee-OldRepository/internal/machine"
)

// The race detector does not see the narrow instructions, so each one is
// bracketed by a read-modify-write of a shadow word picked by the cell
// address. That gives the detector the same happens-before edges the
// hardware provides.

var raceShadow [machine.LockStripes]struct {
	n uint32
	_ machine.LinePad4
}

func raceSync(p unsafe.Pointer) {
	atomic.AddUint32(&raceShadow[stripeOf(p)].n, 0)
}

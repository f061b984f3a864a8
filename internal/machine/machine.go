package machine

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

const (
	CacheLine = unsafe.Sizeof(cpu.CacheLinePad{})
	WordSize  = unsafe.Sizeof(uintptr(0))
	Is64Bit   = WordSize == 8

	LockStripeBits = 6
	LockStripes    = 1 << LockStripeBits
)

type (
	// LinePad4 pads a 4 byte field out to a full cache line.
	LinePad4 [CacheLine - 4]uint8
	// LinePad8 pads an 8 byte field out to a full cache line.
	LinePad8 [CacheLine - 8]uint8
)

type ( // ensure the word size is one the engine knows how to address.
	_ [8 - WordSize]byte
	_ [WordSize - 4]byte
)

type ( // ensure there are exactly 64 lock stripes.
	_ [LockStripes - 64]byte
	_ [64 - LockStripes]byte
)

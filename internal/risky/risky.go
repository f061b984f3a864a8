// package risky provides unsafe helpers.
package risky

import (
	"unsafe"
)

// Bits returns the bit pattern of v zero extended to 64 bits. v must be 1, 2,
// 4 or 8 bytes wide.
func Bits[T any](v T) uint64 {
	switch unsafe.Sizeof(v) {
	case 1:
		return uint64(*(*uint8)(unsafe.Pointer(&v)))
	case 2:
		return uint64(*(*uint16)(unsafe.Pointer(&v)))
	case 4:
		return uint64(*(*uint32)(unsafe.Pointer(&v)))
	case 8:
		return *(*uint64)(unsafe.Pointer(&v))
	}
	panic("risky: unsupported scalar width")
}

// FromBits returns the T whose bit pattern is the low bytes of b.
func FromBits[T any](b uint64) (v T) {
	switch unsafe.Sizeof(v) {
	case 1:
		*(*uint8)(unsafe.Pointer(&v)) = uint8(b)
	case 2:
		*(*uint16)(unsafe.Pointer(&v)) = uint16(b)
	case 4:
		*(*uint32)(unsafe.Pointer(&v)) = uint32(b)
	case 8:
		*(*uint64)(unsafe.Pointer(&v)) = b
	default:
		panic("risky: unsupported scalar width")
	}
	return v
}

// Word returns the aligned 32 bit word holding the size byte value at p along
// with the bit offset of that value inside the word. The value must be
// naturally aligned and no wider than 2 bytes.
func Word(p unsafe.Pointer, size uintptr, bigEndian bool) (*uint32, uint) {
	off := uintptr(p) & 3
	word := (*uint32)(unsafe.Add(p, -int(off)))
	if bigEndian {
		off = 4 - size - off
	}
	return word, uint(off * 8)
}

package pcg

import (
	"math/bits"
)

// PCG is a small permuted congruential generator. It is not safe for
// concurrent use; give each goroutine its own.
type PCG struct {
	state uint64
	inc   uint64
}

const mul = 6364136223846793005

// New constructs a pcg with the given state and stream.
func New(state, inc uint64) PCG {
	// equivalent to seeding with a zero state, stepping once, adding state,
	// and stepping again.
	inc = inc<<1 | 1
	return PCG{
		state: (inc+state)*mul + inc,
		inc:   inc,
	}
}

// Uint32 returns a random uint32.
func (p *PCG) Uint32() uint32 {
	// the zero value behaves like New(0, 0).
	if p.inc == 0 {
		*p = New(0, 0)
	}

	oldstate := p.state
	p.state = oldstate*mul + p.inc

	xorshift := uint32(((oldstate >> 18) ^ oldstate) >> 27)
	return bits.RotateLeft32(xorshift, -int(oldstate>>59))
}

// Uint64 returns a random uint64 built from two outputs.
func (p *PCG) Uint64() uint64 {
	return uint64(p.Uint32())<<32 | uint64(p.Uint32())
}

// Intn returns an int uniformly in [0, n) for n in the uint32 range.
func (p *PCG) Intn(n int) int {
	return int((uint64(p.Uint32()) * uint64(n)) >> 32)
}

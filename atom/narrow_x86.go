//go:build (386 || amd64) && gc

package atom

// x86 has byte and halfword forms of every locked instruction, so narrow
// cells are accessed in place and their neighbours are never touched.
// Implemented in narrow_$GOARCH.s.

func load8(p *uint8) uint8
func load16(p *uint16) uint16
func store8(p *uint8, v uint8)
func store16(p *uint16, v uint16)
func xchg8(p *uint8, v uint8) uint8
func xchg16(p *uint16, v uint16) uint16
func xadd8(p *uint8, v uint8) uint8
func xadd16(p *uint16, v uint16) uint16
func cas8(p *uint8, old, new uint8) (cur uint8, ok bool)
func cas16(p *uint16, old, new uint16) (cur uint16, ok bool)

// narrowNative reports whether 1 and 2 byte cells use the instructions
// above rather than the enclosing word.
const narrowNative = true

func narrowLoad(r ref) (v uint64) {
	raceSync(r.p)
	if r.size == 1 {
		v = uint64(load8((*uint8)(r.p)))
	} else {
		v = uint64(load16((*uint16)(r.p)))
	}
	raceSync(r.p)
	return v
}

func narrowStore(r ref, v uint64) {
	raceSync(r.p)
	if r.size == 1 {
		store8((*uint8)(r.p), uint8(v))
	} else {
		store16((*uint16)(r.p), uint16(v))
	}
	raceSync(r.p)
}

// narrowUpdate applies op to the cell and returns its prior bits.
func narrowUpdate(r ref, op rmwOp, v uint64) (old uint64) {
	raceSync(r.p)
	if r.size == 1 {
		old = uint64(update8((*uint8)(r.p), op, uint8(v)))
	} else {
		old = uint64(update16((*uint16)(r.p), op, uint16(v)))
	}
	raceSync(r.p)
	return old
}

// narrowCompareAndSwap never fails spuriously, so weak and strong behave
// the same.
func narrowCompareAndSwap(r ref, old, new uint64, _ bool) (cur uint64, ok bool) {
	raceSync(r.p)
	if r.size == 1 {
		c, swapped := cas8((*uint8)(r.p), uint8(old), uint8(new))
		cur, ok = uint64(c), swapped
	} else {
		c, swapped := cas16((*uint16)(r.p), uint16(old), uint16(new))
		cur, ok = uint64(c), swapped
	}
	raceSync(r.p)
	return cur, ok
}

func update8(p *uint8, op rmwOp, v uint8) uint8 {
	switch op {
	case opSwap:
		return xchg8(p, v)
	case opAdd:
		return xadd8(p, v)
	}
	x := load8(p)
	for {
		cur, ok := cas8(p, x, uint8(apply(op, uint64(x), uint64(v))))
		if ok {
			return x
		}
		x = cur
	}
}

func update16(p *uint16, op rmwOp, v uint16) uint16 {
	switch op {
	case opSwap:
		return xchg16(p, v)
	case opAdd:
		return xadd16(p, v)
	}
	x := load16(p)
	for {
		cur, ok := cas16(p, x, uint16(apply(op, uint64(x), uint64(v))))
		if ok {
			return x
		}
		x = cur
	}
}

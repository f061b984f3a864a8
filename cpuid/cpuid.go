package cpuid

// CPUID holds the four feature words reported by the processor. The meaning
// of each bit is given by the Feature table.
type CPUID struct {
	F1C uint32 // leaf 1, ECX
	F1D uint32 // leaf 1, EDX
	F7B uint32 // leaf 7 sub-leaf 0, EBX
	F7C uint32 // leaf 7 sub-leaf 0, ECX
}

// Word returns the feature word w.
func (c CPUID) Word(w Word) uint32 {
	switch w {
	case WordF1C:
		return c.F1C
	case WordF1D:
		return c.F1D
	case WordF7B:
		return c.F7B
	case WordF7C:
		return c.F7C
	}
	return 0
}

// Has reports whether the processor advertises f. Unknown features are
// reported as absent.
func (c CPUID) Has(f Feature) bool {
	if f >= featureCount {
		return false
	}
	e := &featureTable[f]
	return c.Word(e.word)&(1<<e.bit) != 0
}

// Features returns the features the processor advertises, in table order.
func (c CPUID) Features() []Feature {
	var out []Feature
	for f := Feature(0); f < featureCount; f++ {
		if c.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// identifyFunc executes the identification instruction for a leaf and
// sub-leaf and returns EAX, EBX, ECX and EDX.
type identifyFunc func(leaf, subleaf uint32) (a, b, c, d uint32)

// probe reads leaf 0 for the highest supported leaf and only then the
// feature leaves. Reading a leaf beyond that limit returns unrelated data on
// real hardware.
func probe(read identifyFunc) (id CPUID) {
	maxLeaf, _, _, _ := read(0, 0)
	if maxLeaf >= 1 {
		_, _, id.F1C, id.F1D = read(1, 0)
	}
	if maxLeaf >= 7 {
		_, id.F7B, id.F7C, _ = read(7, 0)
	}
	return id
}

package cpuid

import (
	"runtime"
	"sync"
	"testing"

	"github.com/zeebo/assert"
)

// fakeProcessor answers identification requests from fixed leaves and
// records which leaves were read.
type fakeProcessor struct {
	maxLeaf uint32
	leaves  map[uint32][4]uint32
	read    []uint32
}

func (p *fakeProcessor) identify(leaf, subleaf uint32) (a, b, c, d uint32) {
	p.read = append(p.read, leaf)
	if leaf == 0 {
		return p.maxLeaf, 0, 0, 0
	}
	r := p.leaves[leaf]
	return r[0], r[1], r[2], r[3]
}

func TestProbe(t *testing.T) {
	leaves := map[uint32][4]uint32{
		1: {0x000906ea, 0x1, 0x7ffafbff, 0xbfebfbff},
		7: {0x0, 0x029c6fbf, 0x40000000, 0x0},
	}

	t.Run("Leaf 0 only", func(t *testing.T) {
		p := &fakeProcessor{maxLeaf: 0, leaves: leaves}
		assert.Equal(t, probe(p.identify), CPUID{})
		assert.DeepEqual(t, p.read, []uint32{0})
	})

	t.Run("Up to leaf 1", func(t *testing.T) {
		p := &fakeProcessor{maxLeaf: 6, leaves: leaves}
		id := probe(p.identify)
		assert.Equal(t, id, CPUID{F1C: 0x7ffafbff, F1D: 0xbfebfbff})
		assert.DeepEqual(t, p.read, []uint32{0, 1})
		assert.That(t, id.HasSSE2())
		assert.That(t, !id.HasAVX2())
	})

	t.Run("Up to leaf 7", func(t *testing.T) {
		p := &fakeProcessor{maxLeaf: 0x16, leaves: leaves}
		id := probe(p.identify)
		assert.Equal(t, id, CPUID{F1C: 0x7ffafbff, F1D: 0xbfebfbff, F7B: 0x029c6fbf, F7C: 0x40000000})
		assert.DeepEqual(t, p.read, []uint32{0, 1, 7})
		assert.That(t, id.HasAVX2())
		assert.That(t, id.HasBMI2())
		assert.That(t, !id.HasAVX512F())
		assert.That(t, !id.HasAVX512VBMI())
	})
}

func TestCurrent(t *testing.T) {
	id := Current()
	assert.Equal(t, id, Probe())

	if runtime.GOARCH == "amd64" {
		// part of the x86-64 baseline
		assert.That(t, id.HasSSE())
		assert.That(t, id.HasSSE2())
		assert.That(t, id.HasFXSR())
		assert.That(t, id.HasCX8())
	}

	// must be answerable whether or not the processor has it
	_ = id.HasAVX512F()
	_ = id.HasAVX512BW()
	_ = id.HasPREFETCHWT1()

	t.Run("Concurrent", func(t *testing.T) {
		var wg sync.WaitGroup
		results := make([]CPUID, 16)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = Current()
			}(i)
		}
		wg.Wait()

		for _, got := range results {
			assert.Equal(t, got, id)
		}
	})
}

func TestFeatureTable(t *testing.T) {
	t.Run("Single bit", func(t *testing.T) {
		// setting exactly the bit of a feature must report that feature and
		// nothing else.
		for _, f := range AllFeatures() {
			var id CPUID
			switch f.Word() {
			case WordF1C:
				id.F1C = 1 << f.Bit()
			case WordF1D:
				id.F1D = 1 << f.Bit()
			case WordF7B:
				id.F7B = 1 << f.Bit()
			case WordF7C:
				id.F7C = 1 << f.Bit()
			}
			assert.DeepEqual(t, id.Features(), []Feature{f})
		}
	})

	t.Run("Zero", func(t *testing.T) {
		var id CPUID
		for _, f := range AllFeatures() {
			assert.That(t, !id.Has(f))
		}
		assert.Equal(t, len(id.Features()), 0)
	})

	t.Run("Spot checks", func(t *testing.T) {
		checks := []struct {
			f    Feature
			word Word
			bit  uint
		}{
			{SSE3, WordF1C, 0},
			{AES, WordF1C, 25},
			{RDRAND, WordF1C, 30},
			{SSE2, WordF1D, 26},
			{PBE, WordF1D, 31},
			{AVX2, WordF7B, 5},
			{AVX512F, WordF7B, 16},
			{AVX512VL, WordF7B, 31},
			{PREFETCHWT1, WordF7C, 0},
			{AVX512VBMI, WordF7C, 1},
		}
		for _, c := range checks {
			assert.Equal(t, c.f.Word(), c.word)
			assert.Equal(t, c.f.Bit(), c.bit)
		}
	})

	t.Run("Names", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, f := range AllFeatures() {
			name := f.String()
			assert.That(t, !seen[name])
			seen[name] = true

			parsed, ok := ParseFeature(name)
			assert.That(t, ok)
			assert.Equal(t, parsed, f)
		}
		assert.Equal(t, len(seen), 84)

		for name, want := range map[string]Feature{
			"SSE4.2":   SSE42,
			"sse4_1":   SSE41,
			"AVX-512F": AVX512F,
			"Avx2":     AVX2,
		} {
			got, ok := ParseFeature(name)
			assert.That(t, ok)
			assert.Equal(t, got, want)
		}

		_, ok := ParseFeature("avx10")
		assert.That(t, !ok)
	})

	t.Run("Unknown", func(t *testing.T) {
		for _, f := range []Feature{featureCount, 200, 255} {
			assert.Equal(t, f.Word(), Word(0))
			assert.Equal(t, f.Bit(), uint(0))
			assert.That(t, !Current().Has(f))
			assert.That(t, !(CPUID{F1C: ^uint32(0), F1D: ^uint32(0), F7B: ^uint32(0), F7C: ^uint32(0)}).Has(f))
		}
		assert.Equal(t, Feature(200).String(), "Feature(200)")
	})
}

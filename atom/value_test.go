package atom

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestValue(t *testing.T) {
	t.Run("Bool", func(t *testing.T) {
		var flag Value[bool]
		assert.That(t, !flag.Load())
		flag.Store(true)
		assert.That(t, flag.Exchange(false))

		expected := true
		assert.That(t, !flag.CompareExchangeStrong(&expected, true))
		assert.That(t, !expected)
		assert.That(t, flag.CompareExchangeStrong(&expected, true))
		assert.That(t, Load(flag.Ptr(), Acquire))
	})

	t.Run("Embedded", func(t *testing.T) {
		var refs struct {
			name  string
			count Int[int32]
			flags Int[uint8]
		}

		refs.count.Store(1)
		assert.Equal(t, refs.count.AddAndFetch(1), int32(2))
		assert.Equal(t, refs.count.SubAndFetch(2), int32(0))
		assert.Equal(t, refs.count.FetchAndSub(1), int32(0))
		assert.Equal(t, refs.count.FetchAndAdd(1), int32(-1))

		assert.Equal(t, refs.flags.BitOrAndFetch(0b01), uint8(0b01))
		assert.Equal(t, refs.flags.FetchAndBitOr(0b10), uint8(0b01))
		assert.Equal(t, refs.flags.FetchAndBitXor(0b11), uint8(0b11))
		assert.Equal(t, refs.flags.BitXorAndFetch(0b100), uint8(0b100))
		assert.Equal(t, refs.flags.FetchAndBitAnd(0), uint8(0b100))
		assert.Equal(t, refs.flags.BitAndAndFetch(0xff), uint8(0))
	})

	t.Run("Weak", func(t *testing.T) {
		var x Int[uint64]
		for i := 0; i < 10; i++ {
			expected := x.Load()
			for !x.CompareExchangeWeak(&expected, expected*2+1) {
			}
		}
		assert.Equal(t, x.Load(), uint64(1023))
	})
}

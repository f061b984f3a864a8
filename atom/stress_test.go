package atom

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/zeebo/assert"

	"github.com/qRoC/Loobee-OldRepository/internal/pcg"
)

const (
	stressWorkers    = 8
	stressIterations = 10000
)

// hammer runs fn from stressWorkers goroutines stressIterations times each.
func hammer(fn func(worker, i int)) {
	var wg sync.WaitGroup
	for w := 0; w < stressWorkers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < stressIterations; i++ {
				fn(w, i)
			}
		}(w)
	}
	wg.Wait()
}

func TestStress(t *testing.T) {
	if testing.Short() {
		t.SkipNow()
	}

	t.Run("FetchAndAdd", func(t *testing.T) {
		var (
			c64 int64
			c32 uint32
			c16 uint16
			c8  int8
			cw  uint
		)
		hammer(func(_, _ int) {
			FetchAndAdd(&c64, 1, SeqCst)
			FetchAndAdd(&c32, 1, SeqCst)
			FetchAndAdd(&c16, 1, SeqCst)
			FetchAndAdd(&c8, 1, SeqCst)
			FetchAndAdd(&cw, 1, SeqCst)
		})

		// narrow cells wrap, so compare against the truncated total
		total := uint64(stressWorkers * stressIterations)
		assert.Equal(t, Load(&c64, SeqCst), int64(total))
		assert.Equal(t, Load(&c32, SeqCst), uint32(total))
		assert.Equal(t, Load(&c16, SeqCst), uint16(total))
		assert.Equal(t, Load(&c8, SeqCst), int8(total))
		assert.Equal(t, Load(&cw, SeqCst), uint(total))
	})

	t.Run("CompareExchangeWeak", func(t *testing.T) {
		var counter uint64
		hammer(func(_, _ int) {
			expected := Load(&counter, Relaxed)
			for !CompareExchangeWeak(&counter, &expected, expected+1, AcqRel, Relaxed) {
			}
		})
		assert.Equal(t, Load(&counter, SeqCst), uint64(stressWorkers*stressIterations))
	})

	t.Run("Xor", func(t *testing.T) {
		// every worker flips the same random masks twice, so the cell ends
		// where it started.
		var cell uint32 = 0x5a5a5a5a
		seed := uint64(time.Now().UnixNano())
		hammer(func(w, i int) {
			p := pcg.New(seed, uint64(i/2))
			FetchAndBitXor(&cell, p.Uint32(), Relaxed)
		})
		assert.Equal(t, Load(&cell, SeqCst), uint32(0x5a5a5a5a))
	})

	t.Run("Release Acquire", func(t *testing.T) {
		var (
			payload [stressWorkers]uint64
			ready   [stressWorkers]bool
			got     [stressWorkers]uint64
			wg      sync.WaitGroup
		)
		for w := 0; w < stressWorkers; w++ {
			wg.Add(2)
			go func(w int) {
				defer wg.Done()
				for !Load(&ready[w], Acquire) {
					runtime.Gosched()
				}
				got[w] = payload[w]
			}(w)
			go func(w int) {
				defer wg.Done()
				runtime.Gosched()
				payload[w] = uint64(w) + 100
				Store(&ready[w], true, Release)
			}(w)
		}
		wg.Wait()

		for w := range got {
			assert.Equal(t, got[w], uint64(w)+100)
		}
	})
}

package jobs

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGateSingleSlot(t *testing.T) {
	gate := NewGate("import", zap.NewNop())

	assert.True(t, gate.TryAcquire())
	assert.True(t, gate.Held())
	assert.False(t, gate.TryAcquire())

	gate.Release()
	assert.False(t, gate.Held())
	assert.True(t, gate.TryAcquire())
	gate.Release()
}

func TestGateReleaseWithoutAcquire(t *testing.T) {
	gate := NewGate("import", nil)
	gate.Release()
	assert.False(t, gate.Held())
	assert.True(t, gate.TryAcquire())
}

func TestGateConcurrentAcquire(t *testing.T) {
	gate := NewGate("import", zap.NewNop())

	const attempts = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	acquired := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if gate.TryAcquire() {
				mu.Lock()
				acquired++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, acquired)
	gate.Release()
}

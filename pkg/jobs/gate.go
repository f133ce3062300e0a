package jobs

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Gate is a single-slot mutual-exclusion primitive for operations that must
// never run concurrently, such as a bulk import. Unlike a plain mutex it
// never blocks: a second caller is refused while the slot is held.
type Gate struct {
	name   string
	logger *zap.Logger

	mu         sync.Mutex
	held       bool
	acquiredAt time.Time
}

// NewGate builds a named gate.
func NewGate(name string, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{name: name, logger: logger}
}

// TryAcquire claims the slot. It returns false when the slot is already held.
func (g *Gate) TryAcquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.held {
		g.logger.Sugar().Warnw("gate busy", "gate", g.name, "held_for", time.Since(g.acquiredAt))
		return false
	}
	g.held = true
	g.acquiredAt = time.Now().UTC()
	g.logger.Sugar().Debugw("gate acquired", "gate", g.name)
	return true
}

// Release frees the slot. Releasing an unheld gate is a no-op.
func (g *Gate) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.held {
		return
	}
	g.held = false
	g.logger.Sugar().Debugw("gate released", "gate", g.name, "held_for", time.Since(g.acquiredAt))
}

// Held reports whether the slot is currently claimed.
func (g *Gate) Held() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.held
}

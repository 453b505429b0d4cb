package worker

import (
	"context"
	"sync"
	"time"

	"github.com/ayo6706/remittance-engine/internal/observability"
	"go.uber.org/zap"
)

// Sweeper removes expired entries and reports how many were dropped.
type Sweeper interface {
	Sweep() int
}

// SessionSweeper periodically discards idle transfer drafts.
type SessionSweeper struct {
	store    Sweeper
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewSessionSweeper constructs a worker with a default one-minute interval.
func NewSessionSweeper(store Sweeper) *SessionSweeper {
	return &SessionSweeper{
		store:    store,
		interval: time.Minute,
		stopCh:   make(chan struct{}),
	}
}

// WithInterval updates the run interval.
func (w *SessionSweeper) WithInterval(interval time.Duration) *SessionSweeper {
	if interval > 0 {
		w.interval = interval
	}
	return w
}

// Start blocks and sweeps at the configured interval.
func (w *SessionSweeper) Start(ctx context.Context) {
	zap.L().Info("session sweeper starting", zap.Duration("interval", w.interval))
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("session sweeper context canceled")
			return
		case <-w.stopCh:
			zap.L().Info("session sweeper stop signal received")
			return
		case <-ticker.C:
			w.runOnce()
		}
	}
}

// Stop stops the running worker loop.
func (w *SessionSweeper) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
}

// Run starts the worker in a goroutine and returns a stop function.
func (w *SessionSweeper) Run(ctx context.Context) func() {
	go w.Start(ctx)
	return w.Stop
}

func (w *SessionSweeper) runOnce() {
	removed := w.store.Sweep()
	observability.IncrementWorkerRun("session_sweeper", "success")
	if removed > 0 {
		zap.L().Info("idle transfer drafts discarded", zap.Int("removed", removed))
	}
}

package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (c *countingSweeper) Sweep() int {
	c.calls.Add(1)
	return 1
}

func TestSessionSweeper_RunsUntilStopped(t *testing.T) {
	store := &countingSweeper{}
	w := NewSessionSweeper(store).WithInterval(5 * time.Millisecond)

	stop := w.Run(context.Background())
	assert.Eventually(t, func() bool { return store.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	stop()
	stop()

	time.Sleep(20 * time.Millisecond)
	settled := store.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, store.calls.Load())
}

func TestSessionSweeper_StopsOnContextCancel(t *testing.T) {
	store := &countingSweeper{}
	w := NewSessionSweeper(store).WithInterval(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
	assert.Equal(t, int32(0), store.calls.Load())
}

func TestSessionSweeper_IgnoresNonPositiveInterval(t *testing.T) {
	w := NewSessionSweeper(&countingSweeper{}).WithInterval(0)
	assert.Equal(t, time.Minute, w.interval)
}

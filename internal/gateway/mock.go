package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/ayo6706/remittance-engine/internal/models"
)

// Submitter hands a reviewed draft to payment execution.
type Submitter interface {
	// Submit returns a confirmation, or an error when the transfer was not accepted.
	Submit(ctx context.Context, draft models.Draft) (*models.Confirmation, error)
}

// MockGateway simulates the payment execution service.
// It introduces a random delay up to MaxDelay and fails FailureRate of the time.
type MockGateway struct {
	// FailureRate is the probability of failure (0.0 to 1.0). Default: 0.1 (10%)
	FailureRate float64
	MaxDelay    time.Duration

	mu   sync.Mutex
	rand *rand.Rand
	now  func() time.Time
}

// NewMockGateway creates a new MockGateway with default settings.
func NewMockGateway() *MockGateway {
	return &MockGateway{
		FailureRate: 0.1,
		MaxDelay:    2 * time.Second,
		rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
		now:         time.Now,
	}
}

// WithFailureRate sets the failure probability.
func (g *MockGateway) WithFailureRate(rate float64) *MockGateway {
	g.FailureRate = rate
	return g
}

// WithMaxDelay sets the upper bound of the simulated latency.
func (g *MockGateway) WithMaxDelay(d time.Duration) *MockGateway {
	g.MaxDelay = d
	return g
}

// Submit simulates sending the transfer. It sleeps to simulate network
// latency, then randomly fails based on FailureRate. Returns a fake reference
// on success.
func (g *MockGateway) Submit(ctx context.Context, draft models.Draft) (*models.Confirmation, error) {
	if draft.Quote == nil || draft.Recipient == nil {
		return nil, fmt.Errorf("draft %s is incomplete", draft.ID)
	}

	if g.MaxDelay > 0 {
		delay := time.Duration(g.int63n(int64(g.MaxDelay)))
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("gateway call canceled: %w", ctx.Err())
		}
	}

	if g.float64() < g.FailureRate {
		return nil, fmt.Errorf("gateway temporarily unavailable")
	}

	now := g.now()
	// Format: TRF-YYYYMMDD-HHMMSS-XXXXX
	ref := fmt.Sprintf("TRF-%s-%05d", now.Format("20060102-150405"), g.int63n(100000))
	return &models.Confirmation{
		Reference:   ref,
		DraftID:     draft.ID,
		SendAmount:  draft.Quote.TotalPayable,
		Currency:    draft.SourceCurrency,
		Recipient:   draft.Recipient.Name,
		SubmittedAt: now,
	}, nil
}

// rand.Rand is not safe for concurrent use.
func (g *MockGateway) int63n(n int64) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rand.Int63n(n)
}

func (g *MockGateway) float64() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rand.Float64()
}

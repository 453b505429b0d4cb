package session

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ayo6706/remittance-engine/internal/models"
	"github.com/ayo6706/remittance-engine/internal/observability"
	"github.com/ayo6706/remittance-engine/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNotFound  = errors.New("transfer session not found")
	ErrForbidden = errors.New("transfer session belongs to another user")
)

// WorkflowFactory builds the workflow backing a new session.
type WorkflowFactory func() *service.Workflow

type entry struct {
	owner    string
	mu       sync.Mutex
	workflow *service.Workflow
	lastSeen atomic.Int64
}

func (e *entry) touch(now time.Time) {
	e.lastSeen.Store(now.UnixNano())
}

// Store keeps one workflow per transfer draft in memory. Drafts are never
// persisted; idle ones are dropped by Sweep.
type Store struct {
	mu          sync.RWMutex
	sessions    map[uuid.UUID]*entry
	newWorkflow WorkflowFactory
	ttl         time.Duration
	now         func() time.Time
}

func NewStore(factory WorkflowFactory, ttl time.Duration) *Store {
	return &Store{
		sessions:    make(map[uuid.UUID]*entry),
		newWorkflow: factory,
		ttl:         ttl,
		now:         time.Now,
	}
}

// WithClock overrides the time source.
func (s *Store) WithClock(now func() time.Time) *Store {
	if now != nil {
		s.now = now
	}
	return s
}

// Create starts a workflow for owner and registers it under the draft ID.
func (s *Store) Create(owner, sourceCurrency, target string) (models.Draft, error) {
	wf := s.newWorkflow()
	draft, err := wf.Start(sourceCurrency, target)
	if err != nil {
		return models.Draft{}, err
	}

	e := &entry{owner: owner, workflow: wf}
	e.touch(s.now())

	s.mu.Lock()
	s.sessions[draft.ID] = e
	n := len(s.sessions)
	s.mu.Unlock()

	observability.SetActiveSessions(n)
	return draft, nil
}

// With runs fn against the session's workflow while holding its lock. A
// session whose draft was cancelled inside fn is removed afterwards.
func (s *Store) With(owner string, id uuid.UUID, fn func(*service.Workflow) error) error {
	e, err := s.get(owner, id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.touch(s.now())
	err = fn(e.workflow)
	cancelled := e.workflow.Step() == ""
	e.mu.Unlock()

	if cancelled {
		s.remove(id)
	}
	return err
}

// Delete cancels the draft and forgets the session.
func (s *Store) Delete(owner string, id uuid.UUID) error {
	e, err := s.get(owner, id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	_ = e.workflow.Cancel()
	e.mu.Unlock()

	s.remove(id)
	return nil
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed.
func (s *Store) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl).UnixNano()

	s.mu.Lock()
	removed := 0
	for id, e := range s.sessions {
		if e.lastSeen.Load() < cutoff {
			delete(s.sessions, id)
			removed++
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	observability.SetActiveSessions(n)
	if removed > 0 {
		zap.L().Debug("expired transfer sessions removed", zap.Int("removed", removed), zap.Int("active", n))
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) get(owner string, id uuid.UUID) (*entry, error) {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if e.owner != owner {
		return nil, ErrForbidden
	}
	return e, nil
}

func (s *Store) remove(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	n := len(s.sessions)
	s.mu.Unlock()
	observability.SetActiveSessions(n)
}

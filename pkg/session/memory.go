package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
)

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	opts     []cloud.Option
	now      func() time.Time
}

// NewMemoryStore creates an in-memory store. A non-positive ttl uses
// [DefaultTTL]. opts are applied to every session's layouter.
func NewMemoryStore(ttl time.Duration, opts ...cloud.Option) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		opts:     opts,
		now:      time.Now,
	}
}

// Create implements [Store].
func (m *MemoryStore) Create(ctx context.Context, center geom.Point) (*Session, error) {
	if err := errors.ValidateCenter(center.X, center.Y); err != nil {
		return nil, err
	}
	sess := newSession(center, m.now, m.opts...)
	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()
	return sess, nil
}

// Get implements [Store].
func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.New(errors.ErrCodeNotFound, "session %q not found", id)
	}
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok || sess.expired(m.now(), m.ttl) {
		return nil, errors.New(errors.ErrCodeNotFound, "session %q not found", id)
	}
	return sess, nil
}

// Delete implements [Store].
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return errors.New(errors.ErrCodeNotFound, "session %q not found", id)
	}
	delete(m.sessions, id)
	return nil
}

// Cleanup implements [Store].
func (m *MemoryStore) Cleanup(ctx context.Context) (int, error) {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, sess := range m.sessions {
		if sess.expired(now, m.ttl) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored sessions, expired or not.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Run calls Cleanup every interval until ctx is done. onCleanup, if not nil,
// receives the number of sessions removed by each sweep that removed any.
func (m *MemoryStore) Run(ctx context.Context, interval time.Duration, onCleanup func(int)) {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n, _ := m.Cleanup(ctx); n > 0 && onCleanup != nil {
				onCleanup(n)
			}
		}
	}
}

var _ Store = (*MemoryStore)(nil)

// Package session keeps interactive layouts alive between HTTP requests.
//
// A session owns one [cloud.Layouter]. Rectangles are appended to it one at a
// time, so the layout grows exactly as it would in a single process, and the
// session can be rendered at any point.
//
// # Architecture
//
// Sessions are identified by random UUIDs and live in a [Store]. The
// in-memory [MemoryStore] expires sessions that have not been used for their
// TTL; [MemoryStore.Run] removes them in the background.
//
// A Layouter is not safe for concurrent use, so every Session serialises
// access through its own mutex. Different sessions never contend.
//
// # Usage
//
//	store := session.NewMemoryStore(session.DefaultTTL)
//	sess, err := store.Create(ctx, geom.Pt(0, 0))
//	r, err := sess.Place(geom.Sz(12, 4))
//	layout := sess.Layout()
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
	pkgio "github.com/matzehuels/tagcloud/pkg/io"
)

// Default durations.
const (
	// DefaultTTL is how long an idle session is kept.
	DefaultTTL = time.Hour

	// DefaultCleanupInterval is how often expired sessions are removed.
	DefaultCleanupInterval = time.Minute
)

// Session is a layout under construction.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	layouter *cloud.Layouter
	lastUsed time.Time
	now      func() time.Time
}

func newSession(center geom.Point, now func() time.Time, opts ...cloud.Option) *Session {
	t := now()
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: t,
		layouter:  cloud.New(center, opts...),
		lastUsed:  t,
		now:       now,
	}
}

// Place appends a rectangle of the given size to the layout.
func (s *Session) Place(size geom.Size) (geom.Rect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = s.now()
	return s.layouter.Place(size)
}

// Recenter moves the target of later placements. A center outside
// ±errors.MaxExtent fails with INVALID_INPUT and leaves the session as is.
func (s *Session) Recenter(center geom.Point) error {
	if err := errors.ValidateCenter(center.X, center.Y); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = s.now()
	s.layouter.Recenter(center)
	return nil
}

// Layout returns a snapshot of the current layout.
func (s *Session) Layout() pkgio.Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = s.now()
	return pkgio.Layout{Center: s.layouter.Center(), Rects: s.layouter.Rects()}
}

// Len returns the number of placed rectangles.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layouter.Len()
}

// LastUsed returns the time of the most recent operation.
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LastUsed()) > ttl
}

// Store is the interface for session storage backends.
type Store interface {
	// Create starts a session with an empty layout around center. A center
	// outside ±errors.MaxExtent fails with INVALID_INPUT.
	Create(ctx context.Context, center geom.Point) (*Session, error)

	// Get returns a live session. Unknown, malformed and expired IDs fail
	// with NOT_FOUND.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes a session. Deleting an unknown ID fails with NOT_FOUND.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired sessions and returns how many were removed.
	Cleanup(ctx context.Context) (int, error)
}

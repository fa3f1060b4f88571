// Package sessions provides the in-memory session store that holds mounted
// contact form components. Sessions expire after a configurable idle period
// and the least recently used session is evicted when the store is full.
package sessions

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/contact-form/internal/domain"
	"github.com/jsamuelsen11/contact-form/internal/domain/contact"
	"github.com/jsamuelsen11/contact-form/internal/platform/config"
	"github.com/jsamuelsen11/contact-form/internal/platform/telemetry"
	"github.com/jsamuelsen11/contact-form/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.SessionStore  = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// entry is one mounted component. mu serializes events for the session.
type entry struct {
	mu      sync.Mutex
	form    *contact.Form
	limiter *rate.Limiter
}

// Store is an expiring LRU of form components keyed by session ID.
type Store struct {
	cache   *expirable.LRU[string, *entry]
	size    int
	limit   rate.Limit
	burst   int
	newForm func() *contact.Form
	metrics *telemetry.Metrics
	logger  *slog.Logger

	// touchMu keeps a TTL refresh from resurrecting a session that was
	// deleted concurrently.
	touchMu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithFormFactory overrides how new components are built. Used to mount
// forms with non-default rules.
func WithFormFactory(fn func() *contact.Form) Option {
	return func(s *Store) {
		s.newForm = fn
	}
}

// New creates a Store sized and timed by cfg. metrics may be nil, in which
// case the active session gauge is not recorded.
func New(cfg *config.SessionConfig, metrics *telemetry.Metrics, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		size:    cfg.MaxSessions,
		limit:   rate.Limit(cfg.EventRate),
		burst:   cfg.EventBurst,
		newForm: func() *contact.Form { return contact.NewForm() },
		metrics: metrics,
		logger:  logger,
	}
	if cfg.EventRate <= 0 {
		s.limit = rate.Inf
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cache = expirable.NewLRU[string, *entry](cfg.MaxSessions, s.onEvict, cfg.TTL)
	return s
}

// Create mounts a new form and returns its session ID.
func (s *Store) Create(ctx context.Context) (string, error) {
	id := uuid.NewString()
	e := &entry{
		form:    s.newForm(),
		limiter: rate.NewLimiter(s.limit, s.burst),
	}

	s.touchMu.Lock()
	s.cache.Add(id, e)
	s.touchMu.Unlock()

	if s.metrics != nil {
		s.metrics.SessionActive.Add(ctx, 1)
	}
	s.logger.DebugContext(ctx, "session mounted", slog.String("session_id", id))
	return id, nil
}

// View returns a snapshot of the session's form. Viewing refreshes the
// session's idle timer but does not consume its event budget.
func (s *Store) View(_ context.Context, sessionID string) (contact.Snapshot, error) {
	e, err := s.lookup(sessionID)
	if err != nil {
		return contact.Snapshot{}, err
	}

	e.mu.Lock()
	snap := e.form.Snapshot()
	e.mu.Unlock()

	s.touch(sessionID, e)
	return snap, nil
}

// Update runs fn against the session's form under the session lock.
func (s *Store) Update(_ context.Context, sessionID string, fn func(*contact.Form) error) (contact.Snapshot, error) {
	e, err := s.lookup(sessionID)
	if err != nil {
		return contact.Snapshot{}, err
	}

	e.mu.Lock()
	if !e.limiter.Allow() {
		snap := e.form.Snapshot()
		e.mu.Unlock()
		return snap, fmt.Errorf("session %s: %w", sessionID, domain.ErrRateLimited)
	}
	fnErr := fn(e.form)
	snap := e.form.Snapshot()
	e.mu.Unlock()

	s.touch(sessionID, e)
	return snap, fnErr
}

// Delete unmounts a session. Unknown IDs are ignored.
func (s *Store) Delete(_ context.Context, sessionID string) error {
	s.touchMu.Lock()
	defer s.touchMu.Unlock()
	s.cache.Remove(sessionID)
	return nil
}

// Len returns the number of sessions currently held.
func (s *Store) Len() int {
	return s.cache.Len()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "sessions"
}

// HealthCheck reports the store as unavailable once it is full. New visitors
// would then push out the least recently active sessions.
func (s *Store) HealthCheck(_ context.Context) error {
	if n := s.cache.Len(); s.size > 0 && n >= s.size {
		return fmt.Errorf("session store at capacity (%d/%d): %w", n, s.size, domain.ErrUnavailable)
	}
	return nil
}

func (s *Store) lookup(sessionID string) (*entry, error) {
	e, ok := s.cache.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}
	return e, nil
}

// touch re-adds the entry so its TTL starts over, unless the session was
// removed or replaced in the meantime.
func (s *Store) touch(sessionID string, e *entry) {
	s.touchMu.Lock()
	defer s.touchMu.Unlock()
	if cur, ok := s.cache.Peek(sessionID); ok && cur == e {
		s.cache.Add(sessionID, e)
	}
}

func (s *Store) onEvict(sessionID string, _ *entry) {
	if s.metrics != nil {
		s.metrics.SessionActive.Add(context.Background(), -1)
	}
	s.logger.Debug("session unmounted", slog.String("session_id", sessionID))
}

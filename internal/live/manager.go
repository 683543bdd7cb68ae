package live

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ManagerOptions struct {
	IdleTimeout time.Duration // Sessions unused for longer are closed, never if 0
	MaxSessions int           // Least recently used sessions are closed above this, unbounded if 0
}

// entry is a session of the manager. ready is closed once the session is
// opened or failed to open.
type entry struct {
	ready    chan struct{}
	session  *Session
	err      error
	cancel   context.CancelFunc
	lastUsed time.Time
}

// Manager opens one session per user on first use. Idle sessions and the
// least recently used sessions above the limit are closed.
type Manager struct {
	engine *Engine
	opts   ManagerOptions

	ctx     context.Context
	cancel  context.CancelFunc
	janitor chan struct{}

	mu       sync.Mutex
	sessions map[uuid.UUID]*entry
}

func NewManager(engine *Engine, opts ManagerOptions) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	m := &Manager{
		engine:   engine,
		opts:     opts,
		ctx:      ctx,
		cancel:   cancel,
		janitor:  make(chan struct{}),
		sessions: make(map[uuid.UUID]*entry),
	}

	if opts.IdleTimeout > 0 {
		go m.evictPeriodically(opts.IdleTimeout / 2)
	} else {
		close(m.janitor)
	}

	return m
}

func (m *Manager) Engine() *Engine {
	return m.engine
}

// Session returns the session of the user, opening it if needed. The session
// is opened without holding the manager's lock, concurrent callers for the
// same user wait for the same session.
func (m *Manager) Session(userID uuid.UUID) (*Session, error) {
	for {
		m.mu.Lock()
		now := m.engine.now()
		m.evictLocked(now)

		e, ok := m.sessions[userID]
		if ok {
			e.lastUsed = now
			m.mu.Unlock()

			<-e.ready
			if e.err != nil {
				return nil, e.err
			}

			select {
			case <-e.session.Done():
				// Evicted meanwhile
				m.remove(userID, e)
				continue
			default:
				return e.session, nil
			}
		}

		ctx, cancel := context.WithCancel(m.ctx)
		e = &entry{ready: make(chan struct{}), cancel: cancel, lastUsed: now}
		m.sessions[userID] = e
		m.evictLRULocked(userID)
		m.mu.Unlock()

		e.session, e.err = m.engine.Open(ctx, userID)
		if e.err != nil {
			cancel()
			m.remove(userID, e)
		}
		close(e.ready)

		return e.session, e.err
	}
}

func (m *Manager) remove(userID uuid.UUID, e *entry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sessions[userID] == e {
		delete(m.sessions, userID)
	}
}

// evictLocked closes the sessions that were idle for longer than the idle
// timeout.
func (m *Manager) evictLocked(now time.Time) {
	if m.opts.IdleTimeout <= 0 {
		return
	}

	for id, e := range m.sessions {
		if now.Sub(e.lastUsed) > m.opts.IdleTimeout && isClosed(e.ready) {
			m.closeLocked(id, e)
		}
	}
}

// evictLRULocked closes the least recently used sessions until the limit is
// kept. keep is never evicted.
func (m *Manager) evictLRULocked(keep uuid.UUID) {
	if m.opts.MaxSessions <= 0 {
		return
	}

	for len(m.sessions) > m.opts.MaxSessions {
		var (
			oldestID uuid.UUID
			oldest   *entry
		)
		for id, e := range m.sessions {
			if id == keep || !isClosed(e.ready) {
				continue
			}
			if oldest == nil || e.lastUsed.Before(oldest.lastUsed) {
				oldestID, oldest = id, e
			}
		}

		if oldest == nil {
			return
		}
		m.closeLocked(oldestID, oldest)
	}
}

func (m *Manager) closeLocked(id uuid.UUID, e *entry) {
	e.cancel()
	delete(m.sessions, id)

	log.Debug().Str("user", id.String()).Msg("Closed session")
}

func (m *Manager) evictPeriodically(interval time.Duration) {
	defer close(m.janitor)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.mu.Lock()
			m.evictLocked(m.engine.now())
			m.mu.Unlock()
		}
	}
}

func isClosed(c <-chan struct{}) bool {
	select {
	case <-c:
		return true
	default:
		return false
	}
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close stops all sessions and waits for them to finish.
func (m *Manager) Close() {
	m.cancel()
	<-m.janitor

	m.mu.Lock()
	entries := m.sessions
	m.sessions = make(map[uuid.UUID]*entry)
	m.mu.Unlock()

	for _, e := range entries {
		<-e.ready
		if e.session != nil {
			<-e.session.Done()
		}
	}
}

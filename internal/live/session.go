package live

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tally-finance/backend/internal/budgetalert"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/reminder"
	"github.com/tally-finance/backend/internal/store"
)

// watched are the collections a session syncs on.
var watched = []store.Collection{
	store.Schedules,
	store.Transactions,
	store.BillReminders,
	store.Budgets,
	store.BudgetAlerts,
	store.SettingsDoc,
}

// Session keeps the snapshot of one user current. Every change to the
// user's data triggers a sync, which materializes due schedules. A sync that
// advances a schedule is itself a change, so schedules that are several
// periods behind converge over successive syncs.
type Session struct {
	engine *Engine
	userID uuid.UUID

	syncMu sync.Mutex // Serializes syncs

	mu       sync.RWMutex
	snapshot Snapshot
	seq      uint64 // Change sequence of the user when the snapshot was taken
	err      error  // Error of the last sync

	done chan struct{}
}

// Open starts a session for the user. It runs until ctx is cancelled.
func (e *Engine) Open(ctx context.Context, userID uuid.UUID) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := &Session{
		engine: e,
		userID: userID,
		done:   make(chan struct{}),
	}

	changes, cancel := e.store.Hub().Subscribe(userID, watched...)

	if err := s.Refresh(ctx); err != nil {
		log.Warn().Err(err).Str("user", userID.String()).Msg("Initial sync of session failed")
	}

	go s.run(ctx, changes, cancel)
	return s, nil
}

func (s *Session) run(ctx context.Context, changes <-chan store.Change, cancel func()) {
	defer close(s.done)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}

			if err := s.syncIfChanged(ctx); err != nil && ctx.Err() == nil {
				log.Warn().Err(err).Str("user", s.userID.String()).Msg("Session sync failed")
			}
		}
	}
}

// Done is closed when the session stopped.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) UserID() uuid.UUID {
	return s.userID
}

// Refresh syncs the session now.
func (s *Session) Refresh(ctx context.Context) error {
	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	return s.sync(ctx)
}

// syncIfChanged syncs if the user's data changed since the last sync.
func (s *Session) syncIfChanged(ctx context.Context) error {
	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	s.mu.RLock()
	current := s.seq == s.engine.store.Hub().Seq(s.userID)
	s.mu.RUnlock()

	if current {
		return nil
	}
	return s.sync(ctx)
}

func (s *Session) sync(ctx context.Context) error {
	seq := s.engine.store.Hub().Seq(s.userID)
	snapshot, err := s.engine.Sync(ctx, s.userID)

	s.mu.Lock()
	s.snapshot = snapshot
	s.seq = seq
	s.err = err
	s.mu.Unlock()

	return err
}

// Snapshot returns the current snapshot. Changes that were published but
// not synced yet are synced first.
func (s *Session) Snapshot(ctx context.Context) (Snapshot, error) {
	err := s.syncIfChanged(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err == nil {
		err = s.err
	}
	return s.snapshot, err
}

// UpcomingBills returns the upcoming bills of the last sync.
func (s *Session) UpcomingBills() []reminder.UpcomingBill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Upcoming
}

// AlertingBudgets returns the budgets with an alert level of the last sync.
func (s *Session) AlertingBudgets() []budgetalert.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.AlertingBudgets()
}

// CheckAndSendReminders sends the bill reminders that fire today.
func (s *Session) CheckAndSendReminders(ctx context.Context) ([]models.ReminderKey, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil && !Partial(err) {
		return nil, err
	}

	return s.engine.SendReminders(ctx, snapshot)
}

// CheckAndSendAlerts sends the budget alerts that are due for the current period.
func (s *Session) CheckAndSendAlerts(ctx context.Context, categoryNames map[uuid.UUID]string) ([]models.BudgetAlert, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil && !Partial(err) {
		return nil, err
	}

	return s.engine.SendAlerts(ctx, snapshot, categoryNames)
}

package recurrence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tally-finance/backend/internal/metrics"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/schedule"
	"github.com/tally-finance/backend/internal/types"
)

// CatchUp selects how many missed occurrences of a schedule are materialized
// in one pass.
type CatchUp string

const (
	// CatchUpSingle materializes at most one occurrence per schedule and
	// pass. Schedules that are several periods behind catch up over
	// successive passes.
	CatchUpSingle CatchUp = "single"

	// CatchUpAll materializes occurrences until the schedule is no longer due.
	CatchUpAll CatchUp = "all"
)

var ErrCatchUpInvalid = errors.New("catch up mode must be one of single, all")

func ParseCatchUp(s string) (CatchUp, error) {
	switch CatchUp(s) {
	case CatchUpSingle, CatchUpAll:
		return CatchUp(s), nil
	case "":
		return CatchUpSingle, nil
	}
	return "", fmt.Errorf("%w, got %q", ErrCatchUpInvalid, s)
}

// maxCatchUp bounds the occurrences materialized for one schedule in one
// pass in CatchUpAll mode. A daily schedule ten years behind fits.
const maxCatchUp = 4000

// Writer persists the effects of a materialization.
type Writer interface {
	// PutTransaction creates the ledger entry or overwrites the entry with the same id.
	PutTransaction(ctx context.Context, t *models.Transaction) error

	// AdvanceSchedule moves the next due date from one date to another if it
	// still equals from. It returns false if it did not.
	AdvanceSchedule(ctx context.Context, userID, id uuid.UUID, from, to types.Date) (bool, error)
}

// Result lists what a pass materialized.
type Result struct {
	Entries  []models.Transaction       // Ledger entries written
	Advanced []models.RecurringSchedule // Schedules whose next due date moved, with the new date
}

type Materializer struct {
	writer  Writer
	catchUp CatchUp
}

func NewMaterializer(writer Writer, catchUp CatchUp) *Materializer {
	if catchUp == "" {
		catchUp = CatchUpSingle
	}

	return &Materializer{writer: writer, catchUp: catchUp}
}

// MaterializeDue materializes the due occurrences of the schedules.
//
// For every occurrence, the ledger entry is written before the next due date
// is advanced. If the process stops between the two writes, the next pass
// writes the same entry again and then advances.
//
// A failure for one schedule does not stop the pass. All failures are
// returned joined.
func (m *Materializer) MaterializeDue(ctx context.Context, schedules []models.RecurringSchedule, today types.Date) (Result, error) {
	var (
		result Result
		errs   []error
	)

	for _, s := range schedules {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		entries, advanced, err := m.materialize(ctx, s, today)
		result.Entries = append(result.Entries, entries...)
		if advanced != nil {
			result.Advanced = append(result.Advanced, *advanced)
		}

		if err != nil {
			metrics.MaterializationFailures.Inc()
			log.Error().
				Err(err).
				Str("user", s.UserID.String()).
				Str("schedule", s.ID.String()).
				Str("due", s.NextDueDate.String()).
				Msg("Materialization failed")

			errs = append(errs, fmt.Errorf("schedule %s: %w", s.ID, err))
		}
	}

	return result, errors.Join(errs...)
}

// materialize runs the transitions of one schedule. It returns the entries
// written and the schedule with its latest persisted next due date, if that
// changed.
func (m *Materializer) materialize(ctx context.Context, s models.RecurringSchedule, today types.Date) ([]models.Transaction, *models.RecurringSchedule, error) {
	var (
		entries  []models.Transaction
		advanced *models.RecurringSchedule
	)

	limit := 1
	if m.catchUp == CatchUpAll {
		limit = maxCatchUp
	}

	for _, due := range schedule.Occurrences(s.NextDueDate, today, s.Frequency, limit) {
		next, entry := Advance(s, today)
		if entry == nil {
			break
		}

		if err := m.writer.PutTransaction(ctx, entry); err != nil {
			return entries, advanced, fmt.Errorf("writing entry for %s: %w", due, err)
		}
		entries = append(entries, *entry)
		metrics.EntriesMaterialized.Inc()

		ok, err := m.writer.AdvanceSchedule(ctx, s.UserID, s.ID, due, next.NextDueDate)
		if err != nil {
			return entries, advanced, fmt.Errorf("advancing from %s: %w", due, err)
		}

		if !ok {
			// Another writer advanced the schedule. The entry it wrote for
			// this date has the same id.
			log.Debug().
				Str("schedule", s.ID.String()).
				Str("due", due.String()).
				Msg("Schedule already advanced")
			break
		}

		log.Debug().
			Str("user", s.UserID.String()).
			Str("schedule", s.ID.String()).
			Str("due", due.String()).
			Str("next", next.NextDueDate.String()).
			Msg("Materialized occurrence")

		s = next
		advanced = &next
	}

	return entries, advanced, nil
}

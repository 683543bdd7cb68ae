package recurrence_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/recurrence"
	"github.com/tally-finance/backend/internal/store"
	"github.com/tally-finance/backend/internal/types"
	"github.com/tally-finance/backend/test"
)

// memoryWriter keeps entries and anchors in memory.
type memoryWriter struct {
	entries     map[uuid.UUID]models.Transaction
	anchors     map[uuid.UUID]types.Date
	failPut     map[uuid.UUID]bool
	failAdvance bool
}

func newMemoryWriter(schedules ...models.RecurringSchedule) *memoryWriter {
	w := &memoryWriter{
		entries: make(map[uuid.UUID]models.Transaction),
		anchors: make(map[uuid.UUID]types.Date),
		failPut: make(map[uuid.UUID]bool),
	}
	for _, s := range schedules {
		w.anchors[s.ID] = s.NextDueDate
	}
	return w
}

var errWrite = errors.New("write failed")

func (w *memoryWriter) PutTransaction(_ context.Context, t *models.Transaction) error {
	if w.failPut[*t.ScheduleID] {
		return errWrite
	}
	w.entries[t.ID] = *t
	return nil
}

func (w *memoryWriter) AdvanceSchedule(_ context.Context, _, id uuid.UUID, from, to types.Date) (bool, error) {
	if w.failAdvance {
		return false, errWrite
	}
	if !w.anchors[id].Equal(from) {
		return false, nil
	}
	w.anchors[id] = to
	return true, nil
}

func TestMaterializeDueIsIdempotent(t *testing.T) {
	s := rent()
	w := newMemoryWriter(s)
	m := recurrence.NewMaterializer(w, recurrence.CatchUpSingle)
	today := types.NewDate(2024, 2, 1)

	first, err := m.MaterializeDue(context.Background(), []models.RecurringSchedule{s}, today)
	require.NoError(t, err)
	require.Len(t, first.Entries, 1)
	snapshot := len(w.entries)

	// Same input again: the same entry id is written, the anchor has moved
	second, err := m.MaterializeDue(context.Background(), []models.RecurringSchedule{s}, today)
	require.NoError(t, err)

	assert.Equal(t, snapshot, len(w.entries), "no duplicate entries")
	assert.Equal(t, first.Entries[0].ID, second.Entries[0].ID)
	assert.Empty(t, second.Advanced, "the stale anchor is not advanced again")
	assert.Equal(t, types.NewDate(2024, 2, 29), w.anchors[s.ID])
}

func TestMaterializeDueSingleStep(t *testing.T) {
	s := rent()
	w := newMemoryWriter(s)
	m := recurrence.NewMaterializer(w, recurrence.CatchUpSingle)

	result, err := m.MaterializeDue(context.Background(), []models.RecurringSchedule{s}, types.NewDate(2024, 4, 15))
	require.NoError(t, err)

	assert.Len(t, result.Entries, 1, "one occurrence per schedule and pass")
	require.Len(t, result.Advanced, 1)
	assert.Equal(t, types.NewDate(2024, 2, 29), result.Advanced[0].NextDueDate)

	// Successive passes catch up one period at a time
	result, err = m.MaterializeDue(context.Background(), result.Advanced, types.NewDate(2024, 4, 15))
	require.NoError(t, err)
	require.Len(t, result.Advanced, 1)
	assert.Equal(t, types.NewDate(2024, 3, 29), result.Advanced[0].NextDueDate)
}

func TestMaterializeDueCatchUpAll(t *testing.T) {
	s := rent()
	w := newMemoryWriter(s)
	m := recurrence.NewMaterializer(w, recurrence.CatchUpAll)

	result, err := m.MaterializeDue(context.Background(), []models.RecurringSchedule{s}, types.NewDate(2024, 4, 15))
	require.NoError(t, err)

	require.Len(t, result.Entries, 3)
	assert.Equal(t, types.NewDate(2024, 1, 31), result.Entries[0].Date)
	assert.Equal(t, types.NewDate(2024, 2, 29), result.Entries[1].Date)
	assert.Equal(t, types.NewDate(2024, 3, 29), result.Entries[2].Date)
	assert.Equal(t, types.NewDate(2024, 4, 29), w.anchors[s.ID])
}

func TestMaterializeDueSkipsInactive(t *testing.T) {
	s := rent()
	s.Active = false
	w := newMemoryWriter(s)

	result, err := recurrence.NewMaterializer(w, recurrence.CatchUpAll).MaterializeDue(context.Background(), []models.RecurringSchedule{s}, types.NewDate(2025, 1, 1))
	require.NoError(t, err)
	assert.Empty(t, result.Entries)
	assert.Equal(t, s.NextDueDate, w.anchors[s.ID])
}

func TestMaterializeDueIsolatesFailures(t *testing.T) {
	broken := rent()
	working := rent()
	w := newMemoryWriter(broken, working)
	w.failPut[broken.ID] = true

	result, err := recurrence.NewMaterializer(w, "").MaterializeDue(context.Background(), []models.RecurringSchedule{broken, working}, types.NewDate(2024, 2, 1))

	assert.ErrorIs(t, err, errWrite)
	assert.Contains(t, err.Error(), broken.ID.String())
	require.Len(t, result.Entries, 1)
	assert.Equal(t, working.ID, *result.Entries[0].ScheduleID)
	assert.Equal(t, broken.NextDueDate, w.anchors[broken.ID], "the anchor does not move without its entry")
}

// An entry written without the anchor advancing is written again with the
// same id on the next pass, and the anchor then advances.
func TestMaterializeDueSelfHeals(t *testing.T) {
	s := rent()
	w := newMemoryWriter(s)
	w.failAdvance = true
	m := recurrence.NewMaterializer(w, recurrence.CatchUpSingle)

	_, err := m.MaterializeDue(context.Background(), []models.RecurringSchedule{s}, types.NewDate(2024, 2, 1))
	require.ErrorIs(t, err, errWrite)
	require.Len(t, w.entries, 1)

	w.failAdvance = false
	_, err = m.MaterializeDue(context.Background(), []models.RecurringSchedule{s}, types.NewDate(2024, 2, 1))
	require.NoError(t, err)

	assert.Len(t, w.entries, 1)
	assert.Equal(t, types.NewDate(2024, 2, 29), w.anchors[s.ID])
}

func TestMaterializeDueWithStore(t *testing.T) {
	st := test.Store(t)
	ctx := context.Background()

	s := rent()
	s.ID = uuid.Nil
	s.NextDueDate = types.Date{}
	require.NoError(t, st.CreateSchedule(ctx, &s))

	m := recurrence.NewMaterializer(st, recurrence.CatchUpSingle)
	for i := 0; i < 2; i++ {
		schedules, err := st.Schedules(ctx, s.UserID)
		require.NoError(t, err)

		_, err = m.MaterializeDue(ctx, schedules, types.NewDate(2024, 2, 1))
		require.NoError(t, err)
	}

	entries, err := st.Transactions(ctx, s.UserID, store.TransactionFilter{ScheduleID: s.ID})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, recurrence.EntryID(s.ID, types.NewDate(2024, 1, 31)), entries[0].ID)
	assert.Equal(t, "[Recurring] Rent", entries[0].Note)

	stored, err := st.Schedule(ctx, s.UserID, s.ID)
	require.NoError(t, err)
	assert.Equal(t, types.NewDate(2024, 2, 29), stored.NextDueDate)
}

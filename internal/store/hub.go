package store

import (
	"sync"

	"github.com/google/uuid"
)

// Collection names a user-scoped set of documents.
type Collection string

const (
	Schedules     Collection = "recurring_schedules"
	Transactions  Collection = "transactions"
	BillReminders Collection = "bill_reminders"
	Budgets       Collection = "budgets"
	BudgetAlerts  Collection = "budget_alerts"
	SettingsDoc   Collection = "settings"
	Notifications Collection = "notifications"
	Accounts      Collection = "accounts"
	Categories    Collection = "categories"
	Goals         Collection = "goals"
)

// Change is published after a committed write to a collection of a user.
type Change struct {
	UserID     uuid.UUID
	Collection Collection
}

// changeBuffer is the number of changes a subscriber can lag behind before
// further changes are dropped for it. Subscribers reload whole snapshots,
// so a dropped change is covered by the ones still buffered.
const changeBuffer = 16

type subscription struct {
	userID      uuid.UUID
	collections map[Collection]bool
	ch          chan Change
}

// Hub fans out changes to subscribers.
type Hub struct {
	mu        sync.Mutex
	nextSubID int
	subs      map[int]subscription
	seq       map[uuid.UUID]uint64
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[int]subscription),
		seq:  make(map[uuid.UUID]uint64),
	}
}

// Seq returns the number of changes published for the user so far.
func (h *Hub) Seq(userID uuid.UUID) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.seq[userID]
}

// Subscribe returns a channel receiving the changes to the given collections
// of the user, or to all of the user's collections if none are given.
// The returned function unsubscribes and closes the channel.
func (h *Hub) Subscribe(userID uuid.UUID, collections ...Collection) (<-chan Change, func()) {
	sub := subscription{
		userID:      userID,
		collections: make(map[Collection]bool, len(collections)),
		ch:          make(chan Change, changeBuffer),
	}
	for _, c := range collections {
		sub.collections[c] = true
	}

	h.mu.Lock()
	h.nextSubID++
	id := h.nextSubID
	h.subs[id] = sub
	h.mu.Unlock()

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(sub.ch)
		})
	}
}

// Publish delivers the change to all matching subscribers without blocking.
func (h *Hub) Publish(c Change) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq[c.UserID]++

	for _, sub := range h.subs {
		if sub.userID != c.UserID {
			continue
		}
		if len(sub.collections) > 0 && !sub.collections[c.Collection] {
			continue
		}

		select {
		case sub.ch <- c:
		default:
		}
	}
}

// SubscriberCount returns the number of active subscriptions.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

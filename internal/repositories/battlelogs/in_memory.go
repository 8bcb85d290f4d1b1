package battlelogs

import (
	"context"
	"sync"

	"github.com/KirkDiggler/creature-battle/internal/errors"
)

type inMemoryRepository struct {
	mu       sync.RWMutex
	entries  map[string]*Entry
	byBattle map[string][]string // battleID -> entry IDs in append order
}

// NewInMemoryRepository creates a new in-memory battle log
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		entries:  make(map[string]*Entry),
		byBattle: make(map[string][]string),
	}
}

func (r *inMemoryRepository) Append(_ context.Context, entry *Entry) error {
	if entry == nil {
		return errors.InvalidArgument("entry cannot be nil")
	}
	if entry.ID == "" || entry.BattleID == "" {
		return errors.InvalidArgument("entry ID and battle ID are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entry.ID]; exists {
		return errors.InvalidArgumentf("entry %s already exists", entry.ID)
	}
	copied := *entry
	r.entries[entry.ID] = &copied
	r.byBattle[entry.BattleID] = append(r.byBattle[entry.BattleID], entry.ID)
	return nil
}

func (r *inMemoryRepository) Get(_ context.Context, id string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, errors.NotFoundf("battle log entry %s not found", id)
	}
	copied := *entry
	return &copied, nil
}

func (r *inMemoryRepository) ListByBattle(_ context.Context, battleID string) ([]*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byBattle[battleID]
	out := make([]*Entry, 0, len(ids))
	for _, id := range ids {
		copied := *r.entries[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (r *inMemoryRepository) DeleteBattle(_ context.Context, battleID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.byBattle[battleID] {
		delete(r.entries, id)
	}
	delete(r.byBattle, battleID)
	return nil
}

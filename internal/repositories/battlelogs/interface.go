package battlelogs

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=interface.go

import (
	"context"
	"time"
)

// Entry is one recorded battle event
type Entry struct {
	ID         string    `json:"id"`
	BattleID   string    `json:"battle_id"`
	Turn       int       `json:"turn"`
	Kind       string    `json:"kind"`
	Timing     string    `json:"timing"`
	SourceID   string    `json:"source_id"`
	TargetIDs  []string  `json:"target_ids,omitempty"`
	ActionKey  string    `json:"action_key,omitempty"`
	Amount     int       `json:"amount,omitempty"`
	Critical   bool      `json:"critical,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Repository stores battle log entries in the order they were appended
type Repository interface {
	Append(ctx context.Context, entry *Entry) error
	Get(ctx context.Context, id string) (*Entry, error)
	ListByBattle(ctx context.Context, battleID string) ([]*Entry, error)
	DeleteBattle(ctx context.Context, battleID string) error
}

// TimeProvider stamps entries
type TimeProvider interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now().UTC() }

// NewSystemTimeProvider returns a TimeProvider backed by the wall clock
func NewSystemTimeProvider() TimeProvider {
	return systemTime{}
}

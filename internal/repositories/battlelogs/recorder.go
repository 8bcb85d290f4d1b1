package battlelogs

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/creature-battle/internal/domain/events"
	"github.com/KirkDiggler/creature-battle/internal/uuid"
)

// RecorderPriority runs the recorder after trait reactions
const RecorderPriority = 200

// Recorder is an events.Listener that appends every event to a battle log
type Recorder struct {
	repo          Repository
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

// RecorderConfig holds configuration for the recorder
type RecorderConfig struct {
	Repository    Repository
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider
}

// NewRecorder creates a recorder
func NewRecorder(cfg *RecorderConfig) *Recorder {
	if cfg == nil || cfg.Repository == nil {
		panic("repository is required")
	}

	r := &Recorder{
		repo:          cfg.Repository,
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
	}
	if r.uuidGenerator == nil {
		r.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if r.timeProvider == nil {
		r.timeProvider = NewSystemTimeProvider()
	}
	return r
}

// HandleEvent implements events.Listener
func (r *Recorder) HandleEvent(ctx context.Context, event events.Event) error {
	return r.repo.Append(ctx, r.entryFor(event))
}

// Priority implements events.Listener
func (r *Recorder) Priority() int {
	return RecorderPriority
}

func (r *Recorder) entryFor(event events.Event) *Entry {
	entry := &Entry{
		ID:         r.uuidGenerator.New(),
		BattleID:   event.Battle().ID(),
		Turn:       event.Battle().Turn(),
		Kind:       string(event.Kind()),
		Timing:     string(event.Timing()),
		SourceID:   event.Source().ID(),
		RecordedAt: r.timeProvider.Now(),
	}
	for _, t := range event.Targets() {
		if t != nil {
			entry.TargetIDs = append(entry.TargetIDs, t.ID())
		}
	}
	if a := event.Action(); a != nil {
		entry.ActionKey = a.Key
	}

	switch e := event.(type) {
	case *events.DamageEvent:
		entry.Amount = e.Amount
		entry.Critical = e.Critical
	case *events.HealEvent:
		entry.Amount = e.Amount
		entry.Critical = e.Critical
	case *events.ConditionEvent:
		entry.Detail = string(e.Condition)
	case *events.MoveEvent:
		entry.Detail = fmt.Sprintf("%s -> %s", e.From, e.To)
	}
	return entry
}

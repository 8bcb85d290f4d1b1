package battle

import (
	"context"
	"log"

	"github.com/KirkDiggler/creature-battle/internal/aoe"
	"github.com/KirkDiggler/creature-battle/internal/combat"
	"github.com/KirkDiggler/creature-battle/internal/domain/action"
	domainbattle "github.com/KirkDiggler/creature-battle/internal/domain/battle"
	"github.com/KirkDiggler/creature-battle/internal/domain/battlefield"
	"github.com/KirkDiggler/creature-battle/internal/domain/creature"
	"github.com/KirkDiggler/creature-battle/internal/domain/events"
	"github.com/KirkDiggler/creature-battle/internal/errors"
)

// Service drives one battle: turns, actions and movement. Every state change
// is announced on the event bus so traits can react.
type Service interface {
	// Battle returns the battle being driven
	Battle() *domainbattle.Context

	// StartTurn opens a creature's turn
	StartTurn(ctx context.Context, creatureID string) (*TurnReport, error)

	// UseAction resolves an action against a target and its area
	UseAction(ctx context.Context, input *UseActionInput) (*ActionResult, error)

	// Move walks a creature one tile
	Move(ctx context.Context, creatureID string, to battlefield.Position) (*MoveResult, error)

	// Push forces a creature along a direction
	Push(ctx context.Context, input *PushInput) (*MoveResult, error)

	// EndTurn applies end-of-turn damage and ticks conditions
	EndTurn(ctx context.Context, creatureID string) (*TurnReport, error)
}

// UseActionInput selects an action and its primary target
type UseActionInput struct {
	ActorID     string
	ActionKey   string
	TargetID    string
	Orientation aoe.Orientation
}

// PushInput describes a forced move
type PushInput struct {
	SourceID string
	TargetID string
	DRow     int
	DCol     int
	Distance int
}

type service struct {
	battle     *domainbattle.Context
	calculator *combat.Calculator
	bus        *events.Bus
	actions    *action.Registry

	// defeats already announced
	announced map[string]bool
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Battle     *domainbattle.Context
	Calculator *combat.Calculator
	Bus        *events.Bus
	Actions    *action.Registry
}

// NewService creates a new battle service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Battle == nil {
		panic("battle is required")
	}
	if cfg.Calculator == nil {
		panic("calculator is required")
	}
	if cfg.Actions == nil {
		panic("action registry is required")
	}

	svc := &service{
		battle:     cfg.Battle,
		calculator: cfg.Calculator,
		bus:        cfg.Bus,
		actions:    cfg.Actions,
		announced:  make(map[string]bool),
	}
	if svc.bus == nil {
		svc.bus = events.NewBus()
	}
	return svc
}

func (s *service) Battle() *domainbattle.Context {
	return s.battle
}

func (s *service) creature(id string) (*creature.Creature, error) {
	c, ok := s.battle.Creature(id)
	if !ok {
		return nil, errors.NotFoundf("creature %s not found in battle %s", id, s.battle.ID())
	}
	return c, nil
}

func (s *service) living(id string) (*creature.Creature, error) {
	c, err := s.creature(id)
	if err != nil {
		return nil, err
	}
	if c.IsDefeated() {
		return nil, errors.Rejectedf("creature %s is defeated", id)
	}
	return c, nil
}

func (s *service) emit(ctx context.Context, event events.Event) error {
	if err := s.bus.Emit(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to emit %s", event.Kind())
	}
	return nil
}

func (s *service) base(when events.Timing, origin *creature.Creature) events.Base {
	return events.Base{Ctx: s.battle, When: when, Origin: origin}
}

// settleDefeats announces every creature that reached zero HP since the last
// call and takes it off the grid. Announcing can trigger more defeats, so it
// loops until nothing new falls.
func (s *service) settleDefeats(ctx context.Context, by *creature.Creature) ([]string, error) {
	var fallen []string
	for {
		var batch []*creature.Creature
		for _, c := range s.battle.Creatures() {
			if c.IsDefeated() && !s.announced[c.ID()] {
				batch = append(batch, c)
			}
		}
		if len(batch) == 0 {
			return fallen, nil
		}

		for _, c := range batch {
			s.announced[c.ID()] = true
			fallen = append(fallen, c.ID())
			s.battle.RemoveFromField(c)
			log.Printf("[BATTLE] %s was defeated", c.Name())

			scorer := by
			if scorer == c {
				scorer = nil
			}
			if err := s.emit(ctx, &events.DefeatEvent{Base: s.base(events.After, c), DefeatedBy: scorer}); err != nil {
				return fallen, err
			}
		}
	}
}

package events

import (
	"github.com/KirkDiggler/creature-battle/internal/domain/action"
	"github.com/KirkDiggler/creature-battle/internal/domain/battle"
	"github.com/KirkDiggler/creature-battle/internal/domain/battlefield"
	"github.com/KirkDiggler/creature-battle/internal/domain/conditions"
	"github.com/KirkDiggler/creature-battle/internal/domain/creature"
	"github.com/KirkDiggler/creature-battle/internal/errors"
)

// Kind tags the concrete event variant
type Kind string

const (
	KindActionUsed       Kind = "action_used"
	KindDamage           Kind = "damage"
	KindHeal             Kind = "heal"
	KindConditionApplied Kind = "condition_applied"
	KindConditionRemoved Kind = "condition_removed"
	KindMove             Kind = "move"
	KindForcedMove       Kind = "forced_move"
	KindTurn             Kind = "turn"
	KindDefeat           Kind = "defeat"
)

// Event is one battle event. Exactly one concrete variant is dispatched at
// a time and its source creature is always set.
type Event interface {
	Kind() Kind
	Timing() Timing
	Battle() *battle.Context

	// Source is the creature the event originates from
	Source() *creature.Creature

	// Targets are the creatures on the receiving end, possibly none
	Targets() []*creature.Creature

	// Action is the action involved, nil when none
	Action() *action.Action
}

// Participant is a creature paired with its role in an event
type Participant struct {
	Creature *creature.Creature
	Role     Role
}

// Participants lists the source first, then targets in order
func Participants(e Event) []Participant {
	out := []Participant{{Creature: e.Source(), Role: RoleSubject}}
	for _, t := range e.Targets() {
		if t != nil {
			out = append(out, Participant{Creature: t, Role: RoleTarget})
		}
	}
	return out
}

// Validate checks the invariants every dispatched event must hold
func Validate(e Event) error {
	if e == nil {
		return errors.InvalidArgument("event is required")
	}
	if e.Source() == nil {
		return errors.InvalidArgumentf("%s event has no source creature", e.Kind())
	}
	if e.Battle() == nil {
		return errors.InvalidArgumentf("%s event has no battle context", e.Kind())
	}
	return nil
}

// Base carries the fields shared by every variant
type Base struct {
	Ctx    *battle.Context
	When   Timing
	Origin *creature.Creature
}

func (b *Base) Timing() Timing                { return b.When }
func (b *Base) Battle() *battle.Context       { return b.Ctx }
func (b *Base) Source() *creature.Creature    { return b.Origin }
func (b *Base) Targets() []*creature.Creature { return nil }
func (b *Base) Action() *action.Action        { return nil }

// ActionUsedEvent is raised around an action. The user sees it on the Act
// channels, each target on the Targeted channels.
type ActionUsedEvent struct {
	Base
	Used     *action.Action
	Affected []*creature.Creature
}

func (e *ActionUsedEvent) Kind() Kind                    { return KindActionUsed }
func (e *ActionUsedEvent) Action() *action.Action        { return e.Used }
func (e *ActionUsedEvent) Targets() []*creature.Creature { return e.Affected }

// DamageEvent is raised around damage. Source is the attacker.
type DamageEvent struct {
	Base
	Defender *creature.Creature
	Used     *action.Action
	Amount   int
	Critical bool
	Contact  bool
}

func (e *DamageEvent) Kind() Kind             { return KindDamage }
func (e *DamageEvent) Action() *action.Action { return e.Used }

func (e *DamageEvent) Targets() []*creature.Creature {
	return []*creature.Creature{e.Defender}
}

// HealEvent is raised around healing. Source is the healer.
type HealEvent struct {
	Base
	Recipient *creature.Creature
	Used      *action.Action
	Amount    int
	Critical  bool
}

func (e *HealEvent) Kind() Kind             { return KindHeal }
func (e *HealEvent) Action() *action.Action { return e.Used }

func (e *HealEvent) Targets() []*creature.Creature {
	return []*creature.Creature{e.Recipient}
}

// ConditionEvent is raised around a condition change. Source applied or
// removed the condition; Recipient carries it.
type ConditionEvent struct {
	Base
	Recipient *creature.Creature
	Condition conditions.ConditionType
	Removed   bool
}

func (e *ConditionEvent) Kind() Kind {
	if e.Removed {
		return KindConditionRemoved
	}
	return KindConditionApplied
}

func (e *ConditionEvent) Targets() []*creature.Creature {
	return []*creature.Creature{e.Recipient}
}

// MoveEvent is raised around a move. Source is the creature that moves;
// MovedBy is set for forced moves.
type MoveEvent struct {
	Base
	From    battlefield.Position
	To      battlefield.Position
	Forced  bool
	MovedBy *creature.Creature
}

func (e *MoveEvent) Kind() Kind {
	if e.Forced {
		return KindForcedMove
	}
	return KindMove
}

func (e *MoveEvent) Targets() []*creature.Creature {
	if e.Forced && e.MovedBy != nil {
		return []*creature.Creature{e.MovedBy}
	}
	return nil
}

// TurnEvent marks a creature's turn start (Before) or end (After)
type TurnEvent struct {
	Base
}

func (e *TurnEvent) Kind() Kind { return KindTurn }

// DefeatEvent is raised after a creature is defeated. Source is the
// defeated creature.
type DefeatEvent struct {
	Base
	DefeatedBy *creature.Creature
}

func (e *DefeatEvent) Kind() Kind { return KindDefeat }

func (e *DefeatEvent) Targets() []*creature.Creature {
	if e.DefeatedBy == nil {
		return nil
	}
	return []*creature.Creature{e.DefeatedBy}
}

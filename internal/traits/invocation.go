package traits

import (
	"log"

	"github.com/KirkDiggler/creature-battle/internal/domain/battle"
	"github.com/KirkDiggler/creature-battle/internal/domain/creature"
	"github.com/KirkDiggler/creature-battle/internal/domain/events"
)

// Invocation is everything one effect evaluation can see
type Invocation struct {
	Owner       *creature.Creature
	Trait       *Trait
	Effect      *Effect
	Event       events.Event
	Participant events.Participant
}

// Battle returns the battle the event belongs to
func (inv *Invocation) Battle() *battle.Context {
	return inv.Event.Battle()
}

// Resolve maps a subject to a creature. A missing creature is reported as
// nil, never as an error; the empty subject means the owner.
func (inv *Invocation) Resolve(subject Subject) *creature.Creature {
	switch subject {
	case "", SubjectOwner:
		return inv.Owner
	case SubjectEventSource:
		return inv.Event.Source()
	case SubjectParticipant:
		return inv.Participant.Creature
	case SubjectEventTarget:
		if inv.Participant.Role == events.RoleTarget {
			return inv.Participant.Creature
		}
		for _, t := range inv.Event.Targets() {
			if t != nil {
				return t
			}
		}
		return nil
	default:
		log.Printf("[TRAITS] STRUCTURAL unknown subject %q in effect %s", subject, inv.Effect.ID)
		return nil
	}
}

// EventAmount returns the damage or healing amount carried by the event
func (inv *Invocation) EventAmount() int {
	switch e := inv.Event.(type) {
	case *events.DamageEvent:
		return e.Amount
	case *events.HealEvent:
		return e.Amount
	default:
		return 0
	}
}

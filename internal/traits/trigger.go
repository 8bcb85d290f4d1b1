package traits

import (
	"github.com/KirkDiggler/creature-battle/internal/domain/events"
)

// TriggerKind is the event filter applied once channel and perspective match
type TriggerKind string

const (
	TriggerAny        TriggerKind = "any"
	TriggerMelee      TriggerKind = "melee"
	TriggerRanged     TriggerKind = "ranged"
	TriggerElement    TriggerKind = "element"
	TriggerContact    TriggerKind = "contact"
	TriggerCritical   TriggerKind = "critical"
	TriggerActionRole TriggerKind = "action_role"
	TriggerHealing    TriggerKind = "healing"
)

type triggerFunc func(t *Trigger, inv *Invocation) bool

var triggerKinds = map[TriggerKind]triggerFunc{
	TriggerAny: func(*Trigger, *Invocation) bool {
		return true
	},
	TriggerMelee: func(_ *Trigger, inv *Invocation) bool {
		a := inv.Event.Action()
		return a != nil && a.IsMelee()
	},
	TriggerRanged: func(_ *Trigger, inv *Invocation) bool {
		a := inv.Event.Action()
		return a != nil && a.IsRanged()
	},
	TriggerElement: func(t *Trigger, inv *Invocation) bool {
		a := inv.Event.Action()
		return a != nil && a.Element == t.Element
	},
	TriggerContact: func(_ *Trigger, inv *Invocation) bool {
		if e, ok := inv.Event.(*events.DamageEvent); ok {
			return e.Contact
		}
		a := inv.Event.Action()
		return a != nil && a.MakesContact()
	},
	TriggerCritical: func(_ *Trigger, inv *Invocation) bool {
		switch e := inv.Event.(type) {
		case *events.DamageEvent:
			return e.Critical
		case *events.HealEvent:
			return e.Critical
		default:
			return false
		}
	},
	TriggerActionRole: func(t *Trigger, inv *Invocation) bool {
		a := inv.Event.Action()
		return a != nil && a.Role == t.Role
	},
	TriggerHealing: func(_ *Trigger, inv *Invocation) bool {
		if _, ok := inv.Event.(*events.HealEvent); ok {
			return true
		}
		a := inv.Event.Action()
		return a != nil && a.IsHealing()
	},
}

// TriggerKinds lists the registered trigger kinds
func TriggerKinds() []TriggerKind {
	return []TriggerKind{
		TriggerAny, TriggerMelee, TriggerRanged, TriggerElement,
		TriggerContact, TriggerCritical, TriggerActionRole, TriggerHealing,
	}
}

package creature

import (
	"github.com/KirkDiggler/creature-battle/internal/domain/action"
	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
)

const (
	CoreSlots      = 3
	EmpoweredSlots = 2
	MasterySlots   = 1
	MaxTraits      = 3
)

// coreSlotRoles lists the action roles each core slot accepts
var coreSlotRoles = [CoreSlots][]shared.ActionRole{
	{shared.RoleAttack},
	{shared.RoleSupport, shared.RoleAttack},
	{shared.RoleDefensive},
}

// Loadout holds the action keys equipped in each slot; empty means unequipped
type Loadout struct {
	Core      [CoreSlots]string      `json:"core"`
	Empowered [EmpoweredSlots]string `json:"empowered"`
	Mastery   [MasterySlots]string   `json:"mastery"`
}

// CanEquip reports whether an action fits a slot without changing anything
func (l *Loadout) CanEquip(slot shared.SlotType, index int, a *action.Action) bool {
	if a == nil {
		return false
	}
	if a.Slot != "" && a.Slot != slot {
		return false
	}

	switch slot {
	case shared.SlotCore:
		if index < 0 || index >= CoreSlots {
			return false
		}
		for _, role := range coreSlotRoles[index] {
			if a.Role == role {
				return true
			}
		}
		return false
	case shared.SlotEmpowered:
		return index >= 0 && index < EmpoweredSlots
	case shared.SlotMastery:
		return index >= 0 && index < MasterySlots
	default:
		return false
	}
}

// Equip places an action in a slot. An out-of-range slot, unknown action or
// incompatible core role leaves the loadout untouched and returns false.
func (l *Loadout) Equip(slot shared.SlotType, index int, a *action.Action) bool {
	if !l.CanEquip(slot, index, a) {
		return false
	}

	switch slot {
	case shared.SlotCore:
		l.Core[index] = a.Key
	case shared.SlotEmpowered:
		l.Empowered[index] = a.Key
	case shared.SlotMastery:
		l.Mastery[index] = a.Key
	}
	return true
}

// Slot returns the action key in a slot, empty when unequipped or out of range
func (l *Loadout) Slot(slot shared.SlotType, index int) string {
	switch slot {
	case shared.SlotCore:
		if index >= 0 && index < CoreSlots {
			return l.Core[index]
		}
	case shared.SlotEmpowered:
		if index >= 0 && index < EmpoweredSlots {
			return l.Empowered[index]
		}
	case shared.SlotMastery:
		if index >= 0 && index < MasterySlots {
			return l.Mastery[index]
		}
	}
	return ""
}

// Has reports whether the action key is equipped in any slot
func (l *Loadout) Has(actionKey string) bool {
	if actionKey == "" {
		return false
	}
	for _, keys := range [][]string{l.Core[:], l.Empowered[:], l.Mastery[:]} {
		for _, key := range keys {
			if key == actionKey {
				return true
			}
		}
	}
	return false
}

// Package action holds immutable action definitions shared across a battle
package action

import (
	"github.com/KirkDiggler/creature-battle/internal/aoe"
	"github.com/KirkDiggler/creature-battle/internal/domain/conditions"
	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
)

// Action is a read-only move definition
type Action struct {
	Key               string              `json:"key" yaml:"key"`
	Name              string              `json:"name" yaml:"name"`
	Power             int                 `json:"power" yaml:"power"`
	Accuracy          int                 `json:"accuracy" yaml:"accuracy"`
	CritChance        int                 `json:"crit_chance" yaml:"crit_chance"`
	Source            shared.ActionSource `json:"source" yaml:"source"`
	Role              shared.ActionRole   `json:"role" yaml:"role"`
	Range             shared.RangeClass   `json:"range" yaml:"range"`
	Element           shared.Element      `json:"element" yaml:"element"`
	Shape             aoe.Shape           `json:"shape" yaml:"shape"`
	Slot              shared.SlotType     `json:"slot" yaml:"slot"`
	EnergyCost        int                 `json:"energy_cost" yaml:"energy_cost"`
	EnergyGainPercent int                 `json:"energy_gain_percent" yaml:"energy_gain_percent"`
	Tags              []shared.ActionTag  `json:"tags,omitempty" yaml:"tags"`

	// Inflicts is a condition rolled against status accuracy on each target hit
	Inflicts     conditions.ConditionType `json:"inflicts,omitempty" yaml:"inflicts"`
	InflictTurns int                      `json:"inflict_turns,omitempty" yaml:"inflict_turns"`
}

// HasTag reports whether the action carries a tag
func (a *Action) HasTag(tag shared.ActionTag) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsHealing reports whether the action restores HP instead of dealing damage
func (a *Action) IsHealing() bool {
	return a.HasTag(shared.TagHealing)
}

// IsMelee reports whether the action is a melee action
func (a *Action) IsMelee() bool {
	return a.Range == shared.RangeMelee
}

// IsRanged reports whether the action is a ranged action
func (a *Action) IsRanged() bool {
	return a.Range == shared.RangeRanged
}

// MakesContact reports whether the action touches its target. Melee actions
// make contact unless tagged otherwise.
func (a *Action) MakesContact() bool {
	return a.IsMelee() && !a.HasTag(shared.TagNoContact)
}

// AreaShape returns the action's shape, Single when none is set
func (a *Action) AreaShape() aoe.Shape {
	if a.Shape == "" {
		return aoe.ShapeSingle
	}
	return a.Shape
}

// IsDamaging reports whether the action deals damage when it lands
func (a *Action) IsDamaging() bool {
	return a.Power > 0 && !a.IsHealing()
}

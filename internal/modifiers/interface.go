package modifiers

import "github.com/KirkDiggler/creature-battle/internal/domain/shared"

// MinStatValue is the floor for every computed stat
const MinStatValue = 1

// Default values combat parameters start from before modifiers apply
var combatDefaults = map[shared.CombatParam]float64{
	shared.CombatAccuracy:       0,
	shared.CombatCritChance:     0,
	shared.CombatCritBonus:      0.5,
	shared.CombatCritResistance: 0,
}

// CombatDefault returns the unmodified value of a combat parameter
func CombatDefault(param shared.CombatParam) float64 {
	return combatDefaults[param]
}

// StatModifier adjusts one creature stat.
// Value is an absolute amount for ModeFlat and a percentage (20 = +20%) otherwise.
type StatModifier struct {
	Stat     shared.Stat         `json:"stat" yaml:"stat"`
	Value    float64             `json:"value" yaml:"value"`
	Mode     shared.ModifierMode `json:"mode" yaml:"mode"`
	SourceID string              `json:"source_id,omitempty" yaml:"-"`
}

// CombatModifier adjusts one combat parameter, stacking like StatModifier
type CombatModifier struct {
	Param    shared.CombatParam  `json:"param" yaml:"param"`
	Value    float64             `json:"value" yaml:"value"`
	Mode     shared.ModifierMode `json:"mode" yaml:"mode"`
	SourceID string              `json:"source_id,omitempty" yaml:"-"`
}

// Source is anything that contributes modifiers while it is active on a
// creature: an equipped trait, an applied condition.
type Source interface {
	// ID returns the stable handle used for replace/remove
	ID() string

	StatModifiers() []StatModifier
	CombatModifiers() []CombatModifier
}

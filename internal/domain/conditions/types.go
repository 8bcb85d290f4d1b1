package conditions

import (
	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
	"github.com/KirkDiggler/creature-battle/internal/modifiers"
)

// ConditionType represents a type of condition
type ConditionType string

// Standard battle conditions
const (
	Burned   ConditionType = "burned"
	Poisoned ConditionType = "poisoned"
	Stunned  ConditionType = "stunned"
	Rooted   ConditionType = "rooted"
	Guarded  ConditionType = "guarded"
	Weakened ConditionType = "weakened"
	Hastened ConditionType = "hastened"
	Blinded  ConditionType = "blinded"

	// Custom conditions
	StatShift   ConditionType = "stat_shift"   // carries modifiers granted by a trait result
	CombatShift ConditionType = "combat_shift" // carries combat modifiers granted by a trait result
)

// DurationType defines how long a condition lasts
type DurationType string

const (
	DurationTurns        DurationType = "turns"         // Lasts X of the owner's turn ends
	DurationPermanent    DurationType = "permanent"     // Until removed by effect
	DurationUntilDamaged DurationType = "until_damaged" // Until the owner takes damage
)

// Condition represents an active condition on a creature
type Condition struct {
	ID          string        `json:"id"`
	Type        ConditionType `json:"type"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Source      string        `json:"source"`    // What caused it (action, trait)
	SourceID    string        `json:"source_id"` // ID of the creature that applied it

	DurationType DurationType `json:"duration_type"`
	Duration     int          `json:"duration"`
	Remaining    int          `json:"remaining"`

	// Modifiers on top of the standard effect for Type
	StatMods   []modifiers.StatModifier   `json:"stat_mods,omitempty"`
	CombatMods []modifiers.CombatModifier `json:"combat_mods,omitempty"`
}

// Spec describes a condition to apply
type Spec struct {
	Type         ConditionType
	Name         string
	Source       string
	SourceID     string
	DurationType DurationType
	Duration     int
	StatMods     []modifiers.StatModifier
	CombatMods   []modifiers.CombatModifier
}

// Effect describes what a condition does
type Effect struct {
	CantAct       bool
	CantMove      bool
	DamagePerTurn int // flat HP lost at turn end, independent of max HP

	StatMods   []modifiers.StatModifier
	CombatMods []modifiers.CombatModifier
}

// GetStandardEffects returns the standard effects for each condition type
func GetStandardEffects(conditionType ConditionType) *Effect {
	effects := map[ConditionType]*Effect{
		Burned: {
			DamagePerTurn: 6,
			StatMods: []modifiers.StatModifier{
				{Stat: shared.StatStrength, Value: -10, Mode: shared.ModePercentOfBase},
			},
		},
		Poisoned: {
			DamagePerTurn: 8,
		},
		Stunned: {
			CantAct:  true,
			CantMove: true,
		},
		Rooted: {
			CantMove: true,
		},
		Guarded: {
			StatMods: []modifiers.StatModifier{
				{Stat: shared.StatDefense, Value: 25, Mode: shared.ModePercentOfBase},
				{Stat: shared.StatResistance, Value: 25, Mode: shared.ModePercentOfBase},
			},
		},
		Weakened: {
			StatMods: []modifiers.StatModifier{
				{Stat: shared.StatStrength, Value: -20, Mode: shared.ModePercentOfBase},
				{Stat: shared.StatMagic, Value: -20, Mode: shared.ModePercentOfBase},
			},
		},
		Hastened: {
			StatMods: []modifiers.StatModifier{
				{Stat: shared.StatSpeed, Value: 20, Mode: shared.ModePercentOfTotal},
			},
		},
		Blinded: {
			CombatMods: []modifiers.CombatModifier{
				{Param: shared.CombatAccuracy, Value: -20, Mode: shared.ModeFlat},
			},
		},
	}

	if effect, exists := effects[conditionType]; exists {
		return effect
	}
	return &Effect{} // Empty effect for custom conditions
}

var descriptions = map[ConditionType]string{
	Burned:      "Loses HP at the end of each turn. Strength is reduced.",
	Poisoned:    "Loses HP at the end of each turn.",
	Stunned:     "Can't act or move.",
	Rooted:      "Can't move voluntarily.",
	Guarded:     "Defense and resistance are raised.",
	Weakened:    "Strength and magic are lowered.",
	Hastened:    "Speed is raised.",
	Blinded:     "Accuracy is lowered.",
	StatShift:   "Stats are temporarily shifted.",
	CombatShift: "Combat parameters are temporarily shifted.",
}

// Description returns the display text for a condition type
func Description(conditionType ConditionType) string {
	if desc, exists := descriptions[conditionType]; exists {
		return desc
	}
	return "Unknown condition effect."
}

// AsSource exposes the condition to a stat manager
func (c *Condition) AsSource() modifiers.Source {
	return conditionSource{condition: c}
}

type conditionSource struct {
	condition *Condition
}

func (s conditionSource) ID() string {
	return s.condition.ID
}

func (s conditionSource) StatModifiers() []modifiers.StatModifier {
	std := GetStandardEffects(s.condition.Type)
	mods := make([]modifiers.StatModifier, 0, len(std.StatMods)+len(s.condition.StatMods))
	for _, mod := range append(std.StatMods, s.condition.StatMods...) {
		mod.SourceID = s.condition.ID
		mods = append(mods, mod)
	}
	return mods
}

func (s conditionSource) CombatModifiers() []modifiers.CombatModifier {
	std := GetStandardEffects(s.condition.Type)
	mods := make([]modifiers.CombatModifier, 0, len(std.CombatMods)+len(s.condition.CombatMods))
	for _, mod := range append(std.CombatMods, s.condition.CombatMods...) {
		mod.SourceID = s.condition.ID
		mods = append(mods, mod)
	}
	return mods
}

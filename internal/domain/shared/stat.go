package shared

// Stat is a creature statistic tracked by the stat manager
type Stat string

// Stats lists every stat in display order
var Stats = []Stat{StatHP, StatEnergy, StatStrength, StatMagic, StatDefense, StatResistance, StatSkill, StatSpeed}

const (
	StatNone       Stat = ""
	StatHP         Stat = "hp"
	StatEnergy     Stat = "energy"
	StatStrength   Stat = "strength"
	StatMagic      Stat = "magic"
	StatDefense    Stat = "defense"
	StatResistance Stat = "resistance"
	StatSkill      Stat = "skill"
	StatSpeed      Stat = "speed"
)

// IsPool reports whether the stat is a resource maximum (HP or Energy).
// Pools scale with level differently and ignore temporary modifiers.
func (s Stat) IsPool() bool {
	return s == StatHP || s == StatEnergy
}

// CombatParam is a combat-only parameter that modifiers can adjust
type CombatParam string

// CombatParams lists every combat parameter
var CombatParams = []CombatParam{CombatAccuracy, CombatCritChance, CombatCritBonus, CombatCritResistance}

const (
	CombatNone           CombatParam = ""
	CombatAccuracy       CombatParam = "accuracy"        // flat hit-chance points
	CombatCritChance     CombatParam = "crit_chance"     // flat crit-chance points
	CombatCritBonus      CombatParam = "crit_bonus"      // extra crit multiplier
	CombatCritResistance CombatParam = "crit_resistance" // reduces attacker crit multiplier
)

// ModifierMode controls how a modifier stacks
type ModifierMode string

const (
	ModeFlat           ModifierMode = "flat"
	ModePercentOfBase  ModifierMode = "percent_of_base"
	ModePercentOfTotal ModifierMode = "percent_of_total"
)

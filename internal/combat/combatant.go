package combat

import "github.com/KirkDiggler/creature-battle/internal/domain/shared"

// Combatant is a stat snapshot of one creature taken at resolution time
type Combatant struct {
	Level           int
	Stats           map[shared.Stat]int
	Energy          int
	MaxEnergy       int
	CritBonus       float64
	CritResistance  float64
	AccuracyBonus   float64
	CritChanceBonus float64
}

// Stat returns a stat value floored at 1 so it is always safe to divide by
func (c *Combatant) Stat(stat shared.Stat) int {
	if c == nil {
		return 1
	}
	return atLeastOne(c.Stats[stat])
}

func (c *Combatant) level() int {
	if c == nil || c.Level < 1 {
		return 1
	}
	return c.Level
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// offenseStats returns the attack and defense stats an action source uses
func offenseStats(source shared.ActionSource) (attack, defense shared.Stat) {
	if source == shared.SourceMagical {
		return shared.StatMagic, shared.StatResistance
	}
	return shared.StatStrength, shared.StatDefense
}

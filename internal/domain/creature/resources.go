package creature

import (
	"log"

	"github.com/KirkDiggler/creature-battle/internal/combat"
	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
)

// HP returns current hit points
func (c *Creature) HP() int {
	return c.hp
}

// MaxHP returns maximum hit points
func (c *Creature) MaxHP() int {
	return c.stats.Current(shared.StatHP)
}

// Energy returns current energy
func (c *Creature) Energy() int {
	return c.energy
}

// MaxEnergy returns maximum energy
func (c *Creature) MaxEnergy() int {
	return c.stats.Current(shared.StatEnergy)
}

// IsDefeated reports whether the creature is out of the battle
func (c *Creature) IsDefeated() bool {
	return c.defeated
}

// IsWounded reports HP at or below half
func (c *Creature) IsWounded() bool {
	return c.hp*2 <= c.MaxHP()
}

// IsEnergized reports energy at or above three quarters
func (c *Creature) IsEnergized() bool {
	return c.energy*4 >= c.MaxEnergy()*3
}

// IsTired reports energy at or below a quarter
func (c *Creature) IsTired() bool {
	return c.energy*4 <= c.MaxEnergy()
}

// HPPercent returns current HP as a whole percentage of max
func (c *Creature) HPPercent() int {
	return c.hp * 100 / c.MaxHP()
}

// TakeDamage removes HP and returns the amount actually lost. Reaching zero
// defeats the creature.
func (c *Creature) TakeDamage(amount int) int {
	if c.defeated || amount <= 0 {
		return 0
	}
	if amount > c.hp {
		amount = c.hp
	}
	c.hp -= amount
	c.conditions.ProcessDamage(amount)

	if c.hp == 0 {
		c.Defeat()
	}
	return amount
}

// Heal restores HP up to max and returns the amount actually restored
func (c *Creature) Heal(amount int) int {
	if c.defeated || amount <= 0 {
		return 0
	}
	missing := c.MaxHP() - c.hp
	if amount > missing {
		amount = missing
	}
	c.hp += amount
	return amount
}

// RestoreEnergy adds energy up to max and returns the amount gained
func (c *Creature) RestoreEnergy(amount int) int {
	if c.defeated || amount <= 0 {
		return 0
	}
	missing := c.MaxEnergy() - c.energy
	if amount > missing {
		amount = missing
	}
	c.energy += amount
	return amount
}

// DrainEnergy removes up to amount energy and returns what was removed
func (c *Creature) DrainEnergy(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > c.energy {
		amount = c.energy
	}
	c.energy -= amount
	return amount
}

// SpendEnergy pays an energy cost. Nothing is spent when the creature can't afford it.
func (c *Creature) SpendEnergy(cost int) bool {
	if cost <= 0 {
		return true
	}
	if c.energy < cost {
		return false
	}
	c.energy -= cost
	return true
}

// Defeat removes the creature from the fight
func (c *Creature) Defeat() {
	if c.defeated {
		return
	}
	c.hp = 0
	c.defeated = true
	log.Printf("[CREATURE] %s (%s) was defeated", c.name, c.id)
}

func (c *Creature) clampResources() {
	if limit := c.MaxHP(); c.hp > limit {
		c.hp = limit
	}
	if limit := c.MaxEnergy(); c.energy > limit {
		c.energy = limit
	}
}

// Snapshot captures the stats the combat calculator needs
func (c *Creature) Snapshot() *combat.Combatant {
	stats := make(map[shared.Stat]int, len(shared.Stats))
	for _, stat := range shared.Stats {
		stats[stat] = c.stats.Current(stat)
	}
	return &combat.Combatant{
		Level:           c.stats.Level(),
		Stats:           stats,
		Energy:          c.energy,
		MaxEnergy:       c.MaxEnergy(),
		CritBonus:       c.stats.Combat(shared.CombatCritBonus),
		CritResistance:  c.stats.Combat(shared.CombatCritResistance),
		AccuracyBonus:   c.stats.Combat(shared.CombatAccuracy),
		CritChanceBonus: c.stats.Combat(shared.CombatCritChance),
	}
}

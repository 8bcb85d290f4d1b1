// Package combat holds the battle formulas: hit and crit chances, damage,
// healing and energy gain. Every random draw goes through the injected roller.
package combat

import (
	"math"

	"github.com/KirkDiggler/creature-battle/internal/dice"
	"github.com/KirkDiggler/creature-battle/internal/domain/action"
	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
	"github.com/KirkDiggler/creature-battle/internal/errors"
)

// Calculator evaluates combat formulas
type Calculator struct {
	roller dice.Roller
}

// NewCalculator creates a calculator. A roller is required so resolution is
// always reproducible from the caller's side.
func NewCalculator(roller dice.Roller) (*Calculator, error) {
	if roller == nil {
		return nil, errors.InvalidArgument("combat calculator requires a dice roller")
	}
	return &Calculator{roller: roller}, nil
}

// CalculateAccuracy returns the hit chance of action from attacker against
// defender, clamped to [MinHitChance, MaxHitChance]
func (c *Calculator) CalculateAccuracy(a *action.Action, attacker, defender *Combatant) int {
	speed := defender.Stat(shared.StatSpeed)
	ratio := float64(attacker.Stat(shared.StatSkill)-speed) / float64(speed)
	return hitChance(a.Accuracy, ratio, attacker)
}

// CalculateStatusAccuracy returns the chance a status effect lands. The
// defender resists with defense or resistance (by action source) plus energy.
func (c *Calculator) CalculateStatusAccuracy(a *action.Action, attacker, defender *Combatant) int {
	_, resistStat := offenseStats(a.Source)
	resist := defender.Stat(resistStat)
	if defender != nil && defender.Energy > 0 {
		resist += defender.Energy
	}
	ratio := float64(attacker.Stat(shared.StatSkill)-resist) / float64(resist)
	return hitChance(a.Accuracy, ratio, attacker)
}

func hitChance(baseAccuracy int, ratio float64, attacker *Combatant) int {
	hit := float64(baseAccuracy) * (1 + AccuracyFactor*ratio)
	if attacker != nil {
		hit += attacker.AccuracyBonus
	}
	return int(clamp(hit, MinHitChance, MaxHitChance))
}

// CalculateCritChance returns the crit chance, never below half the
// action's own base crit and never above MaxCritChance. Crit chance
// modifiers shift the scaled value but not the floor, so a negative bonus
// cannot push the result below zero.
func (c *Calculator) CalculateCritChance(a *action.Action, attacker, defender *Combatant) int {
	speed := defender.Stat(shared.StatSpeed)
	ratio := float64(attacker.Stat(shared.StatSkill)-speed) / float64(speed)

	base := float64(a.CritChance)
	if attacker != nil {
		base += attacker.CritChanceBonus
	}
	adjusted := base * (1 + CritChanceFactor*ratio)
	floor := math.Max(0, float64(a.CritChance)/2)
	return int(math.Floor(clamp(adjusted, floor, MaxCritChance)))
}

// CalculateCritBonus returns the damage multiplier applied on a critical hit
func (c *Calculator) CalculateCritBonus(attacker, defender *Combatant) float64 {
	mod := 1.0
	if attacker != nil {
		mod += attacker.CritBonus
	}
	if defender != nil {
		mod -= defender.CritResistance
	}
	return clamp(mod, MinCritMod, MaxCritMod)
}

// CalculateDamage rolls variance and returns the damage dealt, at least MinDamage.
// On a critical hit defense becomes min(defense, max(attack, defense×CritDefenseFactor)).
// The outer min departs from the bare max(attack, defense×CritDefenseFactor)
// form: defense is never raised above its own value on a crit.
func (c *Calculator) CalculateDamage(a *action.Action, attacker, defender *Combatant, critical bool) (int, error) {
	attackStat, defenseStat := offenseStats(a.Source)
	attack := float64(attacker.Stat(attackStat))
	defense := float64(defender.Stat(defenseStat))

	critMod := 1.0
	if critical {
		// A crit shaves defense down towards the attack stat but never raises it
		defense = math.Min(defense, math.Max(attack, defense*CritDefenseFactor))
		critMod = c.CalculateCritBonus(attacker, defender)
	}

	low, high := VarianceRange(attacker, defender)
	variance, err := c.rollVariance(low, high)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll damage variance")
	}

	raw := scaledPower(attacker.level(), a.Power, attack/defense) * critMod * variance
	return floorAt(raw, MinDamage), nil
}

// CalculateHealing returns the HP restored by a healing action. The power
// term compares the healer's stat with the population average of that stat.
func (c *Calculator) CalculateHealing(a *action.Action, healer *Combatant, populationAverage int, critical bool) (int, error) {
	healStat, _ := offenseStats(a.Source)
	relative := float64(healer.Stat(healStat)) / float64(atLeastOne(populationAverage))

	critMod := 1.0
	if critical {
		critMod = c.CalculateCritBonus(healer, nil)
	}

	variance, err := c.rollVariance(VarianceBase-VarianceSpread, VarianceBase+VarianceSpread)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll healing variance")
	}

	raw := scaledPower(healer.level(), a.Power, relative) * critMod * variance
	return floorAt(raw, MinHealing), nil
}

// CalculateEnergyGain returns the energy a core-slot action restores
func (c *Calculator) CalculateEnergyGain(a *action.Action, maxEnergy int) int {
	if a.Slot != shared.SlotCore || a.EnergyGainPercent <= 0 || maxEnergy <= 0 {
		return 0
	}
	return maxEnergy * a.EnergyGainPercent / 100
}

// RollToHit rolls d100 against a hit chance; equal or lower hits
func (c *Calculator) RollToHit(chance int) (bool, error) {
	return c.rollAgainst(chance)
}

// RollForCrit rolls d100 against a crit chance; equal or lower crits
func (c *Calculator) RollForCrit(chance int) (bool, error) {
	return c.rollAgainst(chance)
}

func (c *Calculator) rollAgainst(chance int) (bool, error) {
	roll, err := dice.RollPercent(c.roller)
	if err != nil {
		return false, err
	}
	return roll <= chance, nil
}

// VarianceRange returns the inclusive percentage band damage variance is
// rolled in. The band is re-centred by the attacker's skill against the
// defender's speed and always stays inside base±spread.
func VarianceRange(attacker, defender *Combatant) (low, high int) {
	speed := defender.Stat(shared.StatSpeed)
	ratio := clamp(float64(attacker.Stat(shared.StatSkill)-speed)/float64(speed), -1, 1)

	center := float64(VarianceBase) + VarianceSpread*ratio
	minBand := float64(VarianceBase - VarianceSpread)
	maxBand := float64(VarianceBase + VarianceSpread)

	low = int(math.Round(clamp(center-VarianceSpread, minBand, maxBand)))
	high = int(math.Round(clamp(center+VarianceSpread, minBand, maxBand)))
	if high > VarianceCeiling-1 {
		high = VarianceCeiling - 1
	}
	return low, high
}

func (c *Calculator) rollVariance(low, high int) (float64, error) {
	roll, err := dice.RollBetween(c.roller, low, high)
	if err != nil {
		return 0, err
	}
	return float64(roll) / 100, nil
}

func scaledPower(level, power int, statRatio float64) float64 {
	return float64(level/3+1)*float64(power)*statRatio/DamageDivisor + 1
}

func floorAt(v float64, minimum int) int {
	result := int(math.Floor(v))
	if result < minimum {
		return minimum
	}
	return result
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

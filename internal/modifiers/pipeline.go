package modifiers

import (
	"math"
	"sort"

	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
)

// stack accumulates modifier values per mode. Application order is always
// Flat, then PercentOfBase, then PercentOfTotal.
type stack struct {
	flat        float64
	percentBase float64
	totals      []float64
}

func (s *stack) add(mode shared.ModifierMode, value float64) {
	switch mode {
	case shared.ModeFlat:
		s.flat += value
	case shared.ModePercentOfBase:
		s.percentBase += value
	case shared.ModePercentOfTotal:
		s.totals = append(s.totals, value)
	}
}

func (s *stack) apply(base float64) float64 {
	value := (base + s.flat) * (1 + s.percentBase/100)

	// Multiply in a canonical order so float rounding never depends on
	// which source was registered first
	sort.Float64s(s.totals)
	for _, pct := range s.totals {
		value *= 1 + pct/100
	}
	return value
}

// ApplyStat runs the stat modifiers that target stat over base and returns
// the rounded result floored at MinStatValue
func ApplyStat(stat shared.Stat, base int, mods []StatModifier) int {
	s := &stack{}
	for _, mod := range mods {
		if mod.Stat != stat {
			continue
		}
		s.add(mod.Mode, mod.Value)
	}

	result := int(math.Round(s.apply(float64(base))))
	if result < MinStatValue {
		return MinStatValue
	}
	return result
}

// ApplyCombat runs the combat modifiers that target param over its default
func ApplyCombat(param shared.CombatParam, mods []CombatModifier) float64 {
	s := &stack{}
	for _, mod := range mods {
		if mod.Param != param {
			continue
		}
		s.add(mod.Mode, mod.Value)
	}
	return s.apply(CombatDefault(param))
}

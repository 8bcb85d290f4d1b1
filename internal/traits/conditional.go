package traits

import (
	"log"

	"github.com/KirkDiggler/creature-battle/internal/domain/creature"
)

// ConditionalKind is a registered predicate over battle state
type ConditionalKind string

const (
	ConditionalHPBelow           ConditionalKind = "hp_below" // HP percent < Value
	ConditionalHPAbove           ConditionalKind = "hp_above" // HP percent > Value
	ConditionalTurnEven          ConditionalKind = "turn_even"
	ConditionalTurnOdd           ConditionalKind = "turn_odd"
	ConditionalAdjacentAllies    ConditionalKind = "adjacent_allies"    // at least Value
	ConditionalAdjacentOpponents ConditionalKind = "adjacent_opponents" // at least Value
	ConditionalAdjacentElement   ConditionalKind = "adjacent_element"
	ConditionalTargetIsolated    ConditionalKind = "target_isolated"
	ConditionalEnergized         ConditionalKind = "energized"
	ConditionalTired             ConditionalKind = "tired"
	ConditionalWounded           ConditionalKind = "wounded"
	ConditionalOnTerrain         ConditionalKind = "on_terrain"
	ConditionalHasCondition      ConditionalKind = "has_condition"
	ConditionalNot               ConditionalKind = "not"
	ConditionalAll               ConditionalKind = "all"
	ConditionalAnyOf             ConditionalKind = "any_of"
)

// conditionalFunc reads state only. subject is nil when the conditional's
// subject could not be resolved for combinators, which ignore it.
type conditionalFunc func(c *Conditional, subject *creature.Creature, inv *Invocation) bool

var conditionalKinds map[ConditionalKind]conditionalFunc

func init() {
	conditionalKinds = map[ConditionalKind]conditionalFunc{
		ConditionalHPBelow: func(c *Conditional, s *creature.Creature, _ *Invocation) bool {
			return s.HPPercent() < c.Value
		},
		ConditionalHPAbove: func(c *Conditional, s *creature.Creature, _ *Invocation) bool {
			return s.HPPercent() > c.Value
		},
		ConditionalTurnEven: func(_ *Conditional, _ *creature.Creature, inv *Invocation) bool {
			return inv.Battle().Turn()%2 == 0
		},
		ConditionalTurnOdd: func(_ *Conditional, _ *creature.Creature, inv *Invocation) bool {
			return inv.Battle().Turn()%2 == 1
		},
		ConditionalAdjacentAllies: func(c *Conditional, s *creature.Creature, inv *Invocation) bool {
			if !placed(s, c, inv) {
				return false
			}
			return countAdjacent(s, inv, true) >= atLeast(c.Value)
		},
		ConditionalAdjacentOpponents: func(c *Conditional, s *creature.Creature, inv *Invocation) bool {
			if !placed(s, c, inv) {
				return false
			}
			return countAdjacent(s, inv, false) >= atLeast(c.Value)
		},
		ConditionalAdjacentElement: func(c *Conditional, s *creature.Creature, inv *Invocation) bool {
			if !placed(s, c, inv) {
				return false
			}
			for _, other := range inv.Battle().AdjacentCreatures(s) {
				if other.HasElement(c.Element) {
					return true
				}
			}
			return false
		},
		ConditionalTargetIsolated: func(c *Conditional, s *creature.Creature, inv *Invocation) bool {
			if !placed(s, c, inv) {
				return false
			}
			return countAdjacent(s, inv, true) == 0
		},
		ConditionalEnergized: func(_ *Conditional, s *creature.Creature, _ *Invocation) bool {
			return s.IsEnergized()
		},
		ConditionalTired: func(_ *Conditional, s *creature.Creature, _ *Invocation) bool {
			return s.IsTired()
		},
		ConditionalWounded: func(_ *Conditional, s *creature.Creature, _ *Invocation) bool {
			return s.IsWounded()
		},
		ConditionalOnTerrain: func(c *Conditional, s *creature.Creature, inv *Invocation) bool {
			if !placed(s, c, inv) {
				return false
			}
			pos, _ := s.Position()
			return inv.Battle().Battlefield().Terrain(pos) == c.Terrain
		},
		ConditionalHasCondition: func(c *Conditional, s *creature.Creature, _ *Invocation) bool {
			return s.HasCondition(c.Condition)
		},
		ConditionalNot: func(c *Conditional, _ *creature.Creature, inv *Invocation) bool {
			if len(c.Children) != 1 {
				log.Printf("[TRAITS] STRUCTURAL not conditional in %s has %d children", inv.Effect.ID, len(c.Children))
				return false
			}
			return !Evaluate(c.Children[0], inv)
		},
		ConditionalAll: func(c *Conditional, _ *creature.Creature, inv *Invocation) bool {
			for _, child := range c.Children {
				if !Evaluate(child, inv) {
					return false
				}
			}
			return true
		},
		ConditionalAnyOf: func(c *Conditional, _ *creature.Creature, inv *Invocation) bool {
			for _, child := range c.Children {
				if Evaluate(child, inv) {
					return true
				}
			}
			return false
		},
	}
}

func isCombinator(kind ConditionalKind) bool {
	return kind == ConditionalNot || kind == ConditionalAll || kind == ConditionalAnyOf
}

// Evaluate runs a conditional against an invocation. A nil conditional
// passes. Missing subjects and unknown kinds evaluate to false.
func Evaluate(c *Conditional, inv *Invocation) bool {
	if c == nil {
		return true
	}

	fn, ok := conditionalKinds[c.Kind]
	if !ok {
		log.Printf("[TRAITS] STRUCTURAL unknown conditional kind %q in effect %s", c.Kind, inv.Effect.ID)
		return false
	}

	if isCombinator(c.Kind) {
		return fn(c, nil, inv)
	}

	subject := inv.Resolve(c.Subject)
	if subject == nil {
		log.Printf("[TRAITS] Warning: %s conditional in effect %s has no %s creature", c.Kind, inv.Effect.ID, subjectName(c.Subject))
		return false
	}
	return fn(c, subject, inv)
}

func placed(s *creature.Creature, c *Conditional, inv *Invocation) bool {
	if _, ok := s.Position(); !ok {
		log.Printf("[TRAITS] Warning: %s conditional in effect %s: %s is not on the grid", c.Kind, inv.Effect.ID, s.ID())
		return false
	}
	return true
}

func countAdjacent(s *creature.Creature, inv *Invocation, allies bool) int {
	count := 0
	for _, other := range inv.Battle().AdjacentCreatures(s) {
		if (other.Side() == s.Side()) == allies {
			count++
		}
	}
	return count
}

func atLeast(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

func subjectName(s Subject) Subject {
	if s == "" {
		return SubjectOwner
	}
	return s
}

package traits_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/creature-battle/internal/domain/battlefield"
	"github.com/KirkDiggler/creature-battle/internal/domain/conditions"
	"github.com/KirkDiggler/creature-battle/internal/domain/events"
	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
	"github.com/KirkDiggler/creature-battle/internal/domain/terrain"
	"github.com/KirkDiggler/creature-battle/internal/traits"
)

func TestEvaluate(t *testing.T) {
	arena := newArena(t)
	event := arena.damage(events.After, arena.x, arena.a, bite, 10, true, false)
	inv := arena.invocation(arena.a, event, events.Participant{Creature: arena.a, Role: events.RoleTarget})

	cond := func(kind traits.ConditionalKind, mutate ...func(c *traits.Conditional)) *traits.Conditional {
		c := &traits.Conditional{Kind: kind}
		for _, m := range mutate {
			m(c)
		}
		return c
	}
	value := func(v int) func(*traits.Conditional) { return func(c *traits.Conditional) { c.Value = v } }
	subject := func(s traits.Subject) func(*traits.Conditional) { return func(c *traits.Conditional) { c.Subject = s } }

	arena.a.TakeDamage(arena.a.MaxHP() * 40 / 100)
	require.NoError(t, arena.battle.Battlefield().SetTerrain(battlefield.NewPosition(2, 3), terrain.Forest))
	_, err := arena.x.ApplyCondition(conditions.Spec{Type: conditions.Rooted})
	require.NoError(t, err)

	tests := []struct {
		name        string
		conditional *traits.Conditional
		expected    bool
	}{
		{name: "nil passes", conditional: nil, expected: true},
		{name: "hp below", conditional: cond(traits.ConditionalHPBelow, value(70)), expected: true},
		{name: "hp not below", conditional: cond(traits.ConditionalHPBelow, value(50)), expected: false},
		{name: "hp above", conditional: cond(traits.ConditionalHPAbove, value(50)), expected: true},
		{name: "source hp above", conditional: cond(traits.ConditionalHPAbove, value(99), subject(traits.SubjectEventSource)), expected: true},
		{name: "turn odd", conditional: cond(traits.ConditionalTurnOdd), expected: true},
		{name: "turn even", conditional: cond(traits.ConditionalTurnEven), expected: false},
		{name: "one adjacent ally", conditional: cond(traits.ConditionalAdjacentAllies, value(1)), expected: true},
		{name: "two adjacent allies", conditional: cond(traits.ConditionalAdjacentAllies, value(2)), expected: false},
		{name: "adjacent opponent", conditional: cond(traits.ConditionalAdjacentOpponents), expected: true},
		{name: "adjacent fire", conditional: cond(traits.ConditionalAdjacentElement, func(c *traits.Conditional) { c.Element = shared.ElementFire }), expected: true},
		{name: "adjacent earth", conditional: cond(traits.ConditionalAdjacentElement, func(c *traits.Conditional) { c.Element = shared.ElementEarth }), expected: false},
		{name: "owner not isolated", conditional: cond(traits.ConditionalTargetIsolated), expected: false},
		{name: "source isolated", conditional: cond(traits.ConditionalTargetIsolated, subject(traits.SubjectEventSource)), expected: true},
		{name: "not wounded", conditional: cond(traits.ConditionalWounded), expected: false},
		{name: "not energized", conditional: cond(traits.ConditionalEnergized), expected: false},
		{name: "not tired", conditional: cond(traits.ConditionalTired), expected: false},
		{name: "on forest", conditional: cond(traits.ConditionalOnTerrain, func(c *traits.Conditional) { c.Terrain = terrain.Forest }), expected: true},
		{name: "source rooted", conditional: cond(traits.ConditionalHasCondition, subject(traits.SubjectEventSource), func(c *traits.Conditional) { c.Condition = conditions.Rooted }), expected: true},
		{name: "owner not rooted", conditional: cond(traits.ConditionalHasCondition, func(c *traits.Conditional) { c.Condition = conditions.Rooted }), expected: false},
		{name: "not", conditional: &traits.Conditional{Kind: traits.ConditionalNot, Children: []*traits.Conditional{cond(traits.ConditionalWounded)}}, expected: true},
		{name: "malformed not", conditional: &traits.Conditional{Kind: traits.ConditionalNot}, expected: false},
		{name: "all", conditional: &traits.Conditional{Kind: traits.ConditionalAll, Children: []*traits.Conditional{
			cond(traits.ConditionalTurnOdd), cond(traits.ConditionalAdjacentOpponents),
		}}, expected: true},
		{name: "all with a failure", conditional: &traits.Conditional{Kind: traits.ConditionalAll, Children: []*traits.Conditional{
			cond(traits.ConditionalTurnOdd), cond(traits.ConditionalWounded),
		}}, expected: false},
		{name: "any of", conditional: &traits.Conditional{Kind: traits.ConditionalAnyOf, Children: []*traits.Conditional{
			cond(traits.ConditionalWounded), cond(traits.ConditionalTurnOdd),
		}}, expected: true},
		{name: "empty any of", conditional: &traits.Conditional{Kind: traits.ConditionalAnyOf}, expected: false},
		{name: "unknown kind", conditional: cond("full_moon"), expected: false},
		{name: "unknown subject", conditional: cond(traits.ConditionalWounded, subject("bystander")), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, traits.Evaluate(tt.conditional, inv))
		})
	}
}

func TestEvaluate_ReadsNoState(t *testing.T) {
	arena := newArena(t)
	event := &events.TurnEvent{Base: events.Base{Ctx: arena.battle, When: events.Before, Origin: arena.a}}
	inv := arena.invocation(arena.a, event, events.Participant{Creature: arena.a, Role: events.RoleSubject})

	hp, energy := arena.a.HP(), arena.a.Energy()
	for _, kind := range []traits.ConditionalKind{
		traits.ConditionalHPBelow, traits.ConditionalEnergized, traits.ConditionalTired,
		traits.ConditionalWounded, traits.ConditionalAdjacentAllies, traits.ConditionalTargetIsolated,
	} {
		traits.Evaluate(&traits.Conditional{Kind: kind, Value: 50}, inv)
	}
	assert.Equal(t, hp, arena.a.HP())
	assert.Equal(t, energy, arena.a.Energy())
}

func TestEvaluate_MissingTarget(t *testing.T) {
	arena := newArena(t)
	event := &events.TurnEvent{Base: events.Base{Ctx: arena.battle, When: events.Before, Origin: arena.a}}
	inv := arena.invocation(arena.a, event, events.Participant{Creature: arena.a, Role: events.RoleSubject})

	assert.False(t, traits.Evaluate(&traits.Conditional{Kind: traits.ConditionalWounded, Subject: traits.SubjectEventTarget}, inv))
	assert.False(t, traits.Evaluate(&traits.Conditional{Kind: traits.ConditionalAdjacentAllies, Subject: traits.SubjectEventTarget}, inv))
}

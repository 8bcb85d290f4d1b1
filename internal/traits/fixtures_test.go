package traits_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/creature-battle/internal/domain/action"
	"github.com/KirkDiggler/creature-battle/internal/domain/battle"
	"github.com/KirkDiggler/creature-battle/internal/domain/battlefield"
	"github.com/KirkDiggler/creature-battle/internal/domain/creature"
	"github.com/KirkDiggler/creature-battle/internal/domain/events"
	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
	"github.com/KirkDiggler/creature-battle/internal/modifiers"
	"github.com/KirkDiggler/creature-battle/internal/traits"
)

func speciesWith(elements ...shared.Element) *creature.Species {
	stats := modifiers.BaseStats{}
	for _, s := range shared.Stats {
		stats[s] = 50
	}
	return &creature.Species{Key: "test", Name: "Test", Elements: elements, BaseStats: stats}
}

var (
	bite  = &action.Action{Key: "bite", Power: 50, Range: shared.RangeMelee, Role: shared.RoleAttack, Element: shared.ElementNature}
	spark = &action.Action{Key: "spark", Power: 40, Range: shared.RangeRanged, Role: shared.RoleAttack, Element: shared.ElementFire}
	mend  = &action.Action{Key: "mend", Power: 30, Range: shared.RangeRanged, Role: shared.RoleSupport, Tags: []shared.ActionTag{shared.TagHealing}}
)

// arena is a small battle: player A at (2,3) with ally B at (1,3), enemy X
// at (2,4) facing A and enemy Y alone at (4,7)
type arena struct {
	battle *battle.Context
	a, b   *creature.Creature
	x, y   *creature.Creature
}

func newArena(t *testing.T) *arena {
	t.Helper()
	ctx := battle.NewContext("test-battle", battlefield.NewDefault())

	mk := func(id string, side shared.Side, pos battlefield.Position, elements ...shared.Element) *creature.Creature {
		c, err := creature.New(&creature.Config{ID: id, Name: id, Species: speciesWith(elements...), Level: 50, Side: side})
		require.NoError(t, err)
		require.NoError(t, ctx.AddCreature(c, pos))
		return c
	}

	return &arena{
		battle: ctx,
		a:      mk("A", shared.SidePlayer, battlefield.NewPosition(2, 3)),
		b:      mk("B", shared.SidePlayer, battlefield.NewPosition(1, 3), shared.ElementWater),
		x:      mk("X", shared.SideEnemy, battlefield.NewPosition(2, 4), shared.ElementFire),
		y:      mk("Y", shared.SideEnemy, battlefield.NewPosition(4, 7)),
	}
}

func (a *arena) damage(when events.Timing, attacker, defender *creature.Creature, used *action.Action, amount int, contact, critical bool) *events.DamageEvent {
	return &events.DamageEvent{
		Base:     events.Base{Ctx: a.battle, When: when, Origin: attacker},
		Defender: defender,
		Used:     used,
		Amount:   amount,
		Contact:  contact,
		Critical: critical,
	}
}

func mustTrait(t *testing.T, def traits.Definition) *traits.Trait {
	t.Helper()
	trait, err := traits.New(def)
	require.NoError(t, err)
	return trait
}

func equip(t *testing.T, c *creature.Creature, ts ...*traits.Trait) {
	t.Helper()
	for _, trait := range ts {
		require.True(t, c.EquipTrait(trait))
	}
}

// invocation builds an invocation for direct conditional and result tests
func (a *arena) invocation(owner *creature.Creature, event events.Event, participant events.Participant) *traits.Invocation {
	trait, _ := traits.New(traits.Definition{Key: "probe"})
	return &traits.Invocation{
		Owner:       owner,
		Trait:       trait,
		Effect:      &traits.Effect{ID: "probe#0"},
		Event:       event,
		Participant: participant,
	}
}

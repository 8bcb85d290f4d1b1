package traits_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockdice "github.com/KirkDiggler/creature-battle/internal/dice/mock"
	"github.com/KirkDiggler/creature-battle/internal/domain/action"
	"github.com/KirkDiggler/creature-battle/internal/domain/events"
	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
	"github.com/KirkDiggler/creature-battle/internal/traits"
)

func TestTriggerKinds(t *testing.T) {
	tests := []struct {
		name    string
		trigger traits.Trigger
		used    *action.Action
		contact bool
		crit    bool
		fires   bool
	}{
		{name: "any", trigger: traits.Trigger{Kind: traits.TriggerAny}, used: spark, fires: true},
		{name: "melee on bite", trigger: traits.Trigger{Kind: traits.TriggerMelee}, used: bite, fires: true},
		{name: "melee on spark", trigger: traits.Trigger{Kind: traits.TriggerMelee}, used: spark, fires: false},
		{name: "ranged on spark", trigger: traits.Trigger{Kind: traits.TriggerRanged}, used: spark, fires: true},
		{name: "fire element", trigger: traits.Trigger{Kind: traits.TriggerElement, Element: shared.ElementFire}, used: spark, fires: true},
		{name: "water element", trigger: traits.Trigger{Kind: traits.TriggerElement, Element: shared.ElementWater}, used: spark, fires: false},
		{name: "contact", trigger: traits.Trigger{Kind: traits.TriggerContact}, used: bite, contact: true, fires: true},
		{name: "critical", trigger: traits.Trigger{Kind: traits.TriggerCritical}, used: spark, crit: true, fires: true},
		{name: "not critical", trigger: traits.Trigger{Kind: traits.TriggerCritical}, used: spark, fires: false},
		{name: "attack role", trigger: traits.Trigger{Kind: traits.TriggerActionRole, Role: shared.RoleAttack}, used: bite, fires: true},
		{name: "support role", trigger: traits.Trigger{Kind: traits.TriggerActionRole, Role: shared.RoleSupport}, used: bite, fires: false},
		{name: "no action", trigger: traits.Trigger{Kind: traits.TriggerMelee}, used: nil, fires: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arena := newArena(t)
			engine, err := traits.NewEngine(mockdice.NewManualMockRoller())
			require.NoError(t, err)

			trigger := tt.trigger
			trigger.Channel = events.AfterDamageReceived
			equip(t, arena.a, mustTrait(t, traits.Definition{
				Key: "watcher",
				Effects: []*traits.Effect{{
					Trigger: trigger,
					Result:  traits.Result{Kind: traits.ResultRestoreEnergy, Amount: 1},
				}},
			}))

			report, err := engine.Dispatch(context.Background(), arena.damage(events.After, arena.x, arena.a, tt.used, 5, tt.contact, tt.crit))
			require.NoError(t, err)
			if tt.fires {
				assert.Equal(t, []string{"watcher#0"}, report.FiredIDs())
			} else {
				assert.Empty(t, report.Fired)
				assert.Equal(t, 1, report.Skipped)
			}
		})
	}
}

func TestTriggerHealing(t *testing.T) {
	arena := newArena(t)
	engine, err := traits.NewEngine(mockdice.NewManualMockRoller())
	require.NoError(t, err)

	equip(t, arena.a, mustTrait(t, traits.Definition{
		Key: "grateful",
		Effects: []*traits.Effect{{
			Trigger: traits.Trigger{Channel: events.AfterHealReceived, Kind: traits.TriggerHealing},
			Result:  traits.Result{Kind: traits.ResultRestoreEnergy, Amount: 5},
		}},
	}))

	report, err := engine.Dispatch(context.Background(), &events.HealEvent{
		Base:      events.Base{Ctx: arena.battle, When: events.After, Origin: arena.b},
		Recipient: arena.a,
		Used:      mend,
		Amount:    12,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"grateful#0"}, report.FiredIDs())
	assert.Equal(t, arena.a.MaxEnergy()/2+5, arena.a.Energy())
}

func TestTriggerKinds_Registered(t *testing.T) {
	assert.Len(t, traits.TriggerKinds(), 8)
}

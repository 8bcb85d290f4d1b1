package conditions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
	"github.com/KirkDiggler/creature-battle/internal/errors"
	"github.com/KirkDiggler/creature-battle/internal/modifiers"
	"github.com/KirkDiggler/creature-battle/internal/uuid"
)

type recordingListener struct {
	applied []string
	removed []string
}

func (l *recordingListener) ConditionApplied(c *Condition) { l.applied = append(l.applied, c.ID) }
func (l *recordingListener) ConditionRemoved(c *Condition) { l.removed = append(l.removed, c.ID) }

func newTestManager() (*Manager, *recordingListener) {
	listener := &recordingListener{}
	return NewManager("creature-1", uuid.NewSequentialGenerator("cond"), listener), listener
}

func TestManager_AddCondition(t *testing.T) {
	manager, listener := newTestManager()

	t.Run("add burned condition", func(t *testing.T) {
		condition, err := manager.AddCondition(Spec{Type: Burned, Source: "ember", SourceID: "creature-2", DurationType: DurationTurns, Duration: 3})
		require.NoError(t, err)
		assert.Equal(t, "cond-1", condition.ID)
		assert.Equal(t, Burned, condition.Type)
		assert.Equal(t, "creature-2", condition.SourceID)
		assert.Equal(t, 3, condition.Remaining)
		assert.Equal(t, []string{"cond-1"}, listener.applied)
	})

	t.Run("conditions don't stack", func(t *testing.T) {
		condition, err := manager.AddCondition(Spec{Type: Burned, DurationType: DurationTurns, Duration: 5})
		require.NoError(t, err)
		assert.Equal(t, "cond-1", condition.ID)
		assert.Equal(t, 5, condition.Remaining)
		assert.Len(t, manager.GetConditions(), 1)
		assert.Len(t, listener.applied, 1)
	})

	t.Run("shorter refresh keeps remaining", func(t *testing.T) {
		condition, err := manager.AddCondition(Spec{Type: Burned, DurationType: DurationTurns, Duration: 1})
		require.NoError(t, err)
		assert.Equal(t, 5, condition.Remaining)
	})

	t.Run("turn condition needs a duration", func(t *testing.T) {
		_, err := manager.AddCondition(Spec{Type: Rooted, DurationType: DurationTurns})
		assert.True(t, errors.IsInvalidArgument(err))
		assert.False(t, manager.HasCondition(Rooted))
	})

	t.Run("missing type is rejected", func(t *testing.T) {
		_, err := manager.AddCondition(Spec{})
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestManager_RemoveCondition(t *testing.T) {
	manager, listener := newTestManager()

	condition, err := manager.AddCondition(Spec{Type: Stunned, DurationType: DurationTurns, Duration: 1})
	require.NoError(t, err)

	require.NoError(t, manager.RemoveCondition(condition.ID))
	assert.False(t, manager.HasCondition(Stunned))
	assert.Empty(t, manager.GetConditions())
	assert.Equal(t, []string{condition.ID}, listener.removed)

	err = manager.RemoveCondition(condition.ID)
	assert.True(t, errors.IsNotFound(err))

	assert.Nil(t, manager.RemoveConditionByType(Stunned))
}

func TestManager_ProcessTurnEnd(t *testing.T) {
	manager, listener := newTestManager()

	_, err := manager.AddCondition(Spec{Type: Hastened, DurationType: DurationTurns, Duration: 2})
	require.NoError(t, err)
	_, err = manager.AddCondition(Spec{Type: Guarded})
	require.NoError(t, err)

	expired := manager.ProcessTurnEnd()
	assert.Empty(t, expired)
	assert.Equal(t, 1, manager.GetConditionByType(Hastened).Remaining)

	expired = manager.ProcessTurnEnd()
	require.Len(t, expired, 1)
	assert.Equal(t, Hastened, expired[0].Type)
	assert.Equal(t, []string{"cond-1"}, listener.removed)

	// Permanent conditions never tick
	assert.True(t, manager.HasCondition(Guarded))
	assert.Len(t, manager.GetConditions(), 1)
}

func TestManager_ProcessDamage(t *testing.T) {
	manager, _ := newTestManager()

	_, err := manager.AddCondition(Spec{Type: Rooted, DurationType: DurationUntilDamaged})
	require.NoError(t, err)

	assert.Empty(t, manager.ProcessDamage(0))
	assert.True(t, manager.HasCondition(Rooted))

	ended := manager.ProcessDamage(5)
	require.Len(t, ended, 1)
	assert.False(t, manager.HasCondition(Rooted))
}

func TestManager_GetActiveEffects(t *testing.T) {
	manager, _ := newTestManager()

	_, err := manager.AddCondition(Spec{Type: Burned, DurationType: DurationTurns, Duration: 3})
	require.NoError(t, err)
	_, err = manager.AddCondition(Spec{Type: Poisoned, DurationType: DurationTurns, Duration: 3})
	require.NoError(t, err)
	_, err = manager.AddCondition(Spec{Type: Rooted})
	require.NoError(t, err)

	effects := manager.GetActiveEffects()
	assert.False(t, effects.CantAct)
	assert.True(t, effects.CantMove)
	assert.Equal(t, 14, effects.DamagePerTurn)
}

func TestCondition_AsSource(t *testing.T) {
	manager, _ := newTestManager()

	condition, err := manager.AddCondition(Spec{
		Type: Guarded,
		StatMods: []modifiers.StatModifier{
			{Stat: shared.StatSpeed, Value: 5, Mode: shared.ModeFlat},
		},
	})
	require.NoError(t, err)

	source := condition.AsSource()
	assert.Equal(t, condition.ID, source.ID())

	mods := source.StatModifiers()
	require.Len(t, mods, 3)
	for _, mod := range mods {
		assert.Equal(t, condition.ID, mod.SourceID)
	}
	assert.Equal(t, shared.StatSpeed, mods[2].Stat)
	assert.Empty(t, source.CombatModifiers())
}

func TestGetStandardEffects(t *testing.T) {
	tests := []struct {
		condition ConditionType
		check     func(*Effect)
	}{
		{
			condition: Stunned,
			check: func(e *Effect) {
				assert.True(t, e.CantAct)
				assert.True(t, e.CantMove)
			},
		},
		{
			condition: Blinded,
			check: func(e *Effect) {
				require.Len(t, e.CombatMods, 1)
				assert.Equal(t, shared.CombatAccuracy, e.CombatMods[0].Param)
			},
		},
		{
			condition: StatShift,
			check: func(e *Effect) {
				assert.Empty(t, e.StatMods)
				assert.Zero(t, e.DamagePerTurn)
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.condition), func(t *testing.T) {
			tt.check(GetStandardEffects(tt.condition))
		})
	}
}

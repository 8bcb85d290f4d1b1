package modifiers_test

import (
	"testing"

	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
	"github.com/KirkDiggler/creature-battle/internal/modifiers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSource implements modifiers.Source for testing
type testSource struct {
	id     string
	stats  []modifiers.StatModifier
	combat []modifiers.CombatModifier
}

func (s *testSource) ID() string                                  { return s.id }
func (s *testSource) StatModifiers() []modifiers.StatModifier     { return s.stats }
func (s *testSource) CombatModifiers() []modifiers.CombatModifier { return s.combat }

func flat(stat shared.Stat, v float64) modifiers.StatModifier {
	return modifiers.StatModifier{Stat: stat, Value: v, Mode: shared.ModeFlat}
}

func pctBase(stat shared.Stat, v float64) modifiers.StatModifier {
	return modifiers.StatModifier{Stat: stat, Value: v, Mode: shared.ModePercentOfBase}
}

func pctTotal(stat shared.Stat, v float64) modifiers.StatModifier {
	return modifiers.StatModifier{Stat: stat, Value: v, Mode: shared.ModePercentOfTotal}
}

// level 50 with species strength 35 gives a base of exactly 40
func newManager() *modifiers.Manager {
	species := modifiers.BaseStats{
		shared.StatHP:       50,
		shared.StatEnergy:   40,
		shared.StatStrength: 35,
		shared.StatMagic:    20,
		shared.StatSpeed:    45,
	}
	return modifiers.NewManager("creature-1", species, nil, 50)
}

func TestManager_BaseStats(t *testing.T) {
	m := newManager()

	assert.Equal(t, 40, m.Base(shared.StatStrength))
	// 2*50*50/100 + 50 + 10
	assert.Equal(t, 110, m.Base(shared.StatHP))
	// Missing species stat still floors at 5 (the non-pool constant)
	assert.Equal(t, 5, m.Base(shared.StatDefense))
}

func TestManager_ClassBonusAndFloor(t *testing.T) {
	m := modifiers.NewManager("c", modifiers.BaseStats{shared.StatSkill: 10},
		modifiers.BaseStats{shared.StatSkill: 3, shared.StatDefense: -50}, 10)

	// 2*10*10/100 + 5 + 3
	assert.Equal(t, 10, m.Base(shared.StatSkill))
	assert.Equal(t, modifiers.MinStatValue, m.Base(shared.StatDefense))
}

func TestManager_FlatThenPercentOfBase(t *testing.T) {
	m := newManager()
	m.AddSource(&testSource{id: "trait-a", stats: []modifiers.StatModifier{
		flat(shared.StatStrength, 10),
		pctBase(shared.StatStrength, 20),
	}})

	// round((40+10) * 1.2)
	assert.Equal(t, 60, m.Current(shared.StatStrength))
}

func TestManager_ModeOrderIsFixed(t *testing.T) {
	m := newManager()
	// Registered in reverse mode order
	m.AddSource(&testSource{id: "total", stats: []modifiers.StatModifier{pctTotal(shared.StatStrength, 50)}})
	m.AddSource(&testSource{id: "base", stats: []modifiers.StatModifier{pctBase(shared.StatStrength, 25)}})
	m.AddSource(&testSource{id: "flat", stats: []modifiers.StatModifier{flat(shared.StatStrength, 8)}})

	// (40+8) * 1.25 * 1.5 = 90
	assert.Equal(t, 90, m.Current(shared.StatStrength))
}

func TestManager_OrderIndependentAcrossSources(t *testing.T) {
	sources := []*testSource{
		{id: "a", stats: []modifiers.StatModifier{pctTotal(shared.StatSpeed, 10), flat(shared.StatSpeed, 3)}},
		{id: "b", stats: []modifiers.StatModifier{pctTotal(shared.StatSpeed, -30), pctBase(shared.StatSpeed, 15)}},
		{id: "c", stats: []modifiers.StatModifier{pctTotal(shared.StatSpeed, 7), flat(shared.StatSpeed, -1)}},
	}

	forward := newManager()
	for _, src := range sources {
		forward.AddSource(src)
	}

	backward := newManager()
	for i := len(sources) - 1; i >= 0; i-- {
		backward.AddSource(sources[i])
	}

	assert.Equal(t, forward.Current(shared.StatSpeed), backward.Current(shared.StatSpeed))
}

func TestManager_PoolsIgnoreModifiers(t *testing.T) {
	m := newManager()
	m.AddSource(&testSource{id: "bulk", stats: []modifiers.StatModifier{
		flat(shared.StatHP, 100),
		pctTotal(shared.StatEnergy, 50),
	}})

	assert.Equal(t, m.Base(shared.StatHP), m.Current(shared.StatHP))
	assert.Equal(t, m.Base(shared.StatEnergy), m.Current(shared.StatEnergy))
}

func TestManager_FloorsAtMinimum(t *testing.T) {
	m := newManager()
	m.AddSource(&testSource{id: "curse", stats: []modifiers.StatModifier{flat(shared.StatStrength, -500)}})

	assert.Equal(t, modifiers.MinStatValue, m.Current(shared.StatStrength))
}

func TestManager_CachesUntilDirty(t *testing.T) {
	m := newManager()

	m.Current(shared.StatStrength)
	m.Current(shared.StatSpeed)
	assert.Equal(t, 1, m.CurrentRecomputes())
	assert.Equal(t, 1, m.BaseRecomputes())

	m.AddSource(&testSource{id: "buff", stats: []modifiers.StatModifier{flat(shared.StatStrength, 1)}})
	assert.Equal(t, 41, m.Current(shared.StatStrength))
	assert.Equal(t, 2, m.CurrentRecomputes())
	assert.Equal(t, 1, m.BaseRecomputes(), "source changes never rebuild base stats")

	m.MarkDirty()
	m.Current(shared.StatStrength)
	assert.Equal(t, 3, m.CurrentRecomputes())
}

func TestManager_LevelChangeInvalidatesBothTiers(t *testing.T) {
	m := newManager()
	m.Current(shared.StatStrength)

	m.SetLevel(100)
	// 2*35*100/100 + 5
	assert.Equal(t, 75, m.Current(shared.StatStrength))
	assert.Equal(t, 2, m.BaseRecomputes())
	assert.Equal(t, 2, m.CurrentRecomputes())

	// Same level is a no-op
	m.SetLevel(100)
	m.Current(shared.StatStrength)
	assert.Equal(t, 2, m.BaseRecomputes())
}

func TestManager_ReplaceAndRemoveSource(t *testing.T) {
	m := newManager()
	m.AddSource(&testSource{id: "stance", stats: []modifiers.StatModifier{flat(shared.StatStrength, 5)}})
	m.AddSource(&testSource{id: "stance", stats: []modifiers.StatModifier{flat(shared.StatStrength, 2)}})

	require.Len(t, m.Sources(), 1)
	assert.Equal(t, 42, m.Current(shared.StatStrength))

	assert.True(t, m.RemoveSource("stance"))
	assert.False(t, m.RemoveSource("stance"))
	assert.False(t, m.HasSource("stance"))
	assert.Equal(t, 40, m.Current(shared.StatStrength))
}

func TestManager_CombatParams(t *testing.T) {
	m := newManager()
	assert.InDelta(t, 0.5, m.Combat(shared.CombatCritBonus), 1e-9)

	m.AddSource(&testSource{id: "keen", combat: []modifiers.CombatModifier{
		{Param: shared.CombatCritBonus, Value: 0.25, Mode: shared.ModeFlat},
		{Param: shared.CombatAccuracy, Value: 10, Mode: shared.ModeFlat},
		{Param: shared.CombatCritChance, Value: 100, Mode: shared.ModePercentOfTotal},
	}})

	assert.InDelta(t, 0.75, m.Combat(shared.CombatCritBonus), 1e-9)
	assert.InDelta(t, 10, m.Combat(shared.CombatAccuracy), 1e-9)
	assert.InDelta(t, 0, m.Combat(shared.CombatCritChance), 1e-9)
}

func TestApplyStat_IgnoresOtherStats(t *testing.T) {
	mods := []modifiers.StatModifier{flat(shared.StatMagic, 99), pctBase(shared.StatDefense, 50)}

	assert.Equal(t, 30, modifiers.ApplyStat(shared.StatDefense, 20, mods))
	assert.Equal(t, 20, modifiers.ApplyStat(shared.StatSkill, 20, mods))
}

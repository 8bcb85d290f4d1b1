package main

import (
	"github.com/KirkDiggler/creature-battle/internal/aoe"
	"github.com/KirkDiggler/creature-battle/internal/domain/action"
	domainbattle "github.com/KirkDiggler/creature-battle/internal/domain/battle"
	"github.com/KirkDiggler/creature-battle/internal/domain/battlefield"
	"github.com/KirkDiggler/creature-battle/internal/domain/conditions"
	"github.com/KirkDiggler/creature-battle/internal/domain/creature"
	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
	"github.com/KirkDiggler/creature-battle/internal/domain/terrain"
	"github.com/KirkDiggler/creature-battle/internal/errors"
	"github.com/KirkDiggler/creature-battle/internal/modifiers"
	"github.com/KirkDiggler/creature-battle/internal/traits"
	"github.com/KirkDiggler/creature-battle/internal/uuid"
)

func defaultActions() (*action.Registry, error) {
	return action.NewRegistry(
		&action.Action{
			Key: "claw", Name: "Claw", Power: 45, Accuracy: 95, CritChance: 10,
			Source: shared.SourcePhysical, Role: shared.RoleAttack, Range: shared.RangeMelee,
			Slot: shared.SlotCore, EnergyGainPercent: 15,
		},
		&action.Action{
			Key: "spit", Name: "Spit", Power: 35, Accuracy: 90, CritChance: 5,
			Source: shared.SourcePhysical, Role: shared.RoleAttack, Range: shared.RangeRanged,
			Slot: shared.SlotCore, EnergyGainPercent: 10,
		},
		&action.Action{
			Key: "mend", Name: "Mend", Power: 30, Accuracy: 100,
			Source: shared.SourceMagical, Role: shared.RoleSupport, Range: shared.RangeRanged,
			Slot: shared.SlotCore, EnergyGainPercent: 10,
			Tags: []shared.ActionTag{shared.TagHealing},
		},
		&action.Action{
			Key: "ember", Name: "Ember", Power: 20, Accuracy: 90, CritChance: 5,
			Source: shared.SourceMagical, Role: shared.RoleAttack, Range: shared.RangeRanged,
			Element: shared.ElementFire, Slot: shared.SlotEmpowered, EnergyCost: 15,
			Inflicts: conditions.Burned, InflictTurns: 2,
		},
		&action.Action{
			Key: "flame_wave", Name: "Flame Wave", Power: 40, Accuracy: 85, CritChance: 5,
			Source: shared.SourceMagical, Role: shared.RoleAttack, Range: shared.RangeRanged,
			Element: shared.ElementFire, Shape: aoe.ShapeBurst1, Slot: shared.SlotEmpowered, EnergyCost: 25,
		},
		&action.Action{
			Key: "tidal_crash", Name: "Tidal Crash", Power: 45, Accuracy: 85, CritChance: 5,
			Source: shared.SourceMagical, Role: shared.RoleAttack, Range: shared.RangeRanged,
			Element: shared.ElementWater, Shape: aoe.ShapeLine3, Slot: shared.SlotEmpowered, EnergyCost: 25,
		},
		&action.Action{
			Key: "root_snare", Name: "Root Snare", Accuracy: 75,
			Source: shared.SourceMagical, Role: shared.RoleAttack, Range: shared.RangeRanged,
			Element: shared.ElementNature, Slot: shared.SlotEmpowered, EnergyCost: 10,
			Inflicts: conditions.Rooted, InflictTurns: 1,
		},
		&action.Action{
			Key: "meteor", Name: "Meteor", Power: 90, Accuracy: 80, CritChance: 10,
			Source: shared.SourceMagical, Role: shared.RoleAttack, Range: shared.RangeRanged,
			Element: shared.ElementFire, Shape: aoe.ShapeCone2x3, Slot: shared.SlotMastery, EnergyCost: 60,
		},
	)
}

type loadoutEntry struct {
	slot  shared.SlotType
	index int
	key   string
}

type combatant struct {
	name     string
	species  *creature.Species
	side     shared.Side
	position battlefield.Position
	loadout  []loadoutEntry
	traits   []string
}

func stats(hp, energy, strength, magic, defense, resistance, skill, speed int) modifiers.BaseStats {
	return modifiers.BaseStats{
		shared.StatHP:         hp,
		shared.StatEnergy:     energy,
		shared.StatStrength:   strength,
		shared.StatMagic:      magic,
		shared.StatDefense:    defense,
		shared.StatResistance: resistance,
		shared.StatSkill:      skill,
		shared.StatSpeed:      speed,
	}
}

var (
	emberling = &creature.Species{
		Key: "emberling", Name: "Emberling",
		Elements:  []shared.Element{shared.ElementFire},
		BaseStats: stats(45, 60, 40, 70, 40, 50, 60, 65),
	}
	mossback = &creature.Species{
		Key: "mossback", Name: "Mossback",
		Elements:  []shared.Element{shared.ElementNature, shared.ElementEarth},
		BaseStats: stats(80, 40, 65, 35, 75, 55, 40, 30),
	}
	tidecaller = &creature.Species{
		Key: "tidecaller", Name: "Tidecaller",
		Elements:  []shared.Element{shared.ElementWater},
		BaseStats: stats(55, 55, 45, 65, 50, 60, 55, 55),
	}
	duskfang = &creature.Species{
		Key: "duskfang", Name: "Duskfang",
		Elements:  []shared.Element{shared.ElementShadow},
		BaseStats: stats(50, 45, 75, 30, 45, 40, 70, 70),
	}
)

func defaultRoster() []combatant {
	return []combatant{
		{
			name: "Cinder", species: emberling, side: shared.SidePlayer,
			position: battlefield.NewPosition(2, 2),
			loadout: []loadoutEntry{
				{shared.SlotCore, 0, "spit"},
				{shared.SlotEmpowered, 0, "ember"},
				{shared.SlotEmpowered, 1, "flame_wave"},
				{shared.SlotMastery, 0, "meteor"},
			},
			traits: []string{"searing_touch", "keen_eye"},
		},
		{
			name: "Bramble", species: mossback, side: shared.SidePlayer,
			position: battlefield.NewPosition(1, 3),
			loadout: []loadoutEntry{
				{shared.SlotCore, 0, "claw"},
				{shared.SlotCore, 1, "mend"},
				{shared.SlotEmpowered, 0, "root_snare"},
			},
			traits: []string{"thick_skin", "spiked_hide", "guardian"},
		},
		{
			name: "Ripple", species: tidecaller, side: shared.SideEnemy,
			position: battlefield.NewPosition(2, 5),
			loadout: []loadoutEntry{
				{shared.SlotCore, 0, "spit"},
				{shared.SlotCore, 1, "mend"},
				{shared.SlotEmpowered, 0, "tidal_crash"},
			},
			traits: []string{"energy_siphon", "martyr"},
		},
		{
			name: "Gloam", species: duskfang, side: shared.SideEnemy,
			position: battlefield.NewPosition(3, 4),
			loadout: []loadoutEntry{
				{shared.SlotCore, 0, "claw"},
			},
			traits: []string{"pack_hunter", "last_stand", "loner"},
		},
	}
}

// buildArena lays out the default terrain and places the roster
func buildArena(battleID string, level int, actions *action.Registry, traitSet *traits.Registry, ids uuid.Generator) (*domainbattle.Context, error) {
	field := battlefield.NewDefault()
	layout := map[battlefield.Position]terrain.Type{
		battlefield.NewPosition(0, 2): terrain.Lava,
		battlefield.NewPosition(3, 2): terrain.Forest,
		battlefield.NewPosition(4, 3): terrain.Water,
		battlefield.NewPosition(1, 5): terrain.Boulder,
		battlefield.NewPosition(4, 6): terrain.Chasm,
		battlefield.NewPosition(2, 6): terrain.Ice,
	}
	for pos, t := range layout {
		if err := field.SetTerrain(pos, t); err != nil {
			return nil, err
		}
	}

	arena := domainbattle.NewContext(battleID, field)
	for _, entry := range defaultRoster() {
		c, err := creature.New(&creature.Config{
			Name:        entry.name,
			Species:     entry.species,
			Level:       level,
			Side:        entry.side,
			IDGenerator: ids,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create %s", entry.name)
		}

		for _, slot := range entry.loadout {
			if !c.Equip(actions, slot.slot, slot.index, slot.key) {
				return nil, errors.InvalidArgumentf("%s cannot equip %s in %s slot %d", entry.name, slot.key, slot.slot, slot.index)
			}
		}
		for _, key := range entry.traits {
			trait, ok := traitSet.Get(key)
			if !ok {
				return nil, errors.NotFoundf("trait %s not found", key)
			}
			if !c.EquipTrait(trait) {
				return nil, errors.InvalidArgumentf("%s cannot equip trait %s", entry.name, key)
			}
		}

		if err := arena.AddCreature(c, entry.position); err != nil {
			return nil, errors.Wrapf(err, "failed to place %s", entry.name)
		}
	}
	return arena, nil
}

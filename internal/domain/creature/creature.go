// Package creature models a battle participant: stats, resources, loadout,
// traits and conditions. All mutations go through methods so the stat
// manager is invalidated whenever its inputs change.
package creature

import (
	"log"

	"github.com/KirkDiggler/creature-battle/internal/domain/action"
	"github.com/KirkDiggler/creature-battle/internal/domain/battlefield"
	"github.com/KirkDiggler/creature-battle/internal/domain/conditions"
	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
	"github.com/KirkDiggler/creature-battle/internal/errors"
	"github.com/KirkDiggler/creature-battle/internal/modifiers"
	"github.com/KirkDiggler/creature-battle/internal/uuid"
)

// StartingEnergyPercent is the share of max energy a creature enters battle with
const StartingEnergyPercent = 50

// TraitRef is an equipped trait as seen by the creature. The trait engine
// resolves the full definition by key.
type TraitRef interface {
	modifiers.Source
	Key() string
}

// Creature is one battle participant
type Creature struct {
	id      string
	name    string
	species *Species
	class   *Class
	side    shared.Side

	position battlefield.Position
	placed   bool

	hp       int
	energy   int
	defeated bool

	loadout    Loadout
	traits     []TraitRef
	stats      *modifiers.Manager
	conditions *conditions.Manager
}

// Config holds the data needed to create a creature
type Config struct {
	ID          string
	Name        string
	Species     *Species
	Class       *Class
	Level       int
	Side        shared.Side
	IDGenerator uuid.Generator
}

// New creates a creature at full HP with starting energy
func New(cfg *Config) (*Creature, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("creature config is required")
	}
	if cfg.Species == nil {
		return nil, errors.InvalidArgument("creature species is required")
	}
	if cfg.Side != shared.SidePlayer && cfg.Side != shared.SideEnemy {
		return nil, errors.InvalidArgumentf("invalid side %q", cfg.Side)
	}

	generator := cfg.IDGenerator
	if generator == nil {
		generator = uuid.NewGoogleUUIDGenerator()
	}

	id := cfg.ID
	if id == "" {
		id = generator.New()
	}
	name := cfg.Name
	if name == "" {
		name = cfg.Species.Name
	}

	var classBonus modifiers.BaseStats
	if cfg.Class != nil {
		classBonus = cfg.Class.Bonus
	}

	c := &Creature{
		id:      id,
		name:    name,
		species: cfg.Species,
		class:   cfg.Class,
		side:    cfg.Side,
		traits:  make([]TraitRef, 0, MaxTraits),
		stats:   modifiers.NewManager(id, cfg.Species.BaseStats, classBonus, cfg.Level),
	}
	c.conditions = conditions.NewManager(id, generator, conditionSync{creature: c})
	c.hp = c.MaxHP()
	c.energy = c.MaxEnergy() * StartingEnergyPercent / 100

	return c, nil
}

// ID returns the creature's stable handle
func (c *Creature) ID() string {
	return c.id
}

// Name returns the display name
func (c *Creature) Name() string {
	return c.name
}

// Species returns the species template
func (c *Creature) Species() *Species {
	return c.species
}

// Class returns the class or nil
func (c *Creature) Class() *Class {
	return c.class
}

// Side returns the team the creature fights for
func (c *Creature) Side() shared.Side {
	return c.side
}

// Level returns the creature's level
func (c *Creature) Level() int {
	return c.stats.Level()
}

// SetLevel changes level. HP and energy are capped at the new maxima.
func (c *Creature) SetLevel(level int) {
	c.stats.SetLevel(level)
	c.clampResources()
}

// SetClass swaps the class and rebuilds base stats
func (c *Creature) SetClass(class *Class) {
	c.class = class
	var bonus modifiers.BaseStats
	if class != nil {
		bonus = class.Bonus
	}
	c.stats.SetClassBonus(bonus)
	c.clampResources()
}

// Elements returns the creature's element tags
func (c *Creature) Elements() []shared.Element {
	return c.species.Elements
}

// HasElement checks if the creature carries an element tag
func (c *Creature) HasElement(element shared.Element) bool {
	return c.species.HasElement(element)
}

// Position returns the current grid position and whether the creature is placed
func (c *Creature) Position() (battlefield.Position, bool) {
	return c.position, c.placed
}

// SetPosition records where the battlefield placed the creature
func (c *Creature) SetPosition(p battlefield.Position) {
	c.position = p
	c.placed = true
}

// ClearPosition marks the creature as off the grid
func (c *Creature) ClearPosition() {
	c.placed = false
}

// Stats returns the creature's stat manager
func (c *Creature) Stats() *modifiers.Manager {
	return c.stats
}

// Stat returns the current value of a stat
func (c *Creature) Stat(stat shared.Stat) int {
	return c.stats.Current(stat)
}

// Conditions returns the creature's condition manager
func (c *Creature) Conditions() *conditions.Manager {
	return c.conditions
}

// Loadout returns a copy of the equipped actions
func (c *Creature) Loadout() Loadout {
	return c.loadout
}

// Equip places an action from the registry in a loadout slot. Unknown
// actions, out-of-range slots and incompatible core roles return false and
// leave the loadout unchanged.
func (c *Creature) Equip(actions *action.Registry, slot shared.SlotType, index int, actionKey string) bool {
	var a *action.Action
	if actions != nil {
		a, _ = actions.Get(actionKey)
	}
	if !c.loadout.Equip(slot, index, a) {
		log.Printf("[CREATURE] Rejected equip of %q into %s slot %d on %s", actionKey, slot, index, c.id)
		return false
	}
	return true
}

// Knows reports whether an action key is equipped in any slot
func (c *Creature) Knows(actionKey string) bool {
	return c.loadout.Has(actionKey)
}

// EquipTrait adds a trait. Duplicates and traits beyond MaxTraits are rejected.
func (c *Creature) EquipTrait(trait TraitRef) bool {
	if trait == nil || len(c.traits) >= MaxTraits || c.HasTrait(trait.Key()) {
		return false
	}
	c.traits = append(c.traits, trait)
	c.stats.AddSource(trait)
	return true
}

// UnequipTrait removes a trait by key
func (c *Creature) UnequipTrait(key string) bool {
	for i, t := range c.traits {
		if t.Key() != key {
			continue
		}
		c.traits = append(c.traits[:i], c.traits[i+1:]...)
		c.stats.RemoveSource(t.ID())
		return true
	}
	return false
}

// HasTrait reports whether a trait key is equipped
func (c *Creature) HasTrait(key string) bool {
	for _, t := range c.traits {
		if t.Key() == key {
			return true
		}
	}
	return false
}

// Traits returns equipped traits in equip order
func (c *Creature) Traits() []TraitRef {
	out := make([]TraitRef, len(c.traits))
	copy(out, c.traits)
	return out
}

// ApplyCondition applies a condition to the creature
func (c *Creature) ApplyCondition(spec conditions.Spec) (*conditions.Condition, error) {
	if c.defeated {
		return nil, errors.Rejectedf("creature %s is defeated", c.id)
	}
	return c.conditions.AddCondition(spec)
}

// RemoveCondition removes the active condition of a type if present
func (c *Creature) RemoveCondition(condType conditions.ConditionType) *conditions.Condition {
	return c.conditions.RemoveConditionByType(condType)
}

// HasCondition checks for an active condition type
func (c *Creature) HasCondition(condType conditions.ConditionType) bool {
	return c.conditions.HasCondition(condType)
}

// CanAct reports whether the creature may take an action this turn
func (c *Creature) CanAct() bool {
	return !c.defeated && !c.conditions.GetActiveEffects().CantAct
}

// CanMove reports whether the creature may move voluntarily
func (c *Creature) CanMove() bool {
	return !c.defeated && !c.conditions.GetActiveEffects().CantMove
}

// conditionSync keeps the stat manager in step with the condition set
type conditionSync struct {
	creature *Creature
}

func (s conditionSync) ConditionApplied(condition *conditions.Condition) {
	s.creature.stats.AddSource(condition.AsSource())
}

func (s conditionSync) ConditionRemoved(condition *conditions.Condition) {
	s.creature.stats.RemoveSource(condition.ID)
}

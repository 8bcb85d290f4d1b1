// Package terrain answers per-tile rules: who may enter, what it costs,
// how it shifts ranged defense, and what it does to whoever stands on it.
package terrain

import (
	"log"

	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
)

// Type identifies a terrain kind
type Type string

const (
	Plain   Type = "plain"
	Water   Type = "water"
	Lava    Type = "lava"
	Chasm   Type = "chasm"
	Forest  Type = "forest"
	Boulder Type = "boulder"
	Rubble  Type = "rubble"
	Ice     Type = "ice"
)

// Types lists every registered terrain type
var Types = []Type{Plain, Water, Lava, Chasm, Forest, Boulder, Rubble, Ice}

// Occupant is the creature-side view terrain needs for its overrides
type Occupant interface {
	HasElement(element shared.Element) bool
}

// Policy is the rule set for one terrain type. Every query takes the
// occupant so a type can answer differently per creature.
type Policy interface {
	Type() Type

	// CanEnter reports whether the occupant may voluntarily move in
	CanEnter(o Occupant) bool

	// CanEnterForced reports whether a forced move (push, pull, swap) may place the occupant here
	CanEnterForced(o Occupant) bool

	// MovementCost is the extra fraction of a move spent entering
	MovementCost(o Occupant) float64

	// RangedDefenseAdjustment shifts ranged defense for the occupant
	RangedDefenseAdjustment(o Occupant) int

	// HazardDamage is dealt to the occupant each turn it stands here
	HazardDamage(o Occupant) int

	// IsInstantDefeat reports whether entering defeats the occupant outright
	IsInstantDefeat(o Occupant) bool

	IsDestructible() bool

	// DestroyedReplacement returns what the tile becomes once destroyed
	DestroyedReplacement() (Type, bool)
}

// basePolicy holds the fixed answers; creature-aware types embed it and
// override individual queries
type basePolicy struct {
	terrainType     Type
	enterable       bool
	forcedEnterable bool
	movementCost    float64
	rangedDefense   int
	hazardDamage    int
	instantDefeat   bool
	replacement     Type
}

func (p *basePolicy) Type() Type                           { return p.terrainType }
func (p *basePolicy) CanEnter(Occupant) bool               { return p.enterable }
func (p *basePolicy) MovementCost(Occupant) float64        { return p.movementCost }
func (p *basePolicy) RangedDefenseAdjustment(Occupant) int { return p.rangedDefense }
func (p *basePolicy) HazardDamage(Occupant) int            { return p.hazardDamage }
func (p *basePolicy) IsInstantDefeat(Occupant) bool        { return p.instantDefeat }
func (p *basePolicy) IsDestructible() bool                 { return p.replacement != "" }
func (p *basePolicy) DestroyedReplacement() (Type, bool)   { return p.replacement, p.replacement != "" }
func (p *basePolicy) CanEnterForced(o Occupant) bool       { return p.enterable || p.forcedEnterable }

// waterPolicy lets water-element creatures swim freely
type waterPolicy struct {
	basePolicy
}

func (p *waterPolicy) MovementCost(o Occupant) float64 {
	if o != nil && o.HasElement(shared.ElementWater) {
		return 0
	}
	return p.movementCost
}

func (p *waterPolicy) RangedDefenseAdjustment(o Occupant) int {
	if o != nil && o.HasElement(shared.ElementWater) {
		return 0
	}
	return p.rangedDefense
}

// lavaPolicy burns everything that is not fire-element
type lavaPolicy struct {
	basePolicy
}

func (p *lavaPolicy) HazardDamage(o Occupant) int {
	if o != nil && o.HasElement(shared.ElementFire) {
		return 0
	}
	return p.hazardDamage
}

// icePolicy costs nothing for water-element creatures
type icePolicy struct {
	basePolicy
}

func (p *icePolicy) MovementCost(o Occupant) float64 {
	if o != nil && o.HasElement(shared.ElementWater) {
		return 0
	}
	return p.movementCost
}

var policies = map[Type]Policy{
	Plain:   &basePolicy{terrainType: Plain, enterable: true},
	Water:   &waterPolicy{basePolicy{terrainType: Water, enterable: true, movementCost: 1.0, rangedDefense: -10}},
	Lava:    &lavaPolicy{basePolicy{terrainType: Lava, enterable: true, movementCost: 0.5, hazardDamage: 10}},
	Chasm:   &basePolicy{terrainType: Chasm, forcedEnterable: true, instantDefeat: true},
	Forest:  &basePolicy{terrainType: Forest, enterable: true, movementCost: 0.5, rangedDefense: 10},
	Boulder: &basePolicy{terrainType: Boulder, rangedDefense: 20, replacement: Rubble},
	Rubble:  &basePolicy{terrainType: Rubble, enterable: true, movementCost: 0.5},
	Ice:     &icePolicy{basePolicy{terrainType: Ice, enterable: true, movementCost: 0.25}},
}

// PolicyFor returns the rules for a terrain type. Unknown types fall back to
// Plain so a bad tile never aborts movement resolution.
func PolicyFor(t Type) Policy {
	if p, ok := policies[t]; ok {
		return p
	}
	log.Printf("[TERRAIN] Unknown terrain type %q, treating as plain", t)
	return policies[Plain]
}

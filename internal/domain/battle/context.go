// Package battle holds the shared state every event is resolved against:
// the turn counter, the battlefield and the creature arena.
package battle

import (
	"log"

	"github.com/KirkDiggler/creature-battle/internal/domain/battlefield"
	"github.com/KirkDiggler/creature-battle/internal/domain/creature"
	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
	"github.com/KirkDiggler/creature-battle/internal/errors"
)

// Context is the battle state. Creatures are indexed by ID and iterated in
// registration order.
type Context struct {
	id        string
	turn      int
	field     *battlefield.Battlefield
	creatures map[string]*creature.Creature
	order     []string
}

// NewContext creates a battle on the given field. Turn numbering starts at 1.
func NewContext(id string, field *battlefield.Battlefield) *Context {
	if field == nil {
		field = battlefield.NewDefault()
	}
	return &Context{
		id:        id,
		turn:      1,
		field:     field,
		creatures: make(map[string]*creature.Creature),
	}
}

// ID returns the battle ID
func (b *Context) ID() string {
	return b.id
}

// Turn returns the current turn number
func (b *Context) Turn() int {
	return b.turn
}

// AdvanceTurn moves to the next turn and returns its number
func (b *Context) AdvanceTurn() int {
	b.turn++
	return b.turn
}

// Battlefield returns the grid
func (b *Context) Battlefield() *battlefield.Battlefield {
	return b.field
}

// AddCreature registers a creature and places it on its own half of the grid
func (b *Context) AddCreature(c *creature.Creature, p battlefield.Position) error {
	if c == nil {
		return errors.InvalidArgument("creature is required")
	}
	if _, exists := b.creatures[c.ID()]; exists {
		return errors.InvalidArgumentf("creature %s already in battle", c.ID())
	}
	if !b.field.InBounds(p) {
		return errors.InvalidArgumentf("position %s is off the grid", p)
	}
	if battlefield.SideOfColumn(p.Col) != c.Side() {
		return errors.Rejectedf("%s creature %s can't start on column %d", c.Side(), c.ID(), p.Col)
	}
	if err := b.field.Place(c.ID(), p); err != nil {
		return err
	}

	c.SetPosition(p)
	b.creatures[c.ID()] = c
	b.order = append(b.order, c.ID())
	log.Printf("[BATTLE] %s joined %s at %s", c.Name(), c.Side(), p)
	return nil
}

// Creature looks up a creature by ID
func (b *Context) Creature(id string) (*creature.Creature, bool) {
	c, ok := b.creatures[id]
	return c, ok
}

// Creatures returns every registered creature in registration order,
// defeated ones included
func (b *Context) Creatures() []*creature.Creature {
	out := make([]*creature.Creature, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.creatures[id])
	}
	return out
}

// Living returns the creatures still fighting on a side
func (b *Context) Living(side shared.Side) []*creature.Creature {
	var out []*creature.Creature
	for _, c := range b.Creatures() {
		if c.Side() == side && !c.IsDefeated() {
			out = append(out, c)
		}
	}
	return out
}

// CreatureAt returns the creature standing on p
func (b *Context) CreatureAt(p battlefield.Position) (*creature.Creature, bool) {
	id, ok := b.field.OccupantAt(p)
	if !ok {
		return nil, false
	}
	return b.Creature(id)
}

// Allies returns living creatures on c's side, excluding c
func (b *Context) Allies(c *creature.Creature) []*creature.Creature {
	var out []*creature.Creature
	for _, other := range b.Living(c.Side()) {
		if other.ID() != c.ID() {
			out = append(out, other)
		}
	}
	return out
}

// Opponents returns living creatures on the other side
func (b *Context) Opponents(c *creature.Creature) []*creature.Creature {
	return b.Living(c.Side().Opposite())
}

// AdjacentCreatures returns living creatures sharing an edge with c.
// A creature off the grid has no neighbours.
func (b *Context) AdjacentCreatures(c *creature.Creature) []*creature.Creature {
	pos, placed := c.Position()
	if !placed {
		return nil
	}

	var out []*creature.Creature
	for _, id := range b.field.AdjacentOccupants(pos) {
		other, ok := b.creatures[id]
		if ok && !other.IsDefeated() {
			out = append(out, other)
		}
	}
	return out
}

// AverageStat returns the mean current value of a stat over living creatures
func (b *Context) AverageStat(stat shared.Stat) int {
	total, count := 0, 0
	for _, c := range b.Creatures() {
		if c.IsDefeated() {
			continue
		}
		total += c.Stat(stat)
		count++
	}
	if count == 0 {
		return 0
	}
	return total / count
}

// MoveCreature relocates a creature on the grid. Nothing changes on failure.
func (b *Context) MoveCreature(c *creature.Creature, to battlefield.Position) error {
	from, placed := c.Position()
	if !placed {
		return errors.Rejectedf("creature %s is not on the grid", c.ID())
	}
	if err := b.field.Move(c.ID(), from, to); err != nil {
		return err
	}
	c.SetPosition(to)
	return nil
}

// RemoveFromField takes a defeated creature's body off its tile
func (b *Context) RemoveFromField(c *creature.Creature) {
	pos, placed := c.Position()
	if !placed {
		return
	}
	b.field.Clear(pos)
	c.ClearPosition()
}

// Winner reports the winning side once the other side has no living creatures
func (b *Context) Winner() (shared.Side, bool) {
	players := len(b.Living(shared.SidePlayer))
	enemies := len(b.Living(shared.SideEnemy))
	switch {
	case players > 0 && enemies == 0:
		return shared.SidePlayer, true
	case enemies > 0 && players == 0:
		return shared.SideEnemy, true
	default:
		return "", false
	}
}

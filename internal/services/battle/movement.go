package battle

import (
	"context"
	"log"

	"github.com/KirkDiggler/creature-battle/internal/domain/battlefield"
	"github.com/KirkDiggler/creature-battle/internal/domain/creature"
	"github.com/KirkDiggler/creature-battle/internal/domain/events"
	"github.com/KirkDiggler/creature-battle/internal/errors"
)

func (s *service) Move(ctx context.Context, creatureID string, to battlefield.Position) (*MoveResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mover, err := s.living(creatureID)
	if err != nil {
		return nil, err
	}
	if !mover.CanMove() {
		return nil, errors.Rejectedf("%s cannot move", mover.Name())
	}
	from, placed := mover.Position()
	if !placed {
		return nil, errors.Rejectedf("%s is not on the battlefield", mover.Name())
	}

	field := s.battle.Battlefield()
	if !field.InBounds(to) {
		return nil, errors.InvalidArgumentf("position %s is off the grid", to)
	}
	if !from.IsAdjacent(to) {
		return nil, errors.Rejectedf("%s can only step to an adjacent tile", mover.Name())
	}
	if battlefield.SideOfColumn(to.Col) != mover.Side() {
		return nil, errors.Rejectedf("%s cannot cross to the other side", mover.Name())
	}
	policy := field.Policy(to)
	if !policy.CanEnter(mover) {
		return nil, errors.Rejectedf("%s cannot enter %s", mover.Name(), policy.Type())
	}
	if occupant, taken := field.OccupantAt(to); taken {
		return nil, errors.Rejectedf("tile %s is occupied by %s", to, occupant)
	}

	result := &MoveResult{
		CreatureID: mover.ID(),
		From:       from,
		To:         to,
		Steps:      1,
		Cost:       1 + policy.MovementCost(mover),
	}
	if err := s.relocate(ctx, mover, nil, from, to); err != nil {
		return nil, err
	}

	fallen, err := s.landOn(ctx, mover, nil)
	if err != nil {
		return nil, err
	}
	result.Defeated = fallen
	return result, nil
}

func (s *service) Push(ctx context.Context, input *PushInput) (*MoveResult, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if abs(input.DRow)+abs(input.DCol) != 1 {
		return nil, errors.InvalidArgumentf("push direction (%d,%d) must be one orthogonal step", input.DRow, input.DCol)
	}
	if input.Distance < 1 {
		return nil, errors.InvalidArgumentf("push distance %d must be positive", input.Distance)
	}

	source, err := s.living(input.SourceID)
	if err != nil {
		return nil, err
	}
	target, err := s.living(input.TargetID)
	if err != nil {
		return nil, err
	}
	from, placed := target.Position()
	if !placed {
		return nil, errors.Rejectedf("%s is not on the battlefield", target.Name())
	}

	to, steps, cost := s.pushPath(target, from, input)
	result := &MoveResult{
		CreatureID: target.ID(),
		From:       from,
		To:         to,
		Steps:      steps,
		Cost:       cost,
		Forced:     true,
	}
	if steps == 0 {
		log.Printf("[BATTLE] %s could not be pushed from %s", target.Name(), from)
		return result, nil
	}

	if err := s.relocate(ctx, target, source, from, to); err != nil {
		return nil, err
	}

	fallen, err := s.landOn(ctx, target, source)
	if err != nil {
		return nil, err
	}
	result.Defeated = fallen
	return result, nil
}

// pushPath walks the push until the next tile is off the grid, occupied or
// refuses forced entry. A tile that defeats outright ends the walk.
func (s *service) pushPath(target *creature.Creature, from battlefield.Position, input *PushInput) (battlefield.Position, int, float64) {
	field := s.battle.Battlefield()
	current := from
	steps := 0
	cost := 0.0
	for steps < input.Distance {
		next := current.Offset(input.DRow, input.DCol)
		if !field.InBounds(next) {
			break
		}
		if _, taken := field.OccupantAt(next); taken {
			break
		}
		policy := field.Policy(next)
		if !policy.CanEnterForced(target) {
			break
		}
		current = next
		steps++
		cost += 1 + policy.MovementCost(target)
		if policy.IsInstantDefeat(target) {
			break
		}
	}
	return current, steps, cost
}

func (s *service) relocate(ctx context.Context, mover, movedBy *creature.Creature, from, to battlefield.Position) error {
	move := &events.MoveEvent{
		Base:    s.base(events.Before, mover),
		From:    from,
		To:      to,
		Forced:  movedBy != nil,
		MovedBy: movedBy,
	}
	if err := s.emit(ctx, move); err != nil {
		return err
	}
	if err := s.battle.MoveCreature(mover, to); err != nil {
		return err
	}
	log.Printf("[BATTLE] %s moved %s -> %s", mover.Name(), from, to)

	after := *move
	after.When = events.After
	return s.emit(ctx, &after)
}

// landOn applies instant-defeat terrain under the creature
func (s *service) landOn(ctx context.Context, c, by *creature.Creature) ([]string, error) {
	pos, placed := c.Position()
	if !placed {
		return nil, nil
	}
	policy := s.battle.Battlefield().Policy(pos)
	if policy.IsInstantDefeat(c) {
		log.Printf("[BATTLE] %s fell into %s at %s", c.Name(), policy.Type(), pos)
		c.Defeat()
	}
	return s.settleDefeats(ctx, by)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

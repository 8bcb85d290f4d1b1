package main

import (
	"context"
	"log"

	"github.com/KirkDiggler/creature-battle/internal/domain/action"
	"github.com/KirkDiggler/creature-battle/internal/domain/battlefield"
	"github.com/KirkDiggler/creature-battle/internal/domain/creature"
	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
	"github.com/KirkDiggler/creature-battle/internal/errors"
	"github.com/KirkDiggler/creature-battle/internal/services/battle"
)

// healThreshold is the HP percentage below which a healer tends its team
const healThreshold = 50

// duel drives a scripted battle: every living creature takes a turn in
// registration order until one side falls or the turn limit is reached
type duel struct {
	service  battle.Service
	actions  *action.Registry
	maxTurns int
}

// outcome summarises a finished duel
type outcome struct {
	Winner  shared.Side
	Decided bool
	Turns   int
}

func (d *duel) run(ctx context.Context) (*outcome, error) {
	arena := d.service.Battle()
	for arena.Turn() <= d.maxTurns {
		for _, c := range arena.Creatures() {
			if c.IsDefeated() {
				continue
			}
			if err := d.takeTurn(ctx, c); err != nil {
				return nil, errors.Wrapf(err, "turn %d for %s failed", arena.Turn(), c.Name())
			}
			if side, ok := arena.Winner(); ok {
				return &outcome{Winner: side, Decided: true, Turns: arena.Turn()}, nil
			}
		}
		arena.AdvanceTurn()
	}

	log.Printf("[SIM] Turn limit %d reached without a winner", d.maxTurns)
	return &outcome{Turns: d.maxTurns}, nil
}

func (d *duel) takeTurn(ctx context.Context, c *creature.Creature) error {
	report, err := d.service.StartTurn(ctx, c.ID())
	if err != nil {
		return err
	}

	if report.CanAct && !c.IsDefeated() {
		acted, err := d.act(ctx, c)
		if err != nil {
			return err
		}
		if !acted && report.CanMove && !c.IsDefeated() {
			if err := d.advance(ctx, c); err != nil {
				return err
			}
			if _, err := d.act(ctx, c); err != nil {
				return err
			}
		}
	}

	if c.IsDefeated() {
		return nil
	}
	_, err = d.service.EndTurn(ctx, c.ID())
	return err
}

// act tries the creature's plans in order and reports whether one landed.
// Rejected plans fall through to the next one.
func (d *duel) act(ctx context.Context, c *creature.Creature) (bool, error) {
	for _, plan := range d.plans(c) {
		if c.IsDefeated() {
			return true, nil
		}
		result, err := d.service.UseAction(ctx, plan)
		if err != nil {
			if errors.IsRejected(err) {
				continue
			}
			return false, err
		}
		log.Printf("[SIM] %s used %s: %d target(s), %d defeated", c.Name(), result.ActionKey, len(result.Outcomes), len(result.Defeated))
		return true, nil
	}
	return false, nil
}

// plans lists candidate actions: a heal when an ally is hurt, then damaging
// actions from the strongest slot down, each aimed at the nearest opponent
func (d *duel) plans(c *creature.Creature) []*battle.UseActionInput {
	arena := d.service.Battle()
	loadout := c.Loadout()

	var keys []string
	keys = append(keys, loadout.Mastery[:]...)
	keys = append(keys, loadout.Empowered[:]...)
	keys = append(keys, loadout.Core[:]...)

	var plans []*battle.UseActionInput
	if patient := mostWounded(c, arena.Allies(c)); patient != nil {
		for _, key := range keys {
			if a, ok := d.actions.Get(key); ok && a.IsHealing() {
				plans = append(plans, &battle.UseActionInput{ActorID: c.ID(), ActionKey: key, TargetID: patient.ID()})
			}
		}
	}

	target := nearest(c, arena.Opponents(c))
	if target == nil {
		return plans
	}
	for _, key := range keys {
		a, ok := d.actions.Get(key)
		if !ok || a.IsHealing() || a.Role == shared.RoleSupport {
			continue
		}
		if a.EnergyCost > c.Energy() {
			continue
		}
		if a.Inflicts != "" && target.HasCondition(a.Inflicts) && !a.IsDamaging() {
			continue
		}
		plans = append(plans, &battle.UseActionInput{ActorID: c.ID(), ActionKey: key, TargetID: target.ID()})
	}
	return plans
}

// advance steps toward the nearest opponent: forward first, then along the
// row. Blocked steps are skipped.
func (d *duel) advance(ctx context.Context, c *creature.Creature) error {
	from, placed := c.Position()
	target := nearest(c, d.service.Battle().Opponents(c))
	if !placed || target == nil {
		return nil
	}
	to, _ := target.Position()

	steps := []battlefield.Position{from.Offset(0, battlefield.ForwardDelta(c.Side()))}
	switch {
	case to.Row < from.Row:
		steps = append(steps, from.Offset(-1, 0))
	case to.Row > from.Row:
		steps = append(steps, from.Offset(1, 0))
	}

	for _, step := range steps {
		result, err := d.service.Move(ctx, c.ID(), step)
		if err != nil {
			if errors.IsRejected(err) || errors.IsInvalidArgument(err) {
				continue
			}
			return err
		}
		log.Printf("[SIM] %s moved %s -> %s (cost %.1f)", c.Name(), result.From, result.To, result.Cost)
		return nil
	}
	return nil
}

// mostWounded returns the team member (self included) with the lowest HP
// percentage under healThreshold
func mostWounded(c *creature.Creature, allies []*creature.Creature) *creature.Creature {
	var patient *creature.Creature
	for _, candidate := range append([]*creature.Creature{c}, allies...) {
		if candidate.HPPercent() >= healThreshold {
			continue
		}
		if patient == nil || candidate.HPPercent() < patient.HPPercent() {
			patient = candidate
		}
	}
	return patient
}

func nearest(c *creature.Creature, candidates []*creature.Creature) *creature.Creature {
	from, placed := c.Position()
	if !placed {
		return nil
	}

	var best *creature.Creature
	bestDistance := 0
	for _, candidate := range candidates {
		pos, ok := candidate.Position()
		if !ok {
			continue
		}
		if distance := from.Distance(pos); best == nil || distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}
	return best
}

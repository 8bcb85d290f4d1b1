package battle

import (
	"context"
	"log"

	"github.com/KirkDiggler/creature-battle/internal/aoe"
	"github.com/KirkDiggler/creature-battle/internal/combat"
	"github.com/KirkDiggler/creature-battle/internal/domain/action"
	"github.com/KirkDiggler/creature-battle/internal/domain/battlefield"
	"github.com/KirkDiggler/creature-battle/internal/domain/conditions"
	"github.com/KirkDiggler/creature-battle/internal/domain/creature"
	"github.com/KirkDiggler/creature-battle/internal/domain/events"
	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
	"github.com/KirkDiggler/creature-battle/internal/errors"
)

func (s *service) UseAction(ctx context.Context, input *UseActionInput) (*ActionResult, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	actor, err := s.living(input.ActorID)
	if err != nil {
		return nil, err
	}
	used, ok := s.actions.Get(input.ActionKey)
	if !ok {
		return nil, errors.NotFoundf("action %s not found", input.ActionKey)
	}
	if !actor.Knows(used.Key) {
		return nil, errors.Rejectedf("%s has not equipped %s", actor.Name(), used.Key)
	}
	if !actor.CanAct() {
		return nil, errors.Rejectedf("%s cannot act", actor.Name())
	}

	primary, err := s.primaryTarget(actor, used, input.TargetID)
	if err != nil {
		return nil, err
	}
	if actor.Energy() < used.EnergyCost {
		return nil, errors.Rejectedf("%s needs %d energy for %s, has %d", actor.Name(), used.EnergyCost, used.Key, actor.Energy())
	}

	orientation := input.Orientation
	if orientation == "" {
		orientation = aoe.OrientationUp
	}
	origin, _ := primary.Position()
	area := aoe.Targets(origin, used.AreaShape(), s.battle.Battlefield(), actor.Side(), orientation)
	affected := s.affected(primary, area)

	result := &ActionResult{
		ActorID:     actor.ID(),
		ActionKey:   used.Key,
		EnergySpent: used.EnergyCost,
	}
	log.Printf("[BATTLE] %s uses %s on %s (%d affected)", actor.Name(), used.Name, primary.Name(), len(affected))

	if err := s.emit(ctx, &events.ActionUsedEvent{Base: s.base(events.Before, actor), Used: used, Affected: affected}); err != nil {
		return nil, err
	}
	// Before reactions may have drained the actor
	if !actor.SpendEnergy(used.EnergyCost) {
		return nil, errors.Rejectedf("%s needs %d energy for %s, has %d", actor.Name(), used.EnergyCost, used.Key, actor.Energy())
	}

	for _, target := range affected {
		if actor.IsDefeated() {
			break
		}
		if target.IsDefeated() {
			continue
		}

		outcome, err := s.resolveTarget(ctx, actor, used, target, target == primary)
		if err != nil {
			return nil, err
		}
		result.Outcomes = append(result.Outcomes, outcome)

		fallen, err := s.settleDefeats(ctx, actor)
		if err != nil {
			return nil, err
		}
		result.Defeated = append(result.Defeated, fallen...)
	}

	if used.IsDamaging() {
		for _, p := range area {
			if s.battle.Battlefield().DestroyTerrain(p) {
				result.Destroyed = append(result.Destroyed, p)
			}
		}
	}

	if !actor.IsDefeated() {
		result.EnergyGained = actor.RestoreEnergy(s.calculator.CalculateEnergyGain(used, actor.MaxEnergy()))
		if err := s.emit(ctx, &events.ActionUsedEvent{Base: s.base(events.After, actor), Used: used, Affected: affected}); err != nil {
			return nil, err
		}
	}

	fallen, err := s.settleDefeats(ctx, actor)
	if err != nil {
		return nil, err
	}
	result.Defeated = append(result.Defeated, fallen...)

	return result, nil
}

// primaryTarget validates the chosen target. Self-range actions always
// target the user.
func (s *service) primaryTarget(actor *creature.Creature, used *action.Action, targetID string) (*creature.Creature, error) {
	from, placed := actor.Position()
	if !placed {
		return nil, errors.Rejectedf("%s is not on the battlefield", actor.Name())
	}
	if used.Range == shared.RangeSelf {
		return actor, nil
	}
	if targetID == "" {
		return nil, errors.InvalidArgumentf("%s needs a target", used.Key)
	}

	target, err := s.living(targetID)
	if err != nil {
		return nil, err
	}
	to, placed := target.Position()
	if !placed {
		return nil, errors.Rejectedf("%s is not on the battlefield", target.Name())
	}

	friendly := used.IsHealing() || used.Role == shared.RoleSupport
	if friendly && target.Side() != actor.Side() {
		return nil, errors.Rejectedf("%s can only target allies", used.Key)
	}
	if !friendly && target.Side() == actor.Side() {
		return nil, errors.Rejectedf("%s can only target opponents", used.Key)
	}
	if used.IsMelee() && !from.IsAdjacent(to) {
		return nil, errors.Rejectedf("%s is out of melee reach of %s", target.Name(), actor.Name())
	}
	return target, nil
}

// affected lists the primary target followed by living creatures on the area
// tiles that stand on the primary target's side
func (s *service) affected(primary *creature.Creature, area []battlefield.Position) []*creature.Creature {
	out := []*creature.Creature{primary}
	for _, p := range area {
		c, ok := s.battle.CreatureAt(p)
		if !ok || c.IsDefeated() || c.Side() != primary.Side() || c == primary {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (s *service) resolveTarget(ctx context.Context, actor *creature.Creature, used *action.Action, target *creature.Creature, primary bool) (*TargetOutcome, error) {
	outcome := &TargetOutcome{TargetID: target.ID()}
	attacker := actor.Snapshot()
	defender := target.Snapshot()
	if used.IsRanged() {
		s.applyCover(target, defender)
	}

	switch {
	case used.IsHealing():
		if err := s.heal(ctx, actor, used, target, attacker, defender, outcome); err != nil {
			return nil, err
		}
	case used.IsDamaging():
		if err := s.strike(ctx, actor, used, target, attacker, defender, primary, outcome); err != nil {
			return nil, err
		}
		if !outcome.Hit {
			return outcome, nil
		}
	default:
		outcome.Hit = true
	}

	if used.Inflicts != "" && !target.IsDefeated() {
		if err := s.inflict(ctx, actor, used, target, attacker, defender, outcome); err != nil {
			return nil, err
		}
	}
	return outcome, nil
}

// applyCover shifts the defender's snapshot by the terrain it stands on
func (s *service) applyCover(target *creature.Creature, defender *combat.Combatant) {
	pos, placed := target.Position()
	if !placed {
		return
	}
	adjustment := s.battle.Battlefield().Policy(pos).RangedDefenseAdjustment(target)
	if adjustment == 0 {
		return
	}
	for _, stat := range []shared.Stat{shared.StatDefense, shared.StatResistance} {
		defender.Stats[stat] += adjustment
	}
}

func (s *service) strike(ctx context.Context, actor *creature.Creature, used *action.Action, target *creature.Creature, attacker, defender *combat.Combatant, primary bool, outcome *TargetOutcome) error {
	outcome.HitChance = s.calculator.CalculateAccuracy(used, attacker, defender)
	hit, err := s.calculator.RollToHit(outcome.HitChance)
	if err != nil {
		return errors.Wrap(err, "failed to roll to hit")
	}
	if !hit {
		log.Printf("[BATTLE] %s missed %s (%d%%)", actor.Name(), target.Name(), outcome.HitChance)
		return nil
	}
	outcome.Hit = true

	outcome.CritChance = s.calculator.CalculateCritChance(used, attacker, defender)
	outcome.Critical, err = s.calculator.RollForCrit(outcome.CritChance)
	if err != nil {
		return errors.Wrap(err, "failed to roll for crit")
	}

	amount, err := s.calculator.CalculateDamage(used, attacker, defender, outcome.Critical)
	if err != nil {
		return err
	}

	damage := &events.DamageEvent{
		Base:     s.base(events.Before, actor),
		Defender: target,
		Used:     used,
		Amount:   amount,
		Critical: outcome.Critical,
		Contact:  primary && used.MakesContact(),
	}
	if err := s.emit(ctx, damage); err != nil {
		return err
	}

	outcome.Damage = target.TakeDamage(amount)
	log.Printf("[BATTLE] %s hit %s for %d (crit: %v)", actor.Name(), target.Name(), outcome.Damage, outcome.Critical)

	after := *damage
	after.When = events.After
	after.Amount = outcome.Damage
	return s.emit(ctx, &after)
}

func (s *service) heal(ctx context.Context, actor *creature.Creature, used *action.Action, target *creature.Creature, healer, recipient *combat.Combatant, outcome *TargetOutcome) error {
	outcome.Hit = true
	outcome.CritChance = s.calculator.CalculateCritChance(used, healer, recipient)

	var err error
	outcome.Critical, err = s.calculator.RollForCrit(outcome.CritChance)
	if err != nil {
		return errors.Wrap(err, "failed to roll for crit")
	}

	amount, err := s.calculator.CalculateHealing(used, healer, s.battle.AverageStat(healingStat(used)), outcome.Critical)
	if err != nil {
		return err
	}

	heal := &events.HealEvent{
		Base:      s.base(events.Before, actor),
		Recipient: target,
		Used:      used,
		Amount:    amount,
		Critical:  outcome.Critical,
	}
	if err := s.emit(ctx, heal); err != nil {
		return err
	}

	outcome.Healing = target.Heal(amount)
	log.Printf("[BATTLE] %s healed %s for %d", actor.Name(), target.Name(), outcome.Healing)

	after := *heal
	after.When = events.After
	after.Amount = outcome.Healing
	return s.emit(ctx, &after)
}

func (s *service) inflict(ctx context.Context, actor *creature.Creature, used *action.Action, target *creature.Creature, attacker, defender *combat.Combatant, outcome *TargetOutcome) error {
	chance := s.calculator.CalculateStatusAccuracy(used, attacker, defender)
	landed, err := s.calculator.RollToHit(chance)
	if err != nil {
		return errors.Wrap(err, "failed to roll status accuracy")
	}
	if !landed {
		log.Printf("[BATTLE] %s resisted %s (%d%%)", target.Name(), used.Inflicts, chance)
		return nil
	}

	applied := &events.ConditionEvent{Base: s.base(events.Before, actor), Recipient: target, Condition: used.Inflicts}
	if err := s.emit(ctx, applied); err != nil {
		return err
	}

	spec := conditions.Spec{
		Type:     used.Inflicts,
		Source:   used.Key,
		SourceID: actor.ID(),
	}
	if used.InflictTurns > 0 {
		spec.DurationType = conditions.DurationTurns
		spec.Duration = used.InflictTurns
	}
	if _, err := target.ApplyCondition(spec); err != nil {
		return err
	}
	outcome.Inflicted = used.Inflicts

	after := *applied
	after.When = events.After
	return s.emit(ctx, &after)
}

func healingStat(used *action.Action) shared.Stat {
	if used.Source == shared.SourceMagical {
		return shared.StatMagic
	}
	return shared.StatStrength
}

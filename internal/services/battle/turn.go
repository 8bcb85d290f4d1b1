package battle

import (
	"context"
	"log"

	"github.com/KirkDiggler/creature-battle/internal/domain/events"
)

func (s *service) StartTurn(ctx context.Context, creatureID string) (*TurnReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, err := s.living(creatureID)
	if err != nil {
		return nil, err
	}

	log.Printf("[BATTLE] Turn %d: %s starts", s.battle.Turn(), c.Name())
	if err := s.emit(ctx, &events.TurnEvent{Base: s.base(events.Before, c)}); err != nil {
		return nil, err
	}

	report := &TurnReport{
		CreatureID: c.ID(),
		Turn:       s.battle.Turn(),
		CanAct:     c.CanAct(),
		CanMove:    c.CanMove(),
	}
	report.Defeated, err = s.settleDefeats(ctx, nil)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// EndTurn deals terrain hazard and condition damage, ticks condition
// durations and announces expiries. Environmental damage raises no damage
// events since it has no source creature.
func (s *service) EndTurn(ctx context.Context, creatureID string) (*TurnReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, err := s.living(creatureID)
	if err != nil {
		return nil, err
	}

	report := &TurnReport{CreatureID: c.ID(), Turn: s.battle.Turn()}

	if pos, placed := c.Position(); placed {
		if hazard := s.battle.Battlefield().Policy(pos).HazardDamage(c); hazard > 0 {
			report.HazardDamage = c.TakeDamage(hazard)
			log.Printf("[BATTLE] %s takes %d from %s", c.Name(), report.HazardDamage, s.battle.Battlefield().Terrain(pos))
		}
	}
	if dot := c.Conditions().GetActiveEffects().DamagePerTurn; dot > 0 {
		report.DamageTaken = c.TakeDamage(dot)
		log.Printf("[BATTLE] %s takes %d from conditions", c.Name(), report.DamageTaken)
	}

	if !c.IsDefeated() {
		for _, expired := range c.Conditions().ProcessTurnEnd() {
			report.Expired = append(report.Expired, expired.Type)
			removed := &events.ConditionEvent{Base: s.base(events.After, c), Recipient: c, Condition: expired.Type, Removed: true}
			if err := s.emit(ctx, removed); err != nil {
				return nil, err
			}
		}
		if err := s.emit(ctx, &events.TurnEvent{Base: s.base(events.After, c)}); err != nil {
			return nil, err
		}
	}

	report.Defeated, err = s.settleDefeats(ctx, nil)
	if err != nil {
		return nil, err
	}
	report.CanAct = c.CanAct()
	report.CanMove = c.CanMove()
	return report, nil
}

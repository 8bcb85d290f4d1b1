package traits

import (
	"fmt"
	"log"

	"github.com/KirkDiggler/creature-battle/internal/domain/conditions"
	"github.com/KirkDiggler/creature-battle/internal/domain/creature"
	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
	"github.com/KirkDiggler/creature-battle/internal/errors"
	"github.com/KirkDiggler/creature-battle/internal/modifiers"
)

// ResultKind is a registered state mutation
type ResultKind string

const (
	ResultDamage          ResultKind = "damage"
	ResultHeal            ResultKind = "heal"
	ResultRestoreEnergy   ResultKind = "restore_energy"
	ResultDrainEnergy     ResultKind = "drain_energy"
	ResultStatModifier    ResultKind = "stat_modifier"
	ResultCombatModifier  ResultKind = "combat_modifier"
	ResultApplyCondition  ResultKind = "apply_condition"
	ResultRemoveCondition ResultKind = "remove_condition"
)

// Outcome records what a result did
type Outcome struct {
	TargetID string
	Amount   int
}

type resultFunc func(r *Result, target *creature.Creature, inv *Invocation) (Outcome, error)

var resultKinds = map[ResultKind]resultFunc{
	ResultDamage: func(r *Result, target *creature.Creature, inv *Invocation) (Outcome, error) {
		dealt := target.TakeDamage(magnitude(r, inv))
		return Outcome{TargetID: target.ID(), Amount: dealt}, nil
	},
	ResultHeal: func(r *Result, target *creature.Creature, inv *Invocation) (Outcome, error) {
		healed := target.Heal(magnitude(r, inv))
		return Outcome{TargetID: target.ID(), Amount: healed}, nil
	},
	ResultRestoreEnergy: func(r *Result, target *creature.Creature, inv *Invocation) (Outcome, error) {
		gained := target.RestoreEnergy(magnitude(r, inv))
		return Outcome{TargetID: target.ID(), Amount: gained}, nil
	},
	ResultDrainEnergy: func(r *Result, target *creature.Creature, inv *Invocation) (Outcome, error) {
		drained := target.DrainEnergy(magnitude(r, inv))
		return Outcome{TargetID: target.ID(), Amount: drained}, nil
	},
	ResultStatModifier: func(r *Result, target *creature.Creature, inv *Invocation) (Outcome, error) {
		if r.Stat == "" {
			return Outcome{}, errors.InvalidArgumentf("stat modifier result in %s has no stat", inv.Effect.ID)
		}
		spec := grantSpec(r, inv, conditions.StatShift)
		spec.StatMods = []modifiers.StatModifier{{Stat: r.Stat, Value: r.Value, Mode: modeOrFlat(r)}}
		return applyGrant(spec, target)
	},
	ResultCombatModifier: func(r *Result, target *creature.Creature, inv *Invocation) (Outcome, error) {
		if r.Param == "" {
			return Outcome{}, errors.InvalidArgumentf("combat modifier result in %s has no param", inv.Effect.ID)
		}
		spec := grantSpec(r, inv, conditions.CombatShift)
		spec.CombatMods = []modifiers.CombatModifier{{Param: r.Param, Value: r.Value, Mode: modeOrFlat(r)}}
		return applyGrant(spec, target)
	},
	ResultApplyCondition: func(r *Result, target *creature.Creature, inv *Invocation) (Outcome, error) {
		if r.Condition == "" {
			return Outcome{}, errors.InvalidArgumentf("apply condition result in %s has no condition", inv.Effect.ID)
		}
		spec := conditions.Spec{
			Type:         r.Condition,
			Source:       inv.Trait.Key(),
			SourceID:     inv.Owner.ID(),
			DurationType: conditions.DurationPermanent,
		}
		if r.Duration > 0 {
			spec.DurationType = conditions.DurationTurns
			spec.Duration = r.Duration
		}
		return applyGrant(spec, target)
	},
	ResultRemoveCondition: func(r *Result, target *creature.Creature, _ *Invocation) (Outcome, error) {
		removed := target.RemoveCondition(r.Condition)
		if removed == nil {
			return Outcome{TargetID: target.ID()}, nil
		}
		return Outcome{TargetID: target.ID(), Amount: 1}, nil
	},
}

// Execute applies a result for an invocation. A missing or defeated target
// is a no-op with a warning, not an error.
func Execute(r *Result, inv *Invocation) (Outcome, bool, error) {
	fn, ok := resultKinds[r.Kind]
	if !ok {
		log.Printf("[TRAITS] STRUCTURAL unknown result kind %q in effect %s", r.Kind, inv.Effect.ID)
		return Outcome{}, false, errors.Structuralf("unknown result kind %q", r.Kind)
	}

	target := inv.Resolve(r.Subject)
	if target == nil {
		log.Printf("[TRAITS] Warning: %s result in effect %s has no %s creature", r.Kind, inv.Effect.ID, subjectName(r.Subject))
		return Outcome{}, false, nil
	}
	if target.IsDefeated() {
		log.Printf("[TRAITS] Skipping %s result in effect %s: %s is defeated", r.Kind, inv.Effect.ID, target.ID())
		return Outcome{}, false, nil
	}

	outcome, err := fn(r, target, inv)
	if err != nil {
		return Outcome{}, false, err
	}
	return outcome, true, nil
}

// magnitude is the flat amount plus Percent of the event's amount
func magnitude(r *Result, inv *Invocation) int {
	amount := r.Amount
	if r.Percent > 0 {
		scaled := inv.EventAmount() * r.Percent / 100
		if scaled < 1 && inv.EventAmount() > 0 {
			scaled = 1
		}
		amount += scaled
	}
	return amount
}

func modeOrFlat(r *Result) shared.ModifierMode {
	if r.Mode == "" {
		return shared.ModeFlat
	}
	return r.Mode
}

// grantSpec builds a condition carrying modifiers. Each effect gets its own
// condition type so grants from different effects stack while a repeat
// grant from the same effect refreshes.
func grantSpec(r *Result, inv *Invocation, base conditions.ConditionType) conditions.Spec {
	spec := conditions.Spec{
		Type:         conditions.ConditionType(fmt.Sprintf("%s:%s", base, inv.Effect.ID)),
		Name:         inv.Trait.Name(),
		Source:       inv.Trait.Key(),
		SourceID:     inv.Owner.ID(),
		DurationType: conditions.DurationPermanent,
	}
	if r.Duration > 0 {
		spec.DurationType = conditions.DurationTurns
		spec.Duration = r.Duration
	}
	return spec
}

func applyGrant(spec conditions.Spec, target *creature.Creature) (Outcome, error) {
	condition, err := target.ApplyCondition(spec)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{TargetID: target.ID(), Amount: condition.Remaining}, nil
}

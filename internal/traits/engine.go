package traits

import (
	"context"
	"log"

	"github.com/KirkDiggler/creature-battle/internal/dice"
	"github.com/KirkDiggler/creature-battle/internal/domain/creature"
	"github.com/KirkDiggler/creature-battle/internal/domain/events"
	"github.com/KirkDiggler/creature-battle/internal/errors"
)

// EnginePriority is the bus priority the engine listens at
const EnginePriority = 100

// FiredEffect records one effect that executed
type FiredEffect struct {
	OwnerID       string
	TraitKey      string
	EffectID      string
	Channel       events.Channel
	ParticipantID string
	Outcome       Outcome
}

// DispatchReport summarises one dispatch
type DispatchReport struct {
	Fired []FiredEffect

	// Skipped counts matched effects whose filter, conditional or chance roll said no
	Skipped int

	// Failed counts effects whose result returned an error
	Failed int

	// Structural counts mapping defects hit during the dispatch
	Structural int
}

// FiredIDs returns the IDs of fired effects in execution order
func (r *DispatchReport) FiredIDs() []string {
	ids := make([]string, len(r.Fired))
	for i, f := range r.Fired {
		ids[i] = f.EffectID
	}
	return ids
}

// Engine dispatches battle events to trait effects
type Engine struct {
	roller dice.Roller
}

// NewEngine creates a trait engine. The roller decides effects with a chance.
func NewEngine(roller dice.Roller) (*Engine, error) {
	if roller == nil {
		return nil, errors.InvalidArgument("trait engine requires a dice roller")
	}
	return &Engine{roller: roller}, nil
}

type matchedChannel struct {
	participant events.Participant
	channel     events.Channel
}

// Dispatch evaluates every creature's trait effects against an event.
// Creatures are visited in battle registration order, traits in equip order
// and effects in definition order. Result failures are recorded in the
// report and never abort the dispatch. An event missing its source creature
// or battle fires nothing.
func (e *Engine) Dispatch(ctx context.Context, event events.Event) (*DispatchReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report := &DispatchReport{}
	if err := events.Validate(event); err != nil {
		log.Printf("[TRAITS] Warning: skipping dispatch: %v", err)
		return report, nil
	}

	matches := e.channelsFor(event, report)
	if len(matches) == 0 {
		return report, nil
	}

	for _, owner := range event.Battle().Creatures() {
		if !e.ownerListens(owner, event) {
			continue
		}
		for _, ref := range owner.Traits() {
			trait, ok := ref.(*Trait)
			if !ok {
				continue
			}
			for _, effect := range trait.Effects() {
				for _, m := range matches {
					if effect.Trigger.Channel != m.channel {
						continue
					}
					if !effect.Trigger.Perspective.Matches(owner, m.participant.Creature) {
						continue
					}
					inv := &Invocation{
						Owner:       owner,
						Trait:       trait,
						Effect:      effect,
						Event:       event,
						Participant: m.participant,
					}
					e.run(inv, m.channel, report)
				}
			}
		}
	}

	return report, nil
}

// HandleEvent lets the engine subscribe to an events.Bus
func (e *Engine) HandleEvent(ctx context.Context, event events.Event) error {
	report, err := e.Dispatch(ctx, event)
	if err != nil {
		return err
	}
	if len(report.Fired) > 0 {
		log.Printf("[TRAITS] %s %s fired %v", event.Timing(), event.Kind(), report.FiredIDs())
	}
	return nil
}

// Priority implements events.Listener
func (e *Engine) Priority() int {
	return EnginePriority
}

func (e *Engine) channelsFor(event events.Event, report *DispatchReport) []matchedChannel {
	var matches []matchedChannel
	for _, p := range events.Participants(event) {
		channel, err := events.ResolveChannel(event.Kind(), event.Timing(), p.Role)
		if err != nil {
			report.Structural++
			continue
		}
		if channel == events.ChannelNone {
			continue
		}
		matches = append(matches, matchedChannel{participant: p, channel: channel})
	}
	return matches
}

// ownerListens skips defeated creatures, except that a creature's own
// defeat still reaches its traits
func (e *Engine) ownerListens(owner *creature.Creature, event events.Event) bool {
	if !owner.IsDefeated() {
		return true
	}
	return event.Kind() == events.KindDefeat && event.Source().ID() == owner.ID()
}

func (e *Engine) run(inv *Invocation, channel events.Channel, report *DispatchReport) {
	filter, ok := triggerKinds[inv.Effect.Trigger.Kind]
	if !ok {
		log.Printf("[TRAITS] STRUCTURAL unknown trigger kind %q in effect %s", inv.Effect.Trigger.Kind, inv.Effect.ID)
		report.Structural++
		return
	}
	if !filter(&inv.Effect.Trigger, inv) || !Evaluate(inv.Effect.Conditional, inv) {
		report.Skipped++
		return
	}

	if chance := inv.Effect.Trigger.Chance; chance > 0 && chance < 100 {
		roll, err := dice.RollPercent(e.roller)
		if err != nil {
			log.Printf("[TRAITS] Failed to roll chance for effect %s: %v", inv.Effect.ID, err)
			report.Failed++
			return
		}
		if roll > chance {
			report.Skipped++
			return
		}
	}

	outcome, executed, err := Execute(&inv.Effect.Result, inv)
	if err != nil {
		if errors.IsStructural(err) {
			report.Structural++
		} else {
			report.Failed++
		}
		log.Printf("[TRAITS] Effect %s on %s failed: %v", inv.Effect.ID, inv.Owner.ID(), err)
		return
	}
	if !executed {
		report.Skipped++
		return
	}

	report.Fired = append(report.Fired, FiredEffect{
		OwnerID:       inv.Owner.ID(),
		TraitKey:      inv.Trait.Key(),
		EffectID:      inv.Effect.ID,
		Channel:       channel,
		ParticipantID: inv.Participant.Creature.ID(),
		Outcome:       outcome,
	})
	log.Printf("[TRAITS] %s fired %s (%s) on %s for %d", inv.Owner.Name(), inv.Effect.ID, channel, outcome.TargetID, outcome.Amount)
}

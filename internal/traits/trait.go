// Package traits evaluates data-defined trait effects against battle events.
//
// A trait owns passive modifiers plus zero or more effects. Each effect is a
// trigger (channel, perspective and an event filter), an optional
// side-effect-free conditional, and a result that mutates battle state.
// Trigger, conditional and result kinds are looked up in registered-kind
// tables; an unknown kind is a structural defect and never fires.
package traits

import (
	"fmt"

	"github.com/KirkDiggler/creature-battle/internal/domain/conditions"
	"github.com/KirkDiggler/creature-battle/internal/domain/events"
	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
	"github.com/KirkDiggler/creature-battle/internal/domain/terrain"
	"github.com/KirkDiggler/creature-battle/internal/errors"
	"github.com/KirkDiggler/creature-battle/internal/modifiers"
)

// Subject picks which creature a conditional reads or a result affects
type Subject string

const (
	SubjectOwner       Subject = "owner"        // the creature carrying the trait
	SubjectEventSource Subject = "event_source" // the creature the event originates from
	SubjectEventTarget Subject = "event_target" // the first target of the event
	SubjectParticipant Subject = "participant"  // the creature whose channel matched
)

// Trigger selects the events an effect reacts to
type Trigger struct {
	Channel     events.Channel     `yaml:"channel"`
	Perspective events.Perspective `yaml:"perspective"`
	Kind        TriggerKind        `yaml:"kind"`
	Element     shared.Element     `yaml:"element,omitempty"`
	Role        shared.ActionRole  `yaml:"role,omitempty"`

	// Chance is the percent chance to fire once matched; 0 always fires
	Chance int `yaml:"chance,omitempty"`
}

// Conditional gates an effect on battle state. Not, All and AnyOf combine Children.
type Conditional struct {
	Kind      ConditionalKind          `yaml:"kind"`
	Subject   Subject                  `yaml:"subject,omitempty"`
	Value     int                      `yaml:"value,omitempty"`
	Element   shared.Element           `yaml:"element,omitempty"`
	Terrain   terrain.Type             `yaml:"terrain,omitempty"`
	Condition conditions.ConditionType `yaml:"condition,omitempty"`
	Children  []*Conditional           `yaml:"children,omitempty"`
}

// Result is the mutation an effect performs
type Result struct {
	Kind    ResultKind `yaml:"kind"`
	Subject Subject    `yaml:"subject,omitempty"`

	// Amount is a flat magnitude; Percent scales the amount carried by the event
	Amount  int `yaml:"amount,omitempty"`
	Percent int `yaml:"percent,omitempty"`

	Stat      shared.Stat              `yaml:"stat,omitempty"`
	Param     shared.CombatParam       `yaml:"param,omitempty"`
	Mode      shared.ModifierMode      `yaml:"mode,omitempty"`
	Value     float64                  `yaml:"value,omitempty"`
	Condition conditions.ConditionType `yaml:"condition,omitempty"`

	// Duration in turns for granted conditions and modifiers; 0 is permanent
	Duration int `yaml:"duration,omitempty"`
}

// Effect is one trigger/conditional/result triple
type Effect struct {
	ID          string       `yaml:"id"`
	Trigger     Trigger      `yaml:"trigger"`
	Conditional *Conditional `yaml:"conditional,omitempty"`
	Result      Result       `yaml:"result"`
}

// Definition is the declarative form of a trait
type Definition struct {
	Key         string                     `yaml:"key"`
	Name        string                     `yaml:"name"`
	Description string                     `yaml:"description"`
	StatMods    []modifiers.StatModifier   `yaml:"stat_mods"`
	CombatMods  []modifiers.CombatModifier `yaml:"combat_mods"`
	Effects     []*Effect                  `yaml:"effects"`
}

// Trait is a validated definition. It is shared by every creature carrying
// it and holds no per-creature state.
type Trait struct {
	def Definition
}

// New validates a definition and builds a trait. Effects without an ID get
// "<key>#<index>".
func New(def Definition) (*Trait, error) {
	if def.Key == "" {
		return nil, errors.InvalidArgument("trait key is required")
	}
	if def.Name == "" {
		def.Name = def.Key
	}

	effects := make([]*Effect, 0, len(def.Effects))
	for i, effect := range def.Effects {
		if effect == nil {
			return nil, errors.InvalidArgumentf("trait %s effect %d is empty", def.Key, i)
		}
		copied := *effect
		if copied.ID == "" {
			copied.ID = fmt.Sprintf("%s#%d", def.Key, i)
		}
		if copied.Trigger.Perspective == "" {
			copied.Trigger.Perspective = events.PerspectiveSelf
		}
		if copied.Trigger.Kind == "" {
			copied.Trigger.Kind = TriggerAny
		}
		if err := validateEffect(&copied); err != nil {
			return nil, errors.Wrapf(err, "invalid trait %s", def.Key)
		}
		effects = append(effects, &copied)
	}
	def.Effects = effects

	return &Trait{def: def}, nil
}

func validateEffect(effect *Effect) error {
	if !effect.Trigger.Channel.IsKnown() {
		return errors.InvalidArgumentf("effect %s has unknown channel %q", effect.ID, effect.Trigger.Channel)
	}
	if _, ok := triggerKinds[effect.Trigger.Kind]; !ok {
		return errors.InvalidArgumentf("effect %s has unknown trigger kind %q", effect.ID, effect.Trigger.Kind)
	}
	if effect.Trigger.Chance < 0 || effect.Trigger.Chance > 100 {
		return errors.InvalidArgumentf("effect %s chance %d out of range", effect.ID, effect.Trigger.Chance)
	}
	if effect.Conditional != nil {
		if err := validateConditional(effect.ID, effect.Conditional); err != nil {
			return err
		}
	}
	if _, ok := resultKinds[effect.Result.Kind]; !ok {
		return errors.InvalidArgumentf("effect %s has unknown result kind %q", effect.ID, effect.Result.Kind)
	}
	return nil
}

func validateConditional(effectID string, c *Conditional) error {
	if c == nil {
		return errors.InvalidArgumentf("effect %s has an empty conditional", effectID)
	}
	if _, ok := conditionalKinds[c.Kind]; !ok {
		return errors.InvalidArgumentf("effect %s has unknown conditional kind %q", effectID, c.Kind)
	}
	if c.Kind == ConditionalNot && len(c.Children) != 1 {
		return errors.InvalidArgumentf("effect %s: not takes exactly one child", effectID)
	}
	for _, child := range c.Children {
		if err := validateConditional(effectID, child); err != nil {
			return err
		}
	}
	return nil
}

// Key returns the trait key
func (t *Trait) Key() string {
	return t.def.Key
}

// Name returns the display name
func (t *Trait) Name() string {
	return t.def.Name
}

// Description returns the display text
func (t *Trait) Description() string {
	return t.def.Description
}

// Effects returns the effects in definition order
func (t *Trait) Effects() []*Effect {
	return t.def.Effects
}

// ID returns the modifier source handle for this trait
func (t *Trait) ID() string {
	return "trait:" + t.def.Key
}

// StatModifiers returns the passive stat modifiers the trait grants
func (t *Trait) StatModifiers() []modifiers.StatModifier {
	mods := make([]modifiers.StatModifier, len(t.def.StatMods))
	for i, mod := range t.def.StatMods {
		mod.SourceID = t.ID()
		mods[i] = mod
	}
	return mods
}

// CombatModifiers returns the passive combat modifiers the trait grants
func (t *Trait) CombatModifiers() []modifiers.CombatModifier {
	mods := make([]modifiers.CombatModifier, len(t.def.CombatMods))
	for i, mod := range t.def.CombatMods {
		mod.SourceID = t.ID()
		mods[i] = mod
	}
	return mods
}

// Registry is the read-only set of traits available to a battle
type Registry struct {
	traits map[string]*Trait
	order  []string
}

// NewRegistry creates a registry, rejecting duplicate keys
func NewRegistry(traits ...*Trait) (*Registry, error) {
	r := &Registry{traits: make(map[string]*Trait, len(traits))}
	for _, t := range traits {
		if t == nil {
			return nil, errors.InvalidArgument("trait is required")
		}
		if _, exists := r.traits[t.Key()]; exists {
			return nil, errors.InvalidArgumentf("duplicate trait key %s", t.Key())
		}
		r.traits[t.Key()] = t
		r.order = append(r.order, t.Key())
	}
	return r, nil
}

// Get looks up a trait by key
func (r *Registry) Get(key string) (*Trait, bool) {
	t, ok := r.traits[key]
	return t, ok
}

// Keys returns trait keys in registration order
func (r *Registry) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

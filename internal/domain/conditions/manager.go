package conditions

import (
	"log"

	"github.com/KirkDiggler/creature-battle/internal/errors"
	"github.com/KirkDiggler/creature-battle/internal/uuid"
)

// Listener is notified whenever the active condition set changes so the
// owner can keep its stat manager in sync
type Listener interface {
	ConditionApplied(condition *Condition)
	ConditionRemoved(condition *Condition)
}

// Manager handles condition tracking for one creature.
// Conditions are kept in application order.
type Manager struct {
	conditions    []*Condition
	entityID      string
	listener      Listener
	uuidGenerator uuid.Generator
}

// NewManager creates a new condition manager
func NewManager(entityID string, generator uuid.Generator, listener Listener) *Manager {
	if generator == nil {
		generator = uuid.NewGoogleUUIDGenerator()
	}
	return &Manager{
		conditions:    make([]*Condition, 0),
		entityID:      entityID,
		listener:      listener,
		uuidGenerator: generator,
	}
}

// AddCondition applies a new condition. Conditions of the same type don't
// stack: the existing one has its duration refreshed if the new one is longer.
func (m *Manager) AddCondition(spec Spec) (*Condition, error) {
	if spec.Type == "" {
		return nil, errors.InvalidArgument("condition type is required")
	}
	if spec.DurationType == "" {
		spec.DurationType = DurationPermanent
	}
	if spec.DurationType == DurationTurns && spec.Duration < 1 {
		return nil, errors.InvalidArgumentf("turn condition %s needs a positive duration", spec.Type)
	}

	if existing := m.getConditionByType(spec.Type); existing != nil {
		if spec.DurationType == DurationTurns && existing.DurationType == DurationTurns && spec.Duration > existing.Remaining {
			existing.Remaining = spec.Duration
			existing.Duration = spec.Duration
			log.Printf("[CONDITIONS] Refreshed %s on entity %s to %d turns", spec.Type, m.entityID, spec.Duration)
		}
		return existing, nil
	}

	name := spec.Name
	if name == "" {
		name = string(spec.Type)
	}

	condition := &Condition{
		ID:           m.uuidGenerator.New(),
		Type:         spec.Type,
		Name:         name,
		Description:  Description(spec.Type),
		Source:       spec.Source,
		SourceID:     spec.SourceID,
		DurationType: spec.DurationType,
		Duration:     spec.Duration,
		Remaining:    spec.Duration,
		StatMods:     spec.StatMods,
		CombatMods:   spec.CombatMods,
	}

	m.conditions = append(m.conditions, condition)
	if m.listener != nil {
		m.listener.ConditionApplied(condition)
	}

	log.Printf("[CONDITIONS] Applied %s to entity %s (duration: %s for %d)",
		spec.Type, m.entityID, spec.DurationType, spec.Duration)

	return condition, nil
}

// RemoveCondition removes a condition by ID
func (m *Manager) RemoveCondition(conditionID string) error {
	for i, cond := range m.conditions {
		if cond.ID != conditionID {
			continue
		}
		m.removeAt(i)
		log.Printf("[CONDITIONS] Removed %s from entity %s", cond.Type, m.entityID)
		return nil
	}
	return errors.NotFoundf("condition %s not found", conditionID)
}

// RemoveConditionByType removes the condition of a type, returning it
// or nil when none was active
func (m *Manager) RemoveConditionByType(condType ConditionType) *Condition {
	for i, cond := range m.conditions {
		if cond.Type == condType {
			m.removeAt(i)
			log.Printf("[CONDITIONS] Removed %s from entity %s", cond.Type, m.entityID)
			return cond
		}
	}
	return nil
}

// GetConditions returns all active conditions in application order
func (m *Manager) GetConditions() []*Condition {
	conditions := make([]*Condition, len(m.conditions))
	copy(conditions, m.conditions)
	return conditions
}

// HasCondition checks if the creature has a specific condition type
func (m *Manager) HasCondition(condType ConditionType) bool {
	return m.getConditionByType(condType) != nil
}

// GetConditionByType returns the active condition of a specific type
func (m *Manager) GetConditionByType(condType ConditionType) *Condition {
	return m.getConditionByType(condType)
}

// ProcessTurnEnd ticks turn-based durations and removes expired conditions
func (m *Manager) ProcessTurnEnd() []*Condition {
	var expired []*Condition
	kept := m.conditions[:0]
	for _, cond := range m.conditions {
		if cond.DurationType == DurationTurns {
			cond.Remaining--
			if cond.Remaining <= 0 {
				expired = append(expired, cond)
				continue
			}
		}
		kept = append(kept, cond)
	}
	m.conditions = kept

	for _, cond := range expired {
		m.notifyRemoved(cond)
		log.Printf("[CONDITIONS] %s expired on entity %s", cond.Type, m.entityID)
	}
	return expired
}

// ProcessDamage removes conditions that end when the owner is damaged
func (m *Manager) ProcessDamage(damageAmount int) []*Condition {
	if damageAmount <= 0 {
		return nil
	}

	var ended []*Condition
	kept := m.conditions[:0]
	for _, cond := range m.conditions {
		if cond.DurationType == DurationUntilDamaged {
			ended = append(ended, cond)
			continue
		}
		kept = append(kept, cond)
	}
	m.conditions = kept

	for _, cond := range ended {
		m.notifyRemoved(cond)
		log.Printf("[CONDITIONS] %s ended on entity %s due to damage", cond.Type, m.entityID)
	}
	return ended
}

// GetActiveEffects compiles the behavior flags of all active conditions
func (m *Manager) GetActiveEffects() *Effect {
	combined := &Effect{}
	for _, cond := range m.conditions {
		effect := GetStandardEffects(cond.Type)
		combined.CantAct = combined.CantAct || effect.CantAct
		combined.CantMove = combined.CantMove || effect.CantMove
		combined.DamagePerTurn += effect.DamagePerTurn
	}
	return combined
}

func (m *Manager) getConditionByType(condType ConditionType) *Condition {
	for _, cond := range m.conditions {
		if cond.Type == condType {
			return cond
		}
	}
	return nil
}

func (m *Manager) removeAt(i int) {
	cond := m.conditions[i]
	m.conditions = append(m.conditions[:i], m.conditions[i+1:]...)
	m.notifyRemoved(cond)
}

func (m *Manager) notifyRemoved(cond *Condition) {
	if m.listener != nil {
		m.listener.ConditionRemoved(cond)
	}
}

package battle

import (
	"github.com/KirkDiggler/creature-battle/internal/domain/battlefield"
	"github.com/KirkDiggler/creature-battle/internal/domain/conditions"
)

// TargetOutcome is what an action did to one creature
type TargetOutcome struct {
	TargetID   string
	Hit        bool
	Critical   bool
	Damage     int
	Healing    int
	Inflicted  conditions.ConditionType
	HitChance  int
	CritChance int
}

// ActionResult summarizes a resolved action
type ActionResult struct {
	ActorID      string
	ActionKey    string
	EnergySpent  int
	EnergyGained int
	Outcomes     []*TargetOutcome
	Destroyed    []battlefield.Position
	Defeated     []string
}

// Outcome returns the outcome for a target
func (r *ActionResult) Outcome(targetID string) (*TargetOutcome, bool) {
	for _, o := range r.Outcomes {
		if o.TargetID == targetID {
			return o, true
		}
	}
	return nil, false
}

// MoveResult describes where a creature ended up
type MoveResult struct {
	CreatureID string
	From       battlefield.Position
	To         battlefield.Position
	Steps      int
	Cost       float64
	Forced     bool
	Defeated   []string
}

// TurnReport summarizes a turn boundary
type TurnReport struct {
	CreatureID   string
	Turn         int
	CanAct       bool
	CanMove      bool
	HazardDamage int
	DamageTaken  int
	Expired      []conditions.ConditionType
	Defeated     []string
}

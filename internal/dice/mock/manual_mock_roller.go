package mockdice

import (
	"fmt"

	"github.com/KirkDiggler/creature-battle/internal/dice"
)

// ManualMockRoller implements dice.Roller for testing with predetermined results.
// Each queued value is the face of one die, so a variance roll over [80,95]
// is queued as the absolute value it should land on.
type ManualMockRoller struct {
	rolls     []int
	rollIndex int
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls: []int{},
	}
}

// SetNextRoll queues the next roll result
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the queue with the given results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.rolls = rolls
	m.rollIndex = 0
}

// Reset clears all rolls and resets the index
func (m *ManualMockRoller) Reset() {
	m.rolls = []int{}
	m.rollIndex = 0
}

// Remaining returns how many queued rolls have not been consumed
func (m *ManualMockRoller) Remaining() int {
	return len(m.rolls) - m.rollIndex
}

func (m *ManualMockRoller) getNextRoll() (int, error) {
	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll, nil
}

// Roll implements dice.Roller.Roll.
// Queued values are totals per die including the per-roll bonus when count is 1,
// which lets tests queue absolute values for range rolls.
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	rolls := make([]int, count)
	total := 0

	for i := 0; i < count; i++ {
		value, err := m.getNextRoll()
		if err != nil {
			return nil, err
		}
		face := value
		if count == 1 {
			face = value - bonus
		}
		if face < 1 || face > sides {
			return nil, fmt.Errorf("invalid roll %d for d%d%+d", value, sides, bonus)
		}
		rolls[i] = face
		total += face
	}

	return &dice.RollResult{
		Total: total + bonus,
		Rolls: rolls,
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}, nil
}

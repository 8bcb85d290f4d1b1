package dice

import (
	"errors"
	"math/rand"
	"time"
)

// randomRoller implements Roller on top of a seeded math/rand source
type randomRoller struct {
	src *rand.Rand
}

// NewRandomRoller creates a roller seeded from the clock.
// Tests should use NewSeededRoller or a mock roller instead.
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a deterministic roller
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{
		src: rand.New(rand.NewSource(seed)),
	}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	rolls := make([]int, count)
	total := bonus
	for i := 0; i < count; i++ {
		rolls[i] = r.src.Intn(sides) + 1
		total += rolls[i]
	}

	return &RollResult{
		Total: total,
		Rolls: rolls,
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}, nil
}

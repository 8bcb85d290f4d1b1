package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for rolling dice.
// Combat resolution always receives one explicitly so results are reproducible.
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// RollResult contains detailed information about a dice roll
type RollResult struct {
	Total int   // Sum of all dice plus bonus
	Rolls []int // Individual die results
	Bonus int   // Bonus applied
	Count int   // Number of dice rolled
	Sides int   // Number of sides on each die
}

// RollPercent rolls a single d100
func RollPercent(r Roller) (int, error) {
	result, err := r.Roll(1, 100, 0)
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}

// RollBetween rolls uniformly in [low, high]. A collapsed range returns low
// without consuming a roll.
func RollBetween(r Roller, low, high int) (int, error) {
	if high <= low {
		return low, nil
	}
	result, err := r.Roll(1, high-low+1, low-1)
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}

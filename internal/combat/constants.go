package combat

// Tuning constants for combat formulas
const (
	MinHitChance = 10
	MaxHitChance = 100

	// AccuracyFactor scales how much the skill/speed ratio moves hit chance
	AccuracyFactor = 0.5

	// CritChanceFactor scales how much the skill/speed ratio moves crit chance
	CritChanceFactor = 0.5
	MaxCritChance    = 100

	// CritDefenseFactor is the share of defense a critical hit still faces
	CritDefenseFactor = 0.8

	MinCritMod = 1.0
	MaxCritMod = 2.0

	VarianceBase    = 85
	VarianceSpread  = 10
	VarianceCeiling = 101

	// DamageDivisor normalises the level/power/stat product
	DamageDivisor = 50

	MinDamage  = 1
	MinHealing = 1
)

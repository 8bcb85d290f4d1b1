package modifiers

import (
	"log"

	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
)

// BaseStats maps a stat to a raw value (species base or class bonus)
type BaseStats map[shared.Stat]int

// Manager owns the stat caches for one creature.
//
// Base stats depend only on species, class and level. Current stats layer the
// modifiers from registered sources on top of base. Both tiers are cached and
// only recomputed after an explicit invalidation.
type Manager struct {
	ownerID    string
	species    BaseStats
	classBonus BaseStats
	level      int
	sources    []Source

	base    map[shared.Stat]int
	current map[shared.Stat]int
	combat  map[shared.CombatParam]float64

	baseDirty    bool
	currentDirty bool

	baseRecomputes    int
	currentRecomputes int
}

// NewManager creates a new stat manager
func NewManager(ownerID string, species, classBonus BaseStats, level int) *Manager {
	if level < 1 {
		level = 1
	}
	return &Manager{
		ownerID:      ownerID,
		species:      species,
		classBonus:   classBonus,
		level:        level,
		sources:      make([]Source, 0),
		baseDirty:    true,
		currentDirty: true,
	}
}

// Level returns the level base stats are scaled to
func (m *Manager) Level() int {
	return m.level
}

// SetLevel changes level and invalidates both tiers
func (m *Manager) SetLevel(level int) {
	if level < 1 {
		level = 1
	}
	if level == m.level {
		return
	}
	m.level = level
	m.invalidateAll()
}

// SetSpecies replaces the species base stats and invalidates both tiers
func (m *Manager) SetSpecies(species BaseStats) {
	m.species = species
	m.invalidateAll()
}

// SetClassBonus replaces the class flat bonus and invalidates both tiers
func (m *Manager) SetClassBonus(classBonus BaseStats) {
	m.classBonus = classBonus
	m.invalidateAll()
}

// AddSource registers a modifier source. A source with the same ID replaces
// the existing one in place so registration order is preserved.
func (m *Manager) AddSource(src Source) {
	for i, existing := range m.sources {
		if existing.ID() == src.ID() {
			m.sources[i] = src
			m.MarkDirty()
			log.Printf("[STATS] Replaced modifier source %s on %s", src.ID(), m.ownerID)
			return
		}
	}

	m.sources = append(m.sources, src)
	m.MarkDirty()
}

// RemoveSource unregisters a modifier source by ID
func (m *Manager) RemoveSource(sourceID string) bool {
	for i, src := range m.sources {
		if src.ID() != sourceID {
			continue
		}
		m.sources = append(m.sources[:i], m.sources[i+1:]...)
		m.MarkDirty()
		return true
	}
	return false
}

// HasSource reports whether a source with the ID is registered
func (m *Manager) HasSource(sourceID string) bool {
	for _, src := range m.sources {
		if src.ID() == sourceID {
			return true
		}
	}
	return false
}

// Sources returns the registered sources in registration order
func (m *Manager) Sources() []Source {
	out := make([]Source, len(m.sources))
	copy(out, m.sources)
	return out
}

// MarkDirty invalidates current stats. Callers must invoke it whenever the
// traits or conditions feeding this manager may have changed.
func (m *Manager) MarkDirty() {
	m.currentDirty = true
}

func (m *Manager) invalidateAll() {
	m.baseDirty = true
	m.currentDirty = true
}

// Base returns the level-scaled base value of a stat
func (m *Manager) Base(stat shared.Stat) int {
	m.ensureBase()
	return m.base[stat]
}

// Current returns the modified value of a stat. HP and Energy maxima are
// never touched by modifiers and always equal their base.
func (m *Manager) Current(stat shared.Stat) int {
	m.ensureCurrent()
	return m.current[stat]
}

// Combat returns the modified value of a combat parameter
func (m *Manager) Combat(param shared.CombatParam) float64 {
	m.ensureCurrent()
	return m.combat[param]
}

// BaseRecomputes returns how many times base stats were rebuilt
func (m *Manager) BaseRecomputes() int {
	return m.baseRecomputes
}

// CurrentRecomputes returns how many times current stats were rebuilt
func (m *Manager) CurrentRecomputes() int {
	return m.currentRecomputes
}

func (m *Manager) ensureBase() {
	if !m.baseDirty && m.base != nil {
		return
	}

	base := make(map[shared.Stat]int, len(shared.Stats))
	for _, stat := range shared.Stats {
		base[stat] = ScaleStat(stat, m.species[stat], m.level) + m.classBonus[stat]
		if base[stat] < MinStatValue {
			base[stat] = MinStatValue
		}
	}

	m.base = base
	m.baseDirty = false
	m.baseRecomputes++
	// Current is derived from base
	m.currentDirty = true
}

func (m *Manager) ensureCurrent() {
	m.ensureBase()
	if !m.currentDirty && m.current != nil {
		return
	}

	statMods, combatMods := m.collect()

	current := make(map[shared.Stat]int, len(shared.Stats))
	for _, stat := range shared.Stats {
		if stat.IsPool() {
			current[stat] = m.base[stat]
			continue
		}
		current[stat] = ApplyStat(stat, m.base[stat], statMods)
	}

	combat := make(map[shared.CombatParam]float64, len(shared.CombatParams))
	for _, param := range shared.CombatParams {
		combat[param] = ApplyCombat(param, combatMods)
	}

	m.current = current
	m.combat = combat
	m.currentDirty = false
	m.currentRecomputes++
}

func (m *Manager) collect() ([]StatModifier, []CombatModifier) {
	var statMods []StatModifier
	var combatMods []CombatModifier
	for _, src := range m.sources {
		statMods = append(statMods, src.StatModifiers()...)
		combatMods = append(combatMods, src.CombatModifiers()...)
	}
	return statMods, combatMods
}

// ScaleStat turns a species base value into a level-scaled stat.
// Pools use 2*B*L/100 + L + 10, everything else 2*B*L/100 + 5.
func ScaleStat(stat shared.Stat, speciesBase, level int) int {
	scaled := 2 * speciesBase * level / 100
	if stat.IsPool() {
		return scaled + level + 10
	}
	return scaled + 5
}

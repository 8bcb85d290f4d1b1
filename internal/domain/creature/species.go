package creature

import (
	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
	"github.com/KirkDiggler/creature-battle/internal/modifiers"
)

// Species is the read-only template a creature is built from
type Species struct {
	Key       string              `json:"key" yaml:"key"`
	Name      string              `json:"name" yaml:"name"`
	Elements  []shared.Element    `json:"elements" yaml:"elements"`
	BaseStats modifiers.BaseStats `json:"base_stats" yaml:"base_stats"`
}

// HasElement checks if the species carries an element tag
func (s *Species) HasElement(element shared.Element) bool {
	for _, e := range s.Elements {
		if e == element {
			return true
		}
	}
	return false
}

// Class adds a flat bonus on top of level-scaled species stats
type Class struct {
	Key   string              `json:"key" yaml:"key"`
	Name  string              `json:"name" yaml:"name"`
	Bonus modifiers.BaseStats `json:"bonus" yaml:"bonus"`
}

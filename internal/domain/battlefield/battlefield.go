// Package battlefield models the bounded row/column grid. Tiles hold
// creature IDs rather than creature values; the battle arena resolves them.
package battlefield

import (
	"log"

	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
	"github.com/KirkDiggler/creature-battle/internal/domain/terrain"
	"github.com/KirkDiggler/creature-battle/internal/errors"
)

// Tile is one grid cell
type Tile struct {
	Position   Position     `json:"position"`
	Terrain    terrain.Type `json:"terrain"`
	OccupantID string       `json:"occupant_id,omitempty"`
}

// IsOccupied reports whether a creature stands on the tile
func (t *Tile) IsOccupied() bool {
	return t.OccupantID != ""
}

// Battlefield is the grid of tiles
type Battlefield struct {
	rows  int
	cols  int
	tiles [][]*Tile
}

// New creates a plain battlefield with the given dimensions
func New(rows, cols int) *Battlefield {
	tiles := make([][]*Tile, rows)
	for r := 0; r < rows; r++ {
		tiles[r] = make([]*Tile, cols)
		for c := 0; c < cols; c++ {
			tiles[r][c] = &Tile{Position: NewPosition(r, c), Terrain: terrain.Plain}
		}
	}
	return &Battlefield{rows: rows, cols: cols, tiles: tiles}
}

// NewDefault creates a GridRows x GridColumns battlefield
func NewDefault() *Battlefield {
	return New(GridRows, GridColumns)
}

// Rows returns the row count
func (b *Battlefield) Rows() int { return b.rows }

// Cols returns the global column count
func (b *Battlefield) Cols() int { return b.cols }

// InBounds reports whether p lies on the grid
func (b *Battlefield) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// Tile returns the tile at p
func (b *Battlefield) Tile(p Position) (*Tile, bool) {
	if !b.InBounds(p) {
		return nil, false
	}
	return b.tiles[p.Row][p.Col], true
}

// Terrain returns the terrain type at p, Plain when out of bounds
func (b *Battlefield) Terrain(p Position) terrain.Type {
	tile, ok := b.Tile(p)
	if !ok {
		return terrain.Plain
	}
	return tile.Terrain
}

// Policy returns the terrain rules for the tile at p
func (b *Battlefield) Policy(p Position) terrain.Policy {
	return terrain.PolicyFor(b.Terrain(p))
}

// SetTerrain changes the terrain of a tile
func (b *Battlefield) SetTerrain(p Position, t terrain.Type) error {
	tile, ok := b.Tile(p)
	if !ok {
		return errors.InvalidArgumentf("position %s is off the grid", p)
	}
	tile.Terrain = t
	return nil
}

// DestroyTerrain replaces destructible terrain with its replacement type
func (b *Battlefield) DestroyTerrain(p Position) bool {
	tile, ok := b.Tile(p)
	if !ok {
		return false
	}
	replacement, ok := terrain.PolicyFor(tile.Terrain).DestroyedReplacement()
	if !ok {
		return false
	}
	log.Printf("[BATTLEFIELD] %s at %s destroyed, now %s", tile.Terrain, p, replacement)
	tile.Terrain = replacement
	return true
}

// OccupantAt returns the creature ID standing on p
func (b *Battlefield) OccupantAt(p Position) (string, bool) {
	tile, ok := b.Tile(p)
	if !ok || !tile.IsOccupied() {
		return "", false
	}
	return tile.OccupantID, true
}

// Place puts a creature on an empty tile
func (b *Battlefield) Place(creatureID string, p Position) error {
	tile, ok := b.Tile(p)
	if !ok {
		return errors.InvalidArgumentf("position %s is off the grid", p)
	}
	if tile.IsOccupied() {
		return errors.Rejectedf("tile %s is occupied by %s", p, tile.OccupantID)
	}
	tile.OccupantID = creatureID
	return nil
}

// Clear empties a tile
func (b *Battlefield) Clear(p Position) {
	if tile, ok := b.Tile(p); ok {
		tile.OccupantID = ""
	}
}

// Move relocates a creature between tiles. Nothing changes on failure.
func (b *Battlefield) Move(creatureID string, from, to Position) error {
	src, ok := b.Tile(from)
	if !ok || src.OccupantID != creatureID {
		return errors.InvalidArgumentf("creature %s is not at %s", creatureID, from)
	}
	if err := b.Place(creatureID, to); err != nil {
		return err
	}
	src.OccupantID = ""
	return nil
}

// Adjacent returns the in-bounds edge neighbours of p in a fixed order:
// up, down, left, right
func (b *Battlefield) Adjacent(p Position) []Position {
	candidates := []Position{p.Offset(-1, 0), p.Offset(1, 0), p.Offset(0, -1), p.Offset(0, 1)}
	out := make([]Position, 0, len(candidates))
	for _, c := range candidates {
		if b.InBounds(c) {
			out = append(out, c)
		}
	}
	return out
}

// AdjacentOccupants returns the IDs of creatures adjacent to p
func (b *Battlefield) AdjacentOccupants(p Position) []string {
	var ids []string
	for _, n := range b.Adjacent(p) {
		if id, ok := b.OccupantAt(n); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Forward returns the tile one step in the side's attack direction
func (b *Battlefield) Forward(p Position, side shared.Side) (Position, bool) {
	next := p.Offset(0, ForwardDelta(side))
	return next, b.InBounds(next)
}

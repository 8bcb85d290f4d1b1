package battlefield

import (
	"fmt"

	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
)

// Grid dimensions. Columns are global: the player side owns columns
// [0, ColumnsPerSide) and faces increasing columns, the enemy side owns the
// rest and faces decreasing columns.
const (
	GridRows       = 5
	ColumnsPerSide = 4
	GridColumns    = ColumnsPerSide * 2
)

// Position is a (row, global column) coordinate
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewPosition creates a position
func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Offset returns the position shifted by the given deltas
func (p Position) Offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Distance returns the Manhattan distance between two positions
func (p Position) Distance(o Position) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

// IsAdjacent reports whether o shares an edge with p
func (p Position) IsAdjacent(o Position) bool {
	return p.Distance(o) == 1
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// ForwardDelta is the column step a side attacks along
func ForwardDelta(side shared.Side) int {
	if side == shared.SideEnemy {
		return -1
	}
	return 1
}

// SideOfColumn returns which side owns a global column
func SideOfColumn(col int) shared.Side {
	if col < ColumnsPerSide {
		return shared.SidePlayer
	}
	return shared.SideEnemy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Package aoe maps an origin tile and a shape to the extra tiles an action
// affects. The origin itself is never part of the result; the primary target
// is resolved by the caller.
package aoe

import (
	"log"

	"github.com/KirkDiggler/creature-battle/internal/domain/battlefield"
	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
)

// Grid is the battlefield query surface the calculator needs
type Grid interface {
	InBounds(p battlefield.Position) bool
}

// Targets returns the tiles affected by shape around origin, in a stable
// order, with off-grid positions dropped. side orients lines and cones.
func Targets(origin battlefield.Position, shape Shape, grid Grid, side shared.Side, orientation Orientation) []battlefield.Position {
	spec, ok := shapes[shape]
	if !ok {
		log.Printf("[AOE] Unknown shape %q, no area targets", shape)
		return []battlefield.Position{}
	}

	var raw []battlefield.Position
	switch spec.family {
	case familySingle:
		raw = nil
	case familyLine:
		raw = line(origin, spec.size, side)
	case familyArc:
		raw = arc(origin, spec.size, orientation)
	case familyCone:
		raw = cone(origin, spec.depth, spec.size, side, orientation)
	case familyBurst:
		raw = burst(origin, spec.size)
	}

	return filter(origin, raw, grid)
}

func line(origin battlefield.Position, length int, side shared.Side) []battlefield.Position {
	step := battlefield.ForwardDelta(side)
	out := make([]battlefield.Position, 0, length-1)
	for i := 1; i < length; i++ {
		out = append(out, origin.Offset(0, step*i))
	}
	return out
}

func arc(origin battlefield.Position, width int, orientation Orientation) []battlefield.Position {
	var out []battlefield.Position
	for _, dr := range rowOffsets(width, orientation) {
		if dr == 0 {
			continue
		}
		out = append(out, origin.Offset(dr, 0))
	}
	return out
}

func cone(origin battlefield.Position, depth, maxWidth int, side shared.Side, orientation Orientation) []battlefield.Position {
	step := battlefield.ForwardDelta(side)
	var out []battlefield.Position
	for d := 1; d <= depth; d++ {
		for _, dr := range rowOffsets(ConeWidthAt(d, depth, maxWidth), orientation) {
			out = append(out, origin.Offset(dr, step*d))
		}
	}
	return out
}

// ConeWidthAt is the row span of a cone at a depth step, floored at 1
func ConeWidthAt(depth, totalDepth, maxWidth int) int {
	if totalDepth < 1 {
		return 1
	}
	width := 1 + depth*(maxWidth-1)/totalDepth
	if width < 1 {
		return 1
	}
	return width
}

func burst(origin battlefield.Position, radius int) []battlefield.Position {
	var out []battlefield.Position
	for dist := 1; dist <= radius; dist++ {
		for dr := -dist; dr <= dist; dr++ {
			dc := dist - abs(dr)
			out = append(out, origin.Offset(dr, -dc))
			if dc != 0 {
				out = append(out, origin.Offset(dr, dc))
			}
		}
	}
	return out
}

// rowOffsets returns the row deltas covered by a span of width rows centred
// on the origin row. Odd widths are symmetric; even widths put the extra
// row on the side the orientation picks.
func rowOffsets(width int, orientation Orientation) []int {
	if width < 1 {
		return nil
	}

	low := -(width - 1) / 2
	if width%2 == 0 && orientation != OrientationDown {
		low = -width / 2
	}

	out := make([]int, width)
	for i := range out {
		out[i] = low + i
	}
	return out
}

func filter(origin battlefield.Position, raw []battlefield.Position, grid Grid) []battlefield.Position {
	out := make([]battlefield.Position, 0, len(raw))
	seen := make(map[battlefield.Position]bool, len(raw))
	for _, p := range raw {
		if p == origin || seen[p] || !grid.InBounds(p) {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

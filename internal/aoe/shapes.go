package aoe

// Shape names an area-of-effect pattern
type Shape string

const (
	ShapeSingle  Shape = "single"
	ShapeLine2   Shape = "line_2"
	ShapeLine3   Shape = "line_3"
	ShapeLine4   Shape = "line_4"
	ShapeArc2    Shape = "arc_2"
	ShapeArc3    Shape = "arc_3"
	ShapeArc4    Shape = "arc_4"
	ShapeArc5    Shape = "arc_5"
	ShapeCone2x3 Shape = "cone_2x3"
	ShapeCone3x3 Shape = "cone_3x3"
	ShapeCone3x5 Shape = "cone_3x5"
	ShapeBurst1  Shape = "burst_1"
	ShapeBurst2  Shape = "burst_2"
)

// Orientation disambiguates even-width shapes: Up gives the extra cell to the
// lower row index, Down to the higher one
type Orientation string

const (
	OrientationUp   Orientation = "up"
	OrientationDown Orientation = "down"
)

type family int

const (
	familySingle family = iota
	familyLine
	familyArc
	familyCone
	familyBurst
)

// shapeSpec holds the parameters for one registered shape
type shapeSpec struct {
	family family
	size   int // line length, arc width, cone max width, burst radius
	depth  int // cone depth
}

var shapes = map[Shape]shapeSpec{
	ShapeSingle:  {family: familySingle},
	ShapeLine2:   {family: familyLine, size: 2},
	ShapeLine3:   {family: familyLine, size: 3},
	ShapeLine4:   {family: familyLine, size: 4},
	ShapeArc2:    {family: familyArc, size: 2},
	ShapeArc3:    {family: familyArc, size: 3},
	ShapeArc4:    {family: familyArc, size: 4},
	ShapeArc5:    {family: familyArc, size: 5},
	ShapeCone2x3: {family: familyCone, size: 3, depth: 2},
	ShapeCone3x3: {family: familyCone, size: 3, depth: 3},
	ShapeCone3x5: {family: familyCone, size: 5, depth: 3},
	ShapeBurst1:  {family: familyBurst, size: 1},
	ShapeBurst2:  {family: familyBurst, size: 2},
}

// Shapes returns every registered shape
func Shapes() []Shape {
	return []Shape{
		ShapeSingle,
		ShapeLine2, ShapeLine3, ShapeLine4,
		ShapeArc2, ShapeArc3, ShapeArc4, ShapeArc5,
		ShapeCone2x3, ShapeCone3x3, ShapeCone3x5,
		ShapeBurst1, ShapeBurst2,
	}
}

// IsKnown reports whether the shape is registered
func (s Shape) IsKnown() bool {
	_, ok := shapes[s]
	return ok
}

// IsDirectional reports whether the shape depends on the attacker's side
func (s Shape) IsDirectional() bool {
	spec, ok := shapes[s]
	return ok && (spec.family == familyLine || spec.family == familyCone)
}

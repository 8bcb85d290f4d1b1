package shared

// Element is an elemental type tag carried by creatures and actions
type Element string

const (
	ElementNone    Element = ""
	ElementNeutral Element = "neutral"
	ElementFire    Element = "fire"
	ElementWater   Element = "water"
	ElementEarth   Element = "earth"
	ElementAir     Element = "air"
	ElementNature  Element = "nature"
	ElementShadow  Element = "shadow"
	ElementLight   Element = "light"
)

// Side is battle ownership
type Side string

const (
	SidePlayer Side = "player"
	SideEnemy  Side = "enemy"
)

// Opposite returns the other side
func (s Side) Opposite() Side {
	if s == SidePlayer {
		return SideEnemy
	}
	return SidePlayer
}

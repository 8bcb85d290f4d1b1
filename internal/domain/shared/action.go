package shared

// ActionSource selects which offensive and defensive stats an action uses
type ActionSource string

const (
	SourcePhysical ActionSource = "physical"
	SourceMagical  ActionSource = "magical"
)

// ActionRole is the tactical role of an action
type ActionRole string

const (
	RoleAttack    ActionRole = "attack"
	RoleSupport   ActionRole = "support"
	RoleDefensive ActionRole = "defensive"
)

// RangeClass is how far an action reaches
type RangeClass string

const (
	RangeMelee  RangeClass = "melee"
	RangeRanged RangeClass = "ranged"
	RangeSelf   RangeClass = "self"
)

// ActionTag flags special action behavior
type ActionTag string

const (
	TagHealing   ActionTag = "healing"
	TagNoContact ActionTag = "no_contact"
	TagPierce    ActionTag = "pierce"
)

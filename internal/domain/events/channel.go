package events

import (
	"log"

	"github.com/KirkDiggler/creature-battle/internal/domain/creature"
	"github.com/KirkDiggler/creature-battle/internal/errors"
)

// Channel is what a trait trigger listens on. A channel is always read from
// the point of view of one event participant.
type Channel string

const (
	ChannelNone Channel = ""

	BeforeAct              Channel = "before_act"
	AfterAct               Channel = "after_act"
	BeforeTargeted         Channel = "before_targeted"
	AfterTargeted          Channel = "after_targeted"
	BeforeDamageDealt      Channel = "before_damage_dealt"
	AfterDamageDealt       Channel = "after_damage_dealt"
	BeforeDamageReceived   Channel = "before_damage_received"
	AfterDamageReceived    Channel = "after_damage_received"
	BeforeHealGiven        Channel = "before_heal_given"
	AfterHealGiven         Channel = "after_heal_given"
	BeforeHealReceived     Channel = "before_heal_received"
	AfterHealReceived      Channel = "after_heal_received"
	BeforeConditionApplied Channel = "before_condition_applied"
	AfterConditionApplied  Channel = "after_condition_applied"
	BeforeConditionRemoved Channel = "before_condition_removed"
	AfterConditionRemoved  Channel = "after_condition_removed"
	BeforeMove             Channel = "before_move"
	AfterMove              Channel = "after_move"
	BeforeForcedMove       Channel = "before_forced_move"
	AfterForcedMove        Channel = "after_forced_move"
	TurnStart              Channel = "turn_start"
	TurnEnd                Channel = "turn_end"
	Defeated               Channel = "defeated"
	DefeatScored           Channel = "defeat_scored"
)

// Channels lists every dispatchable channel
var Channels = []Channel{
	BeforeAct, AfterAct, BeforeTargeted, AfterTargeted,
	BeforeDamageDealt, AfterDamageDealt, BeforeDamageReceived, AfterDamageReceived,
	BeforeHealGiven, AfterHealGiven, BeforeHealReceived, AfterHealReceived,
	BeforeConditionApplied, AfterConditionApplied, BeforeConditionRemoved, AfterConditionRemoved,
	BeforeMove, AfterMove, BeforeForcedMove, AfterForcedMove,
	TurnStart, TurnEnd, Defeated, DefeatScored,
}

// IsKnown reports whether c is a dispatchable channel
func (c Channel) IsKnown() bool {
	for _, known := range Channels {
		if c == known {
			return true
		}
	}
	return false
}

// Timing places an event before or after its state change
type Timing string

const (
	Before Timing = "before"
	After  Timing = "after"
)

// Role is a participant's part in an event
type Role string

const (
	RoleSubject Role = "subject" // the creature the event originates from
	RoleTarget  Role = "target"  // the creature on the receiving end
)

// Perspective relates a trait owner to the event participant
type Perspective string

const (
	PerspectiveSelf     Perspective = "self"
	PerspectiveAlly     Perspective = "ally"
	PerspectiveOpponent Perspective = "opponent"
	PerspectiveTeam     Perspective = "team" // self or ally
	PerspectiveAny      Perspective = "any"
)

// Matches reports whether participant stands in this perspective to owner
func (p Perspective) Matches(owner, participant *creature.Creature) bool {
	if owner == nil || participant == nil {
		return false
	}
	self := owner.ID() == participant.ID()
	sameSide := owner.Side() == participant.Side()

	switch p {
	case PerspectiveSelf:
		return self
	case PerspectiveAlly:
		return sameSide && !self
	case PerspectiveOpponent:
		return !sameSide
	case PerspectiveTeam:
		return sameSide
	case PerspectiveAny:
		return true
	default:
		log.Printf("[EVENTS] STRUCTURAL unknown perspective %q", p)
		return false
	}
}

type channelKey struct {
	kind   Kind
	timing Timing
	role   Role
}

// channelTable maps every supported (kind, timing, role) to a channel.
// ChannelNone marks combinations that deliberately reach no trigger.
// Anything missing is a defect.
var channelTable = map[channelKey]Channel{
	{KindActionUsed, Before, RoleSubject}: BeforeAct,
	{KindActionUsed, After, RoleSubject}:  AfterAct,
	{KindActionUsed, Before, RoleTarget}:  BeforeTargeted,
	{KindActionUsed, After, RoleTarget}:   AfterTargeted,

	{KindDamage, Before, RoleSubject}: BeforeDamageDealt,
	{KindDamage, After, RoleSubject}:  AfterDamageDealt,
	{KindDamage, Before, RoleTarget}:  BeforeDamageReceived,
	{KindDamage, After, RoleTarget}:   AfterDamageReceived,

	{KindHeal, Before, RoleSubject}: BeforeHealGiven,
	{KindHeal, After, RoleSubject}:  AfterHealGiven,
	{KindHeal, Before, RoleTarget}:  BeforeHealReceived,
	{KindHeal, After, RoleTarget}:   AfterHealReceived,

	{KindConditionApplied, Before, RoleSubject}: ChannelNone,
	{KindConditionApplied, After, RoleSubject}:  ChannelNone,
	{KindConditionApplied, Before, RoleTarget}:  BeforeConditionApplied,
	{KindConditionApplied, After, RoleTarget}:   AfterConditionApplied,
	{KindConditionRemoved, Before, RoleSubject}: ChannelNone,
	{KindConditionRemoved, After, RoleSubject}:  ChannelNone,
	{KindConditionRemoved, Before, RoleTarget}:  BeforeConditionRemoved,
	{KindConditionRemoved, After, RoleTarget}:   AfterConditionRemoved,

	{KindMove, Before, RoleSubject}:       BeforeMove,
	{KindMove, After, RoleSubject}:        AfterMove,
	{KindForcedMove, Before, RoleSubject}: BeforeForcedMove,
	{KindForcedMove, After, RoleSubject}:  AfterForcedMove,
	{KindForcedMove, Before, RoleTarget}:  ChannelNone,
	{KindForcedMove, After, RoleTarget}:   ChannelNone,

	{KindTurn, Before, RoleSubject}: TurnStart,
	{KindTurn, After, RoleSubject}:  TurnEnd,

	// Defeat is only raised after the fact
	{KindDefeat, After, RoleSubject}: Defeated,
	{KindDefeat, After, RoleTarget}:  DefeatScored,
}

// ResolveChannel maps an event combination to its channel. Unmapped
// combinations are logged as structural defects and resolve to ChannelNone
// alongside a CodeStructural error.
func ResolveChannel(kind Kind, timing Timing, role Role) (Channel, error) {
	channel, ok := channelTable[channelKey{kind: kind, timing: timing, role: role}]
	if !ok {
		log.Printf("[EVENTS] STRUCTURAL no channel for kind=%s timing=%s role=%s", kind, timing, role)
		return ChannelNone, errors.Structuralf("no channel for %s/%s/%s", kind, timing, role).
			WithMeta("kind", kind).
			WithMeta("timing", timing).
			WithMeta("role", role)
	}
	return channel, nil
}

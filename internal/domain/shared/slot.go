package shared

// SlotType is an action loadout category
type SlotType string

const (
	SlotCore      SlotType = "core"
	SlotEmpowered SlotType = "empowered"
	SlotMastery   SlotType = "mastery"
	SlotNone      SlotType = "none"
)

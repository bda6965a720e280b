package models

// Slot is one of the two half-day booking windows a supplier's calendar is
// evaluated against. There is no finer granularity.
type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotAfternoon Slot = "afternoon"
)

// AllSlots lists every slot in display order.
var AllSlots = []Slot{SlotMorning, SlotAfternoon}

// ValidSlot reports whether s is a known slot value.
func ValidSlot(s Slot) bool {
	return s == SlotMorning || s == SlotAfternoon
}

// DateStatus is the derived day-level availability state. It is computed on
// demand and never stored.
type DateStatus string

const (
	DateStatusPast               DateStatus = "past"
	DateStatusOutsideWindow      DateStatus = "outside-window"
	DateStatusUnavailable        DateStatus = "unavailable"
	DateStatusBusy               DateStatus = "busy"
	DateStatusClosed             DateStatus = "closed"
	DateStatusPartiallyAvailable DateStatus = "partially-available"
	DateStatusAvailable          DateStatus = "available"
	DateStatusUnknown            DateStatus = "unknown"
)

package models

import "time"

// Supplier is an event-service provider listed on the marketplace.
type Supplier struct {
	ID          string              `bson:"id" json:"id"`
	Name        string              `bson:"name" json:"name"`
	Category    string              `bson:"category" json:"category"` // display category, e.g. "Venues", "Party Bags"
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64             `bson:"price,omitempty" json:"price,omitempty"`
	PriceFrom   float64             `bson:"priceFrom,omitempty" json:"priceFrom,omitempty"`
	Packages    []Package           `bson:"packages,omitempty" json:"packages,omitempty"`
	Addons      []Addon             `bson:"addons,omitempty" json:"addons,omitempty"`
	Profile     AvailabilityProfile `bson:"availability" json:"availability"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// Package is one purchasable offering of a supplier. Suppliers with no
// authored packages get a generated default set at read time.
type Package struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Price       float64  `bson:"price" json:"price"`
	TotalPrice  float64  `bson:"totalPrice,omitempty" json:"totalPrice,omitempty"` // party-bags: pre-computed bundle price
	Quantity    int      `bson:"quantity,omitempty" json:"quantity,omitempty"`     // party-bags: units per bundle
	Features    []string `bson:"features,omitempty" json:"features,omitempty"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
}

// Addon is an optional extra. It may be attached to a main-category plan
// slot or exist standalone on the plan.
type Addon struct {
	ID           string  `bson:"id" json:"id"`
	Name         string  `bson:"name" json:"name"`
	Price        float64 `bson:"price" json:"price"`
	SupplierID   string  `bson:"supplierId,omitempty" json:"supplierId,omitempty"`
	SupplierType string  `bson:"supplierType,omitempty" json:"supplierType,omitempty"`
}

// SlotWindow is the per-slot schedule entry of a weekday.
type SlotWindow struct {
	Available bool   `bson:"available" json:"available"`
	Start     string `bson:"start,omitempty" json:"start,omitempty"` // "09:00"
	End       string `bson:"end,omitempty" json:"end,omitempty"`     // "13:00"
}

// DaySchedule describes a supplier's recurring availability for one weekday.
type DaySchedule struct {
	Active bool                `bson:"active" json:"active"`
	Slots  map[Slot]SlotWindow `bson:"slots" json:"slots"`
}

// ExceptionDate is a one-off calendar exception. A nil Slots list is the
// legacy whole-day form; normalization expands it to both slots.
type ExceptionDate struct {
	Date  string `bson:"date" json:"date"` // canonical YYYY-MM-DD
	Slots []Slot `bson:"slots,omitempty" json:"slots,omitempty"`
}

// AvailabilityProfile is the raw calendar data authored by a supplier:
// a recurring weekly template, one-off exceptions and the booking window.
type AvailabilityProfile struct {
	Weekly           map[time.Weekday]DaySchedule `bson:"weekly" json:"weekly"`
	UnavailableDates []ExceptionDate              `bson:"unavailableDates,omitempty" json:"unavailableDates,omitempty"`
	BusyDates        []ExceptionDate              `bson:"busyDates,omitempty" json:"busyDates,omitempty"`

	// AdvanceBookingDays and MaxBookingDays bound the bookable window from
	// "today". Zero AdvanceBookingDays means same-day booking is allowed.
	AdvanceBookingDays int `bson:"advanceBookingDays" json:"advanceBookingDays"`
	MaxBookingDays     int `bson:"maxBookingDays" json:"maxBookingDays"`
}

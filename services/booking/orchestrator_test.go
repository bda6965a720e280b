package booking

import (
	"testing"
	"time"

	"festivo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2025-06-09; decision dates below fall in the same or following week.
var decideNow = time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)

func openAllWeek() models.AvailabilityProfile {
	weekly := make(map[time.Weekday]models.DaySchedule)
	for d := time.Sunday; d <= time.Saturday; d++ {
		weekly[d] = models.DaySchedule{Active: true, Slots: map[models.Slot]models.SlotWindow{
			models.SlotMorning:   {Available: true},
			models.SlotAfternoon: {Available: true},
		}}
	}
	return models.AvailabilityProfile{Weekly: weekly}
}

func venueSupplier(id, name string) *models.Supplier {
	return &models.Supplier{
		ID:       id,
		Name:     name,
		Category: "Venues",
		Price:    250,
		Packages: []models.Package{{ID: id + ":standard", Name: "Standard", Price: 180}},
		Profile:  openAllWeek(),
	}
}

func baseInput(supplier *models.Supplier) DecideInput {
	return DecideInput{
		Now:         decideNow,
		Supplier:    supplier,
		Package:     &supplier.Packages[0],
		CallerState: models.CallerHasAccount,
	}
}

func TestDecideMissingSupplierOrPackage(t *testing.T) {
	d := Decide(DecideInput{Now: decideNow})
	failed, ok := d.(Failed)
	require.True(t, ok)
	assert.Equal(t, "missingSupplier", failed.Code)

	in := baseInput(venueSupplier("sup-a", "Supplier A"))
	in.Package = nil
	failed, ok = Decide(in).(Failed)
	require.True(t, ok)
	assert.Equal(t, "missingPackage", failed.Code)
}

func TestDecideNeedsDate(t *testing.T) {
	in := baseInput(venueSupplier("sup-a", "Supplier A"))

	_, ok := Decide(in).(NeedDate)
	assert.True(t, ok)

	// An empty details record does not count as a chosen date.
	in.Details = &models.PartyDetails{}
	_, ok = Decide(in).(NeedDate)
	assert.True(t, ok)
}

func TestDecideFallsBackToPartyDetailsDate(t *testing.T) {
	in := baseInput(venueSupplier("sup-a", "Supplier A"))
	in.Details = &models.PartyDetails{Date: "2025-06-14", TimeSlot: models.SlotAfternoon}

	ready, ok := Decide(in).(ReadyToCommit)
	require.True(t, ok)
	assert.Equal(t, "2025-06-14", ready.Package.BookingDate)
	assert.Equal(t, models.SlotAfternoon, ready.Package.BookingTimeSlot)
}

func TestDecideNeedsSlotWhenBothOpen(t *testing.T) {
	in := baseInput(venueSupplier("sup-a", "Supplier A"))
	in.Date = "2025-06-14"

	need, ok := Decide(in).(NeedSlot)
	require.True(t, ok)
	assert.Equal(t, []models.Slot{models.SlotMorning, models.SlotAfternoon}, need.AvailableSlots)
}

func TestDecideAutoPicksSingleOpenSlot(t *testing.T) {
	supplier := venueSupplier("sup-a", "Supplier A")
	supplier.Profile.UnavailableDates = []models.ExceptionDate{
		{Date: "2025-06-14", Slots: []models.Slot{models.SlotMorning}},
	}
	in := baseInput(supplier)
	in.Date = "2025-06-14"

	ready, ok := Decide(in).(ReadyToCommit)
	require.True(t, ok)
	assert.Equal(t, models.SlotAfternoon, ready.Package.BookingTimeSlot)
}

func TestDecideUnavailable(t *testing.T) {
	supplier := venueSupplier("sup-a", "Supplier A")
	supplier.Profile.UnavailableDates = []models.ExceptionDate{{Date: "2025-06-14"}}
	morning := models.SlotMorning

	in := baseInput(supplier)
	in.Date = "2025-06-14"
	in.Slot = &morning

	blocked, ok := Decide(in).(Unavailable)
	require.True(t, ok)
	assert.Equal(t, "2025-06-14", blocked.Date)
	assert.Equal(t, models.SlotMorning, blocked.Slot)
	assert.Empty(t, blocked.AvailableSlots)
}

func TestDecideInfersSlotFromFreeTextTime(t *testing.T) {
	in := baseInput(venueSupplier("sup-a", "Supplier A"))
	in.Details = &models.PartyDetails{Date: "2025-06-14", Time: "2pm onwards"}

	ready, ok := Decide(in).(ReadyToCommit)
	require.True(t, ok)
	assert.Equal(t, models.SlotAfternoon, ready.Package.BookingTimeSlot)
}

// Unparsable dates fail open on the availability read, so the pipeline
// proceeds to the slot question instead of blocking.
func TestDecideFailsOpenOnUnparsableDate(t *testing.T) {
	in := baseInput(venueSupplier("sup-a", "Supplier A"))
	in.Date = "sometime next summer"

	_, ok := Decide(in).(NeedSlot)
	assert.True(t, ok)
}

func TestDecideAnonymousBuildsNewPlan(t *testing.T) {
	morning := models.SlotMorning
	in := baseInput(venueSupplier("sup-a", "Supplier A"))
	in.CallerState = models.CallerAnonymous
	in.Date = "2025-06-14"
	in.Slot = &morning

	_, ok := Decide(in).(BuildNewPlan)
	assert.True(t, ok)
}

func planWithVenueOccupant() *models.PartyPlan {
	p := models.NewPartyPlan("plan-1", "owner-1")
	p.Occupy(models.CategoryVenue, models.PlanSlot{
		Supplier: models.SupplierRef{ID: "sup-a", Name: "Supplier A", Category: models.CategoryVenue},
		Package:  models.Package{ID: "sup-a:standard", Price: 180},
	})
	return p
}

func TestDecideCategoryOccupied(t *testing.T) {
	morning := models.SlotMorning
	in := baseInput(venueSupplier("sup-b", "Supplier B"))
	in.Date = "2025-06-14"
	in.Slot = &morning
	in.Plan = planWithVenueOccupant()

	occupied, ok := Decide(in).(CategoryOccupied)
	require.True(t, ok)
	assert.Equal(t, "Supplier A", occupied.OccupantName)
}

func TestDecideSameSupplierIsNotOccupied(t *testing.T) {
	morning := models.SlotMorning
	in := baseInput(venueSupplier("sup-a", "Supplier A"))
	in.Date = "2025-06-14"
	in.Slot = &morning
	in.Plan = planWithVenueOccupant()

	_, ok := Decide(in).(ReadyToCommit)
	assert.True(t, ok, "re-selecting the occupant overwrites, not blocks")
}

func TestDecideReplacementAuthorizesSwap(t *testing.T) {
	morning := models.SlotMorning
	in := baseInput(venueSupplier("sup-b", "Supplier B"))
	in.Date = "2025-06-14"
	in.Slot = &morning
	in.Plan = planWithVenueOccupant()
	in.Replacement = &models.ReplacementContext{
		IsReplacement:   true,
		CurrentSupplier: &models.SupplierRef{ID: "sup-a", Category: models.CategoryVenue},
	}

	_, ok := Decide(in).(ReadyToCommit)
	assert.True(t, ok)
}

func TestDecideReplacementForOtherCategoryDoesNotAuthorize(t *testing.T) {
	morning := models.SlotMorning
	in := baseInput(venueSupplier("sup-b", "Supplier B"))
	in.Date = "2025-06-14"
	in.Slot = &morning
	in.Plan = planWithVenueOccupant()
	in.Replacement = &models.ReplacementContext{
		IsReplacement:   true,
		CurrentSupplier: &models.SupplierRef{ID: "sup-c", Category: models.CategoryCatering},
	}

	_, ok := Decide(in).(CategoryOccupied)
	assert.True(t, ok)
}

func TestDecideNeedsEnquiryAck(t *testing.T) {
	morning := models.SlotMorning
	in := baseInput(venueSupplier("sup-a", "Supplier A"))
	in.Date = "2025-06-14"
	in.Slot = &morning
	in.PendingEnquiries = 2

	need, ok := Decide(in).(NeedEnquiryAck)
	require.True(t, ok)
	assert.Equal(t, 2, need.PendingCount)

	in.EnquiryAcked = true
	_, ok = Decide(in).(ReadyToCommit)
	assert.True(t, ok, "acknowledged once, the gate opens")
}

func entertainmentSupplier() *models.Supplier {
	s := venueSupplier("sup-e", "Magic Mike")
	s.Category = "Entertainment"
	s.Addons = []models.Addon{
		{ID: "ad-1", Name: "Balloon modelling", Price: 15},
		{ID: "ad-2", Name: "Extra 30 minutes", Price: 25},
	}
	return s
}

func TestDecideNeedsAddonChoice(t *testing.T) {
	morning := models.SlotMorning
	in := baseInput(entertainmentSupplier())
	in.Date = "2025-06-14"
	in.Slot = &morning

	need, ok := Decide(in).(NeedAddonChoice)
	require.True(t, ok)
	assert.Len(t, need.Addons, 2)

	// An explicit empty choice is an answer; only nil re-asks.
	in.SelectedAddons = []models.Addon{}
	_, ok = Decide(in).(ReadyToCommit)
	assert.True(t, ok)
}

func TestDecideEnrichesPackage(t *testing.T) {
	morning := models.SlotMorning
	in := baseInput(entertainmentSupplier())
	in.Date = "14/06/2025"
	in.Slot = &morning
	in.SelectedAddons = []models.Addon{{ID: "ad-1", Price: 15}}

	ready, ok := Decide(in).(ReadyToCommit)
	require.True(t, ok)

	enriched := ready.Package
	assert.Equal(t, "sup-e", enriched.SupplierID)
	assert.Equal(t, models.CategoryEntertainment, enriched.CategoryKey)
	assert.Equal(t, "2025-06-14", enriched.BookingDate, "dates are canonicalized at enrichment")
	assert.Equal(t, models.SlotMorning, enriched.BookingTimeSlot)
	assert.Equal(t, 15.0, enriched.AddonTotal)
	assert.Equal(t, 195.0, enriched.TotalPrice, "package price plus selected add-ons")
}

// A package without its own price resolves through the supplier price at
// decision time. The enrichment carries the supplier price fields so the
// same resolution still works once the slot is stored in the plan.
func TestDecideEnrichmentCarriesSupplierPricing(t *testing.T) {
	morning := models.SlotMorning
	supplier := venueSupplier("sup-a", "Supplier A")
	supplier.PriceFrom = 200
	supplier.Packages[0].Price = 0

	in := baseInput(supplier)
	in.Date = "2025-06-14"
	in.Slot = &morning

	ready, ok := Decide(in).(ReadyToCommit)
	require.True(t, ok)
	assert.Equal(t, 250.0, ready.Package.SupplierPrice)
	assert.Equal(t, 200.0, ready.Package.SupplierPriceFrom)
	assert.Equal(t, 250.0, ready.Package.TotalPrice, "falls back to the supplier price")
}

func TestDecidePinsPartyBagBundlePrice(t *testing.T) {
	morning := models.SlotMorning
	supplier := venueSupplier("sup-p", "Bag Co")
	supplier.Category = "Party Bags"
	supplier.Packages[0] = models.Package{ID: "sup-p:standard", Name: "Classic", Price: 4, Quantity: 20}

	in := baseInput(supplier)
	in.Date = "2025-06-14"
	in.Slot = &morning

	ready, ok := Decide(in).(ReadyToCommit)
	require.True(t, ok)
	assert.Equal(t, 80.0, ready.Package.Metadata.TotalPrice, "bundle price is pinned at decision time")
	assert.Equal(t, 80.0, ready.Package.TotalPrice)
}

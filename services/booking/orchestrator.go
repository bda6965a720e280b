package booking

import (
	"time"

	"festivo/models"
	"festivo/services/availability"
	"festivo/services/plan"
	"festivo/services/pricing"
	"festivo/utils"
)

// DecideInput bundles everything the decision pipeline evaluates. Decide is
// pure over this input; the service layer assembles it from collaborators.
type DecideInput struct {
	Now      time.Time
	Supplier *models.Supplier
	Package  *models.Package

	// Date is the caller's explicit choice; empty falls back to the stored
	// party details. Slot is the explicit slot selection, if any.
	Date string
	Slot *models.Slot

	CallerState models.CallerState
	Plan        *models.PartyPlan
	Details     *models.PartyDetails

	PendingEnquiries int
	EnquiryAcked     bool
	Replacement      *models.ReplacementContext

	// SelectedAddons is nil when the caller has not been asked yet; an
	// empty non-nil slice means they explicitly chose none.
	SelectedAddons []models.Addon
}

// Decide runs the ordered validation pipeline and returns exactly one
// decision. Each step short-circuits.
func Decide(in DecideInput) Decision {
	if in.Supplier == nil {
		return Failed{Code: "missingSupplier", Message: "supplier could not be loaded"}
	}
	if in.Package == nil {
		return Failed{Code: "missingPackage", Message: "no package selected"}
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	// 1. A date must be chosen somewhere.
	date := in.Date
	if date == "" && in.Details != nil {
		date = in.Details.Date
	}
	if date == "" {
		return NeedDate{}
	}

	// 2. Resolve the effective slot and check availability for the date.
	profile := availability.NewProfile(in.Supplier.Profile)
	slot := resolveSlot(in)
	result := profile.CheckAvailability(date, slot)
	if !result.Available {
		return unavailableFor(profile, date, slot)
	}
	if slot == nil {
		switch open := result.Slots; len(open) {
		case 0:
			return unavailableFor(profile, date, nil)
		case 1:
			slot = &open[0]
		default:
			return NeedSlot{AvailableSlots: open}
		}
	}

	// 3. A plan configured for a different date gets the same treatment.
	if in.Plan != nil && in.Plan.Details.Date != "" && in.Plan.Details.Date != date {
		if recheck := profile.CheckAvailability(in.Plan.Details.Date, slot); !recheck.Available {
			return unavailableFor(profile, in.Plan.Details.Date, slot)
		}
	}

	// 4. Anonymous callers with a date go build a plan from scratch.
	if in.CallerState == models.CallerAnonymous {
		return BuildNewPlan{}
	}

	categoryKey := plan.CategoryKeyFor(in.Supplier.Category)

	// 5. Occupancy: an account holder cannot silently evict a different
	// supplier unless a replacement context authorizes the swap.
	if in.Plan != nil {
		if occupant, ok := in.Plan.Occupant(categoryKey); ok && occupant.Supplier.ID != in.Supplier.ID {
			if in.CallerState == models.CallerHasAccount && !in.Replacement.Authorizes(categoryKey, in.Supplier.ID) {
				return CategoryOccupied{OccupantName: occupant.Supplier.Name}
			}
		}
	}

	// 6. Pending enquiries soft-gate further mutations until acknowledged.
	if in.PendingEnquiries > 0 && !in.EnquiryAcked {
		return NeedEnquiryAck{PendingCount: in.PendingEnquiries}
	}

	// 7. Entertainment-like suppliers need an add-on choice before commit.
	if plan.RequiresAddonChoice(categoryKey) && len(in.Supplier.Addons) > 0 && in.SelectedAddons == nil {
		return NeedAddonChoice{Addons: in.Supplier.Addons}
	}

	return ReadyToCommit{Package: enrichPackage(in, categoryKey, date, slot)}
}

// unavailableFor builds the Unavailable decision for a blocked date,
// listing whatever slots remain open so the caller can offer alternatives.
func unavailableFor(profile *availability.Profile, rawDate string, slot *models.Slot) Unavailable {
	blocked := Unavailable{Date: rawDate, AvailableSlots: []models.Slot{}}
	if d, ok := utils.ParseFlexibleDate(rawDate); ok {
		if open := profile.AvailableSlots(d); open != nil {
			blocked.AvailableSlots = open
		}
	}
	if slot != nil {
		blocked.Slot = *slot
	}
	return blocked
}

// resolveSlot picks the effective slot: explicit selection, then the plan's
// configured slot, then inference from the legacy free-text time.
func resolveSlot(in DecideInput) *models.Slot {
	if in.Slot != nil && models.ValidSlot(*in.Slot) {
		return in.Slot
	}
	if in.Details != nil {
		if models.ValidSlot(in.Details.TimeSlot) {
			s := in.Details.TimeSlot
			return &s
		}
		if inferred := InferSlotFromTime(in.Details.Time); inferred != nil {
			return inferred
		}
	}
	return nil
}

// enrichPackage materializes the package record a commit writes into the
// plan: resolved date and slot embedded, add-on totals computed.
func enrichPackage(in DecideInput, categoryKey, rawDate string, slot *models.Slot) models.EnrichedPackage {
	bookingDate := rawDate
	if d, ok := utils.ParseFlexibleDate(rawDate); ok {
		bookingDate = utils.ToComparableDateString(d)
	}

	line := models.PlanSlot{
		Supplier: models.SupplierRef{
			ID:        in.Supplier.ID,
			Name:      in.Supplier.Name,
			Category:  categoryKey,
			Price:     in.Supplier.Price,
			PriceFrom: in.Supplier.PriceFrom,
		},
		Package: *in.Package,
	}
	base := pricing.DisplayPrice(line, nil).BasePrice
	addonTotal := pricing.AddonTotal(in.SelectedAddons)

	enriched := models.EnrichedPackage{
		Package:           *in.Package,
		SupplierID:        in.Supplier.ID,
		SupplierName:      in.Supplier.Name,
		CategoryKey:       categoryKey,
		SupplierPrice:     in.Supplier.Price,
		SupplierPriceFrom: in.Supplier.PriceFrom,
		BookingDate:       bookingDate,
		Addons:            in.SelectedAddons,
		AddonTotal:        addonTotal,
		TotalPrice:        base + addonTotal,
	}
	if categoryKey == models.CategoryPartyBags {
		// Pin the resolved bundle price so later supplier edits cannot
		// silently reprice an already-committed slot.
		enriched.Metadata = models.SlotMetadata{TotalPrice: base}
	}
	if slot != nil {
		enriched.BookingTimeSlot = *slot
	}
	return enriched
}

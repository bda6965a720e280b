package models

import "time"

// Category keys for the main purchase slots. The display-name lookup table
// lives with the plan service; these keys are what plans are stored under.
const (
	CategoryVenue         = "venue"
	CategoryEntertainment = "entertainment"
	CategoryCatering      = "catering"
	CategoryCakes         = "cakes"
	CategoryFacePainting  = "facePainting"
	CategoryActivities    = "activities"
	CategoryPartyBags     = "partyBags"
	CategoryDecorations   = "decorations"
	CategoryBalloons      = "balloons"
)

// SupplierRef is the slice of a supplier a plan needs to keep. Category
// holds the normalized category key ("venue", "partyBags"), not the display
// name. Price and PriceFrom are carried so plan totals stay computable
// without another supplier fetch.
type SupplierRef struct {
	ID        string  `bson:"id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	Category  string  `bson:"category" json:"category"`
	Price     float64 `bson:"price,omitempty" json:"price,omitempty"`
	PriceFrom float64 `bson:"priceFrom,omitempty" json:"priceFrom,omitempty"`
}

// PlanSlot is one occupied main category in a party plan.
type PlanSlot struct {
	Supplier        SupplierRef  `bson:"supplier" json:"supplier"`
	Package         Package      `bson:"package" json:"package"`
	BookingDate     string       `bson:"bookingDate,omitempty" json:"bookingDate,omitempty"` // canonical YYYY-MM-DD
	BookingTimeSlot Slot         `bson:"bookingTimeSlot,omitempty" json:"bookingTimeSlot,omitempty"`
	Metadata        SlotMetadata `bson:"metadata,omitempty" json:"metadata,omitempty"`
	AddedAt         time.Time    `bson:"addedAt" json:"addedAt"`
}

// SlotMetadata carries category-specific extras attached at commit time.
type SlotMetadata struct {
	// TotalPrice overrides the package price chain for party-bags suppliers
	// when present (zero means unset).
	TotalPrice float64 `bson:"totalPrice,omitempty" json:"totalPrice,omitempty"`
}

// PlanAddon is an add-on held by the plan, either attached to an occupied
// category slot or standalone.
type PlanAddon struct {
	Addon      Addon     `bson:"addon" json:"addon"`
	AttachedTo string    `bson:"attachedTo,omitempty" json:"attachedTo,omitempty"` // category key; empty = standalone
	AddedAt    time.Time `bson:"addedAt" json:"addedAt"`
}

// PartyDetails is the caller's event context; the booking pipeline falls
// back to it when no explicit date or slot is chosen.
type PartyDetails struct {
	Date       string `bson:"date,omitempty" json:"date,omitempty"`
	TimeSlot   Slot   `bson:"timeSlot,omitempty" json:"timeSlot,omitempty"`
	Time       string `bson:"time,omitempty" json:"time,omitempty"` // legacy free text, e.g. "2pm onwards"
	GuestCount int    `bson:"guestCount,omitempty" json:"guestCount,omitempty"`
	Theme      string `bson:"theme,omitempty" json:"theme,omitempty"`
	Location   string `bson:"location,omitempty" json:"location,omitempty"`
}

// PartyPlan is the caller's in-progress cart: at most one supplier per
// category key, plus an ordered collection of add-ons.
type PartyPlan struct {
	ID        string              `bson:"id" json:"id"`
	OwnerID   string              `bson:"ownerId" json:"ownerId"` // session or account ID
	Slots     map[string]PlanSlot `bson:"slots" json:"slots"`     // keyed by category key
	Addons    []PlanAddon         `bson:"addons,omitempty" json:"addons,omitempty"`
	Details   PartyDetails        `bson:"details,omitempty" json:"details,omitempty"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// NewPartyPlan returns an empty plan for the given owner.
func NewPartyPlan(id, ownerID string) *PartyPlan {
	now := time.Now()
	return &PartyPlan{
		ID:        id,
		OwnerID:   ownerID,
		Slots:     make(map[string]PlanSlot),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Occupant returns the current occupant of a category key, if any.
func (p *PartyPlan) Occupant(categoryKey string) (PlanSlot, bool) {
	slot, ok := p.Slots[categoryKey]
	return slot, ok
}

// Occupy places slot into categoryKey, replacing any existing occupant.
// Add-ons attached to the outgoing occupant are dropped with it, so
// re-committing the same selection overwrites rather than accumulates.
// The replaced occupant's supplier name is returned so callers can report
// what was swapped out.
func (p *PartyPlan) Occupy(categoryKey string, slot PlanSlot) (replaced string) {
	if p.Slots == nil {
		p.Slots = make(map[string]PlanSlot)
	}
	if existing, ok := p.Slots[categoryKey]; ok {
		replaced = existing.Supplier.Name
		kept := p.Addons[:0]
		for _, a := range p.Addons {
			if a.AttachedTo != categoryKey {
				kept = append(kept, a)
			}
		}
		p.Addons = kept
	}
	p.Slots[categoryKey] = slot
	p.UpdatedAt = time.Now()
	return replaced
}

// AttachAddon appends an add-on. Add-ons have no occupancy constraint.
func (p *PartyPlan) AttachAddon(addon PlanAddon) {
	p.Addons = append(p.Addons, addon)
	p.UpdatedAt = time.Now()
}

// Remove clears a category slot along with any add-ons attached to it.
func (p *PartyPlan) Remove(categoryKey string) bool {
	if _, ok := p.Slots[categoryKey]; !ok {
		return false
	}
	delete(p.Slots, categoryKey)
	kept := p.Addons[:0]
	for _, a := range p.Addons {
		if a.AttachedTo != categoryKey {
			kept = append(kept, a)
		}
	}
	p.Addons = kept
	p.UpdatedAt = time.Now()
	return true
}

// RemoveAddon removes the first add-on with the given id.
func (p *PartyPlan) RemoveAddon(addonID string) bool {
	for i, a := range p.Addons {
		if a.Addon.ID == addonID {
			p.Addons = append(p.Addons[:i], p.Addons[i+1:]...)
			p.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// AddonsFor returns the add-ons attached to a category key.
func (p *PartyPlan) AddonsFor(categoryKey string) []PlanAddon {
	var out []PlanAddon
	for _, a := range p.Addons {
		if a.AttachedTo == categoryKey {
			out = append(out, a)
		}
	}
	return out
}

// IsEmpty reports whether the plan holds nothing at all.
func (p *PartyPlan) IsEmpty() bool {
	return len(p.Slots) == 0 && len(p.Addons) == 0
}

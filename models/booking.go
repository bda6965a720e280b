package models

// CallerState tags the caller's identity/state for the booking pipeline.
type CallerState string

const (
	CallerAnonymous    CallerState = "anonymous"
	CallerHasLocalPlan CallerState = "has-localplan"
	CallerHasAccount   CallerState = "has-account"
	CallerConflict     CallerState = "conflict"
)

// EnrichedPackage is the materialized package record a commit writes into
// the plan: the chosen package with the resolved date, slot and add-on
// totals embedded. The supplier price fields ride along so the stored
// SupplierRef keeps the full display-price fallback chain computable.
type EnrichedPackage struct {
	Package           Package      `json:"package"`
	SupplierID        string       `json:"supplierId"`
	SupplierName      string       `json:"supplierName"`
	CategoryKey       string       `json:"categoryKey"`
	SupplierPrice     float64      `json:"supplierPrice,omitempty"`
	SupplierPriceFrom float64      `json:"supplierPriceFrom,omitempty"`
	BookingDate       string       `json:"bookingDate,omitempty"`
	BookingTimeSlot   Slot         `json:"bookingTimeSlot,omitempty"`
	Metadata          SlotMetadata `json:"metadata,omitempty"`
	Addons            []Addon      `json:"addons,omitempty"`
	AddonTotal        float64      `json:"addonTotal"`
	TotalPrice        float64      `json:"totalPrice"`
}

// Toast is the one-shot last-action payload consumed on the next page load.
type Toast struct {
	Kind    string `json:"kind"` // "success" or "error"
	Message string `json:"message"`
}

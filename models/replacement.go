package models

// ReplacementContext tracks an in-progress "swap this supplier" flow across
// page navigation. It lives in the session-scoped store, is created when a
// caller enters a supplier page with a replace origin marker, and is
// consumed (and cleared) when control returns to the plan page.
type ReplacementContext struct {
	IsReplacement    bool         `json:"isReplacement"`
	ReturnURL        string       `json:"returnUrl,omitempty"`
	CurrentSupplier  *SupplierRef `json:"currentSupplier,omitempty"`
	SelectedSupplier *SupplierRef `json:"selectedSupplier,omitempty"`
	SelectedPackage  *Package     `json:"selectedPackage,omitempty"`
	ReadyForBooking  bool         `json:"readyForBooking"`
}

// Authorizes reports whether this context is a valid swap authorization for
// replacing the occupant of categoryKey with the given supplier.
func (rc *ReplacementContext) Authorizes(categoryKey string, supplierID string) bool {
	if rc == nil || !rc.IsReplacement {
		return false
	}
	if rc.CurrentSupplier == nil || rc.CurrentSupplier.Category != categoryKey {
		return false
	}
	return rc.SelectedSupplier == nil || rc.SelectedSupplier.ID == supplierID
}

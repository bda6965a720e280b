package booking

import "festivo/models"

// Decision is the closed set of outcomes the booking pipeline can produce.
// Call sites switch over the concrete variants exhaustively instead of
// inspecting optional flags.
type Decision interface {
	decision()
}

// NeedDate: no event date is chosen anywhere; the caller must pick one.
type NeedDate struct{}

// NeedSlot: the date is bookable in more than one slot and none resolved.
type NeedSlot struct {
	AvailableSlots []models.Slot `json:"availableSlots"`
}

// Unavailable: the requested date (and slot, when resolved) is not bookable.
type Unavailable struct {
	Date           string        `json:"date"`
	Slot           models.Slot   `json:"slot,omitempty"`
	AvailableSlots []models.Slot `json:"availableSlots"`
}

// NeedEnquiryAck: responses are pending on the plan; the caller must
// acknowledge before mutating it further.
type NeedEnquiryAck struct {
	PendingCount int `json:"pendingCount"`
}

// NeedAddonChoice: the package requires an add-on selection first.
type NeedAddonChoice struct {
	Addons []models.Addon `json:"addons"`
}

// CategoryOccupied: the target category is already held by another supplier
// and no replacement was authorized.
type CategoryOccupied struct {
	OccupantName string `json:"occupantName"`
}

// BuildNewPlan: an anonymous caller with a date in hand is routed to the
// build-a-plan-from-scratch flow, outside this engine's commit path.
type BuildNewPlan struct{}

// ReadyToCommit: every check passed; Package carries the resolved date,
// slot and add-on totals.
type ReadyToCommit struct {
	Package models.EnrichedPackage `json:"package"`
}

// Failed: malformed input that can never commit (missing supplier or
// package). Terminal.
type Failed struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (NeedDate) decision()         {}
func (NeedSlot) decision()         {}
func (Unavailable) decision()      {}
func (NeedEnquiryAck) decision()   {}
func (NeedAddonChoice) decision()  {}
func (CategoryOccupied) decision() {}
func (BuildNewPlan) decision()     {}
func (ReadyToCommit) decision()    {}
func (Failed) decision()           {}

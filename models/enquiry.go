package models

import "time"

// Enquiry statuses.
const (
	EnquiryStatusPending  = "pending"
	EnquiryStatusAccepted = "accepted"
	EnquiryStatusDeclined = "declined"
	EnquiryStatusExpired  = "expired"
)

// Enquiry is an outbound request to a supplier, tracked separately from plan
// occupancy. While any enquiry is pending, certain plan mutations are
// soft-gated.
type Enquiry struct {
	ID           string     `bson:"id" json:"id"`
	PlanID       string     `bson:"planId" json:"planId"`
	SupplierID   string     `bson:"supplierId" json:"supplierId"`
	SupplierName string     `bson:"supplierName" json:"supplierName"`
	PackageID    string     `bson:"packageId,omitempty" json:"packageId,omitempty"`
	Reason       string     `bson:"reason,omitempty" json:"reason,omitempty"`
	Status       string     `bson:"status" json:"status"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	RespondedAt  *time.Time `bson:"respondedAt,omitempty" json:"respondedAt,omitempty"`
}

// AwaitingResult summarizes the pending enquiries of a plan.
type AwaitingResult struct {
	IsAwaiting   bool      `json:"isAwaiting"`
	PendingCount int       `json:"pendingCount"`
	Enquiries    []Enquiry `json:"enquiries,omitempty"`
}

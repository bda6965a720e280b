package booking

import (
	"context"

	supplierRepo "festivo/database/repository/supplier"
	"festivo/models"
	"festivo/services/enquiry"
	"festivo/services/plan"
)

// DecideRequest is what an "add to plan" action sends the orchestrator.
type DecideRequest struct {
	SupplierID string `json:"supplierId" binding:"required"`
	PackageID  string `json:"packageId,omitempty"`
	Date       string `json:"date,omitempty"`
	Slot       string `json:"slot,omitempty"`

	EnquiryAcked bool `json:"enquiryAcked,omitempty"`

	// SelectedAddonIDs nil means the caller was not asked yet; an empty
	// list means they explicitly chose no add-ons.
	SelectedAddonIDs []string `json:"selectedAddonIds,omitempty"`
}

// CommitResult reports the outcome of a committed decision along with
// routing hints for the caller.
type CommitResult struct {
	Success   bool    `json:"success"`
	Message   string  `json:"message"`
	RouteTo   string  `json:"routeTo,omitempty"`
	Replaced  string  `json:"replaced,omitempty"`
	PlanTotal float64 `json:"planTotal"`
}

// BookingService is the decision/commit orchestrator: it assembles the
// pipeline input from collaborators, runs Decide, and applies ReadyToCommit
// outcomes to the plan.
type BookingService interface {
	PrepareDecision(ctx context.Context, sessionID string, state models.CallerState, req DecideRequest) (Decision, error)
	Commit(ctx context.Context, sessionID string, ready ReadyToCommit) (*CommitResult, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	SupplierRepo supplierRepo.SupplierRepository
	PlanSvc      plan.PlanService
	EnquirySvc   enquiry.EnquiryService
	Replacements ReplacementStore
	Sessions     SessionStore
	Guard        CommitGuard
}

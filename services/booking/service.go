package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	supplierRepo "festivo/database/repository/supplier"
	"festivo/models"
	"festivo/utils"

	"go.uber.org/zap"
)

// PrepareDecision gathers the caller's plan, party details, pending
// enquiries and replacement context, then runs the pure pipeline. A missing
// supplier is a terminal Failed decision, not an error.
func (s *DefaultBookingService) PrepareDecision(ctx context.Context, sessionID string, state models.CallerState, req DecideRequest) (Decision, error) {
	supplier, err := s.SupplierRepo.GetByID(ctx, req.SupplierID)
	if err != nil {
		if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
			return Failed{Code: "missingSupplier", Message: "supplier could not be loaded"}, nil
		}
		return nil, NewCollaboratorError(fmt.Sprintf("supplier lookup failed: %v", err))
	}

	pkg := pickPackage(supplier, req.PackageID)

	p, err := s.PlanSvc.Get(ctx, sessionID)
	if err != nil {
		return nil, NewCollaboratorError(fmt.Sprintf("plan load failed: %v", err))
	}

	pending := 0
	if !p.IsEmpty() {
		if pending, err = s.EnquirySvc.PendingCount(ctx, p.ID); err != nil {
			return nil, NewCollaboratorError(fmt.Sprintf("enquiry lookup failed: %v", err))
		}
	}

	replacement, err := s.Replacements.Get(ctx, sessionID)
	if err != nil {
		return nil, NewCollaboratorError(fmt.Sprintf("replacement context read failed: %v", err))
	}

	details := p.Details
	input := DecideInput{
		Now:              time.Now(),
		Supplier:         supplier,
		Package:          pkg,
		Date:             req.Date,
		Slot:             parseSlot(req.Slot),
		CallerState:      state,
		Plan:             p,
		Details:          &details,
		PendingEnquiries: pending,
		EnquiryAcked:     req.EnquiryAcked,
		Replacement:      replacement,
		SelectedAddons:   resolveAddons(supplier, req.SelectedAddonIDs),
	}

	decision := Decide(input)
	utils.GetLogger().Debug("booking: decision",
		zap.String("sessionId", sessionID),
		zap.String("supplier", supplier.Name),
		zap.String("decision", fmt.Sprintf("%T", decision)))
	return decision, nil
}

// pickPackage finds the requested package, defaulting to the supplier's
// first one. Missing packages surface later as a Failed decision.
func pickPackage(supplier *models.Supplier, packageID string) *models.Package {
	if packageID == "" {
		if len(supplier.Packages) == 0 {
			return nil
		}
		return &supplier.Packages[0]
	}
	for i := range supplier.Packages {
		if supplier.Packages[i].ID == packageID {
			return &supplier.Packages[i]
		}
	}
	return nil
}

func parseSlot(raw string) *models.Slot {
	s := models.Slot(raw)
	if !models.ValidSlot(s) {
		return nil
	}
	return &s
}

// resolveAddons maps selected add-on ids back onto the supplier's add-on
// records, preserving the nil/empty distinction.
func resolveAddons(supplier *models.Supplier, ids []string) []models.Addon {
	if ids == nil {
		return nil
	}
	selected := make([]models.Addon, 0, len(ids))
	for _, id := range ids {
		for _, a := range supplier.Addons {
			if a.ID == id {
				selected = append(selected, a)
				break
			}
		}
	}
	return selected
}

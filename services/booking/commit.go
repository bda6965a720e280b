package booking

import (
	"context"
	"fmt"
	"time"

	"festivo/models"
	"festivo/services/plan"
	"festivo/services/pricing"
	"festivo/utils"

	"go.uber.org/zap"
)

// Commit applies a ReadyToCommit decision to the caller's plan. It never
// partially applies: the category occupancy, attached add-ons and pricing
// land in one persisted write, or none do. Re-entrant commits on the same
// session are rejected while one is outstanding.
func (s *DefaultBookingService) Commit(ctx context.Context, sessionID string, ready ReadyToCommit) (*CommitResult, error) {
	logger := utils.GetLogger()
	enriched := ready.Package

	if enriched.SupplierID == "" || enriched.Package.ID == "" {
		return nil, NewValidationError("cannot commit a malformed package")
	}

	acquired, err := s.Guard.Acquire(ctx, sessionID)
	if err != nil {
		return nil, NewCollaboratorError(fmt.Sprintf("commit lock failed: %v", err))
	}
	if !acquired {
		return nil, NewCommitInProgressError()
	}
	defer func() {
		if err := s.Guard.Release(ctx, sessionID); err != nil {
			logger.Warn("booking: failed to release commit lock",
				zap.String("sessionId", sessionID), zap.Error(err))
		}
	}()

	var (
		replaced string
		message  string
	)
	if plan.IsMainCategory(enriched.CategoryKey) {
		replaced, err = s.commitMainSlot(ctx, sessionID, enriched)
		if replaced != "" {
			message = fmt.Sprintf("%s replaced %s in your plan", enriched.SupplierName, replaced)
		} else {
			message = fmt.Sprintf("%s added to your plan", enriched.SupplierName)
		}
	} else {
		err = s.commitAddon(ctx, sessionID, enriched)
		message = fmt.Sprintf("%s added to your plan as an extra", enriched.SupplierName)
	}
	if err != nil {
		return nil, NewCollaboratorError(fmt.Sprintf("plan update failed: %v", err))
	}

	p, err := s.PlanSvc.Get(ctx, sessionID)
	if err != nil {
		return nil, NewCollaboratorError(fmt.Sprintf("plan reload failed: %v", err))
	}

	// Keep supplier communication consistent with the plan: while earlier
	// enquiries are pending, the new selection gets its own enquiry.
	if pending, countErr := s.EnquirySvc.PendingCount(ctx, p.ID); countErr == nil && pending > 0 {
		e := &models.Enquiry{
			PlanID:       p.ID,
			SupplierID:   enriched.SupplierID,
			SupplierName: enriched.SupplierName,
			PackageID:    enriched.Package.ID,
			Reason:       "plan updated while awaiting responses",
		}
		if sendErr := s.EnquirySvc.Send(ctx, e); sendErr != nil {
			logger.Warn("booking: enquiry dispatch after commit failed",
				zap.String("planId", p.ID), zap.Error(sendErr))
		}
	}

	routeTo := "/plan"
	if rc, rcErr := s.Replacements.Get(ctx, sessionID); rcErr == nil && rc != nil && rc.IsReplacement {
		if rc.ReturnURL != "" {
			routeTo = rc.ReturnURL
		}
		// The swap is done; a stale context must not leak into later visits.
		if clearErr := s.Replacements.Clear(ctx, sessionID); clearErr != nil {
			logger.Warn("booking: failed to clear replacement context",
				zap.String("sessionId", sessionID), zap.Error(clearErr))
		}
	}

	if toastErr := s.Sessions.SetToast(ctx, sessionID, models.Toast{Kind: "success", Message: message}); toastErr != nil {
		logger.Warn("booking: failed to store toast", zap.Error(toastErr))
	}

	logger.Info("booking: committed",
		zap.String("sessionId", sessionID),
		zap.String("category", enriched.CategoryKey),
		zap.String("supplier", enriched.SupplierName))

	return &CommitResult{
		Success:   true,
		Message:   message,
		RouteTo:   routeTo,
		Replaced:  replaced,
		PlanTotal: pricing.PlanTotal(p),
	}, nil
}

// commitMainSlot occupies the category slot, attaching selected add-ons in
// the same write.
func (s *DefaultBookingService) commitMainSlot(ctx context.Context, sessionID string, enriched models.EnrichedPackage) (string, error) {
	now := time.Now()
	slot := models.PlanSlot{
		Supplier: models.SupplierRef{
			ID:        enriched.SupplierID,
			Name:      enriched.SupplierName,
			Category:  enriched.CategoryKey,
			Price:     enriched.SupplierPrice,
			PriceFrom: enriched.SupplierPriceFrom,
		},
		Package:         enriched.Package,
		BookingDate:     enriched.BookingDate,
		BookingTimeSlot: enriched.BookingTimeSlot,
		Metadata:        enriched.Metadata,
		AddedAt:         now,
	}
	addons := make([]models.PlanAddon, 0, len(enriched.Addons))
	for _, a := range enriched.Addons {
		addons = append(addons, models.PlanAddon{Addon: a, AddedAt: now})
	}
	return s.PlanSvc.Occupy(ctx, sessionID, enriched.CategoryKey, slot, addons)
}

// commitAddon records a supplier from an add-on category as a standalone
// plan add-on priced at the enriched total.
func (s *DefaultBookingService) commitAddon(ctx context.Context, sessionID string, enriched models.EnrichedPackage) error {
	return s.PlanSvc.AttachAddon(ctx, sessionID, models.PlanAddon{
		Addon: models.Addon{
			ID:         enriched.Package.ID,
			Name:       fmt.Sprintf("%s - %s", enriched.SupplierName, enriched.Package.Name),
			Price:      enriched.TotalPrice,
			SupplierID: enriched.SupplierID,
		},
		AddedAt: time.Now(),
	})
}

package plan

import (
	"context"
	"fmt"

	"festivo/models"
	"festivo/services/pricing"
	"festivo/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Get loads the caller's plan, creating an empty one on first visit.
func (s *DefaultPlanService) Get(ctx context.Context, ownerID string) (*models.PartyPlan, error) {
	existing, err := s.Repo.Load(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load party plan: %w", err)
	}
	if existing != nil {
		return existing, nil
	}
	return models.NewPartyPlan(uuid.New().String(), ownerID), nil
}

// Occupy places a supplier into a category slot, replacing any occupant,
// and attaches the given add-ons to that slot. The mutation is applied in
// memory first and persisted once; a failed save leaves the stored plan
// untouched.
func (s *DefaultPlanService) Occupy(ctx context.Context, ownerID, categoryKey string, slot models.PlanSlot, addons []models.PlanAddon) (string, error) {
	logger := utils.GetLogger()

	p, err := s.Get(ctx, ownerID)
	if err != nil {
		return "", err
	}
	replaced := p.Occupy(categoryKey, slot)
	for _, a := range addons {
		a.AttachedTo = categoryKey
		p.AttachAddon(a)
	}
	if err := s.Repo.Save(ctx, p); err != nil {
		return "", fmt.Errorf("failed to persist party plan: %w", err)
	}

	logger.Info("plan: category occupied",
		zap.String("ownerId", ownerID),
		zap.String("category", categoryKey),
		zap.String("supplier", slot.Supplier.Name),
		zap.String("replaced", replaced))
	return replaced, nil
}

// AttachAddon appends an add-on to the plan.
func (s *DefaultPlanService) AttachAddon(ctx context.Context, ownerID string, addon models.PlanAddon) error {
	p, err := s.Get(ctx, ownerID)
	if err != nil {
		return err
	}
	p.AttachAddon(addon)
	if err := s.Repo.Save(ctx, p); err != nil {
		return fmt.Errorf("failed to persist party plan: %w", err)
	}
	return nil
}

// Remove clears a category slot and its attached add-ons.
func (s *DefaultPlanService) Remove(ctx context.Context, ownerID, categoryKey string) error {
	p, err := s.Get(ctx, ownerID)
	if err != nil {
		return err
	}
	if !p.Remove(categoryKey) {
		return nil
	}
	if err := s.Repo.Save(ctx, p); err != nil {
		return fmt.Errorf("failed to persist party plan: %w", err)
	}
	return nil
}

// RemoveAddon removes one add-on by id.
func (s *DefaultPlanService) RemoveAddon(ctx context.Context, ownerID, addonID string) error {
	p, err := s.Get(ctx, ownerID)
	if err != nil {
		return err
	}
	if !p.RemoveAddon(addonID) {
		return nil
	}
	if err := s.Repo.Save(ctx, p); err != nil {
		return fmt.Errorf("failed to persist party plan: %w", err)
	}
	return nil
}

// Clear deletes the stored plan entirely.
func (s *DefaultPlanService) Clear(ctx context.Context, ownerID string) error {
	return s.Repo.Delete(ctx, ownerID)
}

// Total delegates to the pricing aggregator.
func (s *DefaultPlanService) Total(ctx context.Context, ownerID string) (float64, error) {
	p, err := s.Get(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	return pricing.PlanTotal(p), nil
}

// SavePartyDetails stores the caller's event context.
func (s *DefaultPlanService) SavePartyDetails(ctx context.Context, ownerID string, details models.PartyDetails) error {
	return s.Repo.SavePartyDetails(ctx, ownerID, details)
}

// GetPartyDetails loads the caller's event context, if any.
func (s *DefaultPlanService) GetPartyDetails(ctx context.Context, ownerID string) (*models.PartyDetails, error) {
	return s.Repo.LoadPartyDetails(ctx, ownerID)
}

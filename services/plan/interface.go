package plan

import (
	"context"

	planRepo "festivo/database/repository/plan"
	"festivo/models"
)

// PlanService manages the party-plan aggregate: loading it, mutating it
// through the one-occupant-per-category invariant, and persisting every
// successful mutation.
type PlanService interface {
	Get(ctx context.Context, ownerID string) (*models.PartyPlan, error)
	Occupy(ctx context.Context, ownerID, categoryKey string, slot models.PlanSlot, addons []models.PlanAddon) (replaced string, err error)
	AttachAddon(ctx context.Context, ownerID string, addon models.PlanAddon) error
	Remove(ctx context.Context, ownerID, categoryKey string) error
	RemoveAddon(ctx context.Context, ownerID, addonID string) error
	Clear(ctx context.Context, ownerID string) error
	Total(ctx context.Context, ownerID string) (float64, error)
	SavePartyDetails(ctx context.Context, ownerID string, details models.PartyDetails) error
	GetPartyDetails(ctx context.Context, ownerID string) (*models.PartyDetails, error)
}

// DefaultPlanService implements PlanService over a PlanRepository.
type DefaultPlanService struct {
	Repo planRepo.PlanRepository
}

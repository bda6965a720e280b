package planRepo

import (
	"context"

	"festivo/models"
)

// PlanRepository persists party plans and party details keyed by the owning
// session or account. Load returning (nil, nil) means no plan exists yet.
type PlanRepository interface {
	Load(ctx context.Context, ownerID string) (*models.PartyPlan, error)
	Save(ctx context.Context, plan *models.PartyPlan) error
	Delete(ctx context.Context, ownerID string) error
	SavePartyDetails(ctx context.Context, ownerID string, details models.PartyDetails) error
	LoadPartyDetails(ctx context.Context, ownerID string) (*models.PartyDetails, error)
}

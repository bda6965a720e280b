package supplierRepo

import (
	"context"

	"festivo/models"
)

// SupplierRepository is the narrow read surface the booking core needs.
// Catalogue browsing and business-owner content management live elsewhere.
type SupplierRepository interface {
	GetByID(ctx context.Context, id string) (*models.Supplier, error)
	GetByCategory(ctx context.Context, category string) ([]models.Supplier, error)
	Upsert(ctx context.Context, supplier *models.Supplier) error
}

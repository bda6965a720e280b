package enquiryRepo

import (
	"context"
	"time"

	"festivo/models"
)

// EnquiryRepository stores outbound supplier enquiries.
type EnquiryRepository interface {
	Insert(ctx context.Context, enquiry *models.Enquiry) error
	ListByPlan(ctx context.Context, planID string) ([]models.Enquiry, error)
	CountPending(ctx context.Context, planID string) (int, error)
	UpdateStatus(ctx context.Context, enquiryID, status string) error
	ExpireOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

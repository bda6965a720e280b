package enquiry

import (
	"context"

	enquiryRepo "festivo/database/repository/enquiry"
	"festivo/models"

	"github.com/hibiken/asynq"
)

// EnquiryService records outbound supplier enquiries and reports which
// plans are still waiting on responses.
type EnquiryService interface {
	Send(ctx context.Context, enquiry *models.Enquiry) error
	AwaitingResponses(ctx context.Context, planID string) (models.AwaitingResult, error)
	PendingCount(ctx context.Context, planID string) (int, error)
	Respond(ctx context.Context, enquiryID, status string) error
}

// DefaultEnquiryService implements EnquiryService. Delivery to the supplier
// happens off the request path through the asynq queue.
type DefaultEnquiryService struct {
	Repo  enquiryRepo.EnquiryRepository
	Queue *asynq.Client
}

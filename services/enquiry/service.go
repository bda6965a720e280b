package enquiry

import (
	"context"
	"encoding/json"
	"fmt"

	"festivo/models"
	"festivo/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeEnquiryDispatch is the asynq task type for delivering an enquiry to
// the supplier.
const TypeEnquiryDispatch = "enquiry:dispatch"

// DispatchPayload is the queued task body.
type DispatchPayload struct {
	EnquiryID    string `json:"enquiryId"`
	PlanID       string `json:"planId"`
	SupplierID   string `json:"supplierId"`
	SupplierName string `json:"supplierName"`
	Reason       string `json:"reason,omitempty"`
}

// NewDispatchTask builds the queue task for one enquiry.
func NewDispatchTask(e *models.Enquiry) (*asynq.Task, error) {
	payload, err := json.Marshal(DispatchPayload{
		EnquiryID:    e.ID,
		PlanID:       e.PlanID,
		SupplierID:   e.SupplierID,
		SupplierName: e.SupplierName,
		Reason:       e.Reason,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal enquiry payload: %w", err)
	}
	return asynq.NewTask(TypeEnquiryDispatch, payload), nil
}

// Send records the enquiry as pending and queues its delivery. The record
// is written first; a delivery task we fail to queue is surfaced as an
// error so the caller can retry.
func (s *DefaultEnquiryService) Send(ctx context.Context, e *models.Enquiry) error {
	logger := utils.GetLogger()

	if e.PlanID == "" || e.SupplierID == "" {
		return fmt.Errorf("enquiry requires a plan and a supplier")
	}
	if err := s.Repo.Insert(ctx, e); err != nil {
		return fmt.Errorf("failed to record enquiry: %w", err)
	}

	task, err := NewDispatchTask(e)
	if err != nil {
		return err
	}
	if _, err := s.Queue.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to queue enquiry dispatch: %w", err)
	}

	logger.Info("enquiry: queued for dispatch",
		zap.String("enquiryId", e.ID),
		zap.String("supplier", e.SupplierName))
	return nil
}

// AwaitingResponses summarizes the plan's outstanding enquiries.
func (s *DefaultEnquiryService) AwaitingResponses(ctx context.Context, planID string) (models.AwaitingResult, error) {
	enquiries, err := s.Repo.ListByPlan(ctx, planID)
	if err != nil {
		return models.AwaitingResult{}, err
	}
	result := models.AwaitingResult{Enquiries: enquiries}
	for _, e := range enquiries {
		if e.Status == models.EnquiryStatusPending {
			result.PendingCount++
		}
	}
	result.IsAwaiting = result.PendingCount > 0
	return result, nil
}

// PendingCount returns how many enquiries on the plan are still pending.
func (s *DefaultEnquiryService) PendingCount(ctx context.Context, planID string) (int, error) {
	return s.Repo.CountPending(ctx, planID)
}

// Respond records the supplier's answer to an enquiry.
func (s *DefaultEnquiryService) Respond(ctx context.Context, enquiryID, status string) error {
	switch status {
	case models.EnquiryStatusAccepted, models.EnquiryStatusDeclined:
	default:
		return fmt.Errorf("invalid enquiry status %q", status)
	}
	if err := s.Repo.UpdateStatus(ctx, enquiryID, status); err != nil {
		return fmt.Errorf("failed to update enquiry %s: %w", enquiryID, err)
	}
	return nil
}

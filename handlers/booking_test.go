package handlers

import (
	"testing"

	"festivo/models"
	"festivo/services/booking"

	"github.com/stretchr/testify/assert"
)

// Every decision variant must serialize with a distinct action tag; the
// frontend switches on it.
func TestDecisionResponseActions(t *testing.T) {
	tests := []struct {
		decision booking.Decision
		action   string
	}{
		{booking.NeedDate{}, "needDate"},
		{booking.NeedSlot{AvailableSlots: models.AllSlots}, "needSlot"},
		{booking.Unavailable{Date: "2025-06-14"}, "unavailable"},
		{booking.NeedEnquiryAck{PendingCount: 2}, "needEnquiryAck"},
		{booking.NeedAddonChoice{}, "needAddonChoice"},
		{booking.CategoryOccupied{OccupantName: "Supplier A"}, "categoryOccupied"},
		{booking.BuildNewPlan{}, "buildNewPlan"},
		{booking.ReadyToCommit{}, "readyToCommit"},
		{booking.Failed{Code: "missingSupplier"}, "failed"},
	}

	seen := make(map[string]bool)
	for _, tc := range tests {
		resp := decisionResponse(tc.decision)
		assert.Equal(t, tc.action, resp["action"], "%T", tc.decision)
		assert.False(t, seen[tc.action], "action tags must be unique")
		seen[tc.action] = true
	}
}

func TestDecisionResponsePayloads(t *testing.T) {
	resp := decisionResponse(booking.CategoryOccupied{OccupantName: "Supplier A"})
	assert.Equal(t, "Supplier A", resp["occupantName"])

	resp = decisionResponse(booking.BuildNewPlan{})
	assert.Equal(t, "/plan/new", resp["routeTo"])

	resp = decisionResponse(booking.NeedEnquiryAck{PendingCount: 3})
	assert.Equal(t, 3, resp["pendingCount"])
}

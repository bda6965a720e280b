package handlers

import (
	"errors"
	"net/http"

	"festivo/middleware"
	"festivo/models"
	"festivo/services/booking"
	"festivo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the decision/commit pipeline.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler returns a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// DecideHandler runs the validation pipeline for an "add to plan" action
// and returns the single decision the caller must act on.
func (h *BookingHandler) DecideHandler(c *gin.Context) {
	var req booking.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	ownerID := middleware.OwnerID(c)
	decision, err := h.Svc.PrepareDecision(c.Request.Context(), ownerID, middleware.CallerState(c), req)
	if err != nil {
		h.Logger.Error("decide failed", zap.String("supplierId", req.SupplierID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Could not evaluate booking", "Please try again.")
		return
	}

	c.JSON(http.StatusOK, decisionResponse(decision))
}

// CommitHandler applies a previously returned ReadyToCommit package.
func (h *BookingHandler) CommitHandler(c *gin.Context) {
	var input struct {
		Package models.EnrichedPackage `json:"package" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	ownerID := middleware.OwnerID(c)
	result, err := h.Svc.Commit(c.Request.Context(), ownerID, booking.ReadyToCommit{Package: input.Package})
	if err != nil {
		var bookingErr *booking.BookingError
		if errors.As(err, &bookingErr) {
			switch bookingErr.Code {
			case "commitInProgress":
				utils.JSONError(c, http.StatusConflict, "Plan update already in progress", "Please wait and try again.")
				return
			case "validationError":
				utils.JSONError(c, http.StatusBadRequest, "Cannot add this to your plan", bookingErr.Message)
				return
			}
		}
		h.Logger.Error("commit failed", zap.String("ownerId", ownerID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Could not update your plan", "Please try again.")
		return
	}

	c.JSON(http.StatusOK, result)
}

// decisionResponse serializes a Decision for transport. The switch is
// exhaustive over the closed variant set; a new variant that reaches the
// default arm is a bug.
func decisionResponse(d booking.Decision) gin.H {
	switch v := d.(type) {
	case booking.NeedDate:
		return gin.H{"action": "needDate"}
	case booking.NeedSlot:
		return gin.H{"action": "needSlot", "availableSlots": v.AvailableSlots}
	case booking.Unavailable:
		return gin.H{"action": "unavailable", "date": v.Date, "slot": v.Slot, "availableSlots": v.AvailableSlots}
	case booking.NeedEnquiryAck:
		return gin.H{"action": "needEnquiryAck", "pendingCount": v.PendingCount}
	case booking.NeedAddonChoice:
		return gin.H{"action": "needAddonChoice", "addons": v.Addons}
	case booking.CategoryOccupied:
		return gin.H{"action": "categoryOccupied", "occupantName": v.OccupantName}
	case booking.BuildNewPlan:
		return gin.H{"action": "buildNewPlan", "routeTo": "/plan/new"}
	case booking.ReadyToCommit:
		return gin.H{"action": "readyToCommit", "package": v.Package}
	case booking.Failed:
		return gin.H{"action": "failed", "code": v.Code, "message": v.Message}
	default:
		return gin.H{"action": "failed", "code": "unknownDecision", "message": "unhandled decision variant"}
	}
}

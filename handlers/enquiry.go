package handlers

import (
	"net/http"

	"festivo/middleware"
	"festivo/models"
	"festivo/services/enquiry"
	"festivo/services/plan"
	"festivo/utils"

	"github.com/gin-gonic/gin"
)

// EnquiryHandler serves enquiry state for the caller's plan.
type EnquiryHandler struct {
	Svc     enquiry.EnquiryService
	PlanSvc plan.PlanService
}

// NewEnquiryHandler returns an EnquiryHandler.
func NewEnquiryHandler(svc enquiry.EnquiryService, planSvc plan.PlanService) *EnquiryHandler {
	return &EnquiryHandler{Svc: svc, PlanSvc: planSvc}
}

// AwaitingHandler reports whether the caller's plan is waiting on supplier
// responses.
func (h *EnquiryHandler) AwaitingHandler(c *gin.Context) {
	p, err := h.PlanSvc.Get(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load plan", err.Error())
		return
	}
	result, err := h.Svc.AwaitingResponses(c.Request.Context(), p.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load enquiries", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// SendHandler records a manual enquiry to a supplier on the caller's plan.
func (h *EnquiryHandler) SendHandler(c *gin.Context) {
	var input struct {
		SupplierID   string `json:"supplierId" binding:"required"`
		SupplierName string `json:"supplierName"`
		PackageID    string `json:"packageId,omitempty"`
		Reason       string `json:"reason,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	p, err := h.PlanSvc.Get(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load plan", err.Error())
		return
	}

	e := &models.Enquiry{
		PlanID:       p.ID,
		SupplierID:   input.SupplierID,
		SupplierName: input.SupplierName,
		PackageID:    input.PackageID,
		Reason:       input.Reason,
	}
	if err := h.Svc.Send(c.Request.Context(), e); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to send enquiry", err.Error())
		return
	}
	c.JSON(http.StatusOK, e)
}

// RespondHandler records a supplier's accept/decline on an enquiry.
func (h *EnquiryHandler) RespondHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if err := h.Svc.Respond(c.Request.Context(), c.Param("id"), input.Status); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to update enquiry", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

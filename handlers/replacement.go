package handlers

import (
	"errors"
	"net/http"

	supplierRepo "festivo/database/repository/supplier"
	"festivo/middleware"
	"festivo/models"
	"festivo/services/booking"
	"festivo/services/plan"
	"festivo/utils"

	"github.com/gin-gonic/gin"
)

// ReplacementHandler manages the session-scoped "swap this supplier" flow.
type ReplacementHandler struct {
	Store        booking.ReplacementStore
	Sessions     booking.SessionStore
	PlanSvc      plan.PlanService
	SupplierRepo supplierRepo.SupplierRepository
}

// NewReplacementHandler returns a ReplacementHandler.
func NewReplacementHandler(store booking.ReplacementStore, sessions booking.SessionStore, planSvc plan.PlanService, repo supplierRepo.SupplierRepository) *ReplacementHandler {
	return &ReplacementHandler{Store: store, Sessions: sessions, PlanSvc: planSvc, SupplierRepo: repo}
}

// EnterHandler starts a replacement flow: the caller left the plan page to
// find a substitute for an occupied category. The current occupant is
// snapshotted so the swap stays valid across navigation.
func (h *ReplacementHandler) EnterHandler(c *gin.Context) {
	var input struct {
		Category  string `json:"category" binding:"required"`
		ReturnURL string `json:"returnUrl,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	key := plan.CategoryKeyFor(input.Category)
	p, err := h.PlanSvc.Get(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load plan", err.Error())
		return
	}
	occupant, ok := p.Occupant(key)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Nothing to replace", "category is not occupied")
		return
	}

	rc := models.ReplacementContext{
		IsReplacement:   true,
		ReturnURL:       input.ReturnURL,
		CurrentSupplier: &occupant.Supplier,
	}
	sessionID := middleware.SessionID(c)
	if err := h.Store.Put(c.Request.Context(), sessionID, rc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to start replacement", err.Error())
		return
	}
	if err := h.Sessions.SetRestoreFlag(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to start replacement", err.Error())
		return
	}
	c.JSON(http.StatusOK, rc)
}

// SelectHandler records the caller's candidate pick while browsing.
func (h *ReplacementHandler) SelectHandler(c *gin.Context) {
	var input struct {
		SupplierID string `json:"supplierId" binding:"required"`
		PackageID  string `json:"packageId,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	sessionID := middleware.SessionID(c)
	rc, err := h.Store.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to read replacement", err.Error())
		return
	}
	if rc == nil || !rc.IsReplacement {
		utils.JSONError(c, http.StatusBadRequest, "No replacement in progress", "")
		return
	}

	supplier, err := h.SupplierRepo.GetByID(c.Request.Context(), input.SupplierID)
	if err != nil {
		if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Supplier not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch supplier", err.Error())
		return
	}

	rc.SelectedSupplier = &models.SupplierRef{
		ID:        supplier.ID,
		Name:      supplier.Name,
		Category:  plan.CategoryKeyFor(supplier.Category),
		Price:     supplier.Price,
		PriceFrom: supplier.PriceFrom,
	}
	rc.SelectedPackage = nil
	for i := range supplier.Packages {
		if supplier.Packages[i].ID == input.PackageID {
			rc.SelectedPackage = &supplier.Packages[i]
			break
		}
	}
	rc.ReadyForBooking = rc.SelectedPackage != nil

	if err := h.Store.Put(c.Request.Context(), sessionID, *rc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update replacement", err.Error())
		return
	}
	c.JSON(http.StatusOK, rc)
}

// GetHandler returns the in-progress replacement context, along with the
// one-shot restore-modal flag for callers returning to the plan page.
func (h *ReplacementHandler) GetHandler(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	rc, err := h.Store.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to read replacement", err.Error())
		return
	}
	restore, err := h.Sessions.PopRestoreFlag(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to read restore flag", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"replacement":  rc,
		"restoreModal": restore,
	})
}

// ConsumeHandler returns the context and clears it; the swap flow is over
// once control is back on the plan page.
func (h *ReplacementHandler) ConsumeHandler(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	rc, err := h.Store.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to read replacement", err.Error())
		return
	}
	if rc != nil {
		if err := h.Store.Clear(c.Request.Context(), sessionID); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to clear replacement", err.Error())
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"replacement": rc})
}

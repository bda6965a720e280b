package handlers

import (
	"net/http"
	"time"

	"festivo/middleware"
	"festivo/models"
	"festivo/services/booking"
	"festivo/services/plan"
	"festivo/services/pricing"
	"festivo/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlanHandler serves the party-plan aggregate.
type PlanHandler struct {
	Svc      plan.PlanService
	Sessions booking.SessionStore
}

// NewPlanHandler returns a PlanHandler.
func NewPlanHandler(svc plan.PlanService, sessions booking.SessionStore) *PlanHandler {
	return &PlanHandler{Svc: svc, Sessions: sessions}
}

// GetPlanHandler returns the caller's plan with its computed total.
func (h *PlanHandler) GetPlanHandler(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load plan", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"plan":  p,
		"total": pricing.PlanTotal(p),
	})
}

// ClearPlanHandler deletes the caller's plan entirely.
func (h *PlanHandler) ClearPlanHandler(c *gin.Context) {
	if err := h.Svc.Clear(c.Request.Context(), middleware.OwnerID(c)); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to clear plan", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RemoveCategoryHandler clears one occupied category slot.
func (h *PlanHandler) RemoveCategoryHandler(c *gin.Context) {
	key := plan.CategoryKeyFor(c.Param("category"))
	if !plan.IsMainCategory(key) {
		utils.JSONError(c, http.StatusBadRequest, "Unknown category", c.Param("category"))
		return
	}
	if err := h.Svc.Remove(c.Request.Context(), middleware.OwnerID(c), key); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update plan", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AttachAddonHandler appends a standalone add-on to the plan.
func (h *PlanHandler) AttachAddonHandler(c *gin.Context) {
	var input struct {
		Addon      models.Addon `json:"addon" binding:"required"`
		AttachedTo string       `json:"attachedTo,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if input.Addon.ID == "" {
		input.Addon.ID = uuid.New().String()
	}
	addon := models.PlanAddon{
		Addon:      input.Addon,
		AttachedTo: input.AttachedTo,
		AddedAt:    time.Now(),
	}
	if err := h.Svc.AttachAddon(c.Request.Context(), middleware.OwnerID(c), addon); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update plan", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RemoveAddonHandler removes one add-on by id.
func (h *PlanHandler) RemoveAddonHandler(c *gin.Context) {
	if err := h.Svc.RemoveAddon(c.Request.Context(), middleware.OwnerID(c), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update plan", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetPartyDetailsHandler returns the caller's event context.
func (h *PlanHandler) GetPartyDetailsHandler(c *gin.Context) {
	details, err := h.Svc.GetPartyDetails(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load party details", err.Error())
		return
	}
	if details == nil {
		details = &models.PartyDetails{}
	}
	c.JSON(http.StatusOK, details)
}

// SavePartyDetailsHandler stores the caller's event context. The date is
// canonicalized here so downstream comparisons never re-parse it.
func (h *PlanHandler) SavePartyDetailsHandler(c *gin.Context) {
	var details models.PartyDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if details.Date != "" {
		if d, ok := utils.ParseFlexibleDate(details.Date); ok {
			details.Date = utils.ToComparableDateString(d)
		} else {
			utils.JSONError(c, http.StatusBadRequest, "Invalid party date", details.Date)
			return
		}
	}
	if err := h.Svc.SavePartyDetails(c.Request.Context(), middleware.OwnerID(c), details); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save party details", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PopToastHandler returns and clears the one-shot last-action toast.
func (h *PlanHandler) PopToastHandler(c *gin.Context) {
	toast, err := h.Sessions.PopToast(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to read toast", err.Error())
		return
	}
	if toast == nil {
		c.JSON(http.StatusNoContent, nil)
		return
	}
	c.JSON(http.StatusOK, toast)
}

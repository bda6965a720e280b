package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	supplierRepo "festivo/database/repository/supplier"
	"festivo/models"
	"festivo/services/availability"
	"festivo/utils"

	"github.com/gin-gonic/gin"
)

// SupplierHandler serves supplier records and their availability calendars.
type SupplierHandler struct {
	Repo supplierRepo.SupplierRepository
}

// NewSupplierHandler returns a SupplierHandler.
func NewSupplierHandler(repo supplierRepo.SupplierRepository) *SupplierHandler {
	return &SupplierHandler{Repo: repo}
}

// GetSupplierByIDHandler returns one supplier record.
func (h *SupplierHandler) GetSupplierByIDHandler(c *gin.Context) {
	supplier, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Supplier not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch supplier", err.Error())
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// GetSuppliersByCategoryHandler lists the suppliers of one display category.
func (h *SupplierHandler) GetSuppliersByCategoryHandler(c *gin.Context) {
	suppliers, err := h.Repo.GetByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch suppliers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": suppliers})
}

// GetAvailabilityHandler returns the supplier's weekly calendar: a status
// and open slots for each day of the requested week.
func (h *SupplierHandler) GetAvailabilityHandler(c *gin.Context) {
	supplier, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Supplier not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch supplier", err.Error())
		return
	}

	weekIndex, err := strconv.Atoi(c.DefaultQuery("week", "0"))
	if err != nil || weekIndex < 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid week index", c.Query("week"))
		return
	}

	profile := availability.NewProfile(supplier.Profile)
	days := availability.WeekAvailability(profile, time.Now(), weekIndex)
	c.JSON(http.StatusOK, gin.H{
		"supplierId": supplier.ID,
		"week":       weekIndex,
		"days":       days,
	})
}

// CheckAvailabilityHandler answers a point query for one date, optionally
// one slot.
func (h *SupplierHandler) CheckAvailabilityHandler(c *gin.Context) {
	var input struct {
		Date string `json:"date"`
		Slot string `json:"slot,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	supplier, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Supplier not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch supplier", err.Error())
		return
	}

	var requested *models.Slot
	if input.Slot != "" {
		s := models.Slot(input.Slot)
		if !models.ValidSlot(s) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid slot", input.Slot)
			return
		}
		requested = &s
	}

	profile := availability.NewProfile(supplier.Profile)
	result := profile.CheckAvailability(input.Date, requested)
	c.JSON(http.StatusOK, gin.H{
		"available": result.Available,
		"slots":     result.Slots,
		"status":    profile.DateStatusFor(time.Now(), input.Date),
	})
}

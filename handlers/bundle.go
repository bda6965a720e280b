package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Supplier endpoints
	GetSupplierByIDHandler        gin.HandlerFunc
	GetSuppliersByCategoryHandler gin.HandlerFunc
	GetAvailabilityHandler        gin.HandlerFunc
	CheckAvailabilityHandler      gin.HandlerFunc

	// Booking endpoints
	DecideHandler gin.HandlerFunc
	CommitHandler gin.HandlerFunc

	// Plan endpoints
	GetPlanHandler          gin.HandlerFunc
	ClearPlanHandler        gin.HandlerFunc
	RemoveCategoryHandler   gin.HandlerFunc
	AttachAddonHandler      gin.HandlerFunc
	RemoveAddonHandler      gin.HandlerFunc
	GetPartyDetailsHandler  gin.HandlerFunc
	SavePartyDetailsHandler gin.HandlerFunc
	PopToastHandler         gin.HandlerFunc

	// Replacement endpoints
	EnterReplacementHandler   gin.HandlerFunc
	SelectReplacementHandler  gin.HandlerFunc
	GetReplacementHandler     gin.HandlerFunc
	ConsumeReplacementHandler gin.HandlerFunc

	// Enquiry endpoints
	AwaitingEnquiriesHandler gin.HandlerFunc
	SendEnquiryHandler       gin.HandlerFunc
	RespondEnquiryHandler    gin.HandlerFunc
}

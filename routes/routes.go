package routes

import (
	"net/http"
	"time"

	"festivo/handlers"
	"festivo/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSupplierRoutes registers supplier lookup and availability endpoints.
func RegisterSupplierRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/suppliers")
	{
		api.GET("/:id", hb.GetSupplierByIDHandler)
		api.GET("/category/:category", hb.GetSuppliersByCategoryHandler)
		api.GET("/:id/availability", hb.GetAvailabilityHandler)
		api.POST("/:id/availability/check", hb.CheckAvailabilityHandler)
	}
}

// RegisterBookingRoutes sets up the decide/commit endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.POST("/decide", hb.DecideHandler)
		api.POST("/commit", hb.CommitHandler)
	}
}

// RegisterPlanRoutes registers party-plan aggregate endpoints.
func RegisterPlanRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/plan")
	{
		api.GET("", hb.GetPlanHandler)
		api.DELETE("", hb.ClearPlanHandler)
		api.GET("/party-details", hb.GetPartyDetailsHandler)
		api.PUT("/party-details", hb.SavePartyDetailsHandler)
		api.GET("/toast", hb.PopToastHandler)
		api.POST("/addons", hb.AttachAddonHandler)
		api.DELETE("/addons/:id", hb.RemoveAddonHandler)
		api.DELETE("/:category", hb.RemoveCategoryHandler)
	}
}

// RegisterReplacementRoutes registers the supplier-swap flow endpoints.
func RegisterReplacementRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/replacement")
	{
		api.POST("/enter", hb.EnterReplacementHandler)
		api.POST("/select", hb.SelectReplacementHandler)
		api.GET("", hb.GetReplacementHandler)
		api.POST("/consume", hb.ConsumeReplacementHandler)
	}
}

// RegisterEnquiryRoutes registers enquiry tracking endpoints.
func RegisterEnquiryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/enquiries")
	{
		api.GET("/awaiting", hb.AwaitingEnquiriesHandler)
		api.POST("", hb.SendEnquiryHandler)
		api.POST("/:id/respond", hb.RespondEnquiryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Session-ID", "X-Local-Plan"},
		ExposeHeaders:    []string{"Content-Length", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterSupplierRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPlanRoutes(r, hb)
	RegisterReplacementRoutes(r, hb)
	RegisterEnquiryRoutes(r, hb)
}

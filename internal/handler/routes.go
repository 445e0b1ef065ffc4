package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/docstream/docstream-api/internal/middleware"
)

// Handlers groups every HTTP handler mounted by RegisterRoutes.
type Handlers struct {
	Auth               *AuthHandler
	Staff              *StaffHandler
	ItemRequests       *ItemRequestHandler
	VehicleRequests    *VehicleRequestHandler
	InventoryChecklist *InventoryChecklistHandler
	ActivityLogs       *ActivityLogHandler
	Facilities         *FacilityHandler
	Metrics            *MetricsHandler
}

// RouteDeps carries the middleware dependencies shared by the route groups.
type RouteDeps struct {
	Tokens middleware.TokenValidator
	Audit  middleware.AuditWriter
	Logger *zap.Logger
}

// RegisterRoutes mounts ops endpoints at the root and the API under prefix.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers, deps RouteDeps) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	api := r.Group(prefix)
	authenticated := middleware.JWT(deps.Tokens)
	admin := middleware.RequireAdmin()

	auth := api.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/register", authenticated, admin, h.Auth.Register)
	auth.GET("/profile", authenticated, h.Auth.Profile)
	auth.POST("/logout", authenticated, h.Auth.Logout)

	staff := api.Group("/staff", authenticated, middleware.Audit(deps.Audit, "staff", deps.Logger))
	staff.GET("", h.Staff.List)
	staff.GET("/export", admin, h.Staff.Export)
	staff.GET("/:id", h.Staff.Get)
	staff.POST("", admin, h.Staff.Create)
	staff.PUT("/:id", admin, h.Staff.Update)
	staff.PATCH("/:id", admin, h.Staff.Patch)
	staff.DELETE("/:id", admin, h.Staff.Delete)

	items := api.Group("/item-request", authenticated, middleware.Audit(deps.Audit, "item_request", deps.Logger))
	items.GET("", h.ItemRequests.List)
	items.GET("/:id", h.ItemRequests.Get)
	items.POST("", h.ItemRequests.Create)
	items.PUT("/:id", h.ItemRequests.Update)
	items.PATCH("/:id", h.ItemRequests.Patch)
	items.DELETE("/:id", h.ItemRequests.Delete)

	vehicles := api.Group("/vehicle-request", authenticated, middleware.Audit(deps.Audit, "vehicle_request", deps.Logger))
	vehicles.GET("", h.VehicleRequests.List)
	vehicles.GET("/:id", h.VehicleRequests.Get)
	vehicles.POST("", h.VehicleRequests.Create)
	vehicles.POST("/:id/approval", h.VehicleRequests.Approve)
	vehicles.PUT("/:id", h.VehicleRequests.Update)
	vehicles.PATCH("/:id", h.VehicleRequests.Patch)
	vehicles.DELETE("/:id", h.VehicleRequests.Delete)

	checklists := api.Group("/inventory-checklist", authenticated, middleware.Audit(deps.Audit, "inventory_checklist", deps.Logger))
	checklists.GET("", h.InventoryChecklist.List)
	checklists.GET("/:id", h.InventoryChecklist.Get)
	checklists.POST("", h.InventoryChecklist.Create)
	checklists.PUT("/:id", h.InventoryChecklist.Update)
	checklists.PATCH("/:id", h.InventoryChecklist.Patch)
	checklists.DELETE("/:id", h.InventoryChecklist.Delete)

	logs := api.Group("/activity-log", authenticated, middleware.Audit(deps.Audit, "activity_log", deps.Logger))
	logs.GET("", h.ActivityLogs.List)
	logs.GET("/:id", h.ActivityLogs.Get)
	logs.POST("", h.ActivityLogs.Create)
	logs.PUT("/:id", h.ActivityLogs.Update)
	logs.PATCH("/:id", h.ActivityLogs.Patch)
	logs.DELETE("/:id", h.ActivityLogs.Delete)

	facilities := api.Group("/facility", authenticated, middleware.Audit(deps.Audit, "facility", deps.Logger))
	facilities.GET("", h.Facilities.List)
	facilities.GET("/:id", h.Facilities.Get)
	facilities.POST("", admin, h.Facilities.Create)
	facilities.PUT("/:id", admin, h.Facilities.Update)
	facilities.PATCH("/:id", admin, h.Facilities.Patch)
	facilities.DELETE("/:id", admin, h.Facilities.Delete)
}

package analytics

import (
	"opsdash/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, enforcer rbac.Service) {
	dashboard := rg.Group("/dashboard")
	dashboard.Use(rbac.RequirePermission(enforcer, rbac.PermDashboard))
	{
		dashboard.GET("/overview", h.Overview)
		dashboard.GET("/analytics", h.Analytics)
		dashboard.GET("/utilization", h.Utilization)
		dashboard.GET("/departments", h.Departments)
		dashboard.GET("/skills", h.Skills)
		dashboard.GET("/activities", h.Activities)
		dashboard.GET("/locations", h.Locations)
		dashboard.GET("/billing", h.Billing)
		dashboard.GET("/employee-types", h.EmployeeTypes)
		dashboard.GET("/bench", h.Bench)
	}
}

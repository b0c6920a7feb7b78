package finance

import (
	"opsdash/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, enforcer rbac.Service) {
	dashboard := rg.Group("/dashboard")
	dashboard.Use(rbac.RequirePermission(enforcer, rbac.PermFinance))
	{
		dashboard.GET("/financials", h.Financials)
	}
}

package report

import (
	"opsdash/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, enforcer rbac.Service) {
	reports := rg.Group("/reports")
	reports.Use(rbac.RequirePermission(enforcer, rbac.PermReports))
	{
		reports.GET("", h.Types)
		reports.GET("/:type", h.Generate)
	}
}

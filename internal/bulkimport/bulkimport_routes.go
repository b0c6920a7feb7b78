package bulkimport

import (
	"opsdash/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, enforcer rbac.Service) {
	imports := rg.Group("/import")
	imports.Use(rbac.RequirePermission(enforcer, rbac.PermResources))
	{
		imports.POST("/employees", h.Import)
		imports.POST("/employees/preview", h.Preview)
		imports.GET("/template", h.Template)
	}
}

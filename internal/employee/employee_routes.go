package employee

import (
	"opsdash/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, enforcer rbac.Service) {
	employees := rg.Group("/employees")
	employees.Use(rbac.RequirePermission(enforcer, rbac.PermResources))
	{
		employees.GET("", h.GetAll)
		employees.POST("", h.Create)
		employees.GET("/export", h.Export)
		employees.GET("/search/:term", h.Search)
		employees.GET("/options/:type", h.FilterOptions)
		employees.GET("/:id", h.GetByID)
		employees.PUT("/:id", h.Update)
		employees.DELETE("/:id", h.Delete)
	}
}

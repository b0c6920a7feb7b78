package rbac

import (
	"opsdash/internal/shared/apperror"
	"opsdash/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RequirePermission gates a route group on a permission area. The auth
// middleware must have placed user_id in the gin context first.
func RequirePermission(svc Service, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			httpErr := apperror.ToHTTP(apperror.ErrUnauthorized)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		allowed, err := svc.Enforce(userID, permission)
		if err != nil || !allowed {
			httpErr := apperror.ToHTTP(apperror.ErrForbidden)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

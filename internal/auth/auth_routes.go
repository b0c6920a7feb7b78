package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the auth endpoints. Login and logout stay public;
// profile endpoints run behind the JWT middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *Handler, authMW gin.HandlerFunc, loginLimiter gin.HandlerFunc) {
	authGroup := rg.Group("/auth")
	{
		if loginLimiter != nil {
			authGroup.POST("/login", loginLimiter, h.Login)
		} else {
			authGroup.POST("/login", h.Login)
		}
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", authMW, h.Me)
		authGroup.PUT("/profile", authMW, h.UpdateProfile)
	}
}

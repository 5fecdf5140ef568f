package router

import (
	"net/http"

	"corrigo/controllers"

	"github.com/gin-gonic/gin"
)

// Companyzer blocks access when the logged user is not a company account.
func Companyzer() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := controllers.GetUserLogged(c)
		if !ok {
			controllers.RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}
		if !user.IsCompany() {
			controllers.RespondError(c, "apenas contas company podem subir datasets", http.StatusForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

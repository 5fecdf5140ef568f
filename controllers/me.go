package controllers

import (
	"net/http"

	dbpkg "corrigo/db"
	"corrigo/models"

	"github.com/gin-gonic/gin"
)

// GET /api/me (validated)
// Devolve a conta logada com o saldo atual. O saldo pode ter mudado desde o
// AuthRequired (submissão concorrente na mesma sessão), então relê do banco.
func Me(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	if db := dbpkg.DBInstance(c); db != nil {
		var fresh models.User
		if err := db.First(&fresh, user.ID).Error; err == nil {
			user = fresh
		}
	}

	user.Password = ""
	RespondSuccess(c, gin.H{"user": user, "balance": user.Balance})
}

package workers

import (
	"time"

	"corrigo/models"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

// StartTokenCleanup starts a loop that purges expired/revoked refresh tokens.
func StartTokenCleanup(db *gorm.DB, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			CleanupRefreshTokens(db)
		}
	}()
}

// CleanupRefreshTokens remove tokens revogados ou vencidos.
// Linhas vivas nunca são tocadas, então não precisa de lock além do delete.
func CleanupRefreshTokens(db *gorm.DB) {
	now := time.Now()

	res := db.Delete(&models.RefreshToken{},
		"revoked_at IS NOT NULL OR (expires_at IS NOT NULL AND expires_at < ?)", now)
	if res.Error != nil {
		logrus.WithError(res.Error).Error("token cleanup: delete error")
		return
	}
	if res.RowsAffected > 0 {
		logrus.WithField("removed", res.RowsAffected).Info("token cleanup: purged refresh tokens")
	}
}

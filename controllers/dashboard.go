package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	dbpkg "corrigo/db"
	"corrigo/models"

	"github.com/gin-gonic/gin"
)

// ------------------------------
// Dashboard - Stats
// ------------------------------

type correctionsPerDayRow struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// GET /api/corrections/dashboard/per-day
// Query params:
// - from=YYYY-MM-DD (optional, default: hoje-29)
// - to=YYYY-MM-DD   (optional, default: hoje)
// Retorna uma série diária (inclui dias com 0).
func GetCorrectionsPerDay(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}

	// Normaliza para início do dia e usa "to exclusivo" (dia seguinte 00:00).
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.Local)
	toInclusive := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.Local)
	toExclusive := toInclusive.AddDate(0, 0, 1)

	// Expressão de "dia" depende do dialeto.
	dialect := strings.ToLower(db.Dialect().GetName())
	dayExpr := "date(created_at)"
	if strings.Contains(dialect, "sqlite") {
		dayExpr = "strftime('%Y-%m-%d', created_at, 'localtime')"
	} else if strings.Contains(dialect, "postgres") {
		dayExpr = "to_char(date_trunc('day', created_at), 'YYYY-MM-DD')"
	}

	var rows []correctionsPerDayRow
	q := db.Table("corrections").
		Select(fmt.Sprintf("%s as day, count(*) as count", dayExpr)).
		Where("user_id = ?", user.ID).
		Where("created_at >= ? AND created_at < ?", from, toExclusive).
		Group("day").
		Order("day asc")

	if err := q.Scan(&rows).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	series := fillDailySeries(from, to, rows)
	RespondSuccess(c, gin.H{
		"from":   from.Format("2006-01-02"),
		"to":     to.Format("2006-01-02"),
		"series": series,
	})
}

type dashboardSummary struct {
	Total      int64   `json:"total"`
	Valid      int64   `json:"valid"`
	ValidRatio float64 `json:"valid_ratio"`
	Earned     int64   `json:"earned"`
	Balance    int64   `json:"balance"`
}

// GET /api/corrections/dashboard/summary
// Totais do usuário: submissões, válidas, razão, soma dos deltas e saldo atual.
func GetCorrectionsSummary(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var total, valid int64
	if err := db.Model(&models.Correction{}).Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := db.Model(&models.Correction{}).Where("user_id = ? AND is_valid = ?", user.ID, true).Count(&valid).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	type sumRow struct {
		Earned int64
	}
	var sum sumRow
	if err := db.Table("corrections").
		Select("coalesce(sum(reward_delta), 0) as earned").
		Where("user_id = ?", user.ID).
		Scan(&sum).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	ratio := float64(0)
	if total > 0 {
		ratio = float64(valid) / float64(total)
	}

	RespondSuccess(c, dashboardSummary{
		Total:      total,
		Valid:      valid,
		ValidRatio: ratio,
		Earned:     sum.Earned,
		Balance:    user.Balance,
	})
}

// ------------------------------
// Helpers
// ------------------------------

func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	// defaults: últimos 30 dias
	now := time.Now()
	defTo := now
	defFrom := now.AddDate(0, 0, -29)

	fromStr := strings.TrimSpace(c.Query("from"))
	toStr := strings.TrimSpace(c.Query("to"))

	from := defFrom
	to := defTo
	var err error

	if fromStr != "" {
		from, err = time.ParseInLocation("2006-01-02", fromStr, time.Local)
		if err != nil {
			RespondError(c, "from inválido (use YYYY-MM-DD)", http.StatusBadRequest)
			return time.Time{}, time.Time{}, false
		}
	}
	if toStr != "" {
		to, err = time.ParseInLocation("2006-01-02", toStr, time.Local)
		if err != nil {
			RespondError(c, "to inválido (use YYYY-MM-DD)", http.StatusBadRequest)
			return time.Time{}, time.Time{}, false
		}
	}
	if from.After(to) {
		RespondError(c, "from não pode ser maior que to", http.StatusBadRequest)
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func fillDailySeries(from time.Time, to time.Time, rows []correctionsPerDayRow) []correctionsPerDayRow {
	m := map[string]int64{}
	for _, r := range rows {
		if r.Day == "" {
			continue
		}
		m[r.Day] = r.Count
	}

	var out []correctionsPerDayRow
	cur := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.Local)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.Local)
	for !cur.After(end) {
		key := cur.Format("2006-01-02")
		out = append(out, correctionsPerDayRow{Day: key, Count: m[key]})
		cur = cur.AddDate(0, 0, 1)
	}
	return out
}

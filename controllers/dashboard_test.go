package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"corrigo/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	r, db := setupServer(t)
	token := signupAndLogin(t, r, "worker@test.com", "worker")

	dataset := createDataset(t, db, 99, []models.DatasetItem{
		{ID: "q1", Prompt: "Please POP4 this", FlawedResponse: "wrong"},
	})

	// uma válida, uma inválida (não modificada)
	w := doJSON(t, r, http.MethodPost, "/api/corrections", token, gin.H{
		"dataset_id": dataset.ID, "prompt_id": "q1",
		"original_response": "wrong", "edited_response": "right",
	})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/corrections", token, gin.H{
		"dataset_id": dataset.ID, "prompt_id": "q1",
		"original_response": "wrong", "edited_response": "wrong",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/corrections/dashboard/summary", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Total      int64   `json:"total"`
		Valid      int64   `json:"valid"`
		ValidRatio float64 `json:"valid_ratio"`
		Earned     int64   `json:"earned"`
		Balance    int64   `json:"balance"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, int64(2), resp.Total)
	assert.Equal(t, int64(1), resp.Valid)
	assert.InDelta(t, 0.5, resp.ValidRatio, 0.001)
	assert.Equal(t, int64(10), resp.Earned)
	assert.Equal(t, int64(10), resp.Balance)
}

func TestDashboardPerDay(t *testing.T) {
	r, db := setupServer(t)
	token := signupAndLogin(t, r, "worker@test.com", "worker")

	dataset := createDataset(t, db, 99, []models.DatasetItem{
		{ID: "q1", Prompt: "Please POP4 this", FlawedResponse: "wrong"},
	})
	w := doJSON(t, r, http.MethodPost, "/api/corrections", token, gin.H{
		"dataset_id": dataset.ID, "prompt_id": "q1",
		"original_response": "wrong", "edited_response": "right",
	})
	require.Equal(t, http.StatusOK, w.Code)

	today := time.Now().Format("2006-01-02")
	w = doJSON(t, r, http.MethodGet, "/api/corrections/dashboard/per-day?from="+today+"&to="+today, token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Series []struct {
			Day   string `json:"day"`
			Count int64  `json:"count"`
		} `json:"series"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Series, 1)
	assert.Equal(t, today, resp.Series[0].Day)
	assert.Equal(t, int64(1), resp.Series[0].Count)
}

func TestDashboardPerDayBadRange(t *testing.T) {
	r, _ := setupServer(t)
	token := signupAndLogin(t, r, "worker@test.com", "worker")

	w := doJSON(t, r, http.MethodGet, "/api/corrections/dashboard/per-day?from=2026-02-10&to=2026-02-01", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

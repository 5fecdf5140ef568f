package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"corrigo/config"
	"corrigo/controllers"
	dbpkg "corrigo/db"
	"corrigo/models"
	"corrigo/router"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// um sqlite em memória por conexão; trava o pool numa só
	db.DB().SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	dbpkg.Migrate(db)

	cfg := config.ApplyDefaults(config.Configuration{})
	dbpkg.SetConfigurations(cfg)
	controllers.SetConfigurations(cfg)

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(db))
	router.Initialize(r, cfg)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func signupAndLogin(t *testing.T, r *gin.Engine, email, role string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/users", "", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": "secret1",
		"role":     role,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"email":    email,
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func createDataset(t *testing.T, db *gorm.DB, companyID int64, items []models.DatasetItem) models.Dataset {
	t.Helper()
	dataset := models.Dataset{
		CompanyID:    companyID,
		Name:         "test dataset",
		Description:  "desc",
		Instructions: "fix the response",
		Rules:        "be precise",
	}
	require.NoError(t, dataset.SetItems(items))
	require.NoError(t, db.Create(&dataset).Error)
	return dataset
}

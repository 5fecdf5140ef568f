package controllers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"corrigo/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDatasetRequiresCompanyRole(t *testing.T) {
	r, _ := setupServer(t)
	token := signupAndLogin(t, r, "worker@test.com", "worker")

	w := doJSON(t, r, http.MethodPost, "/api/datasets", token, gin.H{
		"name":         "ds",
		"description":  "d",
		"instructions": "i",
		"rules":        "r",
		"data":         []gin.H{{"id": "1", "prompt": "p", "flawedResponse": "f"}},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateDatasetSuccess(t *testing.T) {
	r, db := setupServer(t)
	token := signupAndLogin(t, r, "company@test.com", "company")

	w := doJSON(t, r, http.MethodPost, "/api/datasets", token, gin.H{
		"name":         "ds",
		"description":  "d",
		"instructions": "i",
		"rules":        "r",
		"data":         []gin.H{{"id": "1", "prompt": "p", "flawedResponse": "f"}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Dataset models.Dataset `json:"dataset"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, 1, resp.Dataset.ItemCount)

	var count int64
	require.NoError(t, db.Model(&models.Dataset{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateDatasetAllOrNothing(t *testing.T) {
	r, db := setupServer(t)
	token := signupAndLogin(t, r, "company@test.com", "company")

	// item sem flawedResponse rejeita o payload inteiro, nada é gravado
	w := doJSON(t, r, http.MethodPost, "/api/datasets", token, gin.H{
		"name":         "ds",
		"description":  "d",
		"instructions": "i",
		"rules":        "r",
		"data": []gin.H{
			{"id": "1", "prompt": "p", "flawedResponse": "f"},
			{"id": "2", "prompt": "p"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Dataset{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateDatasetRequiresAllFields(t *testing.T) {
	r, _ := setupServer(t)
	token := signupAndLogin(t, r, "company@test.com", "company")

	w := doJSON(t, r, http.MethodPost, "/api/datasets", token, gin.H{
		"name": "ds",
		"data": []gin.H{{"id": "1", "prompt": "p", "flawedResponse": "f"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDatasetMultipartFile(t *testing.T) {
	r, db := setupServer(t)
	token := signupAndLogin(t, r, "company@test.com", "company")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "ds"))
	require.NoError(t, mw.WriteField("description", "d"))
	require.NoError(t, mw.WriteField("instructions", "i"))
	require.NoError(t, mw.WriteField("rules", "r"))
	fw, err := mw.CreateFormFile("file", "data.json")
	require.NoError(t, err)
	_, err = fw.Write([]byte(`[{"id":"1","prompt":"p","flawedResponse":"f"}]`))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/datasets", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var count int64
	require.NoError(t, db.Model(&models.Dataset{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetDatasets(t *testing.T) {
	r, db := setupServer(t)
	token := signupAndLogin(t, r, "worker@test.com", "worker")

	createDataset(t, db, 99, []models.DatasetItem{{ID: "1", Prompt: "p", FlawedResponse: "f"}})

	w := doJSON(t, r, http.MethodGet, "/api/datasets", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Datasets []models.Dataset `json:"datasets"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Datasets, 1)
	assert.Equal(t, "test dataset", resp.Datasets[0].Name)
}

func TestGetDatasetByIDNotFound(t *testing.T) {
	r, _ := setupServer(t)
	token := signupAndLogin(t, r, "worker@test.com", "worker")

	w := doJSON(t, r, http.MethodGet, "/api/datasets/1234", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

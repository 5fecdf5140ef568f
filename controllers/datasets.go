package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	dbpkg "corrigo/db"
	"corrigo/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DatasetUploadRequest struct {
	Name         string          `json:"name" form:"name"`
	Description  string          `json:"description" form:"description"`
	Instructions string          `json:"instructions" form:"instructions"`
	Rules        string          `json:"rules" form:"rules"`
	Data         json.RawMessage `json:"data"`
}

// POST /api/datasets (company)
// Aceita JSON direto no campo "data" ou um arquivo .json multipart no campo
// "file". Validação all-or-nothing: qualquer item malformado rejeita tudo.
func CreateDataset(c *gin.Context) {
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

	var req DatasetUploadRequest
	var raw []byte

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		req.Name = c.PostForm("name")
		req.Description = c.PostForm("description")
		req.Instructions = c.PostForm("instructions")
		req.Rules = c.PostForm("rules")

		fileHeader, err := c.FormFile("file")
		if err != nil {
			RespondError(c, "arquivo 'file' é obrigatório no upload multipart", http.StatusBadRequest)
			return
		}
		if fileHeader.Size > conf.Upload.MaxFileBytes {
			RespondError(c, "arquivo excede o limite de tamanho", http.StatusBadRequest)
			return
		}
		f, err := fileHeader.Open()
		if err != nil {
			RespondError(c, "erro ao ler arquivo", http.StatusBadRequest)
			return
		}
		defer f.Close()
		raw, err = io.ReadAll(io.LimitReader(f, conf.Upload.MaxFileBytes+1))
		if err != nil {
			RespondError(c, "erro ao ler arquivo", http.StatusBadRequest)
			return
		}
	} else {
		if err := c.Bind(&req); err != nil {
			RespondError(c, err.Error(), http.StatusBadRequest)
			return
		}
		raw = req.Data
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	req.Instructions = strings.TrimSpace(req.Instructions)
	req.Rules = strings.TrimSpace(req.Rules)

	if req.Name == "" {
		RespondError(c, "name é obrigatório", http.StatusBadRequest)
		return
	}
	if req.Description == "" || req.Instructions == "" || req.Rules == "" {
		RespondError(c, "description, instructions e rules são obrigatórios", http.StatusBadRequest)
		return
	}
	if len(raw) == 0 {
		RespondError(c, "data é obrigatório", http.StatusBadRequest)
		return
	}

	items, err := models.ParseItems(raw)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	dataset := models.Dataset{
		CompanyID:    user.ID,
		Name:         req.Name,
		Description:  req.Description,
		Instructions: req.Instructions,
		Rules:        req.Rules,
	}
	if err := dataset.SetItems(items); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	if err := db.Create(&dataset).Error; err != nil {
		logrus.WithError(err).Error("dataset: insert failed")
		RespondError(c, "erro ao salvar dataset", http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"dataset": dataset})
}

// GET /api/datasets
func GetDatasets(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var datasets []models.Dataset
	if err := db.Order("id asc").Find(&datasets).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"datasets": datasets})
}

// GET /api/datasets/:id
func GetDatasetByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var dataset models.Dataset
	if err := db.First(&dataset, id).Error; err != nil {
		RespondError(c, "dataset não encontrado", http.StatusNotFound)
		return
	}
	RespondSuccess(c, gin.H{"dataset": dataset})
}

package controllers

import (
	"net/http"

	dbpkg "corrigo/db"
	"corrigo/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

type SubmitCorrectionRequest struct {
	DatasetID        int64  `json:"dataset_id" form:"dataset_id"`
	PromptID         string `json:"prompt_id" form:"prompt_id"`
	OriginalResponse string `json:"original_response" form:"original_response"`
	EditedResponse   string `json:"edited_response" form:"edited_response"`
}

type SubmitCorrectionResponse struct {
	Correction          models.Correction `json:"correction"`
	IsValid             bool              `json:"isValid"`
	AdherencePercentage int               `json:"adherencePercentage"`
	RewardDelta         int64             `json:"reward_delta"`
	Balance             int64             `json:"balance"`
}

// POST /api/corrections (validated)
// Fecha uma rodada: valida a edição, grava a correção e aplica o delta de
// saldo. A gravação vem ANTES da recompensa, na mesma transação: falha de
// storage nunca credita correção não registrada.
func SubmitCorrection(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req SubmitCorrectionRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.DatasetID <= 0 {
		RespondError(c, "dataset_id é obrigatório", http.StatusBadRequest)
		return
	}
	if req.PromptID == "" {
		RespondError(c, "prompt_id é obrigatório", http.StatusBadRequest)
		return
	}
	if req.OriginalResponse == "" || req.EditedResponse == "" {
		RespondError(c, "original_response e edited_response são obrigatórios", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var dataset models.Dataset
	if err := db.First(&dataset, req.DatasetID).Error; err != nil {
		RespondError(c, "dataset não encontrado", http.StatusNotFound)
		return
	}

	item, found := findDatasetItem(dataset, req.PromptID)
	if !found {
		RespondError(c, "prompt não encontrado no dataset", http.StatusNotFound)
		return
	}

	verdict, err := validator.Validate(item.Prompt, req.OriginalResponse, req.EditedResponse)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	var delta int64
	if verdict.IsValid {
		delta = int64(conf.Reward.OnValid)
	} else {
		delta = -int64(conf.Reward.PenaltyOnInvalid)
	}

	correction := models.Correction{
		UserID:              user.ID,
		DatasetID:           dataset.ID,
		PromptID:            req.PromptID,
		OriginalResponse:    req.OriginalResponse,
		EditedResponse:      req.EditedResponse,
		IsValid:             verdict.IsValid,
		AdherencePercentage: verdict.AdherencePercentage,
		RewardDelta:         delta,
	}

	tx := db.Begin()
	if err := tx.Create(&correction).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("corrections: insert failed")
		RespondError(c, "erro ao salvar correção", http.StatusInternalServerError)
		return
	}
	if delta != 0 {
		// incremento atômico pra não perder update em submissões concorrentes
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).
			Update("balance", gorm.Expr("balance + ?", delta)).Error; err != nil {
			tx.Rollback()
			logrus.WithError(err).Error("corrections: balance update failed")
			RespondError(c, "erro ao atualizar saldo", http.StatusInternalServerError)
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, "erro ao salvar correção", http.StatusInternalServerError)
		return
	}

	var fresh models.User
	balance := user.Balance + delta
	if err := db.First(&fresh, user.ID).Error; err == nil {
		balance = fresh.Balance
	}

	RespondSuccess(c, SubmitCorrectionResponse{
		Correction:          correction,
		IsValid:             verdict.IsValid,
		AdherencePercentage: verdict.AdherencePercentage,
		RewardDelta:         delta,
		Balance:             balance,
	})
}

// GET /api/corrections (validated)
func GetCorrections(c *gin.Context) {
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

	var corrections []models.Correction
	if err := db.Where("user_id = ?", user.ID).Order("id desc").Find(&corrections).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"corrections": corrections})
}

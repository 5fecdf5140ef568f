package controllers

import (
	"errors"
	"net/http"

	"corrigo/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// validator é o gate de modificação + scorer placeholder.
// Substituível em teste (e, no futuro, por um avaliador de verdade).
var validator = validation.New()

type ValidateRequest struct {
	Prompt            string `json:"prompt"`
	OriginalResponse  string `json:"originalResponse"`
	CorrectedResponse string `json:"correctedResponse"`
}

// POST /api/validate
// Contrato: 200 {isValid, adherencePercentage}; 400 {error} quando faltar
// campo; 500 {error} em falha interna.
func Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, "Missing required fields", http.StatusBadRequest)
		return
	}

	verdict, err := validator.Validate(req.Prompt, req.OriginalResponse, req.CorrectedResponse)
	if err != nil {
		if errors.Is(err, validation.ErrMissingField) {
			RespondError(c, "Missing required fields", http.StatusBadRequest)
			return
		}
		logrus.WithError(err).Error("validate: unexpected failure")
		RespondError(c, "Validation failed", http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, verdict)
}

package controllers

import (
	"math/rand"
	"net/http"

	dbpkg "corrigo/db"
	"corrigo/models"

	"github.com/gin-gonic/gin"
)

// samplePrompts é a lista em memória usada antes do usuário escolher um
// dataset (mesmo conteúdo da tela inicial).
var samplePrompts = []models.DatasetItem{
	{
		ID:             "sample-1",
		Prompt:         "Explain quantum computing in simple terms",
		FlawedResponse: "Quantum computing uses quantum bits (qbits) that can be 0 and 1 simultaneously, like regular bits in classical computers.",
	},
	{
		ID:             "sample-2",
		Prompt:         "Describe the process of photosynthesis",
		FlawedResponse: "Plants convert sunlight into oxygen through a process called photosythesis in their roots.",
	},
}

// GET /api/prompts/sample
func GetSamplePrompt(c *gin.Context) {
	item := samplePrompts[rand.Intn(len(samplePrompts))]
	RespondSuccess(c, gin.H{"prompt": item})
}

// GET /api/datasets/:id/prompts/random
// Sorteia um item do dataset. Dataset sem itens -> 404; item sem os três
// campos obrigatórios -> 422 (fatal pra rodada, nunca devolve item parcial).
func GetRandomPrompt(c *gin.Context) {
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

	items, err := dataset.Items()
	if err != nil {
		RespondError(c, "erro ao ler itens do dataset", http.StatusInternalServerError)
		return
	}
	if len(items) == 0 {
		RespondError(c, "nenhum prompt encontrado no dataset", http.StatusNotFound)
		return
	}

	item := items[rand.Intn(len(items))]
	if err := item.Validate(); err != nil {
		RespondError(c, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	RespondSuccess(c, gin.H{"prompt": item})
}

// findDatasetItem localiza um item pelo id dentro do data_json.
func findDatasetItem(dataset models.Dataset, promptID string) (models.DatasetItem, bool) {
	items, err := dataset.Items()
	if err != nil {
		return models.DatasetItem{}, false
	}
	for _, it := range items {
		if it.ID == promptID {
			return it, true
		}
	}
	return models.DatasetItem{}, false
}

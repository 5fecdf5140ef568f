package models

import "time"

// Correction é o registro durável de uma submissão de correção.
// Append-only: esse fluxo só insere, nunca atualiza ou deleta.
type Correction struct {
	ID                  int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID              int64      `gorm:"not null;index" json:"user_id"`
	DatasetID           int64      `gorm:"not null;index" json:"dataset_id"`
	PromptID            string     `gorm:"column:prompt_id;not null" json:"prompt_id"`
	OriginalResponse    string     `gorm:"column:original_response;type:text" json:"original_response"`
	EditedResponse      string     `gorm:"column:edited_response;type:text" json:"edited_response"`
	IsValid             bool       `gorm:"column:is_valid;not null" json:"is_valid"`
	AdherencePercentage int        `gorm:"not null;default:0" json:"adherence_percentage"`
	RewardDelta         int64      `gorm:"not null;default:0" json:"reward_delta"`
	CreatedAt           *time.Time `json:"created_at"`
	UpdatedAt           *time.Time `json:"updated_at"`
}

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DatasetItem é uma entrada do data_json de um dataset: o prompt e a
// resposta defeituosa que o worker deve corrigir.
type DatasetItem struct {
	ID             string `json:"id"`
	Prompt         string `json:"prompt"`
	FlawedResponse string `json:"flawedResponse"`
}

var ErrInvalidItemShape = errors.New("item must have id, prompt and flawedResponse fields")

// Validate garante o shape mínimo do item.
func (it DatasetItem) Validate() error {
	if it.ID == "" || it.Prompt == "" || it.FlawedResponse == "" {
		return ErrInvalidItemShape
	}
	return nil
}

// Dataset representa um conjunto de pares prompt/resposta subido por uma company.
// Os itens ficam embutidos em DataJSON (array serializado), igual ao formato
// aceito no upload. Não viram tabela própria.
type Dataset struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	CompanyID    int64      `gorm:"not null;index" json:"company_id"`
	Name         string     `gorm:"not null" json:"name" form:"name"`
	Description  string     `gorm:"type:text" json:"description" form:"description"`
	Instructions string     `gorm:"type:text" json:"instructions" form:"instructions"`
	Rules        string     `gorm:"type:text" json:"rules" form:"rules"`
	DataJSON     string     `gorm:"column:data_json;type:text" json:"-"`
	ItemCount    int        `gorm:"not null;default:0" json:"item_count"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// ParseItems aceita um objeto único ou um array de objetos e valida tudo.
// Qualquer item inválido rejeita o payload inteiro (all-or-nothing).
func ParseItems(raw []byte) ([]DatasetItem, error) {
	var items []DatasetItem
	if err := json.Unmarshal(raw, &items); err != nil {
		var single DatasetItem
		if err2 := json.Unmarshal(raw, &single); err2 != nil {
			return nil, errors.New("invalid JSON format")
		}
		items = []DatasetItem{single}
	}
	if len(items) == 0 {
		return nil, errors.New("dataset must contain at least one item")
	}
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return items, nil
}

// Items desserializa o DataJSON armazenado.
func (d Dataset) Items() ([]DatasetItem, error) {
	if d.DataJSON == "" {
		return nil, nil
	}
	var items []DatasetItem
	if err := json.Unmarshal([]byte(d.DataJSON), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetItems serializa os itens no DataJSON e atualiza o contador.
func (d *Dataset) SetItems(items []DatasetItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	d.DataJSON = string(b)
	d.ItemCount = len(items)
	return nil
}

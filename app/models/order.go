package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

// OrderDetail is the structured payload of a custom order. It is stored
// JSON-serialized in Order.Detail so future consumers can parse it.
type OrderDetail struct {
	FlowerType string `json:"tipo_flor"`
	Color      string `json:"color"`
	Quantity   string `json:"cantidad"`
	Message    string `json:"mensaje"`
	Extra      string `json:"extra"`
}

// Order is a customer's custom request. UserID is nullable: the owning
// account may be absent. Total is always zero — pricing custom orders is
// done off-system.
type Order struct {
	gorm.Model
	Reference    string  `gorm:"uniqueIndex;size:36;not null" json:"reference"`
	UserID       *uint   `gorm:"index" json:"user_id,omitempty"`
	CustomerName string  `gorm:"size:200" json:"customer_name"`
	Phone        string  `gorm:"size:50" json:"phone"`
	Detail       string  `gorm:"type:text" json:"detail"`
	Total        float64 `gorm:"default:0" json:"total"`
}

// SetDetail serializes d into the Detail column.
func (o *Order) SetDetail(d OrderDetail) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	o.Detail = string(raw)
	return nil
}

// ParsedDetail decodes the Detail column.
func (o *Order) ParsedDetail() (OrderDetail, error) {
	var d OrderDetail
	err := json.Unmarshal([]byte(o.Detail), &d)
	return d, err
}

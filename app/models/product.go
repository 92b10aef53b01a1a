package models

import "gorm.io/gorm"

// Product is a catalogue entry. Price is a pointer on purpose: nil means
// "not yet priced", which is different from a price of zero.
type Product struct {
	gorm.Model
	Name        string   `gorm:"size:200;not null" json:"name"`
	Category    string   `gorm:"size:80" json:"category"` // ramo, individual, …
	Price       *float64 `json:"price,omitempty"`
	Description string   `gorm:"type:text" json:"description"`
	Image       string   `gorm:"size:300" json:"image"` // URL or storage path
}

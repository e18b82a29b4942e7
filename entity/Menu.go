package entity

import (
	"time"

	"gorm.io/gorm"
)

type MenuItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type Category struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// Menu is one whole document: the category tree is stored inside the row as
// JSON, categories/items have no identity outside their menu.
type Menu struct {
	gorm.Model
	PublicID       string     `gorm:"uniqueIndex;not null" json:"id"` // opaque id used in /menu/:id URLs
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	WhatsappNumber string     `json:"whatsappNumber"`
	Categories     []Category `gorm:"serializer:json" json:"categories"`

	VendorID uint   `gorm:"index" json:"restaurantId"`
	Vendor   Vendor `json:"-"`

	ViewCount  int64      `json:"viewCount"`
	LastViewed *time.Time `json:"lastViewed,omitempty"`
}

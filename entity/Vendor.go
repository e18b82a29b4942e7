package entity

import (
	"gorm.io/gorm"
)

type Vendor struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	Password       string `json:"-"`
	RestaurantName string `json:"restaurantName"`
	PhotoURL       string `json:"photoURL"`
	Provider       string `gorm:"not null;default:password" json:"provider"` // "password" | "google"

	// Relations — preload only when needed
	Menus []Menu     `gorm:"foreignKey:VendorID" json:"-"`
	Views []MenuView `gorm:"foreignKey:VendorID" json:"-"`
}

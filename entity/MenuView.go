package entity

import (
	"gorm.io/gorm"
)

// MenuView is one recorded visit of a public menu page. Rows are append-only,
// they are never updated after creation.
type MenuView struct {
	gorm.Model
	ViewID string `gorm:"uniqueIndex;not null" json:"viewId"`

	MenuID   uint `gorm:"index" json:"menuId"`
	VendorID uint `gorm:"index" json:"restaurantId"`

	UserAgent    string `json:"userAgent"`
	DeviceType   string `json:"deviceType"` // mobile | tablet | desktop | unknown
	DeviceVendor string `json:"deviceVendor"`
	BrowserName  string `json:"browserName"`
	Referrer     string `json:"referrer"` // "direct" when empty
	ScreenSize   string `json:"screenSize"`
	Language     string `json:"language"`
	TimeOfDay    int    `json:"timeOfDay"` // hour 0-23
	DayOfWeek    int    `json:"dayOfWeek"` // 0 = Sunday
}

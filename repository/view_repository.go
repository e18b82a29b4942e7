// repository/view_repository.go
package repository

import (
	"menuqr/entity"

	"gorm.io/gorm"
)

type ViewRepository interface {
	// Create appends one view record. Records are never updated.
	Create(v *entity.MenuView) error
	// FindRecentByMenu returns up to limit records for a menu, newest first.
	FindRecentByMenu(menuID uint, limit int) ([]entity.MenuView, error)
}

type GormViewRepository struct {
	DB *gorm.DB
}

func NewViewRepository(db *gorm.DB) *GormViewRepository {
	return &GormViewRepository{DB: db}
}

func (r *GormViewRepository) Create(v *entity.MenuView) error {
	return r.DB.Create(v).Error
}

func (r *GormViewRepository) FindRecentByMenu(menuID uint, limit int) ([]entity.MenuView, error) {
	var views []entity.MenuView
	err := r.DB.Where("menu_id = ?", menuID).
		Order("created_at DESC").
		Limit(limit).
		Find(&views).Error
	return views, err
}

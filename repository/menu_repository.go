// repository/menu_repository.go
package repository

import (
	"time"

	"menuqr/entity"

	"gorm.io/gorm"
)

type MenuRepository interface {
	Create(m *entity.Menu) error
	FindByPublicID(publicID string) (*entity.Menu, error)
	FindByVendor(vendorID uint) ([]entity.Menu, error)
	CountByVendor(vendorID uint) (int64, error)
	// Update overwrites the editable fields of the document (name,
	// description, whatsapp number, the whole category tree). Counters and
	// timestamps managed elsewhere are left alone.
	Update(m *entity.Menu) error
	// IncrementViewCount is a remote atomic increment, not read-modify-write.
	IncrementViewCount(id uint) error
	Delete(id uint) error
}

type GormMenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{DB: db}
}

func (r *GormMenuRepository) Create(m *entity.Menu) error {
	return r.DB.Create(m).Error
}

func (r *GormMenuRepository) FindByPublicID(publicID string) (*entity.Menu, error) {
	var menu entity.Menu
	err := r.DB.Where("public_id = ?", publicID).First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *GormMenuRepository) FindByVendor(vendorID uint) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Where("vendor_id = ?", vendorID).Find(&menus).Error
	return menus, err
}

func (r *GormMenuRepository) CountByVendor(vendorID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Menu{}).Where("vendor_id = ?", vendorID).Count(&count).Error
	return count, err
}

func (r *GormMenuRepository) Update(m *entity.Menu) error {
	return r.DB.Model(&entity.Menu{}).
		Where("id = ?", m.ID).
		Select("name", "description", "whatsapp_number", "categories").
		Updates(m).Error
}

func (r *GormMenuRepository) IncrementViewCount(id uint) error {
	now := time.Now()
	return r.DB.Model(&entity.Menu{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"view_count":  gorm.Expr("view_count + ?", 1),
			"last_viewed": now,
		}).Error
}

func (r *GormMenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Menu{}, id).Error
}

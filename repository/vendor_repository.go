// repository/vendor_repository.go
package repository

import (
	"menuqr/entity"

	"gorm.io/gorm"
)

// VendorRepository is the narrow surface the services see. Two
// implementations exist: the gorm one below and the in-memory demo store,
// picked once at startup.
type VendorRepository interface {
	Create(v *entity.Vendor) error
	FindByID(id uint) (*entity.Vendor, error)
	FindByEmail(email string) (*entity.Vendor, error)
	CountByEmail(email string) (int64, error)
	// Upsert merges the given profile fields into an existing vendor with
	// the same email, or creates one. Used by the Google sign-in flow.
	Upsert(v *entity.Vendor) error
}

type GormVendorRepository struct {
	DB *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{DB: db}
}

func (r *GormVendorRepository) Create(v *entity.Vendor) error {
	return r.DB.Create(v).Error
}

func (r *GormVendorRepository) FindByID(id uint) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *GormVendorRepository) FindByEmail(email string) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := r.DB.Where("email = ?", email).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *GormVendorRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Vendor{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *GormVendorRepository) Upsert(v *entity.Vendor) error {
	var exist entity.Vendor
	err := r.DB.Where("email = ?", v.Email).First(&exist).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(v).Error
	}
	if err != nil {
		return err
	}
	fields := map[string]any{
		"restaurant_name": v.RestaurantName,
		"provider":        v.Provider,
	}
	if v.PhotoURL != "" {
		fields["photo_url"] = v.PhotoURL
	}
	if err := r.DB.Model(&exist).Updates(fields).Error; err != nil {
		return err
	}
	v.ID = exist.ID
	return nil
}

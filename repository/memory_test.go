package repository

import (
	"testing"
	"time"

	"menuqr/entity"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMemoryVendors_UpsertCreatesThenMerges(t *testing.T) {
	store := NewMemoryStore()
	vendors := store.Vendors()

	first := entity.Vendor{
		Email:          "owner@example.com",
		RestaurantName: "First Name",
		PhotoURL:       "https://example.com/a.png",
		Provider:       "password",
	}
	assert.NoError(t, vendors.Upsert(&first))
	assert.NotZero(t, first.ID)

	// second upsert for the same email updates in place
	second := entity.Vendor{
		Email:          "owner@example.com",
		RestaurantName: "Renamed",
		Provider:       "google",
	}
	assert.NoError(t, vendors.Upsert(&second))
	assert.Equal(t, first.ID, second.ID)

	got, err := vendors.FindByID(first.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", got.RestaurantName)
	assert.Equal(t, "google", got.Provider)
	// empty photo on the update must not wipe the stored one
	assert.Equal(t, "https://example.com/a.png", got.PhotoURL)

	count, err := vendors.CountByEmail("owner@example.com")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryVendors_UpsertOverwritesPhotoWhenSet(t *testing.T) {
	store := NewMemoryStore()
	vendors := store.Vendors()

	assert.NoError(t, vendors.Upsert(&entity.Vendor{Email: "a@b.com", PhotoURL: "old"}))
	assert.NoError(t, vendors.Upsert(&entity.Vendor{Email: "a@b.com", PhotoURL: "new"}))

	got, err := vendors.FindByEmail("a@b.com")
	assert.NoError(t, err)
	assert.Equal(t, "new", got.PhotoURL)
}

func TestMemoryVendors_NotFound(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Vendors().FindByID(42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = store.Vendors().FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMemoryMenus_UpdateAndIncrement(t *testing.T) {
	store := NewMemoryStore()
	menus := store.Menus()

	m := entity.Menu{PublicID: "pub-1", Name: "Menu", VendorID: 1}
	assert.NoError(t, menus.Create(&m))

	m.Name = "Updated"
	m.WhatsappNumber = "919876543210"
	assert.NoError(t, menus.Update(&m))

	assert.NoError(t, menus.IncrementViewCount(m.ID))
	assert.NoError(t, menus.IncrementViewCount(m.ID))

	got, err := menus.FindByPublicID("pub-1")
	assert.NoError(t, err)
	assert.Equal(t, "Updated", got.Name)
	assert.Equal(t, "919876543210", got.WhatsappNumber)
	assert.Equal(t, int64(2), got.ViewCount)
	assert.NotNil(t, got.LastViewed)
}

func TestMemoryViews_FindRecentByMenu(t *testing.T) {
	store := NewMemoryStore()
	views := store.Views()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		v := entity.MenuView{MenuID: 7, ViewID: string(rune('a' + i))}
		v.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		assert.NoError(t, views.Create(&v))
	}
	// a view for another menu must not leak into the result
	other := entity.MenuView{MenuID: 8, ViewID: "other"}
	other.CreatedAt = base.Add(time.Hour)
	assert.NoError(t, views.Create(&other))

	got, err := views.FindRecentByMenu(7, 3)
	assert.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "e", got[0].ViewID)
	assert.Equal(t, "d", got[1].ViewID)
	assert.Equal(t, "c", got[2].ViewID)
}

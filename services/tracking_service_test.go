package services

import (
	"errors"
	"testing"

	"menuqr/entity"
	"menuqr/pkg/events"
	"menuqr/repository"

	"github.com/stretchr/testify/assert"
)

type failingViews struct{}

func (failingViews) Create(*entity.MenuView) error { return errors.New("store down") }
func (failingViews) FindRecentByMenu(uint, int) ([]entity.MenuView, error) {
	return nil, errors.New("store down")
}

func seedMenu(t *testing.T, store *repository.MemoryStore) *entity.Menu {
	t.Helper()
	svc := NewMenuService(store.Menus())
	menu, err := svc.Create(1, drinksMenuIn())
	assert.NoError(t, err)
	return menu
}

func TestRecordView_IncrementsCounterAndAppendsEvent(t *testing.T) {
	store := repository.NewMemoryStore()
	menu := seedMenu(t, store)

	svc := NewTrackingService(store.Menus(), store.Views(), nil)
	svc.RecordView(menu, ViewContext{
		UserAgent:  "Mozilla/5.0 (iPhone; CPU iPhone OS 16_5 like Mac OS X) Mobile Safari/604.1",
		Referrer:   "https://instagram.com",
		ScreenSize: "390x844",
		Language:   "en-IN",
	})

	got, err := store.Menus().FindByPublicID(menu.PublicID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), got.ViewCount)
	assert.NotNil(t, got.LastViewed)

	views, err := store.Views().FindRecentByMenu(menu.ID, 10)
	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "mobile", views[0].DeviceType)
	assert.Equal(t, "Apple", views[0].DeviceVendor)
	assert.Equal(t, "https://instagram.com", views[0].Referrer)
	assert.Equal(t, "390x844", views[0].ScreenSize)
	assert.Equal(t, menu.VendorID, views[0].VendorID)
	assert.NotEmpty(t, views[0].ViewID)
}

func TestRecordView_DefaultsEmptyFields(t *testing.T) {
	store := repository.NewMemoryStore()
	menu := seedMenu(t, store)

	svc := NewTrackingService(store.Menus(), store.Views(), nil)
	svc.RecordView(menu, ViewContext{})

	views, _ := store.Views().FindRecentByMenu(menu.ID, 10)
	assert.Len(t, views, 1)
	assert.Equal(t, "direct", views[0].Referrer)
	assert.Equal(t, "unknown", views[0].Language)
	assert.Equal(t, "unknown", views[0].DeviceType)
}

func TestRecordView_CounterIndependentOfEventFailure(t *testing.T) {
	store := repository.NewMemoryStore()
	menu := seedMenu(t, store)

	// event append fails, counter still moves by exactly one per visit
	svc := NewTrackingService(store.Menus(), failingViews{}, nil)
	svc.RecordView(menu, ViewContext{})
	svc.RecordView(menu, ViewContext{})

	got, err := store.Menus().FindByPublicID(menu.PublicID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), got.ViewCount)
}

func TestRecordView_PublishesToEmitter(t *testing.T) {
	store := repository.NewMemoryStore()
	menu := seedMenu(t, store)

	emitter := events.NewViewEmitter()
	var received []entity.MenuView
	unsubscribe := emitter.Subscribe(func(v entity.MenuView) { received = append(received, v) })

	svc := NewTrackingService(store.Menus(), store.Views(), emitter)
	svc.RecordView(menu, ViewContext{})
	assert.Len(t, received, 1)
	assert.Equal(t, menu.ID, received[0].MenuID)

	// after unsubscribing nothing more arrives
	unsubscribe()
	svc.RecordView(menu, ViewContext{})
	assert.Len(t, received, 1)
}

func TestRecordView_NoPublishWhenEventFails(t *testing.T) {
	store := repository.NewMemoryStore()
	menu := seedMenu(t, store)

	emitter := events.NewViewEmitter()
	var count int
	emitter.Subscribe(func(entity.MenuView) { count++ })

	svc := NewTrackingService(store.Menus(), failingViews{}, emitter)
	svc.RecordView(menu, ViewContext{})
	assert.Zero(t, count)
}

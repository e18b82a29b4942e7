// repository/memory.go
package repository

import (
	"sort"
	"sync"
	"time"

	"menuqr/entity"

	"gorm.io/gorm"
)

// MemoryStore is the offline substitute for the real database. It lives for
// the lifetime of the process, holds everything in keyed maps, and hands out
// the same repository interfaces as the gorm implementations so nothing
// above it can tell the difference.
type MemoryStore struct {
	mu      sync.Mutex
	vendors map[uint]entity.Vendor
	menus   map[uint]entity.Menu
	views   []entity.MenuView
	nextID  uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		vendors: make(map[uint]entity.Vendor),
		menus:   make(map[uint]entity.Menu),
		nextID:  1,
	}
}

func (s *MemoryStore) Vendors() VendorRepository { return &memoryVendors{s} }
func (s *MemoryStore) Menus() MenuRepository     { return &memoryMenus{s} }
func (s *MemoryStore) Views() ViewRepository     { return &memoryViews{s} }

func (s *MemoryStore) allocID() uint {
	id := s.nextID
	s.nextID++
	return id
}

// ---- vendors ----

type memoryVendors struct{ s *MemoryStore }

func (r *memoryVendors) Create(v *entity.Vendor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v.ID = r.s.allocID()
	v.CreatedAt = time.Now()
	v.UpdatedAt = v.CreatedAt
	r.s.vendors[v.ID] = *v
	return nil
}

func (r *memoryVendors) FindByID(id uint) (*entity.Vendor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.vendors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &v, nil
}

func (r *memoryVendors) FindByEmail(email string) (*entity.Vendor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, v := range r.s.vendors {
		if v.Email == email {
			v := v
			return &v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryVendors) CountByEmail(email string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for _, v := range r.s.vendors {
		if v.Email == email {
			count++
		}
	}
	return count, nil
}

func (r *memoryVendors) Upsert(v *entity.Vendor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, exist := range r.s.vendors {
		if exist.Email == v.Email {
			exist.RestaurantName = v.RestaurantName
			exist.Provider = v.Provider
			if v.PhotoURL != "" {
				exist.PhotoURL = v.PhotoURL
			}
			exist.UpdatedAt = time.Now()
			r.s.vendors[id] = exist
			v.ID = id
			return nil
		}
	}
	v.ID = r.s.allocID()
	v.CreatedAt = time.Now()
	v.UpdatedAt = v.CreatedAt
	r.s.vendors[v.ID] = *v
	return nil
}

// ---- menus ----

type memoryMenus struct{ s *MemoryStore }

func (r *memoryMenus) Create(m *entity.Menu) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m.ID = r.s.allocID()
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	r.s.menus[m.ID] = *m
	return nil
}

func (r *memoryMenus) FindByPublicID(publicID string) (*entity.Menu, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.menus {
		if m.PublicID == publicID {
			m := m
			return &m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryMenus) FindByVendor(vendorID uint) ([]entity.Menu, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var menus []entity.Menu
	for _, m := range r.s.menus {
		if m.VendorID == vendorID {
			menus = append(menus, m)
		}
	}
	sort.Slice(menus, func(i, j int) bool { return menus[i].ID < menus[j].ID })
	return menus, nil
}

func (r *memoryMenus) CountByVendor(vendorID uint) (int64, error) {
	menus, _ := r.FindByVendor(vendorID)
	return int64(len(menus)), nil
}

func (r *memoryMenus) Update(m *entity.Menu) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	exist, ok := r.s.menus[m.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	exist.Name = m.Name
	exist.Description = m.Description
	exist.WhatsappNumber = m.WhatsappNumber
	exist.Categories = m.Categories
	exist.UpdatedAt = time.Now()
	r.s.menus[m.ID] = exist
	return nil
}

func (r *memoryMenus) IncrementViewCount(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.menus[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	m.ViewCount++
	m.LastViewed = &now
	r.s.menus[id] = m
	return nil
}

func (r *memoryMenus) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.menus, id)
	return nil
}

// ---- views ----

type memoryViews struct{ s *MemoryStore }

func (r *memoryViews) Create(v *entity.MenuView) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v.ID = r.s.allocID()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}
	r.s.views = append(r.s.views, *v)
	return nil
}

func (r *memoryViews) FindRecentByMenu(menuID uint, limit int) ([]entity.MenuView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var views []entity.MenuView
	for _, v := range r.s.views {
		if v.MenuID == menuID {
			views = append(views, v)
		}
	}
	sort.Slice(views, func(i, j int) bool { return views[i].CreatedAt.After(views[j].CreatedAt) })
	if len(views) > limit {
		views = views[:limit]
	}
	return views, nil
}

package services

import (
	"errors"
	"strconv"
	"strings"

	"menuqr/entity"
	"menuqr/repository"

	"github.com/google/uuid"
)

var (
	ErrMenuExists   = errors.New("you can only create one menu")
	ErrMenuNotFound = errors.New("menu not found")
	ErrNotMenuOwner = errors.New("menu belongs to another vendor")
)

// MenuService owns the menu document lifecycle. The whole category tree is
// written in one go on every save.
type MenuService struct {
	Repo repository.MenuRepository
}

func NewMenuService(repo repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// ItemIn / CategoryIn mirror the editor form: prices arrive as strings and
// parse with a zero fallback.
type ItemIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type CategoryIn struct {
	Name  string   `json:"name" binding:"required"`
	Items []ItemIn `json:"items"`
}

type MenuIn struct {
	Name           string       `json:"name" binding:"required"`
	Description    string       `json:"description"`
	WhatsappNumber string       `json:"whatsappNumber"`
	Categories     []CategoryIn `json:"categories"`
}

func buildCategories(in []CategoryIn) []entity.Category {
	cats := make([]entity.Category, 0, len(in))
	for _, c := range in {
		items := make([]entity.MenuItem, 0, len(c.Items))
		for _, it := range c.Items {
			price, err := strconv.ParseFloat(strings.TrimSpace(it.Price), 64)
			if err != nil || price < 0 {
				price = 0
			}
			items = append(items, entity.MenuItem{
				Name:        it.Name,
				Description: it.Description,
				Price:       price,
			})
		}
		cats = append(cats, entity.Category{Name: c.Name, Items: items})
	}
	return cats
}

// Create makes the vendor's menu. The one-menu-per-vendor check is a
// read-then-write pre-check, nothing in the store enforces it.
func (s *MenuService) Create(vendorID uint, in *MenuIn) (*entity.Menu, error) {
	count, err := s.Repo.CountByVendor(vendorID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrMenuExists
	}

	menu := &entity.Menu{
		PublicID:       uuid.NewString(),
		Name:           in.Name,
		Description:    in.Description,
		WhatsappNumber: in.WhatsappNumber,
		Categories:     buildCategories(in.Categories),
		VendorID:       vendorID,
	}
	if err := s.Repo.Create(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// Update overwrites the editable fields of the vendor's own menu.
func (s *MenuService) Update(vendorID uint, publicID string, in *MenuIn) (*entity.Menu, error) {
	menu, err := s.Repo.FindByPublicID(publicID)
	if err != nil {
		return nil, ErrMenuNotFound
	}
	if menu.VendorID != vendorID {
		return nil, ErrNotMenuOwner
	}

	menu.Name = in.Name
	menu.Description = in.Description
	menu.WhatsappNumber = in.WhatsappNumber
	menu.Categories = buildCategories(in.Categories)

	if err := s.Repo.Update(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) GetOwned(vendorID uint, publicID string) (*entity.Menu, error) {
	menu, err := s.Repo.FindByPublicID(publicID)
	if err != nil {
		return nil, ErrMenuNotFound
	}
	if menu.VendorID != vendorID {
		return nil, ErrNotMenuOwner
	}
	return menu, nil
}

func (s *MenuService) ListByVendor(vendorID uint) ([]entity.Menu, error) {
	return s.Repo.FindByVendor(vendorID)
}

// GetPublic fetches a menu for the read-only public page.
func (s *MenuService) GetPublic(publicID string) (*entity.Menu, error) {
	menu, err := s.Repo.FindByPublicID(publicID)
	if err != nil {
		return nil, ErrMenuNotFound
	}
	return menu, nil
}

func (s *MenuService) Delete(vendorID uint, publicID string) error {
	menu, err := s.Repo.FindByPublicID(publicID)
	if err != nil {
		return ErrMenuNotFound
	}
	if menu.VendorID != vendorID {
		return ErrNotMenuOwner
	}
	return s.Repo.Delete(menu.ID)
}

package services

import (
	"net/url"
	"strings"
	"testing"

	"menuqr/entity"

	"github.com/stretchr/testify/assert"
)

func testMenu() *entity.Menu {
	m := &entity.Menu{
		Name:           "Main Menu",
		WhatsappNumber: "919876543210",
		Categories: []entity.Category{
			{
				Name: "Drinks",
				Items: []entity.MenuItem{
					{Name: "Cola", Description: "Chilled", Price: 2.5},
					{Name: "Lemonade", Description: "Fresh", Price: 3.0},
				},
			},
		},
	}
	m.ID = 1
	return m
}

func TestCart_AddSameItemTwice(t *testing.T) {
	s := NewCartService()
	menu := testMenu()

	token, err := s.Add("", menu, "Cola")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	token2, err := s.Add(token, menu, "Cola")
	assert.NoError(t, err)
	assert.Equal(t, token, token2)

	lines, total, err := s.Lines(token)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2*2.5, total)
}

func TestCart_AddUnknownItem(t *testing.T) {
	s := NewCartService()
	_, err := s.Add("", testMenu(), "Pizza")
	assert.ErrorIs(t, err, ErrItemNotOnMenu)
}

func TestCart_UpdateQuantity(t *testing.T) {
	s := NewCartService()
	menu := testMenu()

	token, _ := s.Add("", menu, "Cola")
	_, _ = s.Add(token, menu, "Lemonade")

	assert.NoError(t, s.UpdateQuantity(token, "Cola", 3))
	lines, total, _ := s.Lines(token)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 3*2.5+3.0, total)

	// zero removes the line
	assert.NoError(t, s.UpdateQuantity(token, "Cola", 0))
	lines, total, _ = s.Lines(token)
	assert.Len(t, lines, 1)
	assert.Equal(t, "Lemonade", lines[0].Item.Name)
	assert.Equal(t, 3.0, total)
}

func TestOrderMessage(t *testing.T) {
	lines := []CartLine{
		{Item: entity.MenuItem{Name: "Cola", Price: 2.5}, Quantity: 2},
		{Item: entity.MenuItem{Name: "Lemonade", Price: 3.0}, Quantity: 1},
	}
	msg := OrderMessage("Main Menu", lines, 8.0)

	assert.Equal(t, "*New Order from: Main Menu*\n\n1. Cola x2 - ₹5.00\n2. Lemonade x1 - ₹3.00\n\n*Total: ₹8.00*", msg)
}

func TestCart_OrderLink(t *testing.T) {
	s := NewCartService()
	menu := testMenu()

	token, _ := s.Add("", menu, "Cola")
	_, _ = s.Add(token, menu, "Cola")

	link, message, total, err := s.OrderLink(token, menu)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, total)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="))

	encoded := strings.TrimPrefix(link, "https://wa.me/919876543210?text=")
	decoded, err := url.QueryUnescape(encoded)
	assert.NoError(t, err)
	assert.Equal(t, message, decoded)
	assert.Contains(t, message, "Cola x2")

	// the cart is gone after the hand-off
	_, _, err = s.Lines(token)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCart_OrderLinkErrors(t *testing.T) {
	s := NewCartService()
	menu := testMenu()

	// no whatsapp number configured
	bare := testMenu()
	bare.WhatsappNumber = ""
	token, _ := s.Add("", bare, "Cola")
	_, _, _, err := s.OrderLink(token, bare)
	assert.ErrorIs(t, err, ErrNoWhatsapp)

	// unknown cart
	_, _, _, err = s.OrderLink("missing", menu)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

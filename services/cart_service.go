package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"menuqr/entity"

	"github.com/google/uuid"
)

var (
	ErrCartNotFound  = errors.New("cart not found")
	ErrItemNotOnMenu = errors.New("item is not on this menu")
	ErrCartEmpty     = errors.New("cart is empty")
	ErrNoWhatsapp    = errors.New("vendor whatsapp number not available")
)

type CartLine struct {
	Item     entity.MenuItem `json:"item"`
	Quantity int             `json:"quantity"`
}

type cart struct {
	menuID uint
	lines  map[string]*CartLine
	order  []string // item names in the order they were first added
}

// CartService keeps ephemeral per-visitor carts keyed by an opaque token.
// A cart maps item name to {item, quantity}; adding an item already present
// bumps the quantity. Carts never touch the store and die with the process.
type CartService struct {
	mu    sync.Mutex
	carts map[string]*cart
}

func NewCartService() *CartService {
	return &CartService{carts: make(map[string]*cart)}
}

func findItem(menu *entity.Menu, name string) (entity.MenuItem, bool) {
	for _, c := range menu.Categories {
		for _, it := range c.Items {
			if it.Name == name {
				return it, true
			}
		}
	}
	return entity.MenuItem{}, false
}

// Add puts one unit of the named item into the cart, creating the cart when
// token is empty. Returns the (possibly new) token.
func (s *CartService) Add(token string, menu *entity.Menu, itemName string) (string, error) {
	item, ok := findItem(menu, itemName)
	if !ok {
		return "", ErrItemNotOnMenu
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ct, ok := s.carts[token]
	if !ok {
		token = uuid.NewString()
		ct = &cart{menuID: menu.ID, lines: make(map[string]*CartLine)}
		s.carts[token] = ct
	}

	if line, ok := ct.lines[item.Name]; ok {
		line.Quantity++
	} else {
		ct.lines[item.Name] = &CartLine{Item: item, Quantity: 1}
		ct.order = append(ct.order, item.Name)
	}
	return token, nil
}

// UpdateQuantity sets the quantity of a line; zero or less removes it.
func (s *CartService) UpdateQuantity(token, itemName string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ct, ok := s.carts[token]
	if !ok {
		return ErrCartNotFound
	}
	line, ok := ct.lines[itemName]
	if !ok {
		return ErrItemNotOnMenu
	}
	if qty <= 0 {
		delete(ct.lines, itemName)
		for i, n := range ct.order {
			if n == itemName {
				ct.order = append(ct.order[:i], ct.order[i+1:]...)
				break
			}
		}
		return nil
	}
	line.Quantity = qty
	return nil
}

// Lines returns the cart contents in insertion order plus the running total.
func (s *CartService) Lines(token string) ([]CartLine, float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ct, ok := s.carts[token]
	if !ok {
		return nil, 0, ErrCartNotFound
	}
	out := make([]CartLine, 0, len(ct.order))
	var total float64
	for _, name := range ct.order {
		line := ct.lines[name]
		out = append(out, *line)
		total += line.Item.Price * float64(line.Quantity)
	}
	return out, total, nil
}

func (s *CartService) Clear(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, token)
}

// OrderMessage renders the cart as the pre-filled order text.
func OrderMessage(menuName string, lines []CartLine, total float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*New Order from: %s*\n\n", menuName)
	for i, line := range lines {
		fmt.Fprintf(&b, "%d. %s x%d - ₹%.2f\n", i+1, line.Item.Name, line.Quantity, line.Item.Price*float64(line.Quantity))
	}
	fmt.Fprintf(&b, "\n*Total: ₹%.2f*", total)
	return b.String()
}

// OrderLink builds the messaging hand-off for the cart: a wa.me URL with the
// order text pre-filled for the vendor's stored number. No order record is
// written anywhere; the cart is cleared once the link is produced.
func (s *CartService) OrderLink(token string, menu *entity.Menu) (string, string, float64, error) {
	if menu.WhatsappNumber == "" {
		return "", "", 0, ErrNoWhatsapp
	}
	lines, total, err := s.Lines(token)
	if err != nil {
		return "", "", 0, err
	}
	if len(lines) == 0 {
		return "", "", 0, ErrCartEmpty
	}

	message := OrderMessage(menu.Name, lines, total)
	link := fmt.Sprintf("https://wa.me/%s?text=%s", menu.WhatsappNumber, url.QueryEscape(message))
	s.Clear(token)
	return link, message, total, nil
}

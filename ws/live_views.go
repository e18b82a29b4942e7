package ws

import (
	"log"
	"net/http"
	"sync"

	"menuqr/entity"
	"menuqr/pkg/events"
	"menuqr/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// ViewsHub streams freshly recorded menu views to the owning vendor's open
// dashboard sockets.
type ViewsHub struct {
	clients    map[uint]map[*websocket.Conn]bool // vendorID -> set of clients
	broadcast  chan entity.MenuView
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn     *websocket.Conn
	VendorID uint
}

func NewViewsHub(emitter *events.ViewEmitter) *ViewsHub {
	h := &ViewsHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan entity.MenuView, 16),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
	emitter.Subscribe(func(v entity.MenuView) {
		// drop rather than block the tracking path
		select {
		case h.broadcast <- v:
		default:
		}
	})
	return h
}

func (h *ViewsHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.VendorID] == nil {
				h.clients[sub.VendorID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.VendorID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.VendorID][sub.Conn]; ok {
				delete(h.clients[sub.VendorID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case view := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[view.VendorID] {
				if err := conn.WriteJSON(view); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[view.VendorID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/views (behind auth middleware)
func (h *ViewsHub) HandleWebSocket(c *gin.Context) {
	vendorID := utils.CurrentVendorID(c)
	if vendorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, VendorID: vendorID}
	h.register <- sub

	// reader loop exists only to notice the close
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

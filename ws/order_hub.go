package ws

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/PunitTak2005/restaurant-qr-menu/entity"
)

// Event is what every connected client receives on an order mutation.
type Event struct {
	Event string        `json:"event"` // order:new | order:update | order:delete
	Order *entity.Order `json:"order,omitempty"`
	ID    uint          `json:"id,omitempty"` // set for order:delete
}

// OrderHub broadcasts order events to every connected client. No replay,
// no acks; clients that fail a write are dropped and fall back to polling.
type OrderHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Event
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
	logger     *zap.Logger
}

func NewOrderHub(logger *zap.Logger) *OrderHub {
	return &OrderHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Event, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		logger:     logger,
	}
}

// Run owns the client set; start it once at boot.
func (h *OrderHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					h.logger.Warn("ws write error", zap.Error(err))
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Notifier implementation used by the order service.

func (h *OrderHub) OrderCreated(o *entity.Order) {
	h.broadcast <- Event{Event: "order:new", Order: o}
}

func (h *OrderHub) OrderUpdated(o *entity.Order) {
	h.broadcast <- Event{Event: "order:update", Order: o}
}

func (h *OrderHub) OrderDeleted(orderID uint) {
	h.broadcast <- Event{Event: "order:delete", ID: orderID}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("ws upgrade error", zap.Error(err))
		return
	}

	h.register <- conn
	go h.listen(conn)
}

// listen drains the connection until the client goes away; subscribers
// never send application messages.
func (h *OrderHub) listen(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

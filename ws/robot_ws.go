package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/vermaanurag1532/Restro-sub000/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// CallHub pushes robot-call status changes to every client watching a
// restaurant.
type CallHub struct {
	clients    map[string]map[*websocket.Conn]bool // restaurantID -> connections
	broadcast  chan *entity.RobotCall
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	conn         *websocket.Conn
	restaurantID string
}

func NewCallHub() *CallHub {
	return &CallHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan *entity.RobotCall),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

func (h *CallHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.restaurantID] == nil {
				h.clients[sub.restaurantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.restaurantID][sub.conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.restaurantID][sub.conn]; ok {
				delete(h.clients[sub.restaurantID], sub.conn)
				sub.conn.Close()
			}
			h.mu.Unlock()

		case call := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[call.RestaurantID] {
				if err := conn.WriteJSON(call); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[call.RestaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastCall satisfies services.CallNotifier.
func (h *CallHub) BroadcastCall(call *entity.RobotCall) {
	h.broadcast <- call
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/robot-calls/:restaurantId
func (h *CallHub) HandleWebSocket(c *gin.Context) {
	restID := c.Param("restaurantId")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	sub := subscription{conn: conn, restaurantID: restID}
	h.register <- sub

	// Reads are discarded; the socket exists for pushes. Exit unregisters.
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

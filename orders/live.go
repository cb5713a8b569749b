package orders

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"vastra/db"
	"vastra/middleware"
	"vastra/models"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Live status feed: shoppers subscribe to their order's room and admin
// status updates are pushed as they happen.

type Client struct {
	Send chan []byte
	Room string
	conn *websocket.Conn
}

type broadcastMsg struct {
	Room string
	Data []byte
}

type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.Room] == nil {
				h.rooms[c.Room] = make(map[*Client]bool)
			}
			h.rooms[c.Room][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			// The broadcast path may have evicted the client already;
			// closing Send twice would panic.
			if conns := h.rooms[c.Room]; conns != nil && conns[c] {
				delete(conns, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.Room] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.rooms[m.Room], c)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for room, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

var feed = NewHub()

// StartFeed runs the status hub; call once from main.
func StartFeed() *Hub {
	go feed.Run()
	return feed
}

type statusPayload struct {
	Type          string `json:"type"`
	OrderID       string `json:"orderId"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}

// BroadcastStatus pushes the order's current status to its subscribers.
func BroadcastStatus(order models.Order) {
	data, err := json.Marshal(statusPayload{
		Type:          "order_update",
		OrderID:       order.OrderID,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
	})
	if err != nil {
		return
	}
	select {
	case feed.broadcast <- broadcastMsg{Room: order.OrderID, Data: data}:
	default:
		log.Printf("Warning: status feed full, dropping update for %s", order.OrderID)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// OrderUpdates upgrades to a websocket scoped to one order. Browsers
// cannot set headers on the upgrade, so the token rides in ?token=.
func OrderUpdates(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	token := r.Header.Get("Authorization")
	if token == "" {
		token = "Bearer " + r.URL.Query().Get("token")
	}
	claims, err := middleware.ValidateJWT(token)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orderID := ps.ByName("orderid")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var order models.Order
	if err := db.OrderCollection.FindOne(ctx, bson.M{"orderid": orderID}).Decode(&order); err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if order.UserID != claims.UserID && !claims.IsAdmin {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("OrderUpdates upgrade error:", err)
		return
	}

	client := &Client{
		Send: make(chan []byte, 16),
		Room: orderID,
		conn: conn,
	}
	feed.register <- client

	go client.writePump()
	go client.readPump()
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.Send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// readPump only watches for the peer going away.
func (c *Client) readPump() {
	defer func() {
		feed.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

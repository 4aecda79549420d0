package adminapi

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Event is one structural tournament-lifecycle notification (for
// example a tournament starting or finishing). Type names
// the kind of event; Data carries its type-specific payload (e.g. a
// wire.TournamentFinishedMessage for "tournament_finished").
type Event struct {
	TournamentID string      `json:"tournament_id"`
	Type         string      `json:"type"`
	Data         interface{} `json:"data,omitempty"`
}

// wsClient is one subscriber to a single tournament's event stream.
type wsClient struct {
	hub          *Hub
	conn         *websocket.Conn
	send         chan []byte
	tournamentID string
}

// Hub fans out Events to every websocket subscriber of the matching
// tournament id.
type Hub struct {
	subscribers map[string]map[*wsClient]bool
	broadcast   chan *Event
	register    chan *wsClient
	unregister  chan *wsClient
}

// NewHub returns an idle Hub; call Run in its own goroutine to start
// its event loop.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[*wsClient]bool),
		broadcast:   make(chan *Event),
		register:    make(chan *wsClient),
		unregister:  make(chan *wsClient),
	}
}

// Run drives the hub's event loop until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.registerClient(c)
		case c := <-h.unregister:
			h.unregisterClient(c)
		case e := <-h.broadcast:
			h.broadcastEvent(e)
		}
	}
}

// ServeWS upgrades r to a websocket connection subscribed to
// tournamentID's event stream.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, tournamentID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("adminapi: websocket upgrade failed: %v", err)
		return
	}
	c := &wsClient{hub: h, conn: conn, send: make(chan []byte, 256), tournamentID: tournamentID}
	h.register <- c
	go c.writePump()
	go c.readPump()
}

// Publish sends e to every subscriber of e.TournamentID.
func (h *Hub) Publish(e *Event) {
	h.broadcast <- e
}

func (h *Hub) registerClient(c *wsClient) {
	if h.subscribers[c.tournamentID] == nil {
		h.subscribers[c.tournamentID] = make(map[*wsClient]bool)
	}
	h.subscribers[c.tournamentID][c] = true
}

func (h *Hub) unregisterClient(c *wsClient) {
	if clients, ok := h.subscribers[c.tournamentID]; ok {
		if _, ok := clients[c]; ok {
			delete(clients, c)
			close(c.send)
			if len(clients) == 0 {
				delete(h.subscribers, c.tournamentID)
			}
		}
	}
}

func (h *Hub) broadcastEvent(e *Event) {
	data, err := json.Marshal(e)
	if err != nil {
		log.Printf("adminapi: failed to marshal event: %v", err)
		return
	}
	for client := range h.subscribers[e.TournamentID] {
		select {
		case client.send <- data:
		default:
			h.unregisterClient(client)
		}
	}
}

func (c *wsClient) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)
			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

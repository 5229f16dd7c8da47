package status

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	INFO = iota
	ERROR
	PROGRESS
)

type status struct {
	Message  string
	Time     time.Time
	Type     int
	Progress float32
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

func (c *client) writePump() {
	ticker := time.NewTicker(time.Second * 30)
	defer func() {
		ticker.Stop()
		c.hub.unregister(c)
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(40 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Printf("[status] ws write msg error: %v", err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(40 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("[status] ws write ping error: %v", err)
				return
			}
		}
	}
}

// readPump drains client frames so close and pong are handled
func (c *client) readPump() {
	defer c.hub.unregister(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Hub fans status messages out to websocket clients. Newly connected
// clients get the last message first.
type Hub struct {
	broadcast   chan *status
	lock        sync.Mutex
	clients     map[*client]bool
	lastMessage []byte
}

func NewHub() *Hub {
	h := &Hub{
		broadcast: make(chan *status, 16),
		clients:   make(map[*client]bool),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for s := range h.broadcast {
		data, err := json.Marshal(s)
		if err != nil {
			log.Printf("[status] marshal error: %v", err)
			continue
		}
		h.lock.Lock()
		h.lastMessage = data
		for c := range h.clients {
			select {
			case c.send <- data:
			default:
				// slow client, it will catch up from the next message
			}
		}
		h.lock.Unlock()
	}
}

// Attach starts serving conn until either side closes it
func (h *Hub) Attach(conn *websocket.Conn) {
	c := &client{hub: h, conn: conn, send: make(chan []byte, 32)}

	h.lock.Lock()
	h.clients[c] = true
	if h.lastMessage != nil {
		c.send <- h.lastMessage
	}
	h.lock.Unlock()

	go c.writePump()
	go c.readPump()
}

func (h *Hub) unregister(c *client) {
	h.lock.Lock()
	defer h.lock.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) Last() []byte {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.lastMessage
}

func (h *Hub) Status(msg string, _type int, progress float32) {
	if math.IsNaN(float64(progress)) || math.IsInf(float64(progress), 0) {
		progress = 0
	}
	h.broadcast <- &status{
		Message:  msg,
		Time:     time.Now(),
		Type:     _type,
		Progress: progress}
}

var defaultHub = NewHub()

func Default() *Hub {
	return defaultHub
}

func (h *Hub) Info(format string, a ...interface{}) {
	h.Status(fmt.Sprintf(format, a...), INFO, 0.0)
}

func (h *Hub) Error(format string, a ...interface{}) {
	h.Status(fmt.Sprintf(format, a...), ERROR, 0.0)
}

func (h *Hub) Progress(progress float32, format string, a ...interface{}) {
	h.Status(fmt.Sprintf(format, a...), PROGRESS, progress)
}

// Package relay is the real-time half of the messaging layer: a fan-out hub
// over live websocket connections. It never persists anything; clients store
// messages through the REST API separately.
package relay

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
)

// Conn is the subset of a websocket connection the hub needs. Satisfied by
// *websocket.Conn.
type Conn interface {
	ReadJSON(v interface{}) error
	WriteJSON(v interface{}) error
	Close() error
}

// Event is the wire envelope for both directions.
type Event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Client -> server events.
const (
	EventJoinRoom    = "join_room"
	EventTyping      = "typing"
	EventSendMessage = "send_message"
)

// Server -> client events.
const (
	EventTypingRes      = "typing_res"
	EventReceiveMessage = "receive_message"
)

type client struct {
	conn Conn

	// writeMu serializes writes; fan-out may hit the same conn from
	// several reader goroutines.
	writeMu sync.Mutex

	rooms map[string]struct{}
}

func (c *client) send(ev Event) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(ev)
}

// Hub tracks live clients and the rooms they joined. There is no delivery
// acknowledgment: a client that disconnects mid-broadcast silently misses the
// event.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	log     *logrus.Entry
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		log:     logrus.WithField("component", "relay"),
	}
}

// Serve runs the read loop for one connection and blocks until the client
// disconnects or sends something unreadable.
func (h *Hub) Serve(conn Conn) {
	c := h.register(conn)
	defer h.unregister(c)

	for {
		var ev Event
		if err := conn.ReadJSON(&ev); err != nil {
			h.log.WithError(err).Debug("client read loop ended")
			return
		}
		h.dispatch(c, ev)
	}
}

// ClientCount reports the number of live connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(conn Conn) *client {
	c := &client{conn: conn, rooms: make(map[string]struct{})}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	total := len(h.clients)
	h.mu.Unlock()
	h.log.WithField("clients", total).Info("client connected")
	return c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	total := len(h.clients)
	h.mu.Unlock()
	_ = c.conn.Close()
	h.log.WithField("clients", total).Info("client disconnected")
}

func (h *Hub) dispatch(c *client, ev Event) {
	switch ev.Event {
	case EventJoinRoom:
		var room string
		if err := json.Unmarshal(ev.Data, &room); err != nil || room == "" {
			h.log.WithError(err).Warn("bad join_room payload")
			return
		}
		h.join(c, room)

	case EventTyping:
		// Room-scoped, unlike the global broadcast this replaced; typing
		// indicators no longer leak across rooms.
		h.relay(c, ev.Data, EventTypingRes)

	case EventSendMessage:
		h.relay(c, ev.Data, EventReceiveMessage)

	default:
		h.log.WithField("event", ev.Event).Warn("unknown event")
	}
}

func (h *Hub) join(c *client, room string) {
	h.mu.Lock()
	c.rooms[room] = struct{}{}
	h.mu.Unlock()
	h.log.WithField("room", room).Info("client joined room")
}

// relay forwards the payload to every other client joined to the payload's
// room. No ordering is guaranteed across rooms.
func (h *Hub) relay(sender *client, data json.RawMessage, outEvent string) {
	var target struct {
		RoomName string `json:"roomName"`
	}
	if err := json.Unmarshal(data, &target); err != nil || target.RoomName == "" {
		h.log.Warn("relay payload without roomName")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if c == sender {
			continue
		}
		if _, ok := c.rooms[target.RoomName]; !ok {
			continue
		}
		if err := c.send(Event{Event: outEvent, Data: data}); err != nil {
			h.log.WithError(err).Warn("dropped delivery")
		}
	}
}

// Package ws is the realtime layer: a room-based hub that fans
// published events out to every connection currently joined to a room,
// and the per-connection read/write pumps. Delivery is at-most-once
// and best-effort; a subscriber that is disconnected or too slow
// simply misses the event.
package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/glemuel/chabrush/internal/store"
)

type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client

	messages store.MessageStore
	groups   store.GroupRegistry
}

// NewHub wires the hub to the stores it needs: the message store for
// connection-originated sends and the group registry for gating group
// room joins on current membership.
func NewHub(messages store.MessageStore, groups store.GroupRegistry) *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		messages:   messages,
		groups:     groups,
	}
}

// Run owns connection lifecycle. It should be started once, in its own
// goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			go client.writePump()
			go client.readPump()
			slog.Info("client connected", "conn", client.id, "addr", client.addr)
		case client := <-h.unregister:
			h.dropClient(client)
			slog.Info("client disconnected", "conn", client.id, "addr", client.addr)
		}
	}
}

// Join subscribes the connection to a room. Rooms are named by
// username (a user's inbox) or by group name.
func (h *Hub) Join(c *Client, room string) {
	if room == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if c.closed {
		return
	}
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[room] = members
	}
	members[c] = struct{}{}
	c.rooms[room] = struct{}{}
}

func (h *Hub) Leave(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(c, room)
}

func (h *Hub) leaveLocked(c *Client, room string) {
	if members, ok := h.rooms[room]; ok {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(c.rooms, room)
}

// Publish delivers an event to every connection in the room.
func (h *Hub) Publish(room, event string, data any) {
	h.PublishExcept(room, nil, event, data)
}

// PublishExcept is Publish minus one connection; typing indicators use
// it to skip their originator.
func (h *Hub) PublishExcept(room string, sender *Client, event string, data any) {
	payload, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		slog.Error("marshal event", "event", event, "err", err)
		return
	}

	h.mu.RLock()
	targets := make([]*Client, 0, len(h.rooms[room]))
	for client := range h.rooms[room] {
		if client != sender {
			targets = append(targets, client)
		}
	}
	h.mu.RUnlock()

	var failed []*Client
	for _, client := range targets {
		if !h.trySend(client, payload) {
			failed = append(failed, client)
		}
	}
	for _, client := range failed {
		slog.Warn("dropping slow client", "conn", client.id, "room", room)
		h.dropClient(client)
	}
}

// notify sends an event to a single connection, outside any room.
func (h *Hub) notify(c *Client, event string, data any) {
	payload, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		slog.Error("marshal event", "event", event, "err", err)
		return
	}
	if !h.trySend(c, payload) {
		h.dropClient(c)
	}
}

func (h *Hub) trySend(c *Client, payload []byte) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

// dropClient removes the connection from every room and closes its
// send channel exactly once. Safe to call from both the run loop and
// publish paths.
func (h *Hub) dropClient(c *Client) {
	h.mu.Lock()
	if c.closed {
		h.mu.Unlock()
		return
	}
	c.closed = true
	for room := range c.rooms {
		h.leaveLocked(c, room)
	}
	h.mu.Unlock()

	close(c.send)
	if c.conn != nil {
		c.conn.Close()
	}
}

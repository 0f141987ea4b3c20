package gateway

import (
	"log"
	"sort"
	"sync"

	"github.com/KirkDiggler/duels/internal/protocol"
)

// Hub tracks live connections and the duel rooms they sit in. It is the
// duel service's Broadcaster; every method returns without blocking.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]*connection
	rooms map[string]map[string]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		conns: make(map[string]*connection),
		rooms: make(map[string]map[string]struct{}),
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c.id] = c
}

// unregister forgets the connection and drops it from every room
func (h *Hub) unregister(connectionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.conns, connectionID)
	for roomID, members := range h.rooms {
		delete(members, connectionID)
		if len(members) == 0 {
			delete(h.rooms, roomID)
		}
	}
}

// JoinRoom adds a connection to a room
func (h *Hub) JoinRoom(roomID, connectionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.rooms[roomID]
	if !ok {
		members = make(map[string]struct{})
		h.rooms[roomID] = members
	}
	members[connectionID] = struct{}{}
}

// LeaveRoom removes a connection from a room
func (h *Hub) LeaveRoom(roomID, connectionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.rooms[roomID]
	if !ok {
		return
	}
	delete(members, connectionID)
	if len(members) == 0 {
		delete(h.rooms, roomID)
	}
}

// CloseRoom forgets a room. Connections stay open.
func (h *Hub) CloseRoom(roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms, roomID)
}

// SendTo queues an envelope for one connection
func (h *Hub) SendTo(connectionID string, env *protocol.Envelope) {
	msg, err := env.Marshal()
	if err != nil {
		log.Printf("gateway: failed to encode %s err=%v", env.Event, err)
		return
	}

	h.mu.RLock()
	c, ok := h.conns[connectionID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	h.deliver(c, msg)
}

// BroadcastToRoom queues an envelope for every room member except one
func (h *Hub) BroadcastToRoom(roomID string, env *protocol.Envelope, exceptConnectionID string) {
	msg, err := env.Marshal()
	if err != nil {
		log.Printf("gateway: failed to encode %s err=%v", env.Event, err)
		return
	}

	h.mu.RLock()
	targets := make([]*connection, 0, len(h.rooms[roomID]))
	for connectionID := range h.rooms[roomID] {
		if connectionID == exceptConnectionID {
			continue
		}
		if c, ok := h.conns[connectionID]; ok {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range targets {
		h.deliver(c, msg)
	}
}

// Members returns the connections in a room, sorted
func (h *Hub) Members(roomID string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	members := make([]string, 0, len(h.rooms[roomID]))
	for connectionID := range h.rooms[roomID] {
		members = append(members, connectionID)
	}
	sort.Strings(members)
	return members
}

// Close shuts every connection
func (h *Hub) Close() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.conns {
		c.close()
	}
}

// deliver drops a connection that cannot keep up instead of stalling the sender
func (h *Hub) deliver(c *connection, msg []byte) {
	if !c.enqueue(msg) {
		log.Printf("gateway: dropping slow or closed connection=%s", c.id)
		c.close()
	}
}

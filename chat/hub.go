// Package chat fans persisted messages out to live websocket subscribers.
// The hub is best-effort: a slow or broken connection is dropped, delivery is
// never acknowledged back to the message sender.
package chat

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/venturemate/marketplace-go/models"
)

type Hub struct {
	mu     sync.RWMutex
	groups map[uint]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{groups: make(map[uint]map[*websocket.Conn]bool)}
}

func (h *Hub) Subscribe(groupID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.groups[groupID] == nil {
		h.groups[groupID] = make(map[*websocket.Conn]bool)
	}
	h.groups[groupID][conn] = true
}

func (h *Hub) Unsubscribe(groupID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.groups[groupID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.groups, groupID)
		}
	}
}

// BroadcastGroup writes the message to every subscriber of the group,
// dropping connections that fail.
func (h *Hub) BroadcastGroup(groupID uint, message models.Message) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.groups[groupID]))
	for conn := range h.groups[groupID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(message); err != nil {
			log.Printf("chat: dropping subscriber of group %d: %v", groupID, err)
			conn.Close()
			h.Unsubscribe(groupID, conn)
		}
	}
}

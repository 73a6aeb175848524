package notification

import (
	"sync"
)

// Hub fans unread-count updates out to connected admin clients. Each
// websocket connection registers one subscriber.
type Hub struct {
	mu   sync.RWMutex
	subs map[*subscriber]struct{}
}

type subscriber struct {
	adminID string
	ch      chan int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*subscriber]struct{})}
}

// Subscribe registers a client for one admin. The returned cancel
// function must be called when the connection closes.
func (h *Hub) Subscribe(adminID string) (<-chan int, func()) {
	sub := &subscriber{
		adminID: adminID,
		ch:      make(chan int, 8),
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[sub]; ok {
			delete(h.subs, sub)
			close(sub.ch)
		}
		h.mu.Unlock()
	}
	return sub.ch, cancel
}

// Push delivers a fresh unread count to every connection of the admin.
// Slow clients are skipped rather than blocked on.
func (h *Hub) Push(adminID string, count int) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs {
		if sub.adminID != adminID {
			continue
		}
		select {
		case sub.ch <- count:
		default:
		}
	}
}

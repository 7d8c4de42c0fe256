package chat

import "sync"

// Hub is an in-process publish/subscribe registry for the single chat
// room. Each connected client subscribes and receives every published
// line, including its own.
type Hub struct {
	mu   sync.Mutex
	next int
	subs map[int]chan string
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan string)}
}

// Subscribe registers a new client and returns its id plus the channel
// broadcasts arrive on. The channel is closed on Unsubscribe.
func (h *Hub) Subscribe() (int, <-chan string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	id := h.next
	ch := make(chan string, 16)
	h.subs[id] = ch
	return id, ch
}

func (h *Hub) Unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
}

// Publish fans a line out to every current subscriber. A subscriber
// whose buffer is full misses the line rather than blocking the sender.
func (h *Hub) Publish(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- line:
		default:
		}
	}
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

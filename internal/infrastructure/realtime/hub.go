// Package realtime avisa as telas abertas de um cliente quando documentos,
// pastas ou membros mudam
package realtime

import (
	"context"
	"sync"
	"time"

	"github.com/rafabene/docrepo-backend/internal/domain/ports"
)

// subscriberBuffer é quantos eventos um assinante lento pode acumular antes
// de começar a perder eventos
const subscriberBuffer = 16

// Event é o aviso enviado aos assinantes
type Event struct {
	ClientID string    `json:"clientId"`
	Kind     string    `json:"kind"`
	At       time.Time `json:"at"`
}

var _ ports.Revalidator = (*Hub)(nil)

// Hub faz fan-out de eventos por cliente
type Hub struct {
	mu          sync.Mutex
	subscribers map[string]map[chan Event]struct{}
	log         ports.Logger
	now         func() time.Time
}

// NewHub cria um hub vazio
func NewHub(log ports.Logger) *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
		log:         log,
		now:         time.Now,
	}
}

// Subscribe registra um assinante para o cliente. A função retornada
// cancela a assinatura e fecha o canal; pode ser chamada mais de uma vez.
func (h *Hub) Subscribe(clientID string) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	set, ok := h.subscribers[clientID]
	if !ok {
		set = make(map[chan Event]struct{})
		h.subscribers[clientID] = set
	}
	set[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			delete(h.subscribers[clientID], ch)
			if len(h.subscribers[clientID]) == 0 {
				delete(h.subscribers, clientID)
			}
			close(ch)
		})
	}

	return ch, cancel
}

// Publish entrega o evento sem bloquear; assinantes com buffer cheio perdem o evento
func (h *Hub) Publish(_ context.Context, event Event) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for ch := range h.subscribers[event.ClientID] {
		select {
		case ch <- event:
			delivered++
		default:
			h.log.Warn("dropping live refresh event for slow subscriber",
				"client_id", event.ClientID,
				"kind", event.Kind,
			)
		}
	}
	return delivered
}

// Revalidate implementa ports.Revalidator
func (h *Hub) Revalidate(ctx context.Context, clientID, kind string) {
	h.Publish(ctx, Event{ClientID: clientID, Kind: kind, At: h.now()})
}

// Subscribers retorna quantos assinantes o cliente tem
func (h *Hub) Subscribers(clientID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers[clientID])
}

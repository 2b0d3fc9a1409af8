package server

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"citadels-console/internal/engine"
	"citadels-console/internal/protocol"
)

const feedSize = 256

// private events carry cards or input only the acting player may see.
var private = map[engine.EventType]bool{
	engine.EventCardKept:      true,
	engine.EventInputRejected: true,
}

type frame struct {
	event, state []byte
}

// Hub fans game events out to spectators. Publish is called from the
// game loop; everything else runs on the hub goroutine and only sees
// already encoded messages.
type Hub struct {
	gameID string
	log    logrus.FieldLogger

	register   chan *Client
	unregister chan *Client
	feed       chan frame
	done       chan struct{}
	seq        uint64

	mu      sync.Mutex
	clients map[*Client]bool
	state   []byte
	payload []byte
}

func NewHub(gameID string, log logrus.FieldLogger) *Hub {
	return &Hub{
		gameID:     gameID,
		log:        log,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		feed:       make(chan frame, feedSize),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
	}
}

// Publish queues an event and the public view after it. It never blocks:
// when spectators fall behind the update is dropped.
func (h *Hub) Publish(ev engine.Event, view engine.PublicViewData) {
	if private[ev.Type] {
		return
	}
	h.seq++
	evEnv, err := protocol.NewEnvelope(protocol.MsgEvent, ev)
	if err != nil {
		h.log.WithError(err).Warn("encode event")
		return
	}
	stEnv, err := protocol.NewEnvelope(protocol.MsgGameState, view)
	if err != nil {
		h.log.WithError(err).Warn("encode state")
		return
	}
	evEnv.Seq, stEnv.Seq = h.seq, h.seq
	evData, _ := json.Marshal(evEnv)
	stData, _ := json.Marshal(stEnv)

	select {
	case h.feed <- frame{event: evData, state: stData}:
	default:
		h.log.WithField("seq", h.seq).Warn("spectator feed full, dropping update")
	}
}

// Subscribe is a game event sink that publishes to h.
func (h *Hub) Subscribe(g *engine.Game) {
	g.Subscribe(func(ev engine.Event) { h.Publish(ev, g.PublicView()) })
}

// State returns the latest public view as JSON, or nil before the first
// update.
func (h *Hub) State() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.payload
}

// join registers client; it reports false once the hub has stopped.
func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Run serves registrations and the feed until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) error {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			state := h.state
			h.mu.Unlock()
			client.SendEnvelope(protocol.MustEnvelope(protocol.MsgHello, protocol.Hello{GameID: h.gameID, ClientID: client.ID}))
			if state != nil {
				client.Send(state)
			}
			h.log.WithField("client", client.ID).Info("spectator joined")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case f := <-h.feed:
			h.mu.Lock()
			h.state = f.state
			var env protocol.Envelope
			if err := json.Unmarshal(f.state, &env); err == nil {
				h.payload = env.Payload
			}
			h.mu.Unlock()
			h.broadcastAll(f.event)
			h.broadcastAll(f.state)

		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return nil
		}
	}
}

func (h *Hub) broadcastAll(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.Send(data)
	}
}

package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"

	qr "citadels-console/internal/qrcode"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	Hub *Hub
}

func NewHandlers(hub *Hub) *Handlers {
	return &Handlers{Hub: hub}
}

// HandleState returns the latest public view.
func (h *Handlers) HandleState(w http.ResponseWriter, r *http.Request) {
	state := h.Hub.State()
	if state == nil {
		http.Error(w, "game not started", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(state)
}

// HandleQR generates a QR code PNG pointing at the state endpoint.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	png, err := qr.Generate(StateURL(r.Host))
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleWS upgrades a spectator connection.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Hub.log.WithError(err).Warn("ws upgrade")
		return
	}

	client := NewClient(h.Hub, conn)
	if !h.Hub.join(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}

// StateURL is the address spectators open for the public view.
func StateURL(host string) string {
	return fmt.Sprintf("http://%s/api/state", host)
}

package controller

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Mutation events fan out to every connected client, the frontend refreshes
// affected views from them.
type MutationEvent struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     int64  `json:"id"`
}

type hub struct {
	mutex   sync.Mutex
	clients map[*websocket.Conn]bool
}

var eventHub = &hub{clients: map[*websocket.Conn]bool{}}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Notify broadcasts a mutation. Dead connections are dropped on write
// failure.
func Notify(entity string, action string, id int64) {
	eventHub.mutex.Lock()
	defer eventHub.mutex.Unlock()
	for conn := range eventHub.clients {
		if err := conn.WriteJSON(MutationEvent{Entity: entity, Action: action, ID: id}); err != nil {
			conn.Close()
			delete(eventHub.clients, conn)
		}
	}
}

// WebSocket upgrades the request and registers the client until it
// disconnects.
func (t *AbstractController) WebSocket() {
	conn, err := upgrader.Upgrade(t.Ctx.ResponseWriter, t.Ctx.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	eventHub.mutex.Lock()
	eventHub.clients[conn] = true
	eventHub.mutex.Unlock()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	eventHub.mutex.Lock()
	delete(eventHub.clients, conn)
	eventHub.mutex.Unlock()
	conn.Close()
}

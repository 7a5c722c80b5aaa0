package realtime

import (
	"encoding/json"
	"log"
)

// Event names pushed to every connected client after a mutation
// commits. Clients patch their local view or re-fetch the snapshot.
const (
	EventPlayerAdded        = "player_added"
	EventRouteAdded         = "route_added"
	EventCatchUpdated       = "catch_updated"
	EventGlobalOrderToggled = "global_order_toggled"
	EventRouteStatusUpdated = "route_status_updated"
	EventAllDataReset       = "all_data_reset"
	EventRouteDeleted       = "route_deleted"
	EventRouteDataCleared   = "route_data_cleared"
	EventFullDBReset        = "full_db_reset"
	EventConfigSaved        = "config_saved"
	EventConfigsReloaded    = "configs_reloaded"
	EventRestoreCompleted   = "restore_completed"
	EventImportCompleted    = "import_completed"
)

// Event is the wire envelope for one broadcast message.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// Hub fans committed-state events out to all connected clients.
// Delivery is fire-and-forget: each client has a buffered outbound
// queue and a client that cannot drain it in time is dropped instead
// of blocking the fan-out.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			return
		case client := <-h.register:
			h.clients[client] = true
			log.Printf("realtime: client connected (%d total)", len(h.clients))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("realtime: client disconnected (%d total)", len(h.clients))
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					delete(h.clients, client)
					close(client.send)
					log.Println("realtime: dropping slow client")
				}
			}
		}
	}
}

// Stop ends the Run loop. Client pumps are not touched here; they exit
// on their own when their connections drop.
func (h *Hub) Stop() {
	close(h.done)
}

// Broadcast queues an event for every connected client. Errors are
// logged and swallowed; a failed broadcast must never fail the
// mutation that triggered it.
func (h *Hub) Broadcast(event string, data interface{}) {
	payload, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		log.Printf("realtime: failed to encode %s event: %v", event, err)
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		log.Printf("realtime: broadcast queue full, dropping %s event", event)
	}
}

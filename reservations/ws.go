package reservations

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	subscribers = make(map[string][]*websocket.Conn)
	mu          sync.Mutex
)

func topicKey(restaurantID, date string) string {
	return "restaurant_" + restaurantID + "_" + date
}

// GET /ws/restaurants/:id/:date
//
// Clients subscribe to one restaurant/date pair and receive an update
// message whenever a slot is held, confirmed or released.
func HandleAvailabilityWS(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	key := topicKey(ps.ByName("id"), ps.ByName("date"))

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "WebSocket upgrade failed", http.StatusBadRequest)
		return
	}

	mu.Lock()
	subscribers[key] = append(subscribers[key], conn)
	mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	mu.Lock()
	conns := subscribers[key]
	newList := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if c != conn {
			newList = append(newList, c)
		}
	}
	subscribers[key] = newList
	mu.Unlock()

	conn.Close()
}

type wsMessage struct {
	Type         string `json:"type"`
	RestaurantID string `json:"restaurantid"`
	Date         string `json:"date"`
}

// BroadcastAvailability nudges subscribed clients to refetch the slot grid.
func BroadcastAvailability(restaurantID, date string) {
	msg := wsMessage{Type: "availability", RestaurantID: restaurantID, Date: date}
	data, _ := json.Marshal(msg)
	broadcast(topicKey(restaurantID, date), data)
}

func broadcast(key string, val []byte) {
	mu.Lock()
	defer mu.Unlock()

	conns := subscribers[key]
	newList := conns[:0]

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, val); err == nil {
			newList = append(newList, conn)
		} else {
			conn.Close()
		}
	}

	subscribers[key] = newList
}

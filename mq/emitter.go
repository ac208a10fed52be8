package mq

import (
	"context"
	"encoding/json"
	"log"

	"fairway/rdx"
)

const channel = "fairway-events"

// Event is the envelope published for every domain happening: catalog
// mutations, bookings, reviews, lock transitions. Consumers fan it out to
// search indexing, notification mail and the admin activity feed.
type Event struct {
	Name       string `json:"name"`
	EntityType string `json:"entity_type,omitempty"`
	EntityID   string `json:"entity_id,omitempty"`
	UserID     string `json:"user_id,omitempty"`
}

// Emit publishes an event to Redis. Failures are logged and swallowed;
// event delivery never fails a user request.
func Emit(ctx context.Context, e Event) {
	data, err := json.Marshal(e)
	if err != nil {
		log.Printf("mq: marshal %s failed: %v", e.Name, err)
		return
	}
	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("mq: publish %s failed: %v", e.Name, err)
	}
}

// StartWorker consumes the event stream. Handlers are registered per event
// name; unknown events are logged and dropped.
func StartWorker(ctx context.Context, handlers map[string]func(Event)) {
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	go func() {
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var e Event
				if err := json.Unmarshal([]byte(msg.Payload), &e); err != nil {
					log.Printf("mq: bad payload: %v", err)
					continue
				}
				if h, found := handlers[e.Name]; found {
					h(e)
				}
			}
		}
	}()
}

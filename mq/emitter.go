package mq

import (
	"context"
	"encoding/json"
	"log"

	"vastra/rdx"
)

const channel = "store-events"

// Event is a fire-and-forget domain notification. Nothing in the request
// path waits on its delivery.
type Event struct {
	Name     string `json:"name"`
	EntityID string `json:"entity_id"`
	UserID   string `json:"user_id"`
}

// Emit publishes an event to Redis. Failures are logged and dropped.
func Emit(ctx context.Context, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] failed to marshal event: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("[Emit] failed to publish %s: %v", event.Name, err)
	}
}

// StartWorker consumes events and dispatches side effects (currently
// confirmation mail). Runs until the process exits.
func StartWorker(handle func(Event)) {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[Worker] listening for store events...")

	for msg := range ch {
		var event Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[Worker] failed to parse event: %v", err)
			continue
		}
		handle(event)
	}
}

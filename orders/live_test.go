package orders

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: "ORDtest1",
	}

	hub.register <- client

	payload := statusPayload{
		Type:          "order_update",
		OrderID:       "ORDtest1",
		Status:        "dispatched",
		PaymentStatus: "paid",
	}
	data, _ := json.Marshal(payload)
	hub.broadcast <- broadcastMsg{Room: "ORDtest1", Data: data}

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.unregister <- client
}

func TestHubUnregisterAfterBroadcastEviction(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// Unbuffered Send with no reader: the first broadcast takes the
	// drop path, which closes Send and evicts the client.
	slow := &Client{Send: make(chan []byte), Room: "ORDslow"}
	hub.register <- slow
	hub.broadcast <- broadcastMsg{Room: "ORDslow", Data: []byte("update")}

	// Connection teardown still reports the client. This must be a
	// no-op, not a second close.
	hub.unregister <- slow

	// The hub must keep serving the room afterwards.
	fresh := &Client{Send: make(chan []byte, 1), Room: "ORDslow"}
	hub.register <- fresh
	hub.broadcast <- broadcastMsg{Room: "ORDslow", Data: []byte("update")}

	select {
	case <-fresh.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("hub stopped serving after duplicate teardown")
	}
}

func TestHubBroadcastIsRoomScoped(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	mine := &Client{Send: make(chan []byte, 10), Room: "ORDmine"}
	other := &Client{Send: make(chan []byte, 10), Room: "ORDother"}
	hub.register <- mine
	hub.register <- other

	hub.broadcast <- broadcastMsg{Room: "ORDmine", Data: []byte("update")}

	select {
	case <-mine.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for room message")
	}

	select {
	case msg := <-other.Send:
		t.Fatalf("other room received message: %s", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

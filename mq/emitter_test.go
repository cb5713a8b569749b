package mq

import (
	"context"
	"testing"
	"time"
)

// Emit runs on the request path now, so it must return promptly and
// swallow failures instead of blocking or panicking, even when the
// request context is already dead.
func TestEmitWithCancelledContextReturns(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		Emit(ctx, Event{Name: "order-placed", EntityID: "ORDtest", UserID: "u1"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Emit blocked on a cancelled context")
	}
}

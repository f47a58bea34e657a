package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"career-advisor/internal/domain/career"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestHub_BroadcastsNotification(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil)
	go hub.Run(ctx)

	client := NewClient(hub, nil)
	hub.Register(client)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	n := NewNotifier(hub)
	n.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	n.NotifyRecommendation("rec-1", career.CategoryMobile, "Mobile App Developer")

	select {
	case msg := <-client.send:
		var evt RecommendationEvent
		if err := json.Unmarshal(msg, &evt); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		want := RecommendationEvent{
			Type:             EventRecommendationCreated,
			RecommendationID: "rec-1",
			CareerID:         "mobile_dev",
			CareerPath:       "Mobile App Developer",
			Timestamp:        "2026-01-02T03:04:05Z",
		}
		if evt != want {
			t.Fatalf("expected %+v, got %+v", want, evt)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no message delivered")
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil)
	go hub.Run(ctx)

	client := NewClient(hub, nil)
	hub.Register(client)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.Unregister(client)
	waitFor(t, func() bool { return hub.ClientCount() == 0 })

	if _, ok := <-client.send; ok {
		t.Fatalf("expected send channel to be closed")
	}
}

func TestNotifier_NilHub(t *testing.T) {
	t.Parallel()

	var n *Notifier
	n.NotifyRecommendation("x", career.CategoryMobile, "Mobile App Developer")
	NewNotifier(nil).NotifyRecommendation("x", career.CategoryMobile, "Mobile App Developer")
}

func TestHub_AfterShutdownNeverBlocks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	hub := NewHub(nil)
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	connected := NewClient(hub, nil)
	hub.Register(connected)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	cancel()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatalf("hub did not stop")
	}

	if _, ok := <-connected.send; ok {
		t.Fatalf("expected connected client send to be closed")
	}

	late := NewClient(hub, nil)
	finished := make(chan struct{})
	go func() {
		hub.Register(late)
		// More than the unregister buffer holds.
		for i := 0; i < 500; i++ {
			hub.Unregister(late)
			hub.Unregister(connected)
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatalf("register/unregister blocked after shutdown")
	}

	if _, ok := <-late.send; ok {
		t.Fatalf("expected late client send to be closed")
	}
	if hub.ClientCount() != 0 {
		t.Fatalf("expected no clients after shutdown, got %d", hub.ClientCount())
	}
}

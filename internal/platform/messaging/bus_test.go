package messaging

import (
	"context"
	"testing"
	"time"

	"clipops/internal/shared/events"
)

func TestPublishDeliversToSubscriber(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := NewBus(nil)
	received := make(chan events.Envelope, 1)
	bus.Subscribe(ctx, events.TopicSubmissionApproved, func(_ context.Context, event events.Envelope) error {
		received <- event
		return nil
	})

	err := bus.Publish(ctx, events.TopicSubmissionApproved, events.Envelope{EventID: "evt_1"})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case event := <-received:
		if event.EventID != "evt_1" {
			t.Fatalf("unexpected event %+v", event)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive event")
	}
}

func TestPublishIsScopedToTopic(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := NewBus(nil)
	received := make(chan events.Envelope, 1)
	bus.Subscribe(ctx, events.TopicSubmissionRejected, func(_ context.Context, event events.Envelope) error {
		received <- event
		return nil
	})

	if err := bus.Publish(ctx, events.TopicSubmissionApproved, events.Envelope{EventID: "evt_1"}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case event := <-received:
		t.Fatalf("subscriber on another topic received %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishWithoutSubscribersSucceeds(t *testing.T) {
	bus := NewBus(nil)
	if err := bus.Publish(context.Background(), "nobody.listens", events.Envelope{EventID: "evt_1"}); err != nil {
		t.Fatalf("publish to empty topic failed: %v", err)
	}
}

func TestSubscriberStopsOnContextCancel(t *testing.T) {
	subCtx, subCancel := context.WithCancel(context.Background())
	bus := NewBus(nil)

	received := make(chan events.Envelope, 1)
	bus.Subscribe(subCtx, events.TopicSweepCompleted, func(_ context.Context, event events.Envelope) error {
		received <- event
		return nil
	})
	subCancel()

	// wait for the consumer loop to deregister itself
	deadline := time.Now().Add(time.Second)
	for {
		bus.mu.RLock()
		remaining := len(bus.subscribers[events.TopicSweepCompleted])
		bus.mu.RUnlock()
		if remaining == 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("subscriber was not removed after cancel")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := bus.Publish(context.Background(), events.TopicSweepCompleted, events.Envelope{EventID: "evt_2"}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	select {
	case event := <-received:
		t.Fatalf("cancelled subscriber received %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

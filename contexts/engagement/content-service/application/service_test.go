package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"clipops/contexts/engagement/content-service/adapters/memory"
	"clipops/contexts/engagement/content-service/domain"
	"clipops/internal/shared/events"
)

func newService(store *memory.Store) Service {
	return Service{Store: store, Clock: store, IDGen: store}
}

func TestGenerateRendersAndPersists(t *testing.T) {
	store := memory.NewStore()
	store.NowFunc = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}
	service := newService(store)

	content, err := service.Generate(context.Background(), GenerateInput{
		Template: " welcome_message ",
		Audience: "creator_42",
		Fields:   map[string]string{"creator_name": "Jordan"},
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if content.ContentID == "" {
		t.Fatal("expected a generated content id")
	}
	if content.Template != "welcome_message" {
		t.Fatalf("expected trimmed template name, got %q", content.Template)
	}
	if content.Body != "Welcome Jordan! You're in. Browse the active campaigns and submit your first clip to start earning." {
		t.Fatalf("unexpected body %q", content.Body)
	}
	if !content.GeneratedAt.Equal(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected timestamp %v", content.GeneratedAt)
	}

	saved, err := store.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(saved) != 1 || saved[0].ContentID != content.ContentID {
		t.Fatalf("content not persisted, got %+v", saved)
	}
}

func TestGenerateRejectsMissingFields(t *testing.T) {
	service := newService(memory.NewStore())

	_, err := service.Generate(context.Background(), GenerateInput{
		Template: "submission_approved",
		Fields:   map[string]string{"campaign_title": "Summer Launch"},
	})
	if !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestGenerateRejectsUnknownTemplate(t *testing.T) {
	service := newService(memory.NewStore())

	_, err := service.Generate(context.Background(), GenerateInput{Template: "nope"})
	if !errors.Is(err, domain.ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestListRecentClampsLimit(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	for i := 0; i < 30; i++ {
		_, err := service.Generate(context.Background(), GenerateInput{
			Template: "welcome_message",
			Fields:   map[string]string{"creator_name": "Jordan"},
		})
		if err != nil {
			t.Fatalf("seed generate failed: %v", err)
		}
	}

	defaulted, err := service.ListRecent(context.Background(), 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(defaulted) != 20 {
		t.Fatalf("expected default limit 20, got %d", len(defaulted))
	}
}

func TestHandleReviewEventApproved(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	service.HandleReviewEvent(context.Background(), events.TopicSubmissionApproved, events.Envelope{
		Payload: map[string]any{
			"submission_id": "sub_1",
			"submitter_id":  "creator_42",
			"campaign_id":   "camp_1",
			"payout_amount": 125.5,
		},
	})

	saved, err := store.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("expected one notification, got %d", len(saved))
	}
	if saved[0].Template != "submission_approved" {
		t.Fatalf("unexpected template %q", saved[0].Template)
	}
	if saved[0].Audience != "creator_42" {
		t.Fatalf("unexpected audience %q", saved[0].Audience)
	}
	if saved[0].Fields["payout_amount"] != "125.50" {
		t.Fatalf("unexpected payout formatting %q", saved[0].Fields["payout_amount"])
	}
}

func TestHandleReviewEventRejectedUsesReason(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	service.HandleReviewEvent(context.Background(), events.TopicSubmissionRejected, events.Envelope{
		Payload: map[string]any{
			"submitter_id":  "creator_42",
			"campaign_id":   "camp_1",
			"status_reason": "off-topic content",
		},
	})

	saved, err := store.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("expected one notification, got %d", len(saved))
	}
	if saved[0].Fields["reason"] != "off-topic content" {
		t.Fatalf("unexpected reason %q", saved[0].Fields["reason"])
	}
}

func TestHandleReviewEventDropsBadPayload(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	service.HandleReviewEvent(context.Background(), events.TopicSubmissionApproved, events.Envelope{
		Payload: "not a map",
	})
	service.HandleReviewEvent(context.Background(), "some.other.topic", events.Envelope{
		Payload: map[string]any{"campaign_id": "camp_1"},
	})

	saved, err := store.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(saved) != 0 {
		t.Fatalf("expected no notifications, got %d", len(saved))
	}
}

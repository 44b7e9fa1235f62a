package application

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"clipops/contexts/engagement/content-service/domain"
	"clipops/contexts/engagement/content-service/ports"
	"clipops/internal/shared/events"
)

type Service struct {
	Store  ports.Store
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

type GenerateInput struct {
	Template string
	Audience string
	Fields   map[string]string
}

func (s Service) Generate(ctx context.Context, input GenerateInput) (ports.GeneratedContent, error) {
	name := domain.TemplateName(strings.TrimSpace(input.Template))
	body, err := domain.Render(name, input.Fields)
	if err != nil {
		return ports.GeneratedContent{}, err
	}

	content := ports.GeneratedContent{
		ContentID:   s.IDGen.NewID(),
		Template:    string(name),
		Audience:    strings.TrimSpace(input.Audience),
		Body:        body,
		Fields:      input.Fields,
		GeneratedAt: s.Clock.Now().UTC(),
	}
	if err := s.Store.SaveContent(ctx, content); err != nil {
		return ports.GeneratedContent{}, fmt.Errorf("save generated content: %w", err)
	}

	s.logger().Info("content generated",
		"event", "content_generated",
		"module", "engagement/content-service",
		"layer", "application",
		"content_id", content.ContentID,
		"template", content.Template,
	)
	return content, nil
}

func (s Service) ListRecent(ctx context.Context, limit int) ([]ports.GeneratedContent, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 200 {
		limit = 200
	}
	return s.Store.ListRecent(ctx, limit)
}

// HandleReviewEvent turns review decisions into creator-facing notifications.
// Unknown topics and malformed payloads are logged and dropped.
func (s Service) HandleReviewEvent(ctx context.Context, topic string, envelope events.Envelope) {
	payload, ok := envelope.Payload.(map[string]any)
	if !ok {
		s.logger().Warn("review event payload not a map, dropping",
			"event", "content_review_event_dropped",
			"module", "engagement/content-service",
			"layer", "application",
			"topic", topic,
		)
		return
	}

	fields := map[string]string{
		"campaign_title": payloadString(payload, "campaign_id"),
		"payout_amount":  formatAmount(payload["payout_amount"]),
		"reason":         payloadString(payload, "status_reason"),
	}

	var template domain.TemplateName
	switch topic {
	case events.TopicSubmissionApproved:
		template = domain.TemplateSubmissionApproved
	case events.TopicSubmissionRejected:
		template = domain.TemplateSubmissionRejected
	default:
		return
	}

	_, err := s.Generate(ctx, GenerateInput{
		Template: string(template),
		Audience: payloadString(payload, "submitter_id"),
		Fields:   fields,
	})
	if err != nil {
		s.logger().Warn("review event content generation failed",
			"event", "content_review_event_failed",
			"module", "engagement/content-service",
			"layer", "application",
			"topic", topic,
			"error", err,
		)
	}
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func payloadString(payload map[string]any, key string) string {
	value, _ := payload[key].(string)
	return value
}

func formatAmount(value any) string {
	amount, ok := value.(float64)
	if !ok {
		return "0.00"
	}
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

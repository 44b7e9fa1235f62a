package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestPlaceholdersReportsTemplateFields(t *testing.T) {
	fields, err := Placeholders(TemplateSubmissionRejected)
	if err != nil {
		t.Fatalf("placeholders failed: %v", err)
	}
	want := []string{"campaign_title", "reason"}
	if len(fields) != len(want) {
		t.Fatalf("expected %v, got %v", want, fields)
	}
	for i, field := range want {
		if fields[i] != field {
			t.Fatalf("expected %v, got %v", want, fields)
		}
	}
}

func TestPlaceholdersUnknownTemplate(t *testing.T) {
	_, err := Placeholders(TemplateName("bogus"))
	if !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestRenderSubstitutesAllFields(t *testing.T) {
	body, err := Render(TemplateSubmissionApproved, map[string]string{
		"campaign_title": "Summer Launch",
		"payout_amount":  "125.50",
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(body, "Summer Launch") || !strings.Contains(body, "$125.50") {
		t.Fatalf("unexpected render output %q", body)
	}
	if strings.Contains(body, "{{") {
		t.Fatalf("unsubstituted placeholder left in %q", body)
	}
}

func TestRenderRequiresEveryField(t *testing.T) {
	_, err := Render(TemplateSubmissionRejected, map[string]string{
		"campaign_title": "Summer Launch",
		"reason":         "   ",
	})
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField for blank reason, got %v", err)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render(TemplateName("bogus"), nil)
	if !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestTemplateNamesCoversRegistry(t *testing.T) {
	names := TemplateNames()
	if len(names) != 5 {
		t.Fatalf("expected 5 templates, got %d", len(names))
	}
	seen := make(map[TemplateName]bool, len(names))
	for _, name := range names {
		seen[name] = true
	}
	for _, want := range []TemplateName{
		TemplateWelcomeMessage,
		TemplateCampaignAnnouncement,
		TemplateSubmissionApproved,
		TemplateSubmissionRejected,
		TemplatePayoutNotification,
	} {
		if !seen[want] {
			t.Fatalf("template %s missing from %v", want, names)
		}
	}
}

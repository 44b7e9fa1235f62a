package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// TemplateName identifies a canned content template.
type TemplateName string

const (
	TemplateWelcomeMessage       TemplateName = "welcome_message"
	TemplateCampaignAnnouncement TemplateName = "campaign_announcement"
	TemplateSubmissionApproved   TemplateName = "submission_approved"
	TemplateSubmissionRejected   TemplateName = "submission_rejected"
	TemplatePayoutNotification   TemplateName = "payout_notification"
)

var templates = map[TemplateName]string{
	TemplateWelcomeMessage:       "Welcome {{creator_name}}! You're in. Browse the active campaigns and submit your first clip to start earning.",
	TemplateCampaignAnnouncement: "New campaign live: {{campaign_title}}. Budget: ${{budget}}. Submit your clips before the budget runs out.",
	TemplateSubmissionApproved:   "Your clip for {{campaign_title}} was approved! Payout of ${{payout_amount}} is on its way.",
	TemplateSubmissionRejected:   "Your clip for {{campaign_title}} was not approved. Reason: {{reason}}. You can submit a new clip anytime.",
	TemplatePayoutNotification:   "You've been paid ${{payout_amount}} for {{campaign_title}}. Keep clipping!",
}

var placeholderPattern = regexp.MustCompile(`\{\{([a-z_]+)\}\}`)

// Placeholders returns the field names a template expects.
func Placeholders(name TemplateName) ([]string, error) {
	body, ok := templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}
	matches := placeholderPattern.FindAllStringSubmatch(body, -1)
	fields := make([]string, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for _, match := range matches {
		if !seen[match[1]] {
			seen[match[1]] = true
			fields = append(fields, match[1])
		}
	}
	return fields, nil
}

// Render substitutes fields into the named template. Every placeholder the
// template declares must be present.
func Render(name TemplateName, fields map[string]string) (string, error) {
	body, ok := templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}
	required, _ := Placeholders(name)
	for _, field := range required {
		if strings.TrimSpace(fields[field]) == "" {
			return "", fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}
	rendered := placeholderPattern.ReplaceAllStringFunc(body, func(token string) string {
		key := placeholderPattern.FindStringSubmatch(token)[1]
		return fields[key]
	})
	return rendered, nil
}

// TemplateNames lists the registered templates.
func TemplateNames() []TemplateName {
	names := make([]TemplateName, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	return names
}

package ports

import (
	"context"
	"time"
)

// GeneratedContent is a rendered piece of templated content.
type GeneratedContent struct {
	ContentID   string            `json:"content_id"`
	Template    string            `json:"template"`
	Audience    string            `json:"audience,omitempty"`
	Body        string            `json:"body"`
	Fields      map[string]string `json:"fields,omitempty"`
	GeneratedAt time.Time         `json:"generated_at"`
}

type Store interface {
	SaveContent(ctx context.Context, content GeneratedContent) error
	ListRecent(ctx context.Context, limit int) ([]GeneratedContent, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID() string
}

package webhooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
)

var (
	ErrMissingSignature = errors.New("missing webhook signature")
	ErrBadSignature     = errors.New("webhook signature mismatch")
	ErrBadPayload       = errors.New("malformed webhook payload")
)

// Verifier checks inbound platform webhook signatures. The platform signs the
// raw body with HMAC-SHA256 and sends the hex digest as "sha256=<hex>".
type Verifier struct {
	Secret string
}

func (v Verifier) Verify(body []byte, signatureHeader string) error {
	signature := strings.TrimSpace(signatureHeader)
	if signature == "" {
		return ErrMissingSignature
	}
	signature = strings.TrimPrefix(signature, "sha256=")

	mac := hmac.New(sha256.New, []byte(v.Secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrBadSignature
	}
	return nil
}

// Event is the platform's webhook delivery shape.
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	CreatedAt string          `json:"created_at"`
	Data      json.RawMessage `json:"data"`
}

// Handler processes one verified webhook event.
type Handler func(event Event) error

// Dispatcher routes verified events to registered handlers by event type.
// Unknown event types are acknowledged and ignored so the platform does not
// retry them forever.
type Dispatcher struct {
	handlers map[string]Handler
	logger   *slog.Logger
}

func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string]Handler),
		logger:   logger,
	}
}

func (d *Dispatcher) On(eventType string, handler Handler) {
	d.handlers[eventType] = handler
}

// Dispatch decodes the body and runs the matching handler.
func (d *Dispatcher) Dispatch(body []byte) error {
	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return ErrBadPayload
	}
	if strings.TrimSpace(event.Type) == "" {
		return ErrBadPayload
	}

	handler, ok := d.handlers[event.Type]
	if !ok {
		if d.logger != nil {
			d.logger.Info("unhandled webhook event type acknowledged",
				"event", "webhook_event_ignored",
				"module", "internal/platform/webhooks",
				"layer", "platform",
				"webhook_event_id", event.ID,
				"webhook_event_type", event.Type,
			)
		}
		return nil
	}
	if err := handler(event); err != nil {
		if d.logger != nil {
			d.logger.Error("webhook handler failed",
				"event", "webhook_handler_failed",
				"module", "internal/platform/webhooks",
				"layer", "platform",
				"webhook_event_id", event.ID,
				"webhook_event_type", event.Type,
				"error", err.Error(),
			)
		}
		return err
	}
	return nil
}

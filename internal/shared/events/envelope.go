package events

import "time"

// Envelope is the shared event shape passed between clipops modules.
// Review decisions, sweep summaries and webhook intake all travel in it.
type Envelope struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	SourceService string    `json:"source_service"`
	OccurredAtUTC time.Time `json:"occurred_at_utc"`
	EntityType    string    `json:"entity_type"`
	EntityID      string    `json:"entity_id"`
	Payload       any       `json:"payload"`
}

// Review-flow topics.
const (
	TopicSubmissionApproved = "submission.approved"
	TopicSubmissionRejected = "submission.rejected"
	TopicSweepCompleted     = "sweep.completed"
)

package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	TypeRecordCreated = "record.created"
	TypeRecordUpdated = "record.updated"
	TypeRecordDeleted = "record.deleted"
)

// NewRecordEvent describes a mutation of a back-office record for the audit
// trail. Entity is the table-level name (user, customer, employee); actorID is
// the authenticated user that performed the mutation.
func NewRecordEvent(eventType, entity string, recordID, actorID int64) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"entity":    entity,
			"record_id": recordID,
			"actor_id":  actorID,
		},
	}
}

// AuditLogger returns a handler that writes record mutations to the
// structured log.
func AuditLogger(logger *slog.Logger) Handler {
	return func(ctx context.Context, event Event) error {
		logger.Info("audit",
			"event_type", event.EventType(),
			"event_id", event.EventID(),
			"occurred_at", event.OccurredAt(),
			"payload", event.Payload())
		return nil
	}
}

package audit

import (
	"time"

	"github.com/google/uuid"

	"prisonerprofile/internal/platform/metrics"
)

// Publisher accepts audit events without blocking the request path. Events
// flow through a bounded buffer to the worker; when the buffer is full the
// event is dropped and counted, because auditing must never slow or fail a
// page view.
type Publisher struct {
	inbox chan Event
}

// NewPublisher creates a publisher with the given buffer capacity.
func NewPublisher(capacity int) *Publisher {
	return &Publisher{inbox: make(chan Event, capacity)}
}

// Emit records a staff access. It never blocks and never returns an error.
func (p *Publisher) Emit(event Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case p.inbox <- event:
	default:
		metrics.AuditEventDropped()
	}
}

// Inbox exposes the event channel for the worker.
func (p *Publisher) Inbox() <-chan Event {
	return p.inbox
}

package audit

import (
	"context"
	"log/slog"
)

// Store is the audit sink. Implementations must tolerate concurrent appends.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// Worker consumes audit events from the publisher's inbox and persists them.
// Append failures are logged and the worker keeps draining: losing an audit
// event is preferable to backing up the request path.
type Worker struct {
	store  Store
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store Store, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "audit append failed",
					"event_id", event.ID,
					"action", event.Action,
					"error", err,
				)
			}
		}
	}
}

package notify

import (
	"context"
	"log"

	"github.com/google/uuid"
)

// NoopNotifier logs and drops every event. Used when no broker is
// configured and in tests.
type NoopNotifier struct{}

func (NoopNotifier) Notify(_ context.Context, kind Kind, recipient uuid.UUID, _ interface{}) error {
	log.Printf("Notification dropped (no broker configured): kind=%s recipient=%s", kind, recipient)
	return nil
}

func (NoopNotifier) Close() error { return nil }

var _ Notifier = NoopNotifier{}

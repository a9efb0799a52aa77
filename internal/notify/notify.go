package notify

import (
	"context"

	"github.com/google/uuid"
)

// Kind identifies which lifecycle event a notification describes. Each
// application/state transition dispatches exactly one kind.
type Kind string

const (
	KindApplicationReceived Kind = "application.received"
	KindApplicationAccepted Kind = "application.accepted"
	KindTestSubmitted       Kind = "test.submitted"
	KindApplicationPassed   Kind = "application.passed"
	KindContractSigned      Kind = "contract.signed"
	KindContractApproved    Kind = "contract.approved"
	KindApplicationRejected Kind = "application.rejected"
	KindSubscriptionGranted Kind = "subscription.granted"
)

// Notifier dispatches a notification-and-email event to the delivery
// pipeline. Callers invoke it after their transaction commits and never
// treat a dispatch failure as a failure of the triggering operation.
type Notifier interface {
	Notify(ctx context.Context, kind Kind, recipient uuid.UUID, payload interface{}) error
	Close() error
}

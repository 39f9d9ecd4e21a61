package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	JobStatusPending = "pending"
	JobStatusSent    = "sent"
	JobStatusFailed  = "failed"
)

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Attempts  int
	Status    string
	LastError *string
	CreatedAt time.Time
}

// Outbox is read by the relay worker outside of booking transactions.
type Outbox interface {
	// ClaimDue takes up to limit pending jobs due at now and hides them from other
	// claimers until now+lease. A claim that is never marked becomes due again.
	ClaimDue(ctx context.Context, now time.Time, lease time.Duration, limit int) ([]NotificationJob, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string, retryAt time.Time, giveUp bool) error
}

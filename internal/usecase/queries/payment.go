package queries

import (
	"context"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/user"

	"github.com/google/uuid"
)

type PaymentQueries interface {
	// ListByUser returns payment history, newest first.
	ListByUser(ctx context.Context, actor user.Actor, userID uuid.UUID) ([]*PaymentView, error)
}

type PaymentViewRepo interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	repo    PaymentViewRepo
	timeout time.Duration
}

func NewPaymentQueries(repo PaymentViewRepo, timeout time.Duration) PaymentQueries {
	return &paymentQueriesImpl{repo: repo, timeout: timeout}
}

func (q *paymentQueriesImpl) ListByUser(ctx context.Context, actor user.Actor, userID uuid.UUID) ([]*PaymentView, error) {
	if !actor.CanAccess(userID) {
		return nil, ErrAccessDenied
	}

	ctx, cancel := withTimeout(ctx, q.timeout)
	defer cancel()

	rows, err := q.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

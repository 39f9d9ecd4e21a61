package queries

import (
	"context"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/user"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error)
	// ListByUser returns the user's reservations, latest arrival first.
	ListByUser(ctx context.Context, actor user.Actor, userID uuid.UUID) ([]*ReservationView, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo    ReservationViewRepo
	timeout time.Duration
}

func NewReservationQueries(repo ReservationViewRepo, timeout time.Duration) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, timeout: timeout}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error) {
	ctx, cancel := withTimeout(ctx, q.timeout)
	defer cancel()

	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(notFoundAs(err, ErrReservationNotFound))
	}
	// someone else's reservation is reported as missing
	if !actor.CanAccess(view.UserID) {
		return nil, ErrReservationNotFound
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, actor user.Actor, userID uuid.UUID) ([]*ReservationView, error) {
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

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

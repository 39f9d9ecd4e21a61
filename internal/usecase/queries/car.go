package queries

import (
	"context"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/user"

	"github.com/google/uuid"
)

type CarQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*CarView, error)
	// ListByUser returns the user's cars in registration order.
	ListByUser(ctx context.Context, actor user.Actor, userID uuid.UUID) ([]*CarView, error)
}

type CarViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CarView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*CarView, error)
}

type carQueriesImpl struct {
	repo    CarViewRepo
	timeout time.Duration
}

func NewCarQueries(repo CarViewRepo, timeout time.Duration) CarQueries {
	return &carQueriesImpl{repo: repo, timeout: timeout}
}

func (q *carQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*CarView, error) {
	ctx, cancel := withTimeout(ctx, q.timeout)
	defer cancel()

	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(notFoundAs(err, ErrCarNotFound))
	}
	if !actor.CanAccess(view.UserID) {
		return nil, ErrCarNotFound
	}
	return view, nil
}

func (q *carQueriesImpl) ListByUser(ctx context.Context, actor user.Actor, userID uuid.UUID) ([]*CarView, error) {
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

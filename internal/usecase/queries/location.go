package queries

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type LocationQueries interface {
	List(ctx context.Context) ([]*LocationView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*LocationView, error)
}

type LocationViewRepo interface {
	FindAll(ctx context.Context) ([]*LocationView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*LocationView, error)
}

// LocationCache holds short-lived copies of location reads. A miss is (nil, false, nil).
type LocationCache interface {
	GetList(ctx context.Context) ([]*LocationView, bool, error)
	SetList(ctx context.Context, views []*LocationView) error
	Get(ctx context.Context, id uuid.UUID) (*LocationView, bool, error)
	Set(ctx context.Context, view *LocationView) error
}

type locationQueriesImpl struct {
	repo    LocationViewRepo
	cache   LocationCache
	logger  *slog.Logger
	timeout time.Duration
}

func NewLocationQueries(repo LocationViewRepo, cache LocationCache, logger *slog.Logger, timeout time.Duration) LocationQueries {
	return &locationQueriesImpl{
		repo:    repo,
		cache:   cache,
		logger:  logger,
		timeout: timeout,
	}
}

// Cache failures degrade to a direct read.
func (q *locationQueriesImpl) List(ctx context.Context) ([]*LocationView, error) {
	if views, ok, err := q.cache.GetList(ctx); err != nil {
		q.logger.WarnContext(ctx, "location cache read failed", slog.String("error", err.Error()))
	} else if ok {
		return views, nil
	}

	ctx, cancel := withTimeout(ctx, q.timeout)
	defer cancel()

	views, err := q.repo.FindAll(ctx)
	if err != nil {
		return nil, classify(err)
	}
	if err := q.cache.SetList(ctx, views); err != nil {
		q.logger.WarnContext(ctx, "location cache write failed", slog.String("error", err.Error()))
	}
	return views, nil
}

func (q *locationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*LocationView, error) {
	if view, ok, err := q.cache.Get(ctx, id); err != nil {
		q.logger.WarnContext(ctx, "location cache read failed",
			slog.String("location_id", id.String()),
			slog.String("error", err.Error()))
	} else if ok {
		return view, nil
	}

	ctx, cancel := withTimeout(ctx, q.timeout)
	defer cancel()

	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(notFoundAs(err, ErrLocationNotFound))
	}
	if err := q.cache.Set(ctx, view); err != nil {
		q.logger.WarnContext(ctx, "location cache write failed",
			slog.String("location_id", id.String()),
			slog.String("error", err.Error()))
	}
	return view, nil
}

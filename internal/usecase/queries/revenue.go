package queries

import (
	"context"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/user"

	"github.com/google/uuid"
)

type RevenueFilter struct {
	Year       int
	Month      *int
	LocationID *uuid.UUID
}

type RevenueQueries interface {
	// Revenue sums completed payments by payment time. Returned payments are excluded.
	Revenue(ctx context.Context, actor user.Actor, filter RevenueFilter) (*RevenueReport, error)
}

type RevenueRepo interface {
	// MonthlyCompletedTotals groups completed payments in [from, to) by UTC calendar month.
	MonthlyCompletedTotals(ctx context.Context, from, to time.Time, locationID *uuid.UUID) ([]MonthlyRevenue, error)
}

type revenueQueriesImpl struct {
	repo    RevenueRepo
	timeout time.Duration
}

func NewRevenueQueries(repo RevenueRepo, timeout time.Duration) RevenueQueries {
	return &revenueQueriesImpl{repo: repo, timeout: timeout}
}

func (q *revenueQueriesImpl) Revenue(ctx context.Context, actor user.Actor, filter RevenueFilter) (*RevenueReport, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	from, to, err := filter.period()
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, q.timeout)
	defer cancel()

	months, err := q.repo.MonthlyCompletedTotals(ctx, from, to, filter.LocationID)
	if err != nil {
		return nil, classify(err)
	}

	report := &RevenueReport{
		Year:       filter.Year,
		Month:      filter.Month,
		LocationID: filter.LocationID,
		Months:     make([]MonthlyRevenue, 0, len(months)),
	}
	for _, m := range months {
		report.TotalCents += m.TotalCents
		report.PaymentCount += m.PaymentCount
		report.Months = append(report.Months, m)
	}
	return report, nil
}

func (f RevenueFilter) period() (time.Time, time.Time, error) {
	if f.Year < 1970 || f.Year > 9999 {
		return time.Time{}, time.Time{}, ErrInvalidRevenuePeriod
	}
	if f.Month == nil {
		from := time.Date(f.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(1, 0, 0), nil
	}
	if *f.Month < 1 || *f.Month > 12 {
		return time.Time{}, time.Time{}, ErrInvalidRevenuePeriod
	}
	from := time.Date(f.Year, time.Month(*f.Month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0), nil
}

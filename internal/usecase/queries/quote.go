package queries

import (
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/pricing"
)

// QuoteQueries previews a price before booking with the same table bookings use.
type QuoteQueries interface {
	Quote(arrival, exit time.Time) (pricing.Breakdown, error)
}

type quoteQueriesImpl struct {
	table pricing.RateTable
}

func NewQuoteQueries(table pricing.RateTable) QuoteQueries {
	return &quoteQueriesImpl{table: table}
}

func (q *quoteQueriesImpl) Quote(arrival, exit time.Time) (pricing.Breakdown, error) {
	return pricing.Quote(arrival, exit, q.table)
}

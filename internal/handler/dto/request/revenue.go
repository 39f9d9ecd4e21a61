package request

import (
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"github.com/google/uuid"
)

type RevenueQuery struct {
	Year       int    `form:"year" binding:"required"`
	Month      *int   `form:"month"`
	LocationID string `form:"locationId"`
}

func (q RevenueQuery) ToFilter() (queries.RevenueFilter, error) {
	filter := queries.RevenueFilter{Year: q.Year, Month: q.Month}
	if q.LocationID != "" {
		id, err := uuid.Parse(q.LocationID)
		if err != nil {
			return queries.RevenueFilter{}, err
		}
		filter.LocationID = &id
	}
	return filter, nil
}

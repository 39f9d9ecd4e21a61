package reservation

import (
	"github.com/antoninkin/parkmate-app/internal/domain/location"
	"github.com/antoninkin/parkmate-app/internal/domain/pricing"
	"github.com/antoninkin/parkmate-app/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock     clock.Clock
	RateTable pricing.RateTable
}

func NewFactory(clock clock.Clock, rateTable pricing.RateTable) *Factory {
	return &Factory{
		Clock:     clock,
		RateTable: rateTable,
	}
}

// Create prices the interval once and returns a pending reservation.
// Availability is only checked here; the spot is taken at payment.
func (f *Factory) Create(loc *location.Location, userID, carID uuid.UUID, interval Interval) (*Reservation, error) {
	price, err := pricing.Rate(interval.Arrival(), interval.Exit(), f.RateTable)
	if err != nil {
		return nil, err
	}
	if !loc.HasAvailability() {
		return nil, location.ErrLocationFull
	}
	return newReservation(userID, loc.ID(), carID, interval, price, f.Clock.Now())
}

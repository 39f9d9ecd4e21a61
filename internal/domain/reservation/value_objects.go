package reservation

import (
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/pricing"
)

// Interval is the booked stay [arrival, exit).
type Interval struct {
	arrival time.Time
	exit    time.Time
}

func NewInterval(arrival, exit time.Time) (Interval, error) {
	if !exit.After(arrival) {
		return Interval{}, ErrInvalidInterval
	}
	if exit.Sub(arrival) > pricing.MaxStay {
		return Interval{}, ErrIntervalTooLong
	}
	return Interval{arrival: arrival, exit: exit}, nil
}

func (i Interval) Arrival() time.Time {
	return i.arrival
}

func (i Interval) Exit() time.Time {
	return i.exit
}

func (i Interval) Duration() time.Duration {
	return i.exit.Sub(i.arrival)
}

func (i Interval) Quote(table pricing.RateTable) (pricing.Breakdown, error) {
	return pricing.Quote(i.arrival, i.exit, table)
}

package pricing

import (
	"errors"
	"time"
)

var (
	ErrInvalidInterval = errors.New("exit must be after arrival")
	ErrIntervalTooLong = errors.New("interval exceeds the maximum stay")
)

const (
	quarterHour = 15 * time.Minute
	// MaxStay bounds one priced interval, and with it the number of band segments.
	MaxStay = 31 * 24 * time.Hour
)

// Segment is a maximal run of the interval that falls in a single band.
type Segment struct {
	Band   Band
	Start  time.Time
	End    time.Time
	Charge Money
}

func (s Segment) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

type Breakdown struct {
	Segments []Segment
	// Total is rounded once from the unrounded sum of segments.
	Total Money
}

// Rate prices the interval [arrival, exit).
func Rate(arrival, exit time.Time, table RateTable) (Money, error) {
	b, err := Quote(arrival, exit, table)
	if err != nil {
		return 0, err
	}
	return b.Total, nil
}

// Quote prices the interval and returns the per-band breakdown.
func Quote(arrival, exit time.Time, table RateTable) (Breakdown, error) {
	if !exit.After(arrival) {
		return Breakdown{}, ErrInvalidInterval
	}
	if exit.Sub(arrival) > MaxStay {
		return Breakdown{}, ErrIntervalTooLong
	}

	var (
		segments []Segment
		total    int64 // quarter cents
	)
	for cur := arrival; cur.Before(exit); {
		band := table.BandAt(cur)
		end := table.nextBoundary(cur)
		if end.After(exit) {
			end = exit
		}
		charge := segmentQuarterCents(end.Sub(cur), table.RateFor(band))
		total += charge
		segments = append(segments, Segment{
			Band:   band,
			Start:  cur,
			End:    end,
			Charge: roundQuarterCents(charge),
		})
		cur = end
	}

	return Breakdown{Segments: segments, Total: roundQuarterCents(total)}, nil
}

// segmentQuarterCents returns the tiered charge of one band segment in quarter cents,
// which keeps quarter-hour multiples of any cent rate exact.
func segmentQuarterCents(d time.Duration, r BandRate) int64 {
	switch {
	case d <= time.Hour:
		return 4 * int64(r.MinimumCharge)
	case d <= 2*time.Hour:
		// ceil of a length in (1h, 2h] is always 2
		return 4 * int64(r.MinimumCharge) * 2
	}

	rest := d - 2*time.Hour
	wholeHours := int64(rest / time.Hour)
	fraction := rest % time.Hour
	quarters := int64((fraction + quarterHour - 1) / quarterHour)

	return 4*int64(r.FirstTwoHoursFlat) +
		4*int64(r.PerHourAfterTwo)*wholeHours +
		int64(r.PerHourAfterTwo)*quarters
}

// round half up to whole cents
func roundQuarterCents(q int64) Money {
	return Money((q + 2) / 4)
}

package pricing

import (
	"errors"
	"time"
)

var (
	ErrInvalidDayWindow = errors.New("day window must satisfy 0 <= start < end <= 23")
	ErrNegativeRate     = errors.New("rates must be non-negative")
)

type Band string

const (
	BandDay   Band = "day"
	BandNight Band = "night"
)

func (b Band) String() string {
	return string(b)
}

// BandRate is the tiered price list of one band.
type BandRate struct {
	MinimumCharge     Money
	FirstTwoHoursFlat Money
	PerHourAfterTwo   Money
}

func (r BandRate) validate() error {
	if r.MinimumCharge < 0 || r.FirstTwoHoursFlat < 0 || r.PerHourAfterTwo < 0 {
		return ErrNegativeRate
	}
	return nil
}

type Config struct {
	// Location is the wall clock used to classify hours. Nil means UTC.
	Location     *time.Location
	DayStartHour int
	DayEndHour   int
	Day          BandRate
	Night        BandRate
}

// RateTable is immutable once built; hours in [DayStartHour, DayEndHour) are day, the rest night.
type RateTable struct {
	loc      *time.Location
	dayStart int
	dayEnd   int
	day      BandRate
	night    BandRate
}

func NewRateTable(cfg Config) (RateTable, error) {
	if cfg.DayStartHour < 0 || cfg.DayStartHour >= cfg.DayEndHour || cfg.DayEndHour > 23 {
		return RateTable{}, ErrInvalidDayWindow
	}
	if err := cfg.Day.validate(); err != nil {
		return RateTable{}, err
	}
	if err := cfg.Night.validate(); err != nil {
		return RateTable{}, err
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return RateTable{
		loc:      loc,
		dayStart: cfg.DayStartHour,
		dayEnd:   cfg.DayEndHour,
		day:      cfg.Day,
		night:    cfg.Night,
	}, nil
}

// DefaultConfig is the price list the parking operator launched with.
func DefaultConfig() Config {
	return Config{
		Location:     time.UTC,
		DayStartHour: 7,
		DayEndHour:   21,
		Day: BandRate{
			MinimumCharge:     1000,
			FirstTwoHoursFlat: 2000,
			PerHourAfterTwo:   700,
		},
		Night: BandRate{
			MinimumCharge:     1200,
			FirstTwoHoursFlat: 2400,
			PerHourAfterTwo:   840,
		},
	}
}

func DefaultRateTable() RateTable {
	t, err := NewRateTable(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return t
}

func (t RateTable) Location() *time.Location { return t.loc }
func (t RateTable) DayStartHour() int        { return t.dayStart }
func (t RateTable) DayEndHour() int          { return t.dayEnd }
func (t RateTable) Day() BandRate            { return t.day }
func (t RateTable) Night() BandRate          { return t.night }

func (t RateTable) BandAt(at time.Time) Band {
	h := at.In(t.loc).Hour()
	if h >= t.dayStart && h < t.dayEnd {
		return BandDay
	}
	return BandNight
}

func (t RateTable) RateFor(b Band) BandRate {
	if b == BandDay {
		return t.day
	}
	return t.night
}

// nextBoundary returns the first instant after at where the band changes.
func (t RateTable) nextBoundary(at time.Time) time.Time {
	local := at.In(t.loc)
	y, m, d := local.Date()
	h := local.Hour()

	var next time.Time
	switch {
	case h >= t.dayStart && h < t.dayEnd:
		next = time.Date(y, m, d, t.dayEnd, 0, 0, 0, t.loc)
	case h < t.dayStart:
		next = time.Date(y, m, d, t.dayStart, 0, 0, 0, t.loc)
	default:
		next = time.Date(y, m, d+1, t.dayStart, 0, 0, 0, t.loc)
	}
	// DST gaps can place the computed wall-clock boundary at or before at.
	if !next.After(at) {
		next = at.Add(time.Hour)
	}
	return next
}

//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2026, time.March, day, hour, minute, 0, 0, time.UTC)
}

func TestRate(t *testing.T) {
	table := pricing.DefaultRateTable()

	cases := []struct {
		name    string
		arrival time.Time
		exit    time.Time
		want    string
	}{
		{name: "day 2h30m is flat plus half hour", arrival: at(2, 9, 0), exit: at(2, 11, 30), want: "23.50"},
		{name: "night exactly one hour is minimum", arrival: at(2, 22, 0), exit: at(2, 23, 0), want: "12.00"},
		{name: "day under one hour is minimum", arrival: at(2, 9, 0), exit: at(2, 9, 45), want: "10.00"},
		{name: "day one minute is minimum", arrival: at(2, 12, 0), exit: at(2, 12, 1), want: "10.00"},
		{name: "day 1h30m charges minimum twice", arrival: at(2, 9, 0), exit: at(2, 10, 30), want: "20.00"},
		{name: "day exactly two hours", arrival: at(2, 9, 0), exit: at(2, 11, 0), want: "20.00"},
		{name: "day 13 minute leftover is one quarter", arrival: at(2, 9, 0), exit: at(2, 11, 13), want: "21.75"},
		// 17 minutes is 1.13 quarters, ceil gives two
		{name: "day 17 minute leftover rounds up", arrival: at(2, 9, 0), exit: at(2, 11, 17), want: "23.50"},
		{name: "day 5 whole hours after the first two", arrival: at(2, 8, 0), exit: at(2, 15, 0), want: "55.00"},
		{name: "night crossing midnight", arrival: at(2, 22, 0), exit: at(3, 3, 0), want: "49.20"},
		{name: "night to day at morning boundary", arrival: at(2, 6, 30), exit: at(2, 7, 30), want: "22.00"},
		{name: "day to night to day", arrival: at(2, 20, 30), exit: at(3, 7, 30), want: "111.20"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pricing.Rate(tc.arrival, tc.exit, table)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestRate_InvalidInterval(t *testing.T) {
	table := pricing.DefaultRateTable()

	_, err := pricing.Rate(at(2, 9, 0), at(2, 9, 0), table)
	assert.ErrorIs(t, err, pricing.ErrInvalidInterval)

	_, err = pricing.Rate(at(2, 10, 0), at(2, 9, 0), table)
	assert.ErrorIs(t, err, pricing.ErrInvalidInterval)
}

func TestQuote_MaxStay(t *testing.T) {
	table := pricing.DefaultRateTable()
	arrival := at(2, 9, 0)

	got, err := pricing.Quote(arrival, arrival.Add(pricing.MaxStay), table)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(got.Segments), 2*31+1)

	_, err = pricing.Quote(arrival, arrival.Add(pricing.MaxStay+time.Minute), table)
	assert.ErrorIs(t, err, pricing.ErrIntervalTooLong)

	_, err = pricing.Rate(arrival, arrival.AddDate(200, 0, 0), table)
	assert.ErrorIs(t, err, pricing.ErrIntervalTooLong)
}

func TestQuote_BandSegments(t *testing.T) {
	table := pricing.DefaultRateTable()

	got, err := pricing.Quote(at(2, 20, 30), at(3, 7, 30), table)
	require.NoError(t, err)

	want := pricing.Breakdown{
		Segments: []pricing.Segment{
			{Band: pricing.BandDay, Start: at(2, 20, 30), End: at(2, 21, 0), Charge: 1000},
			{Band: pricing.BandNight, Start: at(2, 21, 0), End: at(3, 7, 0), Charge: 9120},
			{Band: pricing.BandDay, Start: at(3, 7, 0), End: at(3, 7, 30), Charge: 1000},
		},
		Total: 11120,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Breakdown mismatch (-want +got):\n%s", diff)
	}
}

func TestQuote_IsPure(t *testing.T) {
	table := pricing.DefaultRateTable()

	first, err := pricing.Quote(at(2, 5, 10), at(4, 18, 55), table)
	require.NoError(t, err)
	second, err := pricing.Quote(at(2, 5, 10), at(4, 18, 55), table)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated quote differs (-first +second):\n%s", diff)
	}
}

func TestRate_Monotonic(t *testing.T) {
	table := pricing.DefaultRateTable()
	arrival := at(2, 6, 10)

	prev := pricing.Money(0)
	for exit := arrival.Add(time.Minute); exit.Before(arrival.Add(30 * time.Hour)); exit = exit.Add(4 * time.Minute) {
		got, err := pricing.Rate(arrival, exit, table)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got, prev, "price dropped at exit %s", exit)
		prev = got
	}
}

func TestRate_MinimumChargeWithinDay(t *testing.T) {
	table := pricing.DefaultRateTable()

	for start := at(2, 7, 0); !start.Add(time.Hour).After(at(2, 21, 0)); start = start.Add(25 * time.Minute) {
		for _, d := range []time.Duration{time.Second, 20 * time.Minute, time.Hour} {
			got, err := pricing.Rate(start, start.Add(d), table)
			require.NoError(t, err)
			assert.Equal(t, table.Day().MinimumCharge, got, "start %s duration %s", start, d)
		}
	}
}

func TestRate_UsesTableTimezone(t *testing.T) {
	cfg := pricing.DefaultConfig()
	cfg.Location = time.FixedZone("UTC+9", 9*60*60)
	table, err := pricing.NewRateTable(cfg)
	require.NoError(t, err)

	// 00:00 UTC is 09:00 on the table clock
	got, err := pricing.Rate(at(2, 0, 0), at(2, 2, 30), table)
	require.NoError(t, err)
	assert.Equal(t, "23.50", got.String())

	// same instants are night on a UTC clock
	got, err = pricing.Rate(at(2, 0, 0), at(2, 2, 30), pricing.DefaultRateTable())
	require.NoError(t, err)
	assert.Equal(t, "28.20", got.String())
}

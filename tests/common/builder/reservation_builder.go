//go:build unit || e2e

package builder

import (
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/location"
	"github.com/antoninkin/parkmate-app/internal/domain/payment"
	"github.com/antoninkin/parkmate-app/internal/domain/pricing"
	"github.com/antoninkin/parkmate-app/internal/domain/reservation"
	reqdto "github.com/antoninkin/parkmate-app/internal/handler/dto/request"
	"github.com/antoninkin/parkmate-app/internal/pkg/clock"
	"github.com/antoninkin/parkmate-app/internal/usecase/commands"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	UserID    uuid.UUID
	Location  *location.Location
	CarID     uuid.UUID
	Arrival   time.Time
	Exit      time.Time
	Now       time.Time
	RateTable pricing.RateTable
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		UserID:    uuid.New(),
		Location:  NewLocationBuilder().BuildDomain(),
		CarID:     uuid.New(),
		Arrival:   time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		Exit:      time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC),
		Now:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		RateTable: pricing.DefaultRateTable(),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	interval, err := reservation.NewInterval(b.Arrival, b.Exit)
	if err != nil {
		return nil, err
	}
	factory := reservation.NewFactory(clock.NewMockClock(b.Now), b.RateTable)
	return factory.Create(b.Location, b.UserID, b.CarID, interval)
}

// MustBuildDomain is for tests that only need a valid pending reservation.
func (b *ReservationBuilder) MustBuildDomain() *reservation.Reservation {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		LocationID: b.Location.ID(),
		CarID:      b.CarID,
		Arrival:    b.Arrival,
		Exit:       b.Exit,
	}
}

// BuildResult returns a command result; paid adds a card payment taken at Now.
func (b *ReservationBuilder) BuildResult(paid bool) *commands.ReservationResult {
	r := b.MustBuildDomain()
	result := &commands.ReservationResult{Reservation: r}
	if paid {
		p, err := r.ConfirmPayment(payment.MethodCard, b.Now)
		if err != nil {
			panic(err)
		}
		result.Payment = p
	}
	return result
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	r := b.MustBuildDomain()
	return &queries.ReservationView{
		ID:           r.ID(),
		UserID:       r.UserID(),
		LocationID:   r.LocationID(),
		LocationName: b.Location.Name(),
		CarID:        r.CarID(),
		Arrival:      r.Interval().Arrival(),
		Exit:         r.Interval().Exit(),
		PriceCents:   r.Price().Cents(),
		Status:       r.Status().String(),
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
	}
}

package memory

import (
	"context"
	"sort"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/car"
	"github.com/antoninkin/parkmate-app/internal/domain/location"
	"github.com/antoninkin/parkmate-app/internal/domain/payment"
	"github.com/antoninkin/parkmate-app/internal/domain/pricing"
	"github.com/antoninkin/parkmate-app/internal/domain/reservation"
	"github.com/antoninkin/parkmate-app/internal/infra"
	"github.com/antoninkin/parkmate-app/internal/usecase/shared"

	"github.com/google/uuid"
)

type reservationRepo struct {
	st *state
}

func (r *reservationRepo) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := r.st.reservations[res.ID()]; ok {
		return infra.WrapRepoErr("reservation already exists", nil, infra.KindConflict)
	}
	if _, ok := r.st.locations[res.LocationID()]; !ok {
		return infra.NotFound("location not found")
	}
	r.st.reservations[res.ID()] = reservationToRecord(res)
	return nil
}

func (r *reservationRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, ok := r.st.reservations[id]
	if !ok {
		return nil, infra.NotFound("reservation not found")
	}
	return reservationFromRecord(rec), nil
}

func (r *reservationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to reservation.Status, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rec, ok := r.st.reservations[id]
	if !ok {
		return infra.NotFound("reservation not found")
	}
	if rec.Status != from.String() {
		return shared.ErrStatusConflict
	}
	rec.Status = to.String()
	rec.UpdatedAt = updatedAt
	r.st.reservations[id] = rec
	return nil
}

func (r *reservationRepo) ListDueForExpiry(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	due := make([]reservationRecord, 0)
	for _, rec := range r.st.reservations {
		if rec.Status == reservation.StatusPaid.String() && !rec.Exit.After(now) {
			due = append(due, rec)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].Exit.Before(due[j].Exit) })
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	ids := make([]uuid.UUID, len(due))
	for i, rec := range due {
		ids[i] = rec.ID
	}
	return ids, nil
}

func (r *reservationRepo) CountActiveByCar(ctx context.Context, carID uuid.UUID) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n := 0
	for _, rec := range r.st.reservations {
		if rec.CarID != carID {
			continue
		}
		if rec.Status == reservation.StatusPending.String() || rec.Status == reservation.StatusPaid.String() {
			n++
		}
	}
	return n, nil
}

type paymentRepo struct {
	st *state
}

func (r *paymentRepo) Create(ctx context.Context, p *payment.Payment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := r.st.paymentByReservation[p.ReservationID()]; ok {
		return infra.WrapRepoErr("payment already recorded for reservation", nil, infra.KindConflict)
	}
	r.st.payments[p.ID()] = paymentToRecord(p)
	r.st.paymentByReservation[p.ReservationID()] = p.ID()
	return nil
}

func (r *paymentRepo) GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*payment.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id, ok := r.st.paymentByReservation[reservationID]
	if !ok {
		return nil, infra.NotFound("payment not found")
	}
	return paymentFromRecord(r.st.payments[id]), nil
}

func (r *paymentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status payment.Status, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rec, ok := r.st.payments[id]
	if !ok {
		return infra.NotFound("payment not found")
	}
	rec.Status = status.String()
	rec.UpdatedAt = updatedAt
	r.st.payments[id] = rec
	return nil
}

type locationRepo struct {
	st *state
}

func (r *locationRepo) Get(ctx context.Context, id uuid.UUID) (*location.Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, ok := r.st.locations[id]
	if !ok {
		return nil, infra.NotFound("location not found")
	}
	return locationFromRecord(rec), nil
}

func (r *locationRepo) Create(ctx context.Context, loc *location.Location) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := r.st.locations[loc.ID()]; ok {
		return infra.WrapRepoErr("location already exists", nil, infra.KindConflict)
	}
	r.st.locations[loc.ID()] = locationToRecord(loc)
	return nil
}

// ledger applies the domain debit and credit rules to the stored counter.
type ledger struct {
	st *state
}

func (l *ledger) Debit(ctx context.Context, locationID uuid.UUID) error {
	return l.apply(ctx, locationID, func(loc *location.Location) error {
		return loc.Debit()
	})
}

func (l *ledger) Credit(ctx context.Context, locationID uuid.UUID) error {
	return l.apply(ctx, locationID, func(loc *location.Location) error {
		loc.Credit()
		return nil
	})
}

func (l *ledger) apply(ctx context.Context, locationID uuid.UUID, fn func(*location.Location) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rec, ok := l.st.locations[locationID]
	if !ok {
		return infra.NotFound("location not found")
	}
	loc := locationFromRecord(rec)
	if err := fn(loc); err != nil {
		return err
	}
	rec.AvailableSpots = loc.AvailableSpots()
	l.st.locations[locationID] = rec
	return nil
}

type carRepo struct {
	st *state
}

func (r *carRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*car.Car, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, ok := r.st.cars[id]
	if !ok {
		return nil, infra.NotFound("car not found")
	}
	return carFromRecord(rec), nil
}

func (r *carRepo) Create(ctx context.Context, c *car.Car) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := r.st.cars[c.ID()]; ok {
		return infra.WrapRepoErr("car already exists", nil, infra.KindConflict)
	}
	r.st.cars[c.ID()] = carToRecord(c)
	return nil
}

func (r *carRepo) Update(ctx context.Context, c *car.Car) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := r.st.cars[c.ID()]; !ok {
		return infra.NotFound("car not found")
	}
	r.st.cars[c.ID()] = carToRecord(c)
	return nil
}

func (r *carRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := r.st.cars[id]; !ok {
		return infra.NotFound("car not found")
	}
	delete(r.st.cars, id)
	return nil
}

type notificationRepo struct {
	st *state
}

func (r *notificationRepo) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id := uuid.New()
	r.st.jobs[id] = shared.NotificationJob{
		ID:        id,
		Kind:      kind,
		Topic:     topic,
		Payload:   append([]byte(nil), payload...),
		RunAt:     runAt,
		Status:    shared.JobStatusPending,
		CreatedAt: runAt,
	}
	return nil
}

func reservationToRecord(r *reservation.Reservation) reservationRecord {
	return reservationRecord{
		ID:         r.ID(),
		UserID:     r.UserID(),
		LocationID: r.LocationID(),
		CarID:      r.CarID(),
		Arrival:    r.Interval().Arrival(),
		Exit:       r.Interval().Exit(),
		PriceCents: r.Price().Cents(),
		Status:     r.Status().String(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

func reservationFromRecord(rec reservationRecord) *reservation.Reservation {
	return reservation.Reconstruct(
		rec.ID,
		rec.UserID,
		rec.LocationID,
		rec.CarID,
		reservation.ReconstructInterval(rec.Arrival, rec.Exit),
		pricing.NewMoney(rec.PriceCents),
		reservation.Status(rec.Status),
		rec.CreatedAt,
		rec.UpdatedAt,
	)
}

func paymentToRecord(p *payment.Payment) paymentRecord {
	return paymentRecord{
		ID:            p.ID(),
		ReservationID: p.ReservationID(),
		UserID:        p.UserID(),
		AmountCents:   p.Amount().Cents(),
		Method:        p.Method().String(),
		Status:        p.Status().String(),
		PaidAt:        p.PaidAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func paymentFromRecord(rec paymentRecord) *payment.Payment {
	return payment.Reconstruct(
		rec.ID,
		rec.ReservationID,
		rec.UserID,
		pricing.NewMoney(rec.AmountCents),
		payment.Method(rec.Method),
		payment.Status(rec.Status),
		rec.PaidAt,
		rec.UpdatedAt,
	)
}

func locationToRecord(l *location.Location) locationRecord {
	var capacity *int
	if l.Capacity() != nil {
		c := *l.Capacity()
		capacity = &c
	}
	return locationRecord{
		ID:             l.ID(),
		Name:           l.Name(),
		Address:        l.Address(),
		Latitude:       l.Coordinates().Latitude,
		Longitude:      l.Coordinates().Longitude,
		Capacity:       capacity,
		AvailableSpots: l.AvailableSpots(),
		CreatedAt:      l.CreatedAt(),
		UpdatedAt:      l.UpdatedAt(),
	}
}

func locationFromRecord(rec locationRecord) *location.Location {
	return location.Reconstruct(
		rec.ID,
		rec.Name,
		rec.Address,
		location.Coordinates{Latitude: rec.Latitude, Longitude: rec.Longitude},
		rec.Capacity,
		rec.AvailableSpots,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
}

func carToRecord(c *car.Car) carRecord {
	d := c.Details()
	return carRecord{
		ID:           c.ID(),
		UserID:       c.UserID(),
		Name:         d.Name,
		LicensePlate: d.LicensePlate,
		Make:         d.Make,
		Model:        d.Model,
		Year:         d.Year,
		Color:        d.Color,
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func carFromRecord(rec carRecord) *car.Car {
	return car.Reconstruct(rec.ID, rec.UserID, car.Details{
		Name:         rec.Name,
		LicensePlate: rec.LicensePlate,
		Make:         rec.Make,
		Model:        rec.Model,
		Year:         rec.Year,
		Color:        rec.Color,
	}, rec.CreatedAt, rec.UpdatedAt)
}

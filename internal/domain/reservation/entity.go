package reservation

import (
	"errors"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/payment"
	"github.com/antoninkin/parkmate-app/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidInterval   = pricing.ErrInvalidInterval
	ErrIntervalTooLong   = pricing.ErrIntervalTooLong
	ErrInvalidTransition = errors.New("reservation cannot move to the requested state")
	ErrTooLateToCancel   = errors.New("reservation can no longer be cancelled after arrival")
	ErrNotYetEnded       = errors.New("reservation exit time has not passed")
	ErrCarRequired       = errors.New("a car must be selected for the reservation")
	ErrInvalidStatus     = errors.New("invalid reservation status")
)

type Reservation struct {
	id         uuid.UUID
	userID     uuid.UUID
	locationID uuid.UUID
	carID      uuid.UUID
	interval   Interval
	price      pricing.Money
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func newReservation(userID, locationID, carID uuid.UUID, interval Interval, price pricing.Money, now time.Time) (*Reservation, error) {
	if carID == uuid.Nil {
		return nil, ErrCarRequired
	}
	return &Reservation{
		id:         uuid.New(),
		userID:     userID,
		locationID: locationID,
		carID:      carID,
		interval:   interval,
		price:      price,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func Reconstruct(
	id, userID, locationID, carID uuid.UUID,
	interval Interval,
	price pricing.Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		userID:     userID,
		locationID: locationID,
		carID:      carID,
		interval:   interval,
		price:      price,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ReconstructInterval rebuilds a stored interval without re-validating it.
func ReconstructInterval(arrival, exit time.Time) Interval {
	return Interval{arrival: arrival, exit: exit}
}

// ConfirmPayment moves a pending reservation to paid and returns the payment to record.
// The caller must debit the location in the same unit of work.
func (r *Reservation) ConfirmPayment(method payment.Method, now time.Time) (*payment.Payment, error) {
	if r.status != StatusPending {
		return nil, ErrInvalidTransition
	}
	if err := method.Validate(); err != nil {
		return nil, err
	}
	p := payment.NewPayment(r.id, r.userID, r.price, method, now)
	r.moveTo(StatusPaid, now)
	return p, nil
}

// Cancel reports whether the reservation was paid, in which case the payment
// must be returned and the spot credited.
func (r *Reservation) Cancel(now time.Time) (bool, error) {
	if !r.status.CanTransitionTo(StatusCancelled) {
		return false, ErrInvalidTransition
	}
	if !now.Before(r.interval.arrival) {
		return false, ErrTooLateToCancel
	}
	wasPaid := r.status == StatusPaid
	r.moveTo(StatusCancelled, now)
	return wasPaid, nil
}

// Complete ends a paid reservation once its exit time has passed.
func (r *Reservation) Complete(now time.Time) error {
	if !r.status.CanTransitionTo(StatusCompleted) {
		return ErrInvalidTransition
	}
	if now.Before(r.interval.exit) {
		return ErrNotYetEnded
	}
	r.moveTo(StatusCompleted, now)
	return nil
}

func (r *Reservation) moveTo(next Status, now time.Time) {
	r.status = next
	r.updatedAt = now
}

func (r *Reservation) IsPaid() bool {
	return r.status == StatusPaid
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) UserID() uuid.UUID     { return r.userID }
func (r *Reservation) LocationID() uuid.UUID { return r.locationID }
func (r *Reservation) CarID() uuid.UUID      { return r.carID }
func (r *Reservation) Interval() Interval    { return r.interval }
func (r *Reservation) Price() pricing.Money  { return r.price }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }

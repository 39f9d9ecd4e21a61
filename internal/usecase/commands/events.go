package commands

import (
	"context"
	"encoding/json"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/payment"
	"github.com/antoninkin/parkmate-app/internal/domain/reservation"
	"github.com/antoninkin/parkmate-app/internal/pkg/errs"
	"github.com/antoninkin/parkmate-app/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	EventReservationCreated   = "reservation.created"
	EventReservationPaid      = "reservation.paid"
	EventReservationCancelled = "reservation.cancelled"
	EventReservationCompleted = "reservation.completed"
)

type ReservationEvent struct {
	Type          string     `json:"type"`
	ReservationID uuid.UUID  `json:"reservation_id"`
	UserID        uuid.UUID  `json:"user_id"`
	LocationID    uuid.UUID  `json:"location_id"`
	Status        string     `json:"status"`
	PriceCents    int64      `json:"price_cents"`
	Arrival       time.Time  `json:"arrival"`
	Exit          time.Time  `json:"exit"`
	PaymentID     *uuid.UUID `json:"payment_id,omitempty"`
	Refunded      bool       `json:"refunded,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

func newReservationEvent(kind string, r *reservation.Reservation, p *payment.Payment, now time.Time) ReservationEvent {
	ev := ReservationEvent{
		Type:          kind,
		ReservationID: r.ID(),
		UserID:        r.UserID(),
		LocationID:    r.LocationID(),
		Status:        r.Status().String(),
		PriceCents:    r.Price().Cents(),
		Arrival:       r.Interval().Arrival(),
		Exit:          r.Interval().Exit(),
		OccurredAt:    now,
	}
	if p != nil {
		id := p.ID()
		ev.PaymentID = &id
		ev.Refunded = p.Status() == payment.StatusReturned
	}
	return ev
}

func enqueueEvent(ctx context.Context, tx shared.Tx, topic string, ev ReservationEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation event")
	}
	return tx.Notifications().CreateJob(ctx, ev.Type, topic, payload, ev.OccurredAt)
}

package response

import (
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/pricing"
	"github.com/antoninkin/parkmate-app/internal/domain/reservation"
	"github.com/antoninkin/parkmate-app/internal/usecase/commands"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID           uuid.UUID        `json:"id"`
	UserID       uuid.UUID        `json:"userId"`
	LocationID   uuid.UUID        `json:"locationId"`
	LocationName string           `json:"locationName,omitempty"`
	CarID        uuid.UUID        `json:"carId"`
	LicensePlate string           `json:"licensePlate,omitempty"`
	Arrival      time.Time        `json:"arrival"`
	Exit         time.Time        `json:"exit"`
	Price        string           `json:"price"`
	PriceCents   int64            `json:"priceCents"`
	Status       string           `json:"status"`
	Payment      *PaymentResponse `json:"payment,omitempty"`
	Replayed     bool             `json:"replayed,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:           v.ID,
		UserID:       v.UserID,
		LocationID:   v.LocationID,
		LocationName: v.LocationName,
		CarID:        v.CarID,
		LicensePlate: v.LicensePlate,
		Arrival:      v.Arrival,
		Exit:         v.Exit,
		Price:        pricing.NewMoney(v.PriceCents).String(),
		PriceCents:   v.PriceCents,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	res := make([]*ReservationResponse, len(views))
	for i, v := range views {
		res[i] = FromReservationView(v)
	}
	return res
}

func FromReservationResult(r *commands.ReservationResult) *ReservationResponse {
	resp := fromReservation(r.Reservation)
	if r.Payment != nil {
		resp.Payment = FromPayment(r.Payment)
	}
	resp.Replayed = r.IsReplayed
	return resp
}

func fromReservation(r *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         r.ID(),
		UserID:     r.UserID(),
		LocationID: r.LocationID(),
		CarID:      r.CarID(),
		Arrival:    r.Interval().Arrival(),
		Exit:       r.Interval().Exit(),
		Price:      r.Price().String(),
		PriceCents: r.Price().Cents(),
		Status:     r.Status().String(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

package response

import (
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/payment"
	"github.com/antoninkin/parkmate-app/internal/domain/pricing"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservationId"`
	UserID        uuid.UUID `json:"userId"`
	LocationName  string    `json:"locationName,omitempty"`
	Amount        string    `json:"amount"`
	AmountCents   int64     `json:"amountCents"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	PaidAt        time.Time `json:"paidAt"`
}

func FromPayment(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:            p.ID(),
		ReservationID: p.ReservationID(),
		UserID:        p.UserID(),
		Amount:        p.Amount().String(),
		AmountCents:   p.Amount().Cents(),
		Method:        p.Method().String(),
		Status:        p.Status().String(),
		PaidAt:        p.PaidAt(),
	}
}

func FromPaymentViews(views []*queries.PaymentView) []*PaymentResponse {
	res := make([]*PaymentResponse, len(views))
	for i, v := range views {
		res[i] = &PaymentResponse{
			ID:            v.ID,
			ReservationID: v.ReservationID,
			UserID:        v.UserID,
			LocationName:  v.LocationName,
			Amount:        pricing.NewMoney(v.AmountCents).String(),
			AmountCents:   v.AmountCents,
			Method:        v.Method,
			Status:        v.Status,
			PaidAt:        v.PaidAt,
		}
	}
	return res
}

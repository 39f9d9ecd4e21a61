package response

import (
	"github.com/antoninkin/parkmate-app/internal/domain/pricing"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"github.com/google/uuid"
)

type MonthlyRevenueResponse struct {
	Month        int    `json:"month"`
	Total        string `json:"total"`
	TotalCents   int64  `json:"totalCents"`
	PaymentCount int    `json:"paymentCount"`
}

type RevenueResponse struct {
	Year         int                      `json:"year"`
	Month        *int                     `json:"month,omitempty"`
	LocationID   *uuid.UUID               `json:"locationId,omitempty"`
	Total        string                   `json:"total"`
	TotalCents   int64                    `json:"totalCents"`
	PaymentCount int                      `json:"paymentCount"`
	Months       []MonthlyRevenueResponse `json:"months"`
}

func FromRevenueReport(r *queries.RevenueReport) *RevenueResponse {
	resp := &RevenueResponse{
		Year:         r.Year,
		Month:        r.Month,
		LocationID:   r.LocationID,
		Total:        pricing.NewMoney(r.TotalCents).String(),
		TotalCents:   r.TotalCents,
		PaymentCount: r.PaymentCount,
		Months:       make([]MonthlyRevenueResponse, len(r.Months)),
	}
	for i, m := range r.Months {
		resp.Months[i] = MonthlyRevenueResponse{
			Month:        m.Month,
			Total:        pricing.NewMoney(m.TotalCents).String(),
			TotalCents:   m.TotalCents,
			PaymentCount: m.PaymentCount,
		}
	}
	return resp
}

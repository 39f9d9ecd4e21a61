package response

import (
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/pricing"
)

type QuoteSegmentResponse struct {
	Band        string    `json:"band"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Minutes     int       `json:"minutes"`
	Charge      string    `json:"charge"`
	ChargeCents int64     `json:"chargeCents"`
}

type QuoteResponse struct {
	Total      string                 `json:"total"`
	TotalCents int64                  `json:"totalCents"`
	Segments   []QuoteSegmentResponse `json:"segments"`
}

func FromBreakdown(b pricing.Breakdown) *QuoteResponse {
	resp := &QuoteResponse{
		Total:      b.Total.String(),
		TotalCents: b.Total.Cents(),
		Segments:   make([]QuoteSegmentResponse, len(b.Segments)),
	}
	for i, s := range b.Segments {
		resp.Segments[i] = QuoteSegmentResponse{
			Band:        s.Band.String(),
			Start:       s.Start,
			End:         s.End,
			Minutes:     int(s.Duration().Minutes()),
			Charge:      s.Charge.String(),
			ChargeCents: s.Charge.Cents(),
		}
	}
	return resp
}

package request

import "time"

type QuoteRequest struct {
	Arrival time.Time `json:"arrival" binding:"required"`
	Exit    time.Time `json:"exit" binding:"required"`
}

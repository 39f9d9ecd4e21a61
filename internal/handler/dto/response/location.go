package response

import (
	"github.com/antoninkin/parkmate-app/internal/domain/location"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"github.com/google/uuid"
)

type LocationResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Capacity       *int      `json:"capacity,omitempty"`
	AvailableSpots int       `json:"availableSpots"`
}

func FromLocationView(v *queries.LocationView) *LocationResponse {
	return &LocationResponse{
		ID:             v.ID,
		Name:           v.Name,
		Address:        v.Address,
		Latitude:       v.Latitude,
		Longitude:      v.Longitude,
		Capacity:       v.Capacity,
		AvailableSpots: v.AvailableSpots,
	}
}

func FromLocationViews(views []*queries.LocationView) []*LocationResponse {
	res := make([]*LocationResponse, len(views))
	for i, v := range views {
		res[i] = FromLocationView(v)
	}
	return res
}

func FromLocation(l *location.Location) *LocationResponse {
	return &LocationResponse{
		ID:             l.ID(),
		Name:           l.Name(),
		Address:        l.Address(),
		Latitude:       l.Coordinates().Latitude,
		Longitude:      l.Coordinates().Longitude,
		Capacity:       l.Capacity(),
		AvailableSpots: l.AvailableSpots(),
	}
}

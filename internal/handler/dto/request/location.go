package request

import "github.com/antoninkin/parkmate-app/internal/usecase/commands"

type CreateLocationRequest struct {
	Name           string   `json:"name" binding:"required,max=200"`
	Address        string   `json:"address" binding:"max=500"`
	Latitude       *float64 `json:"latitude" binding:"required"`
	Longitude      *float64 `json:"longitude" binding:"required"`
	Capacity       *int     `json:"capacity,omitempty" binding:"omitempty,min=0"`
	AvailableSpots *int     `json:"availableSpots,omitempty" binding:"omitempty,min=0"`
}

func (r CreateLocationRequest) ToInput() commands.CreateLocationInput {
	return commands.CreateLocationInput{
		Name:           r.Name,
		Address:        r.Address,
		Latitude:       *r.Latitude,
		Longitude:      *r.Longitude,
		Capacity:       r.Capacity,
		AvailableSpots: r.AvailableSpots,
	}
}

package listing

import (
	"context"
	"fmt"
	"sort"

	"github.com/roam-rides/site/api"
)

// Detail is the full listing projection rendered when a result is
// expanded. Like Summary it is read-only: the API server owns the data.
type Detail struct {
	Summary
	Description   string   `json:"description,omitempty"`
	Seats         int      `json:"seats,omitempty"`
	Year          int      `json:"year,omitempty"`
	Transmission  string   `json:"transmission,omitempty"`
	FuelType      string   `json:"fuelType,omitempty"`
	Features      []string `json:"features,omitempty"`
	RatingAverage float64  `json:"ratingAverage,omitempty"`
	RatingCount   int      `json:"ratingCount,omitempty"`
}

// Fetch retrieves one listing by id.
func Fetch(ctx context.Context, client *api.Client, id int64) (Detail, error) {
	var d Detail
	if err := client.GetJSON(ctx, fmt.Sprintf("/listings/%d", id), nil, &d); err != nil {
		return Detail{}, err
	}
	sort.SliceStable(d.Photos, func(a, b int) bool {
		return d.Photos[a].Order < d.Photos[b].Order
	})
	return d, nil
}

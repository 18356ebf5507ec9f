package types

// Destination is a catalog entry a plan can be generated for.
type Destination struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	LocationLat float64 `json:"location_lat"`
	LocationLng float64 `json:"location_lng"`
	ImageURL    string  `json:"image_url"`
	Rating      float64 `json:"rating"`
	Country     string  `json:"country"`
	BestSeason  string  `json:"best_season"`
}

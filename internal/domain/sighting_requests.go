package domain

type CreateSightingRequest struct {
	Images       []string `json:"images" validate:"required,min=1,max=3"`
	Description  string   `json:"description" validate:"omitempty,max=2000"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,lat"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,lng"`
	Address      string   `json:"location_address" validate:"omitempty,max=255"`
	Neighborhood string   `json:"neighborhood" validate:"omitempty,max=100"`
	ContactName  string   `json:"contact_name" validate:"omitempty,max=255"`
	ContactPhone string   `json:"contact_phone" validate:"omitempty,max=20"`
	ContactEmail string   `json:"contact_email" validate:"omitempty,email,max=255"`
}

type UpdateSightingRequest struct {
	Latitude  *float64        `json:"latitude" validate:"omitempty,lat"`
	Longitude *float64        `json:"longitude" validate:"omitempty,lng"`
	Status    *SightingStatus `json:"status"`
}

type SearchRequest struct {
	Images      []string `json:"images" validate:"omitempty,max=3"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,lat"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,lng"`
	RadiusKm    *float64 `json:"radius" validate:"omitempty,radius_km"`
	Limit       int      `json:"limit" validate:"omitempty,min=1,max=100"`
}

type SearchResponse struct {
	Results          []Sighting `json:"results"`
	SearchAttributes []string   `json:"search_attributes"`
	TotalResults     int        `json:"total_results"`
}

type MapSightingsResponse struct {
	Sightings []Sighting `json:"sightings"`
	Total     int        `json:"total"`
}

type RecentSightingsResponse struct {
	Sightings []Sighting `json:"sightings"`
	Total     int64      `json:"total"`
	HasMore   bool       `json:"has_more"`
}

type ImportSightingsRequest struct {
	Records []RawRecord `json:"records" validate:"required,min=1"`
}

type ImportSightingsResponse struct {
	Imported int      `json:"imported"`
	IDs      []string `json:"ids"`
}

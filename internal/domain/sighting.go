package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/geo"
)

type SightingStatus string

// Canonical statuses. The set is open: unknown values coming from partner
// feeds pass through verbatim and are displayed as-is.
const (
	StatusPending    SightingStatus = "pendiente"
	StatusInProgress SightingStatus = "en_proceso"
	StatusRescued    SightingStatus = "rescatado"
	StatusUrgent     SightingStatus = "urgente"
	StatusAvailable  SightingStatus = "disponible"
	StatusDiscarded  SightingStatus = "descartado"
)

type ContactInfo struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Sighting is the canonical record for a reported stray/lost dog.
// Read-only after creation except for derived display fields (DistanceKm,
// Similarity) which are recomputed per request and never persisted.
type Sighting struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Coordinate   *geo.Coordinate `json:"coordinate,omitempty"` // nil => excluded from spatial views
	ReportedAt   *time.Time      `json:"reported_at,omitempty"`
	Description  string          `json:"description,omitempty"`
	Attributes   []string        `json:"attributes"`
	Size         string          `json:"size"`
	AgeClass     string          `json:"age_class"`
	Color        string          `json:"color"`
	Status       SightingStatus  `json:"status"`
	ImageURLs    []string        `json:"image_urls"`
	Address      string          `json:"location_address,omitempty"`
	Neighborhood string          `json:"neighborhood,omitempty"`
	Contact      *ContactInfo    `json:"contact_info,omitempty"`

	// Derived, request-scoped.
	Similarity *float64 `json:"similarity,omitempty"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// RawRecord is the loose wire shape sightings arrive in from partner feeds
// and the scraper. Every field is optional and key aliases abound: the report
// time may live under created_at or timestamp, the coordinate under
// latitude/longitude or lat/lng, the photo under photo or image_urls.
type RawRecord struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
	Description  string   `json:"description"`
	Attributes   []string `json:"attributes"`
	Status       string   `json:"status"`
	Photo        string   `json:"photo"`
	ImageURLs    []string `json:"image_urls"`
	CreatedAt    string   `json:"created_at"`
	Timestamp    string   `json:"timestamp"`
	Address      string   `json:"location_address"`
	Neighborhood string   `json:"neighborhood"`
	ContactName  string   `json:"contact_name"`
	ContactPhone string   `json:"contact_phone"`
	ContactEmail string   `json:"contact_email"`
	Similarity   *float64 `json:"similarity"`
}

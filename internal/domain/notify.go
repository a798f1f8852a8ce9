package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/geo"
)

// SightingCreatedPayload is what the webhook sender posts to the configured
// endpoint (the operator's Telegram bot bridge) when a new report lands.
type SightingCreatedPayload struct {
	SightingID uuid.UUID       `json:"sighting_id"`
	Name       string          `json:"name"`
	Coordinate *geo.Coordinate `json:"coordinate,omitempty"`
	ImageURL   string          `json:"image_url,omitempty"`
	ReportedAt time.Time       `json:"reported_at"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReunionStatus string

// Reunion reports start pending and are resolved by hand: an admin checks
// the verification photo and either confirms the match or rejects it.
const (
	ReunionPending   ReunionStatus = "pending"
	ReunionValidated ReunionStatus = "validated"
	ReunionRejected  ReunionStatus = "rejected"
)

// ReunionReport is a user's claim that they found their dog through the
// platform, backed by a verification photo of them with the animal.
type ReunionReport struct {
	ID                   uuid.UUID     `json:"id"`
	SightingID           uuid.UUID     `json:"dog_sighting_id"`
	VerificationImageURL string        `json:"verification_image_url"`
	Message              string        `json:"message,omitempty"`
	Status               ReunionStatus `json:"status"`
	ValidatedBy          string        `json:"validated_by,omitempty"`
	ValidatedAt          *time.Time    `json:"validated_at,omitempty"`
	ValidationNotes      string        `json:"validation_notes,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
}

type CreateReunionRequest struct {
	SightingID        string `json:"dog_sighting_id" validate:"required,uuid"`
	VerificationImage string `json:"verification_image" validate:"required"`
	Message           string `json:"message" validate:"omitempty,max=2000"`
}

type CreateReunionResponse struct {
	ID      string        `json:"id"`
	Status  ReunionStatus `json:"status"`
	Message string        `json:"message"`
}

type ValidateReunionRequest struct {
	Status      ReunionStatus `json:"status" validate:"required,oneof=validated rejected"`
	ValidatedBy string        `json:"validated_by" validate:"required,max=255"`
	Notes       string        `json:"notes" validate:"omitempty,max=2000"`
}

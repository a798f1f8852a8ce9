package sighting

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/geo"
)

const (
	fallbackName  = "Perrito reportado"
	maxNameLength = 60
)

// Layouts seen in partner feeds, tried in order.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FromRaw normalizes one heterogeneous partner/scraper record into the
// canonical shape. It is total: every field defaults rather than failing, so
// one malformed record never sinks a batch. The report time prefers
// created_at over timestamp; with neither present it falls back to now, and
// an unparseable value maps to nil (unknown age, which the radius estimator
// treats as "just reported").
func FromRaw(raw domain.RawRecord, now time.Time) domain.Sighting {
	s := domain.Sighting{
		ID:           parseID(raw.ID),
		Name:         raw.Name,
		Coordinate:   pickCoordinate(raw),
		ReportedAt:   pickReportedAt(raw, now),
		Description:  raw.Description,
		Attributes:   raw.Attributes,
		Status:       pickStatus(raw.Status),
		ImageURLs:    pickImages(raw),
		Address:      raw.Address,
		Neighborhood: raw.Neighborhood,
		Similarity:   raw.Similarity,
	}

	if s.Attributes == nil {
		s.Attributes = []string{}
	}
	if s.Name == "" {
		s.Name = DeriveName(raw.Description)
	}

	cls := ClassifyAttributes(s.Attributes)
	s.Size = cls.Size
	s.AgeClass = cls.AgeClass
	s.Color = cls.Color

	if raw.ContactName != "" || raw.ContactPhone != "" || raw.ContactEmail != "" {
		s.Contact = &domain.ContactInfo{
			Name:  raw.ContactName,
			Phone: raw.ContactPhone,
			Email: raw.ContactEmail,
		}
	}

	return s
}

// DeriveName takes the first sentence-like segment of a description as a
// display name. Empty descriptions get a generic fallback.
func DeriveName(description string) string {
	name := strings.TrimSpace(description)
	if name == "" {
		return fallbackName
	}
	if idx := strings.IndexAny(name, ".,;\n"); idx > 0 {
		name = name[:idx]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fallbackName
	}
	return strings.TrimSpace(truncateRunes(name, maxNameLength))
}

// truncateRunes cuts on a rune boundary so accented descriptions never end
// in a broken byte sequence.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

func parseID(id string) uuid.UUID {
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed
	}
	// Non-UUID upstream ids (integers, slugs) get a fresh identity.
	return uuid.New()
}

func pickCoordinate(raw domain.RawRecord) *geo.Coordinate {
	lat, lng := raw.Latitude, raw.Longitude
	if lat == nil || lng == nil {
		lat, lng = raw.Lat, raw.Lng
	}
	if lat == nil || lng == nil {
		return nil
	}
	return &geo.Coordinate{Lat: *lat, Lng: *lng}
}

func pickReportedAt(raw domain.RawRecord, now time.Time) *time.Time {
	value := raw.CreatedAt
	if value == "" {
		value = raw.Timestamp
	}
	if value == "" {
		return &now
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

func pickStatus(status string) domain.SightingStatus {
	if status == "" {
		return domain.StatusPending
	}
	// Open set: unknown statuses pass through verbatim.
	return domain.SightingStatus(status)
}

func pickImages(raw domain.RawRecord) []string {
	if len(raw.ImageURLs) > 0 {
		return raw.ImageURLs
	}
	if raw.Photo != "" {
		return []string{raw.Photo}
	}
	return []string{}
}

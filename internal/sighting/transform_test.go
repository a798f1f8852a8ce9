package sighting_test

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/sighting"
)

var testNow = time.Date(2025, 11, 22, 12, 0, 0, 0, time.UTC)

func floatPtr(f float64) *float64 { return &f }

func TestFromRaw_EmptyRecordStillProducesCanonicalShape(t *testing.T) {
	t.Parallel()

	got := sighting.FromRaw(domain.RawRecord{}, testNow)

	if got.ID == uuid.Nil {
		t.Errorf("expected a generated id")
	}
	if got.Name != "Perrito reportado" {
		t.Errorf("expected fallback name, got %q", got.Name)
	}
	if got.Coordinate != nil {
		t.Errorf("expected nil coordinate, got %+v", got.Coordinate)
	}
	if got.ReportedAt == nil || !got.ReportedAt.Equal(testNow) {
		t.Errorf("expected reported_at=now, got %v", got.ReportedAt)
	}
	if got.Status != domain.StatusPending {
		t.Errorf("expected pendiente, got %q", got.Status)
	}
	if got.Attributes == nil || got.ImageURLs == nil {
		t.Errorf("expected non-nil attribute and image slices")
	}
	if got.Size != sighting.SizeUnknown || got.AgeClass != sighting.AgeClassDefault || got.Color != sighting.ColorUnknown {
		t.Errorf("unexpected classification defaults: %q/%q/%q", got.Size, got.AgeClass, got.Color)
	}
}

func TestFromRaw_PrefersCreatedAtOverTimestamp(t *testing.T) {
	t.Parallel()

	raw := domain.RawRecord{
		CreatedAt: "2025-11-20T10:00:00Z",
		Timestamp: "2025-11-01T00:00:00Z",
	}

	got := sighting.FromRaw(raw, testNow)

	want := time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC)
	if got.ReportedAt == nil || !got.ReportedAt.Equal(want) {
		t.Fatalf("expected created_at to win, got %v", got.ReportedAt)
	}
}

func TestFromRaw_TimestampUsedWhenCreatedAtMissing(t *testing.T) {
	t.Parallel()

	raw := domain.RawRecord{Timestamp: "2025-11-18 08:30:00"}

	got := sighting.FromRaw(raw, testNow)

	want := time.Date(2025, 11, 18, 8, 30, 0, 0, time.UTC)
	if got.ReportedAt == nil || !got.ReportedAt.Equal(want) {
		t.Fatalf("expected timestamp fallback, got %v", got.ReportedAt)
	}
}

func TestFromRaw_UnparseableTimeMeansUnknown(t *testing.T) {
	t.Parallel()

	raw := domain.RawRecord{CreatedAt: "ayer por la tarde"}

	got := sighting.FromRaw(raw, testNow)

	if got.ReportedAt != nil {
		t.Fatalf("expected nil reported_at for junk value, got %v", got.ReportedAt)
	}
}

func TestFromRaw_CoordinateAliases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     domain.RawRecord
		wantNil bool
		wantLat float64
	}{
		{
			name:    "latitude/longitude keys",
			raw:     domain.RawRecord{Latitude: floatPtr(-33.43), Longitude: floatPtr(-70.65)},
			wantLat: -33.43,
		},
		{
			name:    "lat/lng keys",
			raw:     domain.RawRecord{Lat: floatPtr(-33.50), Lng: floatPtr(-70.70)},
			wantLat: -33.50,
		},
		{
			name:    "half a pair is no pair",
			raw:     domain.RawRecord{Latitude: floatPtr(-33.43)},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := sighting.FromRaw(tt.raw, testNow)
			if tt.wantNil {
				if got.Coordinate != nil {
					t.Fatalf("expected nil coordinate, got %+v", got.Coordinate)
				}
				return
			}
			if got.Coordinate == nil || got.Coordinate.Lat != tt.wantLat {
				t.Fatalf("expected lat=%v, got %+v", tt.wantLat, got.Coordinate)
			}
		})
	}
}

func TestFromRaw_KeepsValidUUIDAndStatus(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	raw := domain.RawRecord{
		ID:     id.String(),
		Status: "avistado_en_parque",
	}

	got := sighting.FromRaw(raw, testNow)

	if got.ID != id {
		t.Errorf("expected upstream id preserved, got %s", got.ID)
	}
	if got.Status != domain.SightingStatus("avistado_en_parque") {
		t.Errorf("unknown status must pass through verbatim, got %q", got.Status)
	}
}

func TestFromRaw_PhotoAliasAndContact(t *testing.T) {
	t.Parallel()

	raw := domain.RawRecord{
		Photo:        "https://example.com/a.jpg",
		ContactPhone: "+56912345678",
	}

	got := sighting.FromRaw(raw, testNow)

	if len(got.ImageURLs) != 1 || got.ImageURLs[0] != raw.Photo {
		t.Errorf("expected photo promoted to image_urls, got %v", got.ImageURLs)
	}
	if got.Contact == nil || got.Contact.Phone != raw.ContactPhone {
		t.Errorf("expected contact info kept, got %+v", got.Contact)
	}
}

func TestDeriveName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"first sentence", "Perro mestizo grande. Visto cerca del parque.", "Perro mestizo grande"},
		{"comma cut", "Cachorro café, muy asustado", "Cachorro café"},
		{"empty", "", "Perrito reportado"},
		{"whitespace only", "   \n ", "Perrito reportado"},
		{"no punctuation", "Perrito blanco", "Perrito blanco"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := sighting.DeriveName(tt.description); got != tt.want {
				t.Errorf("DeriveName(%q) = %q, want %q", tt.description, got, tt.want)
			}
		})
	}
}

func TestDeriveName_TruncatesOnRuneBoundary(t *testing.T) {
	t.Parallel()

	// 59 single-byte runes followed by accented ones puts a two-byte rune
	// right on the cut point.
	description := strings.Repeat("a", 59) + "ééééé"

	got := sighting.DeriveName(description)

	if !utf8.ValidString(got) {
		t.Fatalf("derived name is not valid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 60 {
		t.Fatalf("expected 60 runes, got %d (%q)", n, got)
	}
	if want := strings.Repeat("a", 59) + "é"; got != want {
		t.Fatalf("DeriveName = %q, want %q", got, want)
	}
}

func TestDeriveName_ShortNameUntouched(t *testing.T) {
	t.Parallel()

	description := "Perro café pequeñito con pelaje esponjoso"
	if got := sighting.DeriveName(description); got != description {
		t.Fatalf("DeriveName = %q, want unchanged input", got)
	}
}

func TestClassifyAttributes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		attrs []string
		want  sighting.Classification
	}{
		{
			name:  "each slot filled",
			attrs: []string{"grande", "café", "adulto"},
			want:  sighting.Classification{Size: "grande", AgeClass: "adulto", Color: "café"},
		},
		{
			name:  "first match wins per slot",
			attrs: []string{"pequeño", "grande", "negro", "blanco"},
			want:  sighting.Classification{Size: "pequeño", AgeClass: sighting.AgeClassDefault, Color: "negro"},
		},
		{
			name:  "english vocabulary recognized",
			attrs: []string{"Large", "PUPPY", "brown"},
			want:  sighting.Classification{Size: "large", AgeClass: "puppy", Color: "brown"},
		},
		{
			name:  "empty list keeps defaults",
			attrs: nil,
			want: sighting.Classification{
				Size:     sighting.SizeUnknown,
				AgeClass: sighting.AgeClassDefault,
				Color:    sighting.ColorUnknown,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := sighting.ClassifyAttributes(tt.attrs); got != tt.want {
				t.Errorf("ClassifyAttributes(%v) = %+v, want %+v", tt.attrs, got, tt.want)
			}
		})
	}
}

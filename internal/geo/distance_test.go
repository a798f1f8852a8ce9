package geo

import (
	"math"
	"testing"
)

func TestDistanceKm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		a         Coordinate
		b         Coordinate
		expected  float64
		tolerance float64
	}{
		{
			name:      "same location",
			a:         Coordinate{Lat: -33.45, Lng: -70.66},
			b:         Coordinate{Lat: -33.45, Lng: -70.66},
			expected:  0.0,
			tolerance: 0.001,
		},
		{
			name:      "Providencia to Santiago Centro",
			a:         Coordinate{Lat: -33.4269, Lng: -70.6123},
			b:         Coordinate{Lat: -33.4372, Lng: -70.6506},
			expected:  3.7,
			tolerance: 0.2,
		},
		{
			name:      "Santiago to Valparaiso",
			a:         Coordinate{Lat: -33.4489, Lng: -70.6693},
			b:         Coordinate{Lat: -33.0472, Lng: -71.6127},
			expected:  98.0,
			tolerance: 3.0,
		},
		{
			name:      "New York to London",
			a:         Coordinate{Lat: 40.7128, Lng: -74.0060},
			b:         Coordinate{Lat: 51.5074, Lng: -0.1278},
			expected:  5570.0,
			tolerance: 10.0,
		},
		{
			name:      "across the antimeridian short arc",
			a:         Coordinate{Lat: 0, Lng: 179.5},
			b:         Coordinate{Lat: 0, Lng: -179.5},
			expected:  111.2,
			tolerance: 1.0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DistanceKm(tt.a, tt.b)
			diff := math.Abs(got - tt.expected)
			if diff > tt.tolerance {
				t.Errorf("DistanceKm() = %.2f, expected %.2f (±%.2f), diff = %.2f",
					got, tt.expected, tt.tolerance, diff)
			}
		})
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	t.Parallel()

	a := Coordinate{Lat: -33.4269, Lng: -70.6123}
	b := Coordinate{Lat: 51.5074, Lng: -0.1278}

	if ab, ba := DistanceKm(a, b), DistanceKm(b, a); math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("expected symmetry: a->b=%.9f b->a=%.9f", ab, ba)
	}
}

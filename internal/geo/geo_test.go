package geo

import "testing"

func TestBoundsContains(t *testing.T) {
	t.Parallel()

	b := Bounds{MinLat: -33.5, MaxLat: -33.4, MinLng: -70.7, MaxLng: -70.6}

	tests := []struct {
		name string
		c    Coordinate
		want bool
	}{
		{"inside", Coordinate{Lat: -33.45, Lng: -70.65}, true},
		{"on min edge", Coordinate{Lat: -33.5, Lng: -70.7}, true},
		{"on max edge", Coordinate{Lat: -33.4, Lng: -70.6}, true},
		{"north of bounds", Coordinate{Lat: -33.3, Lng: -70.65}, false},
		{"west of bounds", Coordinate{Lat: -33.45, Lng: -70.8}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := b.Contains(tt.c); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

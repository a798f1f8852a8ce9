package geo

import (
	"math"
	"testing"
	"time"
)

func TestEstimateRadii(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 11, 22, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		reportedAt *time.Time
		want       Radii
	}{
		{
			name:       "just reported",
			reportedAt: timePtr(now),
			want:       Radii{HighM: 500, MediumM: 800, LowM: 1000},
		},
		{
			name:       "one day old",
			reportedAt: timePtr(now.Add(-24 * time.Hour)),
			want:       Radii{HighM: 1500, MediumM: 2400, LowM: 3000},
		},
		{
			name:       "ten days old hits the plateau",
			reportedAt: timePtr(now.Add(-240 * time.Hour)),
			want:       Radii{HighM: 5000, MediumM: 8000, LowM: 10000},
		},
		{
			name:       "future report treated as just reported",
			reportedAt: timePtr(now.Add(30 * time.Minute)),
			want:       Radii{HighM: 520.833333, MediumM: 833.333333, LowM: 1041.666667},
		},
		{
			name:       "unknown report time gets defaults",
			reportedAt: nil,
			want:       Radii{HighM: 500, MediumM: 800, LowM: 1000},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := EstimateRadii(tt.reportedAt, now)
			if !radiiClose(got, tt.want, 0.01) {
				t.Errorf("EstimateRadii() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEstimateRadii_BandsAlwaysNested(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 11, 22, 12, 0, 0, 0, time.UTC)

	for hours := 0; hours <= 400; hours += 7 {
		reportedAt := now.Add(-time.Duration(hours) * time.Hour)
		r := EstimateRadii(&reportedAt, now)
		if !(r.HighM < r.MediumM && r.MediumM < r.LowM) {
			t.Fatalf("bands not nested at %dh: %+v", hours, r)
		}
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func radiiClose(a, b Radii, tol float64) bool {
	return math.Abs(a.HighM-b.HighM) <= tol &&
		math.Abs(a.MediumM-b.MediumM) <= tol &&
		math.Abs(a.LowM-b.LowM) <= tol
}

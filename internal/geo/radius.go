package geo

import (
	"math"
	"time"
)

// Radii are the three nested probability bands, in meters, drawn around a
// sighting to suggest how far the animal may have wandered. Visualization
// heuristic only, not a statistical guarantee. High < Medium < Low always.
type Radii struct {
	HighM   float64 `json:"high_m"`
	MediumM float64 `json:"medium_m"`
	LowM    float64 `json:"low_m"`
}

// Radii when the report time is unknown: assume very recent, tight area.
var defaultRadii = Radii{HighM: 500, MediumM: 800, LowM: 1000}

const (
	maxBaseRadiusKm = 10.0
	growthHours     = 12.0
)

// EstimateRadii maps the time elapsed since a report to the three search
// bands. The base radius grows linearly, one extra kilometer every 12 hours
// from a 1 km start, and plateaus at 10 km: past roughly three days a fixed
// wide net beats precise modeling. Elapsed time is taken as an absolute
// value so a reportedAt fractionally in the future (clock skew) never errors.
// now is an explicit parameter to keep the function deterministic.
func EstimateRadii(reportedAt *time.Time, now time.Time) Radii {
	if reportedAt == nil {
		return defaultRadii
	}

	hoursElapsed := math.Abs(now.Sub(*reportedAt).Hours())
	baseRadiusKm := math.Min(1+hoursElapsed/growthHours, maxBaseRadiusKm)

	return Radii{
		HighM:   baseRadiusKm * 0.5 * 1000,
		MediumM: baseRadiusKm * 0.8 * 1000,
		LowM:    baseRadiusKm * 1.0 * 1000,
	}
}

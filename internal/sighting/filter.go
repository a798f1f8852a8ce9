// Package sighting implements the pure operations over canonical sighting
// records: filtering, normalization of raw partner records, attribute
// classification and attribute-based match ranking. Everything here is
// side-effect free and safe to call from a request path.
package sighting

import (
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/geo"
)

// StatusAll disables status filtering.
const StatusAll = "all"

type Proximity struct {
	Origin   geo.Coordinate
	RadiusKm float64
}

// Criteria are conjunctive: a record must satisfy every active criterion.
// Zero-value fields impose no constraint.
type Criteria struct {
	Status    string      // exact match; "" or "all" means off
	Proximity *Proximity  // keep records within RadiusKm of Origin
	Viewport  *geo.Bounds // keep records inside the captured viewport
}

func (c Criteria) statusActive() bool {
	return c.Status != "" && c.Status != StatusAll
}

// Filter returns the records satisfying all active criteria, in their
// original order. The input slice is never mutated and the result is always
// a fresh slice. Records without a coordinate are dropped by the spatial
// criteria (proximity, viewport) but untouched by the status criterion.
func Filter(records []domain.Sighting, c Criteria) []domain.Sighting {
	out := make([]domain.Sighting, 0, len(records))
	for _, rec := range records {
		if !matches(rec, c) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matches(rec domain.Sighting, c Criteria) bool {
	if c.statusActive() && string(rec.Status) != c.Status {
		return false
	}
	if c.Proximity != nil {
		if rec.Coordinate == nil {
			return false
		}
		if geo.DistanceKm(c.Proximity.Origin, *rec.Coordinate) > c.Proximity.RadiusKm {
			return false
		}
	}
	if c.Viewport != nil {
		if rec.Coordinate == nil {
			return false
		}
		if !c.Viewport.Contains(*rec.Coordinate) {
			return false
		}
	}
	return true
}

package sighting

import (
	"sort"
	"strings"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/geo"
)

// DefaultMinMatchScore is the Jaccard cutoff below which a candidate is not
// considered a match at all.
const DefaultMinMatchScore = 0.3

// Jaccard computes |A ∩ B| / |A ∪ B| over two attribute lists,
// case-insensitively and ignoring duplicates. Two empty lists score 0.
func Jaccard(a, b []string) float64 {
	setA := toSet(a)
	setB := toSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	intersection := 0
	for attr := range setA {
		if _, ok := setB[attr]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

type MatchOptions struct {
	Origin   *geo.Coordinate // optional: annotate distance and apply RadiusKm
	RadiusKm float64         // used only when Origin is set
	MinScore float64         // 0 means DefaultMinMatchScore
	Limit    int             // 0 means no cap
}

// RankMatches scores candidates against the searched attribute set and
// returns them best first. Candidates below the score cutoff are dropped;
// with an origin set, candidates with a coordinate outside the radius are
// dropped too. Coordinate-less candidates survive, only unannotated; a
// missing location should not hide a strong visual match. Ties on score go
// to the closer record. Survivors carry Similarity and DistanceKm filled in.
func RankMatches(candidates []domain.Sighting, attrs []string, opts MatchOptions) []domain.Sighting {
	minScore := opts.MinScore
	if minScore == 0 {
		minScore = DefaultMinMatchScore
	}

	results := make([]domain.Sighting, 0, len(candidates))
	for _, cand := range candidates {
		score := Jaccard(attrs, cand.Attributes)
		if score < minScore {
			continue
		}

		if opts.Origin != nil && cand.Coordinate != nil {
			dist := geo.DistanceKm(*opts.Origin, *cand.Coordinate)
			if opts.RadiusKm > 0 && dist > opts.RadiusKm {
				continue
			}
			cand.DistanceKm = &dist
		}

		s := score
		cand.Similarity = &s
		results = append(results, cand)
	}

	sort.SliceStable(results, func(i, j int) bool {
		si, sj := *results[i].Similarity, *results[j].Similarity
		if si != sj {
			return si > sj
		}
		di, dj := results[i].DistanceKm, results[j].DistanceKm
		if di != nil && dj != nil {
			return *di < *dj
		}
		return di != nil
	})

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results
}

func toSet(attrs []string) map[string]struct{} {
	set := make(map[string]struct{}, len(attrs))
	for _, attr := range attrs {
		key := strings.ToLower(strings.TrimSpace(attr))
		if key == "" {
			continue
		}
		set[key] = struct{}{}
	}
	return set
}

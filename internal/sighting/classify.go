package sighting

import "strings"

// Slot defaults when no attribute matches a vocabulary.
const (
	SizeUnknown     = "desconocido"
	AgeClassDefault = "adulto"
	ColorUnknown    = "desconocido"
)

// Fixed vocabularies for the size and age-class slots. Partner feeds mix
// Spanish and English tags, so both are recognized. Matching is
// case-insensitive. Anything outside both vocabularies is treated as a
// color/other descriptor.
var (
	sizeVocabulary = map[string]struct{}{
		"pequeño": {}, "pequeno": {}, "mediano": {}, "grande": {},
		"small": {}, "medium": {}, "large": {},
	}
	ageVocabulary = map[string]struct{}{
		"cachorro": {}, "joven": {}, "adulto": {}, "senior": {},
		"puppy": {}, "young": {}, "adult": {},
	}
)

type Classification struct {
	Size     string
	AgeClass string
	Color    string
}

// ClassifyAttributes sorts freeform tags into the size / age-class / color
// slots. First match wins a slot; ties resolve by list order. The heuristic
// is deliberately simple and deterministic: an ambiguous tag lands wherever
// the vocabularies place it first, and we keep it that way rather than
// second-guess partner data.
func ClassifyAttributes(attrs []string) Classification {
	c := Classification{
		Size:     SizeUnknown,
		AgeClass: AgeClassDefault,
		Color:    ColorUnknown,
	}

	sizeSet := false
	ageSet := false
	colorSet := false

	for _, attr := range attrs {
		key := strings.ToLower(strings.TrimSpace(attr))
		if key == "" {
			continue
		}
		if _, ok := sizeVocabulary[key]; ok {
			if !sizeSet {
				c.Size = key
				sizeSet = true
			}
			continue
		}
		if _, ok := ageVocabulary[key]; ok {
			if !ageSet {
				c.AgeClass = key
				ageSet = true
			}
			continue
		}
		if !colorSet {
			c.Color = key
			colorSet = true
		}
	}

	return c
}

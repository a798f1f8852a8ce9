package sighting

import "strings"

// Spanish function words plus the subject nouns themselves, which carry no
// distinguishing signal ("perro café" should match on "café", not "perro").
var stopwords = map[string]struct{}{
	"el": {}, "la": {}, "los": {}, "las": {}, "un": {}, "una": {}, "unos": {}, "unas": {},
	"de": {}, "del": {}, "al": {}, "a": {}, "en": {}, "con": {}, "sin": {}, "por": {},
	"para": {}, "y": {}, "o": {}, "u": {}, "que": {}, "se": {}, "es": {}, "está": {},
	"esta": {}, "muy": {}, "más": {}, "mas": {}, "como": {}, "le": {}, "lo": {}, "su": {},
	"perro": {}, "perrito": {}, "perra": {}, "perrita": {}, "cachorrito": {},
	"dog": {}, "the": {}, "and": {}, "with": {},
}

// ExtractAttributes derives search attributes from a free-text description:
// lowercase tokens with punctuation stripped, stopwords and near-empty
// tokens removed, duplicates collapsed, original order kept. Returns an
// empty slice when nothing usable remains.
func ExtractAttributes(description string) []string {
	fields := strings.FieldsFunc(strings.ToLower(description), func(r rune) bool {
		return !isWordRune(r)
	})

	seen := make(map[string]struct{}, len(fields))
	attrs := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < 3 {
			continue
		}
		if _, stop := stopwords[f]; stop {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		attrs = append(attrs, f)
	}
	return attrs
}

func isWordRune(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	// Accented vowels and ñ show up constantly in descriptions.
	switch r {
	case 'á', 'é', 'í', 'ó', 'ú', 'ü', 'ñ':
		return true
	}
	return false
}

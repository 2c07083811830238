package finding

import (
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// Threshold is the exclusive upper bound of the edit distance between two
// records considered to be the same finding.
const Threshold = 8

// Distance returns the Levenshtein distance between two records.
// Valid UTF-8 records are compared by characters.
// If either record isn't valid UTF-8, both are compared byte by byte so that
// distinct invalid bytes never collapse into U+FFFD.
func Distance(a, b string) int {
	a, b = units(a, b)
	return levenshtein.Distance(a, b, nil)
}

// units returns a and b in the form compared by Distance.
// In the byte form each byte becomes the rune of the same value, so one rune
// of the result stands for one byte of the input.
func units(a, b string) (string, string) {
	if utf8.ValidString(a) && utf8.ValidString(b) {
		return a, b
	}
	return bytesAsRunes(a), bytesAsRunes(b)
}

func bytesAsRunes(s string) string {
	runes := make([]rune, len(s))
	for i := range len(s) {
		runes[i] = rune(s[i])
	}
	return string(runes)
}

// Closest returns the known record nearest to finding and its edit distance.
// ok is false if no known record is within Threshold.
// On ties the earliest known record wins.
func Closest(finding string, known []string) (closest string, distance int, ok bool) {
	distance = Threshold
	for _, k := range known {
		f, kk := units(finding, k)
		// The distance is at least the length difference.
		if lengthDiff(f, kk) >= distance {
			continue
		}
		d := levenshtein.Distance(f, kk, nil)
		if d < distance {
			closest = k
			distance = d
			ok = true
		}
	}
	if !ok {
		return "", 0, false
	}
	return closest, distance, true
}

func lengthDiff(a, b string) int {
	d := utf8.RuneCountInString(a) - utf8.RuneCountInString(b)
	if d < 0 {
		return -d
	}
	return d
}

// IsNew reports whether finding has no counterpart in known.
func IsNew(finding string, known []string) bool {
	_, _, ok := Closest(finding, known)
	return !ok
}

// FilterNew returns the findings which have no counterpart in known, in their original order.
func FilterNew(known, findings []string) []string {
	ret := []string{}
	for _, f := range findings {
		if IsNew(f, known) {
			ret = append(ret, f)
		}
	}
	return ret
}

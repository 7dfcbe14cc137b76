// Package matching scores name similarity and picks the closest roster entry
// for a free-text participant name.
package matching

import (
	"strings"
	"unicode"
)

// Score returns the Sørensen–Dice coefficient of the character bigrams of a
// and b, ignoring case and whitespace. The result is in [0,1], symmetric, and
// 1 for equal inputs.
func Score(a, b string) float64 {
	a, b = normalize(a), normalize(b)

	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) < 2 || len(rb) < 2 {
		return 0
	}

	counts := make(map[[2]rune]int, len(ra)-1)
	for i := 0; i < len(ra)-1; i++ {
		counts[[2]rune{ra[i], ra[i+1]}]++
	}

	intersection := 0
	for i := 0; i < len(rb)-1; i++ {
		bg := [2]rune{rb[i], rb[i+1]}
		if counts[bg] > 0 {
			counts[bg]--
			intersection++
		}
	}

	return 2 * float64(intersection) / float64(len(ra)+len(rb)-2)
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

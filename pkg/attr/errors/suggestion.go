package errors

import (
	"fmt"
	"strings"
)

// maxSuggestDistance is the largest edit distance still offered as "Did you mean".
const maxSuggestDistance = 4

// SuggestFieldName suggests a known entry field for an unknown one.
func SuggestFieldName(unknown string, validFields []string) string {
	if len(validFields) == 0 {
		return ""
	}

	if best, ok := closest(unknown, validFields); ok {
		return fmt.Sprintf("Did you mean '%s'?", best)
	}

	return fmt.Sprintf("Valid fields: %s", strings.Join(validFields, ", "))
}

// SuggestPath suggests the closest known dotted path for one that missed.
// It returns "" when nothing is close.
func SuggestPath(unknown string, knownPaths []string) string {
	if best, ok := closest(unknown, knownPaths); ok {
		return fmt.Sprintf("Did you mean '%s'?", best)
	}
	return ""
}

// SuggestStyle lists the valid attribute styles.
func SuggestStyle() string {
	return "Valid styles: outer, inner"
}

// closest returns the candidate with the smallest edit distance to s, if it
// is within maxSuggestDistance. Ties keep the earlier candidate.
func closest(s string, candidates []string) (string, bool) {
	minDistance := maxSuggestDistance + 1
	var bestMatch string

	for _, c := range candidates {
		if dist := levenshteinDistance(s, c); dist < minDistance {
			minDistance = dist
			bestMatch = c
		}
	}

	return bestMatch, minDistance <= maxSuggestDistance
}

// levenshteinDistance computes the Levenshtein distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	len1 := len(s1)
	len2 := len(s2)

	matrix := make([][]int, len1+1)
	for i := range matrix {
		matrix[i] = make([]int, len2+1)
	}

	for i := 0; i <= len1; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len2; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // Deletion
				matrix[i][j-1]+1,      // Insertion
				matrix[i-1][j-1]+cost, // Substitution
			)
		}
	}

	return matrix[len1][len2]
}

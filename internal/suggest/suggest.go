// This file is part of go-optopus.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package suggest - finds the declared name closest to a mistyped one.
package suggest

// MaxDistance - Largest edit distance for which Suggest returns a match.
var MaxDistance = 2

// Distance - Levenshtein distance between a and b, measured in runes.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	// Two rows are enough, prev holds the distances for ra[:i-1].
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Closest - Returns the candidate with the smallest distance to given and that distance.
// Ties go to the earliest candidate. Returns -1 when there are no candidates.
func Closest(given string, candidates []string) (string, int) {
	best, floor := "", -1
	for _, c := range candidates {
		d := Distance(given, c)
		if floor == -1 || d < floor {
			best, floor = c, d
		}
	}
	return best, floor
}

// Suggest - Like Closest but only reports a match within MaxDistance.
func Suggest(given string, candidates []string) (string, bool) {
	best, d := Closest(given, candidates)
	if d < 0 || d > MaxDistance {
		return "", false
	}
	return best, true
}

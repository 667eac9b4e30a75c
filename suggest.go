package clap

import (
	"sort"
	"strings"
)

const (
	maxSuggestionDistance = 3
	maxSuggestions        = 3
)

// suggest returns up to three candidate names within edit distance 3 of the
// probe, nearest first. Leading dashes on the probe are ignored so that
// "--verbos" is measured against "verbose", not "-verbose".
func suggest(probe string, candidates []string) []string {
	probe = strings.TrimLeft(probe, "-")

	type scored struct {
		name string
		dist int
	}
	var near []scored
	for _, cand := range candidates {
		if cand == "" {
			continue
		}
		if d := editDistance(probe, cand); d <= maxSuggestionDistance {
			near = append(near, scored{name: cand, dist: d})
		}
	}
	sort.SliceStable(near, func(i, j int) bool { return near[i].dist < near[j].dist })
	if len(near) > maxSuggestions {
		near = near[:maxSuggestions]
	}
	names := make([]string, len(near))
	for i, s := range near {
		names[i] = s.name
	}
	return names
}

// editDistance is the classic Levenshtein DP with unit costs, using two
// rolling rows instead of the full matrix.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
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
